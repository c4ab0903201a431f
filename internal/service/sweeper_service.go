package service

import (
	"context"
	"time"

	"yield-spend-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// SweeperService periodically reclaims expired allocations and purges dead
// nonces and sessions. Every pass is idempotent; overlapping runs against
// the same rows resolve through the repositories' conditional updates.
type SweeperService struct {
	allocSvc    ports.AllocationService
	nonceRepo   ports.NonceRepository
	sessionRepo ports.SessionRepository
	interval    time.Duration
	log         zerolog.Logger
}

// NewSweeperService creates a new SweeperService.
func NewSweeperService(
	allocSvc ports.AllocationService,
	nonceRepo ports.NonceRepository,
	sessionRepo ports.SessionRepository,
	interval time.Duration,
	log zerolog.Logger,
) *SweeperService {
	return &SweeperService{
		allocSvc:    allocSvc,
		nonceRepo:   nonceRepo,
		sessionRepo: sessionRepo,
		interval:    interval,
		log:         log,
	}
}

// Run blocks until ctx is cancelled, sweeping on every tick.
func (s *SweeperService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.interval).Msg("sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("sweeper stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one pass. Failures are logged, never fatal.
func (s *SweeperService) Sweep(ctx context.Context) {
	now := time.Now().UTC()

	if count, err := s.allocSvc.ReclaimExpired(ctx); err != nil {
		s.log.Error().Err(err).Msg("sweep: reclaim allocations failed")
	} else if count > 0 {
		s.log.Debug().Int64("count", count).Msg("sweep: allocations reclaimed")
	}

	if count, err := s.nonceRepo.DeleteExpired(ctx, now); err != nil {
		s.log.Error().Err(err).Msg("sweep: purge nonces failed")
	} else if count > 0 {
		s.log.Debug().Int64("count", count).Msg("sweep: nonces purged")
	}

	if count, err := s.sessionRepo.DeleteExpired(ctx, now); err != nil {
		s.log.Error().Err(err).Msg("sweep: purge sessions failed")
	} else if count > 0 {
		s.log.Debug().Int64("count", count).Msg("sweep: sessions purged")
	}
}
