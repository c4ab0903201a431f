package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"yield-spend-gateway/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func TestSweeperService_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	allocSvc := mocks.NewMockAllocationService(ctrl)
	nonceRepo := mocks.NewMockNonceRepository(ctrl)
	sessionRepo := mocks.NewMockSessionRepository(ctrl)
	svc := NewSweeperService(allocSvc, nonceRepo, sessionRepo, time.Minute, zerolog.Nop())

	ctx := context.Background()
	allocSvc.EXPECT().ReclaimExpired(ctx).Return(int64(2), nil)
	nonceRepo.EXPECT().DeleteExpired(ctx, gomock.Any()).Return(int64(5), nil)
	sessionRepo.EXPECT().DeleteExpired(ctx, gomock.Any()).Return(int64(1), nil)

	svc.Sweep(ctx)
}

func TestSweeperService_Sweep_FailuresDoNotAbort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	allocSvc := mocks.NewMockAllocationService(ctrl)
	nonceRepo := mocks.NewMockNonceRepository(ctrl)
	sessionRepo := mocks.NewMockSessionRepository(ctrl)
	svc := NewSweeperService(allocSvc, nonceRepo, sessionRepo, time.Minute, zerolog.Nop())

	ctx := context.Background()
	allocSvc.EXPECT().ReclaimExpired(ctx).Return(int64(0), errors.New("db down"))
	nonceRepo.EXPECT().DeleteExpired(ctx, gomock.Any()).Return(int64(0), errors.New("db down"))
	sessionRepo.EXPECT().DeleteExpired(ctx, gomock.Any()).Return(int64(0), errors.New("db down"))

	svc.Sweep(ctx)
}

func TestSweeperService_Run_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	allocSvc := mocks.NewMockAllocationService(ctrl)
	nonceRepo := mocks.NewMockNonceRepository(ctrl)
	sessionRepo := mocks.NewMockSessionRepository(ctrl)
	svc := NewSweeperService(allocSvc, nonceRepo, sessionRepo, 10*time.Millisecond, zerolog.Nop())

	allocSvc.EXPECT().ReclaimExpired(gomock.Any()).Return(int64(0), nil).AnyTimes()
	nonceRepo.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	sessionRepo.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(done)
	}()

	time.Sleep(35 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}
