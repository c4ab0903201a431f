package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"yield-spend-gateway/internal/core/domain"
	"yield-spend-gateway/internal/core/ports"
	"yield-spend-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// signInMessageTemplate is the exact text a wallet signs. Authenticate
// re-derives the nonce from this text, so its shape is part of the protocol.
const signInMessageTemplate = "%s wants you to sign in with your wallet:\n%s\n\nNonce: %s\nIssued At: %s"

// SessionServiceImpl implements ports.SessionService: the wallet-signature
// challenge/response authority.
type SessionServiceImpl struct {
	nonceRepo   ports.NonceRepository
	sessionRepo ports.SessionRepository
	sigVerifier ports.SignatureVerifier
	tokenSvc    ports.TokenService
	appName     string
	nonceTTL    time.Duration
	sessionTTL  time.Duration
	log         zerolog.Logger
}

// NewSessionService creates a new SessionServiceImpl.
func NewSessionService(
	nonceRepo ports.NonceRepository,
	sessionRepo ports.SessionRepository,
	sigVerifier ports.SignatureVerifier,
	tokenSvc ports.TokenService,
	appName string,
	nonceTTL time.Duration,
	sessionTTL time.Duration,
	log zerolog.Logger,
) *SessionServiceImpl {
	return &SessionServiceImpl{
		nonceRepo:   nonceRepo,
		sessionRepo: sessionRepo,
		sigVerifier: sigVerifier,
		tokenSvc:    tokenSvc,
		appName:     appName,
		nonceTTL:    nonceTTL,
		sessionTTL:  sessionTTL,
		log:         log,
	}
}

// IssueNonce creates a single-use challenge bound to the wallet.
func (s *SessionServiceImpl) IssueNonce(ctx context.Context, wallet string) (*ports.NonceChallenge, error) {
	value, err := generateRandomHex(16)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate nonce: %w", err))
	}

	now := time.Now().UTC()
	nonce := &domain.Nonce{
		Value:         value,
		WalletAddress: wallet,
		ExpiresAt:     now.Add(s.nonceTTL),
		CreatedAt:     now,
	}
	if err := s.nonceRepo.Create(ctx, nonce); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("store nonce: %w", err))
	}

	message := fmt.Sprintf(signInMessageTemplate, s.appName, wallet, value, now.Format(time.RFC3339))

	return &ports.NonceChallenge{
		Nonce:     value,
		Message:   message,
		ExpiresAt: nonce.ExpiresAt,
	}, nil
}

// Authenticate exchanges a signed challenge for a session token. The nonce is
// consumed before the signature is checked so a replayed message dies even if
// verification would pass.
func (s *SessionServiceImpl) Authenticate(ctx context.Context, req ports.AuthenticateRequest) (*ports.AuthResult, error) {
	nonceValue := extractNonce(req.Message)
	if nonceValue == "" {
		return nil, apperror.ErrInvalidNonce()
	}

	now := time.Now().UTC()
	consumed, err := s.nonceRepo.Consume(ctx, nonceValue, req.WalletAddress, now)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("consume nonce: %w", err))
	}
	if consumed == nil {
		s.log.Warn().Str("wallet", req.WalletAddress).Msg("nonce replay or expiry rejected")
		return nil, apperror.ErrInvalidNonce()
	}

	if err := s.sigVerifier.Verify(req.WalletAddress, []byte(req.Message), req.Signature); err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:            uuid.New(),
		WalletAddress: req.WalletAddress,
		Nonce:         nonceValue,
		ExpiresAt:     now.Add(s.sessionTTL),
		CreatedAt:     now,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create session: %w", err))
	}

	token, err := s.tokenSvc.Generate(session.ID, session.WalletAddress, session.ExpiresAt)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mint token: %w", err))
	}

	s.log.Info().
		Str("wallet", req.WalletAddress).
		Str("session_id", session.ID.String()).
		Msg("session established")

	return &ports.AuthResult{
		Token:         token,
		WalletAddress: req.WalletAddress,
		ExpiresAt:     session.ExpiresAt,
	}, nil
}

// Validate checks the token's integrity and the session row's liveness.
// Both must pass: a valid token for a revoked session is rejected.
func (s *SessionServiceImpl) Validate(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := s.tokenSvc.Validate(token)
	if err != nil {
		return nil, apperror.ErrInvalidSession()
	}

	session, err := s.sessionRepo.GetByID(ctx, claims.SessionID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("load session: %w", err))
	}
	if session == nil || !session.IsActive(time.Now().UTC()) {
		return nil, apperror.ErrInvalidSession()
	}
	if session.WalletAddress != claims.WalletAddress {
		return nil, apperror.ErrInvalidSession()
	}
	return session, nil
}

// Revoke invalidates a single session.
func (s *SessionServiceImpl) Revoke(ctx context.Context, sessionID uuid.UUID) error {
	ok, err := s.sessionRepo.Revoke(ctx, sessionID, time.Now().UTC())
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("revoke session: %w", err))
	}
	if !ok {
		return apperror.ErrInvalidSession()
	}
	return nil
}

// RevokeAll invalidates every live session of a wallet.
func (s *SessionServiceImpl) RevokeAll(ctx context.Context, wallet string) error {
	count, err := s.sessionRepo.RevokeAllForWallet(ctx, wallet, time.Now().UTC())
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("revoke sessions: %w", err))
	}
	s.log.Info().Str("wallet", wallet).Int64("revoked", count).Msg("wallet sessions revoked")
	return nil
}

// extractNonce pulls the nonce out of a signed-in message.
func extractNonce(message string) string {
	for _, line := range strings.Split(message, "\n") {
		if after, ok := strings.CutPrefix(line, "Nonce: "); ok {
			return strings.TrimSpace(after)
		}
	}
	return ""
}

// generateRandomHex returns n random bytes hex-encoded (2n chars).
func generateRandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
