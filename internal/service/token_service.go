package service

import (
	"fmt"
	"time"

	"yield-spend-gateway/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTTokenService implements ports.TokenService using HS256 JWT.
type JWTTokenService struct {
	secret []byte
	issuer string
}

// NewJWTTokenService creates a new JWT token service.
func NewJWTTokenService(secret, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Generate creates a signed JWT bound to a session row. The token expiry
// mirrors the session's server-side expiry so both checks agree.
func (s *JWTTokenService) Generate(sessionID uuid.UUID, wallet string, expiresAt time.Time) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sid": sessionID.String(),
		"sub": wallet,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
		"iss": s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return tokenString, nil
}

// Validate parses and validates a JWT token, returning the claims. Expiry is
// enforced by the parser; revocation is not visible here and must be checked
// against the session row.
func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sid, ok := claims["sid"].(string)
	if !ok {
		return nil, fmt.Errorf("missing session claim")
	}
	sessionID, err := uuid.Parse(sid)
	if err != nil {
		return nil, fmt.Errorf("invalid session ID in token: %w", err)
	}

	wallet, ok := claims["sub"].(string)
	if !ok || wallet == "" {
		return nil, fmt.Errorf("missing subject claim")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("missing expiry claim")
	}

	return &ports.TokenClaims{
		SessionID:     sessionID,
		WalletAddress: wallet,
		ExpiresAt:     exp.Time,
	}, nil
}
