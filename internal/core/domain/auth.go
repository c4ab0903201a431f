package domain

import (
	"time"

	"github.com/google/uuid"
)

// Nonce is a single-use challenge proving recent wallet-key possession.
// A nonce is consumed exactly once and never reused, even after expiry.
type Nonce struct {
	Value         string     `json:"value"`
	WalletAddress string     `json:"wallet_address"`
	ExpiresAt     time.Time  `json:"expires_at"`
	UsedAt        *time.Time `json:"used_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// IsUsable reports whether the nonce can still be consumed.
func (n *Nonce) IsUsable(now time.Time) bool {
	return n.UsedAt == nil && now.Before(n.ExpiresAt)
}

// Session is created on successful signature verification and mutated only
// by revocation.
type Session struct {
	ID            uuid.UUID  `json:"id"`
	WalletAddress string     `json:"wallet_address"`
	Nonce         string     `json:"nonce"`
	ExpiresAt     time.Time  `json:"expires_at"`
	RevokedAt     *time.Time `json:"revoked_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// IsActive reports whether the session is neither revoked nor expired.
// Token-level checks alone are insufficient for revocation-sensitive
// decisions; callers must consult this server-side state too.
func (s *Session) IsActive(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
