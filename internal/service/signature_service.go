package service

import (
	"crypto/ed25519"

	"yield-spend-gateway/pkg/apperror"

	"github.com/gagliardetto/solana-go"
)

// Ed25519SignatureService implements ports.SignatureVerifier for Solana
// wallets. The wallet address IS the ed25519 public key in base58, so no key
// registry is needed.
type Ed25519SignatureService struct{}

// NewEd25519SignatureService creates a new signature verifier.
func NewEd25519SignatureService() *Ed25519SignatureService {
	return &Ed25519SignatureService{}
}

// Verify checks that signature is a valid ed25519 signature by wallet over
// the exact message bytes. signature is base58-encoded, as wallets emit it.
func (s *Ed25519SignatureService) Verify(wallet string, message []byte, signature string) error {
	pubkey, err := solana.PublicKeyFromBase58(wallet)
	if err != nil {
		return apperror.ErrInvalidWalletAddress()
	}

	sig, err := solana.SignatureFromBase58(signature)
	if err != nil {
		return apperror.ErrInvalidSignature()
	}

	if !ed25519.Verify(pubkey.Bytes(), message, sig[:]) {
		return apperror.ErrInvalidSignature()
	}
	return nil
}
