package service

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKeypair(t *testing.T) (string, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return solana.PublicKeyFromBytes(pub).String(), priv
}

func TestEd25519SignatureService_Verify_Valid(t *testing.T) {
	svc := NewEd25519SignatureService()
	wallet, priv := newTestKeypair(t)

	message := []byte("sign in message")
	sig := ed25519.Sign(priv, message)

	err := svc.Verify(wallet, message, base58.Encode(sig))
	assert.NoError(t, err)
}

func TestEd25519SignatureService_Verify_WrongMessage(t *testing.T) {
	svc := NewEd25519SignatureService()
	wallet, priv := newTestKeypair(t)

	sig := ed25519.Sign(priv, []byte("original message"))

	err := svc.Verify(wallet, []byte("different message"), base58.Encode(sig))
	assertAppError(t, err, "AUTH_002")
}

func TestEd25519SignatureService_Verify_WrongKey(t *testing.T) {
	svc := NewEd25519SignatureService()
	wallet, _ := newTestKeypair(t)
	_, otherPriv := newTestKeypair(t)

	message := []byte("sign in message")
	sig := ed25519.Sign(otherPriv, message)

	err := svc.Verify(wallet, message, base58.Encode(sig))
	assertAppError(t, err, "AUTH_002")
}

func TestEd25519SignatureService_Verify_BadWalletAddress(t *testing.T) {
	svc := NewEd25519SignatureService()

	err := svc.Verify("not-base58-!!!", []byte("msg"), "sig")
	assertAppError(t, err, "VAL_002")
}

func TestEd25519SignatureService_Verify_BadSignatureEncoding(t *testing.T) {
	svc := NewEd25519SignatureService()
	wallet, _ := newTestKeypair(t)

	err := svc.Verify(wallet, []byte("msg"), "!!!not-base58!!!")
	assertAppError(t, err, "AUTH_002")
}
