package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Verifier checks an operator credential. The admin panel only depends on
// this interface, so the shared-password scheme can be swapped for a real one
// without touching any handler.
type Verifier interface {
	Verify(credential string) bool
}

// SharedSecret gates the admin panel behind one static password. When a
// bcrypt hash is configured it is preferred over the plaintext secret.
type SharedSecret struct {
	Secret string
	Hash   string
}

func NewSharedSecret(secret, hash string) *SharedSecret {
	return &SharedSecret{Secret: secret, Hash: hash}
}

func (s *SharedSecret) Verify(credential string) bool {
	if s.Hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.Hash), []byte(credential)) == nil
	}
	if s.Secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.Secret), []byte(credential)) == 1
}
