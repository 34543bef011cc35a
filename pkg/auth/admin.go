package auth

import (
	"crypto/subtle"
	"sync/atomic"
)

// AdminSecretHeader carries the shared secret on admin requests
const AdminSecretHeader = "X-Admin-Secret"

// AdminSecret holds the shared admin secret. It can be swapped at runtime
// when configuration is reloaded.
type AdminSecret struct {
	value atomic.Pointer[string]
}

// NewAdminSecret creates a holder initialised with secret
func NewAdminSecret(secret string) *AdminSecret {
	s := &AdminSecret{}
	s.Set(secret)
	return s
}

// Set replaces the secret
func (s *AdminSecret) Set(secret string) {
	s.value.Store(&secret)
}

// Verify reports whether presented matches the configured secret. An empty
// configured secret never matches, so a missing ADMIN_SECRET locks admin
// endpoints instead of opening them.
func (s *AdminSecret) Verify(presented string) bool {
	expected := *s.value.Load()
	if expected == "" || presented == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(presented)) == 1
}
