package auth

import (
	"crypto/subtle"
	"errors"
	"strings"
)

// ErrUnauthorized is returned for any credential failure. It names the
// expected scheme so callers can retry correctly, and nothing else: neither
// the presented token nor the configured secret ever appears in an error.
var ErrUnauthorized = errors.New("unauthorized: bearer authentication required")

// Authenticator checks presented bearer credentials against a single static
// secret. The secret is fixed at construction and never mutated, so a single
// Authenticator is safe for concurrent use across requests.
type Authenticator struct {
	secret string
}

func New(secret string) *Authenticator {
	return &Authenticator{secret: secret}
}

// Authenticate verifies the raw Authorization header value. An empty
// configured secret rejects every request (fail-closed, never fail-open).
func (a *Authenticator) Authenticate(authorization string) error {
	if a.secret == "" {
		return ErrUnauthorized
	}
	token, ok := parseBearer(authorization)
	if !ok {
		return ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(a.secret)) != 1 {
		return ErrUnauthorized
	}
	return nil
}

func parseBearer(authorization string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(strings.TrimSpace(authorization), prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(authorization), prefix))
	if token == "" {
		return "", false
	}
	return token, true
}
