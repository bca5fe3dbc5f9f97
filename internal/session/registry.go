package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

// Session is a server-held record proving a user authenticated, referenced
// by an opaque token.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	Scopes    []string  `json:"scopes"`
}

// Registry owns token minting and expiry checks. A token is live for a fixed
// TTL from issue; there is no refresh path.
type Registry interface {
	// Issue mints a token unique among live tokens and returns the recorded
	// session, deadline included, so callers never recompute the expiry.
	Issue(ctx context.Context, userID string, scopes []string) (*Session, error)
	// Validate returns the session for a live token, or nil for an unknown
	// or expired one. Expired entries are evicted on access.
	Validate(ctx context.Context, token string) (*Session, error)
	// Revoke removes the entry; unknown tokens are a no-op.
	Revoke(ctx context.Context, token string) error
}

// generateToken produces an opaque 256-bit token.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session: failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
