package session

import (
	"context"
	"sync"
	"time"
)

// MemoryRegistry keeps sessions in a process-local map. Expiry is lazy:
// entries are evicted on the first Validate at or past their deadline. Sweep
// exists for callers that want a bounded map without waiting for access.
type MemoryRegistry struct {
	mu       sync.Mutex
	sessions map[string]Session
	ttl      time.Duration
	now      func() time.Time
}

type MemoryRegistryOption func(*MemoryRegistry)

// WithClock overrides the time source, used by tests to step past expiry.
func WithClock(now func() time.Time) MemoryRegistryOption {
	return func(r *MemoryRegistry) {
		r.now = now
	}
}

func NewMemoryRegistry(ttl time.Duration, opts ...MemoryRegistryOption) *MemoryRegistry {
	r := &MemoryRegistry{
		sessions: make(map[string]Session),
		ttl:      ttl,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *MemoryRegistry) Issue(ctx context.Context, userID string, scopes []string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		token, err := generateToken()
		if err != nil {
			return nil, err
		}
		if _, exists := r.sessions[token]; exists {
			continue
		}
		s := Session{
			Token:     token,
			UserID:    userID,
			ExpiresAt: r.now().Add(r.ttl),
			Scopes:    scopes,
		}
		r.sessions[token] = s
		return &s, nil
	}
}

func (r *MemoryRegistry) Validate(ctx context.Context, token string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[token]
	if !ok {
		return nil, nil
	}
	if !r.now().Before(s.ExpiresAt) {
		delete(r.sessions, token)
		return nil, nil
	}
	out := s
	return &out, nil
}

func (r *MemoryRegistry) Revoke(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
	return nil
}

// Sweep evicts every expired entry and returns how many were removed.
func (r *MemoryRegistry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for token, s := range r.sessions {
		if !now.Before(s.ExpiresAt) {
			delete(r.sessions, token)
			removed++
		}
	}
	return removed
}

// Len reports the number of stored entries, expired or not.
func (r *MemoryRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

var _ Registry = (*MemoryRegistry)(nil)
