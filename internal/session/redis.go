package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mlipatova/airgate/config"
)

// RedisRegistry stores sessions under a per-token key with a native TTL, so
// expiry needs no sweep at all. Drop-in alternative to MemoryRegistry for
// running more than one API instance.
type RedisRegistry struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRegistry(cfg config.RedisConfig, ttl time.Duration) *RedisRegistry {
	return &RedisRegistry{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (r *RedisRegistry) Issue(ctx context.Context, userID string, scopes []string) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	s := Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(r.ttl),
		Scopes:    scopes,
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("session: failed to marshal: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(token), payload, r.ttl).Err(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *RedisRegistry) Validate(ctx context.Context, token string) (*Session, error) {
	data, err := r.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("session: failed to unmarshal: %w", err)
	}
	return &s, nil
}

func (r *RedisRegistry) Revoke(ctx context.Context, token string) error {
	return r.client.Del(ctx, sessionKey(token)).Err()
}

var _ Registry = (*RedisRegistry)(nil)
