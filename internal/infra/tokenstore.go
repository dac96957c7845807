package infra

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrTokenNotFound is returned by Lookup for absent or revoked tokens.
var ErrTokenNotFound = errors.New("token not found")

// TokenStore maps opaque bearer tokens to the identity they were issued to.
// Tokens carry no expiry: they stay valid until explicitly revoked.
type TokenStore interface {
	Save(ctx context.Context, token string, userID uuid.UUID) error
	Lookup(ctx context.Context, token string) (uuid.UUID, error)
	Revoke(ctx context.Context, token string) error
}

// ── Redis implementation ─────────────────────────────────────────────────────

const sessionKeyPrefix = "session:"

type redisTokenStore struct{ rdb *redis.Client }

func NewRedisTokenStore(rdb *redis.Client) TokenStore {
	return &redisTokenStore{rdb: rdb}
}

func (s *redisTokenStore) Save(ctx context.Context, token string, userID uuid.UUID) error {
	return s.rdb.HSet(ctx, sessionKeyPrefix+token,
		"user_id", userID.String(),
		"issued_at", time.Now().UTC().Format(time.RFC3339),
	).Err()
}

func (s *redisTokenStore) Lookup(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.rdb.HGet(ctx, sessionKeyPrefix+token, "user_id").Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, ErrTokenNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, ErrTokenNotFound
	}
	return id, nil
}

// Revoke deletes the session key. Deleting an absent key is a no-op, which
// makes logout idempotent.
func (s *redisTokenStore) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+token).Err()
}

// ── In-memory implementation (tests, single-process deployments) ─────────────

type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]uuid.UUID
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]uuid.UUID)}
}

func (s *MemoryTokenStore) Save(_ context.Context, token string, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = userID
	return nil
}

func (s *MemoryTokenStore) Lookup(_ context.Context, token string) (uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.tokens[token]
	if !ok {
		return uuid.Nil, ErrTokenNotFound
	}
	return id, nil
}

func (s *MemoryTokenStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}
