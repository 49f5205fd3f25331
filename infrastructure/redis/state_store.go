package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"phototagger/pkg/config"
)

const statePrefix = "oauth:state:"

var ErrStateNotFound = errors.New("oauth state not found or already used")

// NewClient connects to Redis. A nil client is returned with the error when
// the server is unreachable; callers fall back to the in-memory store.
func NewClient(cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// StateStore issues single-use anti-CSRF state tokens for the OAuth consent
// flow. Each token lives for the TTL and is consumed on first read.
type StateStore interface {
	Issue(ctx context.Context, ttl time.Duration) (string, error)
	Consume(ctx context.Context, state string) error
}

type RedisStateStore struct {
	client *goredis.Client
}

func NewRedisStateStore(client *goredis.Client) *RedisStateStore {
	return &RedisStateStore{client: client}
}

func newStateToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (s *RedisStateStore) Issue(ctx context.Context, ttl time.Duration) (string, error) {
	state, err := newStateToken()
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, statePrefix+state, "1", ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to save oauth state: %w", err)
	}
	return state, nil
}

func (s *RedisStateStore) Consume(ctx context.Context, state string) error {
	// GetDel makes the token single-use even under concurrent callbacks.
	err := s.client.GetDel(ctx, statePrefix+state).Err()
	if errors.Is(err, goredis.Nil) {
		return ErrStateNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to consume oauth state: %w", err)
	}
	return nil
}

// MemoryStateStore is the fallback when Redis is unavailable. States do not
// survive a restart, which only forces a re-login.
type MemoryStateStore struct {
	mu     sync.Mutex
	states map[string]time.Time
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{states: make(map[string]time.Time)}
}

func (s *MemoryStateStore) Issue(ctx context.Context, ttl time.Duration) (string, error) {
	state, err := newStateToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for k, expiry := range s.states {
		if expiry.Before(now) {
			delete(s.states, k)
		}
	}
	s.states[state] = now.Add(ttl)

	return state, nil
}

func (s *MemoryStateStore) Consume(ctx context.Context, state string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.states[state]
	if !ok {
		return ErrStateNotFound
	}
	delete(s.states, state)

	if expiry.Before(time.Now()) {
		return ErrStateNotFound
	}
	return nil
}
