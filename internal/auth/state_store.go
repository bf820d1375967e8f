package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kanban/internal/cache"
)

const (
	oauthStateKeyPrefix = "oauth_state:"
	// OAuthStateTTL bounds how long a user may take on the provider's consent screen.
	OAuthStateTTL = 10 * time.Minute
)

// StateStore issues and consumes single-use OAuth state values.
type StateStore interface {
	Issue(ctx context.Context) (string, error)
	Consume(ctx context.Context, state string) (bool, error)
}

// RedisStateStore keeps OAuth states in redis.
type RedisStateStore struct {
	cache *cache.Client
	ttl   time.Duration
}

var _ StateStore = (*RedisStateStore)(nil)

// NewStateStore creates a redis backed state store.
func NewStateStore(cache *cache.Client) *RedisStateStore {
	return &RedisStateStore{cache: cache, ttl: OAuthStateTTL}
}

// Issue stores and returns a new random state.
func (s *RedisStateStore) Issue(ctx context.Context) (string, error) {
	state := uuid.NewString()
	if err := s.cache.Set(ctx, oauthStateKeyPrefix+state, []byte("1"), s.ttl); err != nil {
		return "", fmt.Errorf("store oauth state: %w", err)
	}
	return state, nil
}

// Consume reports whether state was issued and not yet used, deleting it.
// An unreachable store is an error, never a silent miss.
func (s *RedisStateStore) Consume(ctx context.Context, state string) (bool, error) {
	if state == "" {
		return false, nil
	}
	data, err := s.cache.Take(ctx, oauthStateKeyPrefix+state)
	if err != nil {
		return false, fmt.Errorf("consume oauth state: %w", err)
	}
	return data != nil, nil
}
