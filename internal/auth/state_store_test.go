package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanban/internal/cache"
)

func TestRedisStateStore_WithoutRedis(t *testing.T) {
	store := NewStateStore(nil)
	ctx := context.Background()

	state, err := store.Issue(ctx)
	assert.ErrorIs(t, err, cache.ErrDisabled)
	assert.Empty(t, state)

	ok, err := store.Consume(ctx, "some-state")
	assert.ErrorIs(t, err, cache.ErrDisabled)
	assert.False(t, ok)
}

func TestRedisStateStore_UnreachableRedis(t *testing.T) {
	client := cache.New("127.0.0.1:1", "", 0, "kanban:")
	t.Cleanup(func() { _ = client.Close() })
	store := NewStateStore(client)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	state, err := store.Issue(ctx)
	assert.Error(t, err)
	assert.Empty(t, state)

	ok, err := store.Consume(ctx, "e728f0c2")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRedisStateStore_EmptyState(t *testing.T) {
	ok, err := NewStateStore(nil).Consume(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
}
