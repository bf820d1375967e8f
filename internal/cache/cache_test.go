package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClient_Disabled(t *testing.T) {
	var c *Client
	ctx := context.Background()

	assert.ErrorIs(t, c.Ping(ctx), ErrDisabled)
	assert.ErrorIs(t, c.Set(ctx, "k", []byte("v"), time.Minute), ErrDisabled)
	_, err := c.Take(ctx, "k")
	assert.ErrorIs(t, err, ErrDisabled)
	assert.NoError(t, c.Close())
}

func TestClient_UnreachableRedisReportsErrors(t *testing.T) {
	c := New("127.0.0.1:1", "", 0, "kanban:")
	t.Cleanup(func() { _ = c.Close() })
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.Error(t, c.Ping(ctx))
	assert.Error(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	v, err := c.Take(ctx, "k")
	assert.Error(t, err)
	assert.Nil(t, v)
}

func TestClient_Key(t *testing.T) {
	c := New("127.0.0.1:1", "", 0, "kanban:")
	t.Cleanup(func() { _ = c.Close() })
	assert.Equal(t, "kanban:oauth_state:abc", c.key("oauth_state:abc"))
}
