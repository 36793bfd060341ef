package refdata

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		cache := NewMemoryCache()
		require.NoError(t, cache.Set(ctx, "k", "v", time.Minute))

		val, ok := cache.Get(ctx, "k")
		assert.True(t, ok)
		assert.Equal(t, "v", val)
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		cache := NewMemoryCache()
		_, ok := cache.Get(ctx, "missing")
		assert.False(t, ok)
	})

	t.Run("entries expire after the TTL", func(t *testing.T) {
		cache := NewMemoryCache()
		require.NoError(t, cache.Set(ctx, "k", "v", 10*time.Millisecond))

		time.Sleep(30 * time.Millisecond)

		_, ok := cache.Get(ctx, "k")
		assert.False(t, ok)
	})

	t.Run("zero TTL never expires", func(t *testing.T) {
		cache := NewMemoryCache()
		require.NoError(t, cache.Set(ctx, "k", "v", 0))

		time.Sleep(10 * time.Millisecond)

		_, ok := cache.Get(ctx, "k")
		assert.True(t, ok)
	})
}
