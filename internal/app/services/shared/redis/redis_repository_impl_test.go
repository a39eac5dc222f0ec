package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("TrySetNX stores json and refuses a second writer", func(t *testing.T) {
		mr, client := setupTestRedis(t)
		repo := NewRedisRepository(client)

		acquired, err := repo.TrySetNX(ctx, "k", "owner-a", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)

		acquired, err = repo.TrySetNX(ctx, "k", "owner-b", time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired)

		stored, err := mr.Get("k")
		require.NoError(t, err)
		assert.Equal(t, `"owner-a"`, stored)
		assert.Equal(t, time.Minute, mr.TTL("k"))
	})

	t.Run("Get on a missing key is empty", func(t *testing.T) {
		_, client := setupTestRedis(t)
		repo := NewRedisRepository(client)

		value, err := repo.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("CompareAndDelete only removes the owned value", func(t *testing.T) {
		mr, client := setupTestRedis(t)
		repo := NewRedisRepository(client)
		_, err := repo.TrySetNX(ctx, "k", "owner-a", time.Minute)
		require.NoError(t, err)

		deleted, err := repo.CompareAndDelete(ctx, "k", "owner-b")
		require.NoError(t, err)
		assert.False(t, deleted)
		assert.True(t, mr.Exists("k"))

		deleted, err = repo.CompareAndDelete(ctx, "k", "owner-a")
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.False(t, mr.Exists("k"))
	})

	t.Run("CompareAndExpire only extends the owned value", func(t *testing.T) {
		mr, client := setupTestRedis(t)
		repo := NewRedisRepository(client)
		_, err := repo.TrySetNX(ctx, "k", "owner-a", time.Second)
		require.NoError(t, err)

		extended, err := repo.CompareAndExpire(ctx, "k", "owner-b", time.Hour)
		require.NoError(t, err)
		assert.False(t, extended)
		assert.Equal(t, time.Second, mr.TTL("k"))

		extended, err = repo.CompareAndExpire(ctx, "k", "owner-a", time.Hour)
		require.NoError(t, err)
		assert.True(t, extended)
		assert.Equal(t, time.Hour, mr.TTL("k"))
	})
}
