package redis

import (
	"context"
	"testing"
	"time"

	"lidio-service/internal/pkg/exceptions"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestRedisRepositoryCommandFailures(t *testing.T) {
	client := unreachableClient()
	defer client.Close()
	repo := NewRedisRepository(client)
	ctx := context.Background()

	t.Run("TrySetNX", func(t *testing.T) {
		acquired, err := repo.TrySetNX(ctx, "lidio:notification:abc", "ORD-1", time.Minute)
		require.Error(t, err)
		assert.False(t, acquired)

		customErr, ok := exceptions.AsCustomError(err)
		require.True(t, ok)
		assert.Equal(t, 500, customErr.StatusCode)
	})

	t.Run("Get", func(t *testing.T) {
		_, err := repo.Get(ctx, "missing")
		assert.Error(t, err)
	})

	t.Run("unmarshalable value", func(t *testing.T) {
		err := repo.Set(ctx, "key", make(chan int), time.Minute)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "marshal")
	})
}
