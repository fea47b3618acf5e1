package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/daggerheart-wizard/internal/redis"
)

func TestNewClient(t *testing.T) {
	t.Run("requires an endpoint", func(t *testing.T) {
		_, err := redis.NewClient("", nil)
		assert.Error(t, err)
	})

	t.Run("pings a live server", func(t *testing.T) {
		mr := miniredis.RunT(t)

		client, err := redis.NewClient(mr.Addr(), &redis.Options{DB: 0})
		require.NoError(t, err)
		defer func() { _ = client.Close() }()

		assert.NoError(t, redis.Ping(context.Background(), client, time.Second))
	})

	t.Run("wrong password fails the ping", func(t *testing.T) {
		mr := miniredis.RunT(t)
		mr.RequireAuth("secret")

		client, err := redis.NewClient(mr.Addr(), &redis.Options{Password: "nope"})
		require.NoError(t, err)
		defer func() { _ = client.Close() }()

		assert.Error(t, redis.Ping(context.Background(), client, time.Second))
	})
}
