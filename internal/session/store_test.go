package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/config"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/session"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/pkg/cache"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, client
}

func riderSession() session.Session {
	return session.Session{
		Token:     "tok-1",
		Role:      entities.RoleRider,
		UserID:    9,
		RiderID:   9,
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save and get", func(t *testing.T) {
		mr, client := setupRedis(t)
		store := session.NewRedisStore(client, time.Hour)

		require.NoError(t, store.Save(ctx, riderSession()))

		got, err := store.Get(ctx, "tok-1")
		require.NoError(t, err)
		assert.Equal(t, riderSession(), got)

		assert.True(t, mr.Exists("lastmile:session:tok-1"))
		assert.Equal(t, time.Hour, mr.TTL("lastmile:session:tok-1"))
	})

	t.Run("unknown token", func(t *testing.T) {
		_, client := setupRedis(t)
		store := session.NewRedisStore(client, time.Hour)

		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, entities.ErrUnauthorized)
	})

	t.Run("expired session", func(t *testing.T) {
		mr, client := setupRedis(t)
		store := session.NewRedisStore(client, time.Minute)

		require.NoError(t, store.Save(ctx, riderSession()))
		mr.FastForward(2 * time.Minute)

		_, err := store.Get(ctx, "tok-1")
		assert.ErrorIs(t, err, entities.ErrUnauthorized)
	})

	t.Run("delete", func(t *testing.T) {
		mr, client := setupRedis(t)
		store := session.NewRedisStore(client, time.Hour)

		require.NoError(t, store.Save(ctx, riderSession()))
		require.NoError(t, store.Delete(ctx, "tok-1"))

		assert.False(t, mr.Exists("lastmile:session:tok-1"))
		_, err := store.Get(ctx, "tok-1")
		assert.ErrorIs(t, err, entities.ErrUnauthorized)
	})

	t.Run("corrupt value", func(t *testing.T) {
		mr, client := setupRedis(t)
		store := session.NewRedisStore(client, time.Hour)

		require.NoError(t, mr.Set("lastmile:session:bad", "{not json"))

		_, err := store.Get(ctx, "bad")
		require.Error(t, err)
		assert.NotErrorIs(t, err, entities.ErrUnauthorized)
	})

	t.Run("server down", func(t *testing.T) {
		mr, client := setupRedis(t)
		store := session.NewRedisStore(client, time.Hour)
		mr.Close()

		_, err := store.Get(ctx, "tok-1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, entities.ErrUnauthorized)
	})
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := session.NewRedisClient(context.Background(), config.Redis{Addr: mr.Addr()})
	require.NoError(t, err)
	client.Close()

	mr.Close()
	_, err = session.NewRedisClient(context.Background(), config.Redis{Addr: mr.Addr()})
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore(cache.NewLRUCache[session.Session](10, time.Hour))

	_, err := store.Get(ctx, "tok-1")
	assert.ErrorIs(t, err, entities.ErrUnauthorized)

	require.NoError(t, store.Save(ctx, riderSession()))
	got, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, riderSession(), got)

	require.NoError(t, store.Delete(ctx, "tok-1"))
	_, err = store.Get(ctx, "tok-1")
	assert.ErrorIs(t, err, entities.ErrUnauthorized)
}
