package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedisService_Get(t *testing.T) {
	t.Run("Miss", func(t *testing.T) {
		cache := &fakeRedisClient{}
		svc := NewRedisService(cache, silentLogger())

		_, found := svc.Get(context.Background(), "user:term:missing")
		require.False(t, found)
	})

	t.Run("Hit", func(t *testing.T) {
		cache := &fakeRedisClient{
			getFunc: func(ctx context.Context, key string) *redis.StringCmd {
				cmd := redis.NewStringCmd(ctx)
				cmd.SetVal(`{"data":{}}`)
				return cmd
			},
		}
		svc := NewRedisService(cache, silentLogger())

		payload, found := svc.Get(context.Background(), "user:term:hit")
		require.True(t, found)
		require.Equal(t, `{"data":{}}`, payload)
	})

	t.Run("BackendErrorReadsAsMiss", func(t *testing.T) {
		cache := &fakeRedisClient{
			getFunc: func(ctx context.Context, key string) *redis.StringCmd {
				cmd := redis.NewStringCmd(ctx)
				cmd.SetErr(errors.New("connection refused"))
				return cmd
			},
		}
		svc := NewRedisService(cache, silentLogger())

		_, found := svc.Get(context.Background(), "user:term:down")
		require.False(t, found)
	})
}

func TestRedisService_Set_ReturnsMarshaledPayload(t *testing.T) {
	cache := &fakeRedisClient{}
	svc := NewRedisService(cache, silentLogger())

	payload, err := svc.Set(context.Background(), "user:term:alice", map[string]string{"name": "Alice"}, time.Minute)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"Alice"}`, payload)
	require.Equal(t, []string{"user:term:alice"}, cache.sets)
}

func TestRedisService_Set_WriteFailureKeepsPayload(t *testing.T) {
	cache := &fakeRedisClient{setErr: errors.New("connection refused")}
	svc := NewRedisService(cache, silentLogger())

	payload, err := svc.Set(context.Background(), "user:term:alice", map[string]string{"name": "Alice"}, time.Minute)
	require.Error(t, err)
	require.JSONEq(t, `{"name":"Alice"}`, payload)
}

func TestRedisService_Delete(t *testing.T) {
	cache := &fakeRedisClient{}
	svc := NewRedisService(cache, silentLogger())

	svc.Delete(context.Background(), "a", "b")
	require.Equal(t, []string{"a", "b"}, cache.dels)
}
