package service

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// redisClient is the subset of *redis.Client the cache needs; tests swap in
// a fake.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type RedisService struct {
	client redisClient
	logger *logrus.Logger
	tracer trace.Tracer
}

func NewRedisService(client redisClient, logger *logrus.Logger) *RedisService {
	return &RedisService{client, logger, otel.Tracer("RedisService")}
}

// Get retrieves a string JSON value from Redis result.
func (r *RedisService) Get(ctx context.Context, key string) (string, bool) {
	spanCtx, span := r.tracer.Start(ctx, "RedisService.Get")
	defer span.End()

	logger := r.logger.WithContext(spanCtx)

	cached, err := r.client.Get(spanCtx, key).Result()
	if err == redis.Nil {
		// Cache miss
		return "", false
	}

	if err != nil {
		// Redis error, fall back to the database path
		logger.WithError(err).Error("Redis get error")
		return "", false
	}

	logger.WithField("key", key).Info("Redis cache hit")
	return cached, true
}

// Set marshals value to JSON and stores it in Redis with TTL.
func (r *RedisService) Set(ctx context.Context, key string, data interface{}, ttl time.Duration) (string, error) {
	spanCtx, span := r.tracer.Start(ctx, "RedisService.Set")
	defer span.End()

	logger := r.logger.WithContext(spanCtx)

	payload, err := json.Marshal(data)
	if err != nil {
		logger.WithError(err).Warn("Failed to marshal cache payload")
		return "", err
	}
	// A failed write must not cost the caller the payload it asked to cache,
	// so it is returned alongside the error.
	if err := r.client.Set(spanCtx, key, payload, ttl).Err(); err != nil {
		logger.WithError(err).Error("Failed to store data to redis")
		return string(payload), err
	}

	return string(payload), nil
}

// Delete drops keys from the cache, best effort.
func (r *RedisService) Delete(ctx context.Context, keys ...string) {
	spanCtx, span := r.tracer.Start(ctx, "RedisService.Delete")
	defer span.End()

	if err := r.client.Del(spanCtx, keys...).Err(); err != nil {
		r.logger.WithContext(spanCtx).WithError(err).Warn("Failed to drop cache keys")
	}
}
