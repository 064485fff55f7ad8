package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/config"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/pkg/cache"
	"github.com/go-redis/redis/v8"
)

type MemoryStore struct {
	cache *cache.LRUCache[Session]
}

func NewMemoryStore(c *cache.LRUCache[Session]) *MemoryStore {
	return &MemoryStore{cache: c}
}

func (s *MemoryStore) Save(_ context.Context, sess Session) error {
	s.cache.Set(sess.Token, sess)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (Session, error) {
	sess, ok := s.cache.Get(token)
	if !ok {
		return Session{}, entities.ErrUnauthorized
	}
	return sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.cache.Delete(token)
	return nil
}

const redisKeyPrefix = "lastmile:session:"

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, sess Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return s.client.Set(ctx, redisKeyPrefix+sess.Token, data, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) (Session, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, entities.ErrUnauthorized
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to get session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, redisKeyPrefix+token).Err()
}

func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}
