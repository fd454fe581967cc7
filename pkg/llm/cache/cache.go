// Package cache memoises LLM replies so that re-processing an unchanged
// resume does not pay for a second model call.
package cache

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Vijaybattula26/gemini-ats/pkg/llm"
)

// Store is the key/value backend of the cache.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// RedisStore keeps replies in Redis.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore parses url and checks connectivity.
func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{rdb: rdb}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, value, ttl).Err()
}

// Ping is used by the readiness checker.
func (s *RedisStore) Ping(ctx context.Context) error { return s.rdb.Ping(ctx).Err() }

func (s *RedisStore) Close() error { return s.rdb.Close() }

// ChatModel wraps another model and serves repeated prompts from Store.
// Cache failures never fail the call.
type ChatModel struct {
	next      llm.ChatModel
	store     Store
	namespace string
	ttl       time.Duration
	log       *slog.Logger
}

// Wrap returns next decorated with the cache. namespace separates models.
func Wrap(next llm.ChatModel, store Store, namespace string, ttl time.Duration, logger *slog.Logger) *ChatModel {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatModel{next: next, store: store, namespace: namespace, ttl: ttl, log: logger}
}

// Key builds the deterministic cache key of a prompt pair.
func Key(namespace, systemPrompt, userPrompt string) string {
	h := sha256.New()
	h.Write([]byte(systemPrompt))
	h.Write([]byte{0})
	h.Write([]byte(userPrompt))
	return fmt.Sprintf("ats:llm:%s:%x", namespace, h.Sum(nil))
}

func (c *ChatModel) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	key := Key(c.namespace, systemPrompt, userPrompt)
	if v, ok, err := c.store.Get(ctx, key); err != nil {
		c.log.Warn("llm cache: get failed", slog.Any("err", err))
	} else if ok {
		c.log.Debug("llm cache: hit", slog.String("key", key))
		return v, nil
	}

	reply, err := c.next.Ask(ctx, systemPrompt, userPrompt)
	if err != nil {
		return "", err
	}
	if err := c.store.Set(ctx, key, reply, c.ttl); err != nil {
		c.log.Warn("llm cache: set failed", slog.Any("err", err))
	}
	return reply, nil
}
