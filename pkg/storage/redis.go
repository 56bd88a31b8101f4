// Package storage provides the Redis-backed model store. Models are kept in
// two Redis hashes per model name, one per class, so a trained model can be
// shared between machines without shipping JSON files around.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hamsieve/spam-classifier/pkg/classifier"
	"github.com/hamsieve/spam-classifier/pkg/freq"
)

// ErrModelNotFound is returned by LoadModel when neither class hash exists.
var ErrModelNotFound = errors.New("model not found in redis")

// RedisConfig holds Redis store configuration.
type RedisConfig struct {
	RedisURL    string `json:"redis_url" yaml:"redis_url"`
	KeyPrefix   string `json:"key_prefix" yaml:"key_prefix"`
	DatabaseNum int    `json:"database_num" yaml:"database_num"`
	BatchSize   int    `json:"batch_size" yaml:"batch_size"`
}

// DefaultRedisConfig returns default Redis store configuration.
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		RedisURL:    "redis://localhost:6379",
		KeyPrefix:   "hamsieve:model",
		DatabaseNum: 0,
		BatchSize:   500,
	}
}

// RedisStore persists classifier models in Redis.
type RedisStore struct {
	client *redis.Client
	config *RedisConfig
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(config *RedisConfig) (*RedisStore, error) {
	if config == nil {
		config = DefaultRedisConfig()
	}

	opt, err := redis.ParseURL(config.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %v", err)
	}
	opt.DB = config.DatabaseNum
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("Redis connection failed: %v", err)
	}

	return &RedisStore{client: client, config: config}, nil
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) classKey(name, class string) string {
	return fmt.Sprintf("%s:%s:%s", s.config.KeyPrefix, name, class)
}

// SaveModel stores the model under name, replacing any previous version.
func (s *RedisStore) SaveModel(ctx context.Context, name string, m *classifier.Model) error {
	if err := s.saveClass(ctx, s.classKey(name, "ham"), m.Ham()); err != nil {
		return err
	}
	return s.saveClass(ctx, s.classKey(name, "spam"), m.Spam())
}

func (s *RedisStore) saveClass(ctx context.Context, key string, fm *freq.Map) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)

	batchSize := s.config.BatchSize
	if batchSize <= 0 {
		batchSize = 500
	}

	batch := make([]interface{}, 0, 2*batchSize)
	flush := func() {
		if len(batch) > 0 {
			// The pipeline keeps a reference to the args until Exec, so
			// each batch needs its own slice.
			pipe.HSet(ctx, key, batch...)
			batch = make([]interface{}, 0, 2*batchSize)
		}
	}

	fm.Each(func(word string, count int64) {
		batch = append(batch, word, count)
		if len(batch) >= 2*batchSize {
			flush()
		}
	})
	flush()

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save model class %s: %v", key, err)
	}
	return nil
}

// LoadModel reads the model stored under name. A missing model yields
// ErrModelNotFound; corrupt counts yield a parse error. No partial model is
// ever returned.
func (s *RedisStore) LoadModel(ctx context.Context, name string) (*classifier.Model, error) {
	ham, err := s.loadClass(ctx, s.classKey(name, "ham"))
	if err != nil {
		return nil, err
	}
	spam, err := s.loadClass(ctx, s.classKey(name, "spam"))
	if err != nil {
		return nil, err
	}
	if ham.Len() == 0 && spam.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}
	return classifier.FromMaps(ham, spam), nil
}

func (s *RedisStore) loadClass(ctx context.Context, key string) (*freq.Map, error) {
	fields, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load model class %s: %v", key, err)
	}

	counts := make(map[string]int64, len(fields))
	for word, raw := range fields {
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt count for word %q in %s: %v", word, key, err)
		}
		counts[word] = count
	}

	fm, err := freq.FromCounts(counts)
	if err != nil {
		return nil, fmt.Errorf("malformed model class %s: %v", key, err)
	}
	return fm, nil
}

// DeleteModel removes the model stored under name.
func (s *RedisStore) DeleteModel(ctx context.Context, name string) error {
	keys := []string{s.classKey(name, "ham"), s.classKey(name, "spam")}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete model %s: %v", name, err)
	}
	return nil
}
