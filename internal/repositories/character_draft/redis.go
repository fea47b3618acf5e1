package characterdraft

import (
	"context"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
	redisclient "github.com/KirkDiggler/daggerheart-wizard/internal/redis"
)

const draftKeyPrefix = "wizard:"

// RedisConfig configures the redis backend
type RedisConfig struct {
	Client redisclient.Client
	Key    string

	// TTL expires an abandoned draft. Zero keeps it forever.
	TTL time.Duration
}

// Validate validates the config
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("client")
	}
	if c.Key == "" {
		vb.Field("key", errKeyEmpty)
	}
	if c.TTL < 0 {
		vb.Field("ttl", "must not be negative")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	key    string
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis-backed draft repository
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("redis config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid redis draft config")
	}

	return &redisRepository{
		client: cfg.Client,
		key:    draftKeyPrefix + cfg.Key,
		ttl:    cfg.TTL,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, _ GetInput) (*GetOutput, error) {
	result, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no draft stored at %s", r.key)
		}
		return nil, errors.Wrapf(err, "failed to get draft")
	}

	return decode(result)
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	data, err := encode(input)
	if err != nil {
		return nil, err
	}

	if err := r.client.Set(ctx, r.key, data, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save draft")
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) Delete(ctx context.Context, _ DeleteInput) (*DeleteOutput, error) {
	removed, err := r.client.Del(ctx, r.key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete draft")
	}

	return &DeleteOutput{Existed: removed > 0}, nil
}

// ScanResult reports a walk over the stored draft keys
type ScanResult struct {
	Checked    int
	Unreadable []string
}

// ScanUnreadable checks every draft key under the wizard prefix and lists
// the keys whose record no longer decodes. Nothing is deleted.
func ScanUnreadable(ctx context.Context, client redisclient.Client) (*ScanResult, error) {
	if client == nil {
		return nil, errors.InvalidArgument("redis client is required")
	}

	result := &ScanResult{}
	iter := client.Scan(ctx, 0, draftKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			if err == redis.Nil {
				// expired while scanning
				continue
			}
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}
		result.Checked++

		if _, err := daggerheart.DecodeDraftRecord(data); err != nil {
			slog.WarnContext(ctx, "unreadable draft", "key", key, "error", err)
			result.Unreadable = append(result.Unreadable, key)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan draft keys")
	}

	return result, nil
}
