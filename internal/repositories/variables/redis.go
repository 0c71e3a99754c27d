package variables

import (
	"context"
	"fmt"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/scene-choice/internal/errors"
	redisclient "github.com/KirkDiggler/scene-choice/internal/redis"
)

const (
	// Key pattern: game_var:{id}
	variableKeyPrefix = "game_var:"

	errVariableIDInvalid = "variable ID must be positive"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for the variable store.
// Hosts that share variables across processes point every process at the
// same instance.
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Get reads the current value of a variable slot
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errVariableIDInvalid)
	}

	raw, err := r.client.Get(ctx, r.buildKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			// Unwritten slots read as zero, matching host semantics
			return &GetOutput{Value: 0}, nil
		}
		return nil, errors.Wrapf(err, "failed to get variable %d from Redis", input.ID)
	}

	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "variable %d holds a non-numeric value", input.ID)
	}

	return &GetOutput{Value: int32(value)}, nil
}

// Set writes a variable slot
func (r *redisRepository) Set(ctx context.Context, input *SetInput) (*SetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errVariableIDInvalid)
	}

	err := r.client.Set(ctx, r.buildKey(input.ID), int64(input.Value), 0).Err()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to set variable %d in Redis", input.ID)
	}

	return &SetOutput{}, nil
}

// buildKey creates the Redis key for a variable slot
func (r *redisRepository) buildKey(id int32) string {
	return fmt.Sprintf("%s%d", variableKeyPrefix, id)
}
