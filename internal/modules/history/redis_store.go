// README: History store backed by Redis lists (one JSON element per record).
package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "tripmate:history:"

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func redisKey(user string) (string, error) {
	k, err := Key(user)
	if err != nil {
		return "", err
	}
	return redisKeyPrefix + k, nil
}

func (s *RedisStore) Load(ctx context.Context, user string) ([]Record, error) {
	key, err := redisKey(user)
	if err != nil {
		return nil, err
	}
	items, err := s.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: lrange %s: %w", ErrStorage, key, err)
	}
	records := make([]Record, 0, len(items))
	for i, item := range items {
		var r Record
		if err := json.Unmarshal([]byte(item), &r); err != nil {
			return nil, fmt.Errorf("%w: decode %s[%d]: %w", ErrStorage, key, i, err)
		}
		records = append(records, r)
	}
	return records, nil
}

// Save swaps the whole list inside MULTI/EXEC.
func (s *RedisStore) Save(ctx context.Context, user string, records []Record) error {
	key, err := redisKey(user)
	if err != nil {
		return err
	}
	values := make([]interface{}, 0, len(records))
	for _, r := range records {
		b, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("%w: encode: %w", ErrStorage, err)
		}
		values = append(values, string(b))
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(values) > 0 {
			pipe.RPush(ctx, key, values...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: replace %s: %w", ErrStorage, key, err)
	}
	return nil
}
