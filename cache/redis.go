package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const keyPrefix = "page:"

// Redis backs the page cache with a shared redis instance so a multi-process
// deploy serves one coherent cache.
type Redis struct {
	client *redis.Client
}

func NewRedis(addr, password string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &Redis{client: client}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (*Entry, bool) {
	raw, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("dropping undecodable cache entry")
		return nil, false
	}
	return &entry, true
}

func (r *Redis) Set(ctx context.Context, key string, entry Entry, ttl time.Duration) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, keyPrefix+key, raw, ttl).Err()
}

func (r *Redis) Flush(ctx context.Context) error {
	keys, err := r.client.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}
