package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sachin22-web/sachin-portfolio/internal/domain/content"
)

const contentCacheTTL = 10 * time.Minute

type redisContentCache struct {
	rdb *redis.Client
}

func NewRedisContentCache(rdb *redis.Client) content.Cache {
	return &redisContentCache{rdb: rdb}
}

func cacheKey(key content.SectionKey) string {
	return "content:section:" + string(key)
}

func (c *redisContentCache) Get(ctx context.Context, key content.SectionKey) (*content.Section, bool, error) {
	data, err := c.rdb.Get(ctx, cacheKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var section content.Section
	if err := json.Unmarshal(data, &section); err != nil {
		// poisoned entry, drop it and treat as a miss
		c.rdb.Del(ctx, cacheKey(key))
		return nil, false, nil
	}
	return &section, true, nil
}

func (c *redisContentCache) Set(ctx context.Context, section *content.Section) error {
	data, err := json.Marshal(section)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, cacheKey(section.Key), data, contentCacheTTL).Err()
}

func (c *redisContentCache) Invalidate(ctx context.Context, key content.SectionKey) error {
	return c.rdb.Del(ctx, cacheKey(key)).Err()
}
