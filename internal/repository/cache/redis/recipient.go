package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/repository/cache"
	"github.com/redis/go-redis/v9"
)

var _ cache.RecipientCache = (*Cache)(nil)

type Cache struct {
	rdb redis.Cmdable
}

func NewCache(rdb redis.Cmdable) *Cache {
	return &Cache{
		rdb: rdb,
	}
}

func (c *Cache) Del(ctx context.Context, userID int64) error {
	return c.rdb.Del(ctx, cache.RecipientKey(userID)).Err()
}

func (c *Cache) Get(ctx context.Context, userID int64) (domain.Recipient, error) {
	key := cache.RecipientKey(userID)
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Recipient{}, cache.ErrKeyNotFound
		}
		return domain.Recipient{}, fmt.Errorf("failed to get recipient from redis %w", err)
	}

	var r domain.Recipient
	err = json.Unmarshal([]byte(val), &r)
	if err != nil {
		return domain.Recipient{}, fmt.Errorf("failed to unmarshal recipient data %w", err)
	}
	return r, nil
}

func (c *Cache) Set(ctx context.Context, r domain.Recipient) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal recipient data %w", err)
	}

	err = c.rdb.Set(ctx, cache.RecipientKey(r.UserID), data, cache.DefaultExpiredTime).Err()
	if err != nil {
		return fmt.Errorf("failed to set recipient to redis %w", err)
	}
	return nil
}
