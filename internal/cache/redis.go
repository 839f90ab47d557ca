// Package cache реализует storage.Storage поверх Redis, чтобы снимки сессии
// и подписки переживали перезапуск и были доступны нескольким репликам.
package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/config"
)

type Cache struct {
	Db     *redis.Client
	prefix string
}

func InitServer(ctx context.Context, cfg config.RedisConnection) (*Cache, error) {
	const op = "cache.InitServer"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Cache{Db: db, prefix: cfg.KeyPrefix}, nil
}

// Save записывает значение без срока жизни: снимок живёт, пока его не перезапишут.
func (c *Cache) Save(ctx context.Context, key string, value []byte) error {
	const op = "cache.Save"
	if err := c.Db.Set(ctx, c.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Cache) Load(ctx context.Context, key string) ([]byte, bool, error) {
	const op = "cache.Load"
	val, err := c.Db.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return val, true, nil
}

func (c *Cache) Invalidate(ctx context.Context, key string) error {
	return c.Db.Del(ctx, c.prefix+key).Err()
}

func (c *Cache) Close() error {
	return c.Db.Close()
}
