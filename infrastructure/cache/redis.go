package cache

//go:generate mockgen -source=redis.go -destination=mocks/cache.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/app-store-api/internal/config"
	"github.com/vfg2006/app-store-api/internal/domain"
)

// RoleCache guarda por pouco tempo o perfil atual de cada usuário
type RoleCache interface {
	GetRole(ctx context.Context, userID int) (domain.Role, bool, error)
	SetRole(ctx context.Context, userID int, role domain.Role, ttl time.Duration) error
	DeleteRole(ctx context.Context, userID int) error
}

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(cfg config.Redis) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func roleKey(userID int) string {
	return fmt.Sprintf("appstore:user:%d:role", userID)
}

func (c *RedisCache) GetRole(ctx context.Context, userID int) (domain.Role, bool, error) {
	val, err := c.client.Get(ctx, roleKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return domain.Role(val), true, nil
}

func (c *RedisCache) SetRole(ctx context.Context, userID int, role domain.Role, ttl time.Duration) error {
	return c.client.Set(ctx, roleKey(userID), string(role), ttl).Err()
}

func (c *RedisCache) DeleteRole(ctx context.Context, userID int) error {
	return c.client.Del(ctx, roleKey(userID)).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
