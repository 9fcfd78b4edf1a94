package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache — camada fina de cache em Redis com serialização JSON.
// Instância nil é válida e vira no-op (Redis é opcional no deploy).
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// ErrMiss é devolvido quando a chave não existe (ou o cache está desligado).
var ErrMiss = redis.Nil

func New(addr, password string, ttlSeconds int) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		ttl: time.Duration(ttlSeconds) * time.Second,
	}
}

func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	if c == nil {
		return ErrMiss
	}
	str, err := c.client.Get(ctx, key).Result()
	if err != nil {
		// redis.Nil quando a chave não existe
		return err
	}
	return json.Unmarshal([]byte(str), dest)
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	if c == nil {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, c.ttl).Err()
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, key).Err()
}
