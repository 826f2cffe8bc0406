package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis implementa el almacén de caché sobre go-redis, para despliegues
// con más de una instancia del servicio.
type Redis struct {
	client *redis.Client
}

// NewRedis conecta a Redis a partir de una URL redis:// y verifica la
// conexión con un ping.
func NewRedis(ctx context.Context, url string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("cache: URL de redis inválida: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: conectando a redis: %w", err)
	}
	return &Redis{client: client}, nil
}

// Get devuelve el valor cacheado; una clave ausente no es un error.
func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return value, value != ""
}

// Set escribe el valor con su TTL.
func (r *Redis) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache: escribiendo %s: %w", key, err)
	}
	return nil
}

// Close libera la conexión.
func (r *Redis) Close() error {
	return r.client.Close()
}
