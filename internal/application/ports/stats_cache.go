package ports

import (
	"context"
	"time"
)

// StatsCache es el puerto hacia la caché de agregados del dashboard.
// Lo implementa cache.RedisCache. Get devuelve (nil, nil) en cache miss.
type StatsCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
