package config

import (
	"context"

	"github.com/newjenk/gridsystem/pkg/cache"
)

// OpenCache builds the backend named by Cache.Backend. noCache forces the
// null backend. The file backend quietly degrades to no caching when no
// cache directory can be determined.
func (c Config) OpenCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.Cache.Backend {
	case BackendNone:
		return cache.NewNullCache(), nil
	case BackendRedis:
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
			Prefix:   c.Redis.Prefix,
		})
	}
	dir := c.Cache.Dir
	if dir == "" {
		d, err := CacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		dir = d
	}
	return cache.NewFileCache(dir)
}

// Keyer returns the cache keyer for Cache.Namespace, or nil for the
// runner's default.
func (c Config) Keyer() cache.Keyer {
	if c.Cache.Namespace == "" {
		return nil
	}
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), c.Cache.Namespace+":")
}
