package markup

import (
	"context"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/encyclopedia/sys"
)

const htmlKey = "entries.html.%s"

// Find returns the cached html for key. Cache failures are logged and reported as a miss.
func Find(ctx context.Context, key string) (string, bool) {
	cache := sys.R.Cache
	if cache == nil {
		return "", false
	}
	logger := sys.R.Log

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	get, err := cache.Get(tcCtx, cacheKey(key)).Result()
	if err != nil && err != redis.Nil {
		logger.Error("failure to get html ", key, " from cache: ", err.Error())
	}
	if get == "" {
		return "", false
	}
	return get, true
}

// Store caches html for key with the configured TTL
func Store(ctx context.Context, key, html string) {
	cache := sys.R.Cache
	if cache == nil {
		return
	}
	logger := sys.R.Log

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := cache.Set(tcCtx, cacheKey(key), html, sys.Configs.Cache.CacheTTL).Err(); err != nil {
		logger.Error("failure to set html ", key, " into cache: ", err.Error())
	}
}
