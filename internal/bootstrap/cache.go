package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/QuestBoard_Go/internal/cache"
	"github.com/osse101/QuestBoard_Go/internal/config"
)

// NewCache builds the configured cache backend. The returned close function
// releases its connections and is never nil.
func NewCache(ctx context.Context, cfg *config.Config, clock clockwork.Clock) (cache.Cache, func() error, error) {
	if cfg.CacheType == config.CacheTypeRedis {
		r, err := cache.NewRedis(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf(ErrMsgConnectCache, err)
		}
		slog.Info(LogMsgCacheSelected, "type", config.CacheTypeRedis, "addr", cfg.RedisAddr)
		return r, r.Close, nil
	}

	slog.Info(LogMsgCacheSelected, "type", config.CacheTypeMemory)
	return cache.NewMemory(cache.DefaultMemorySize, clock), func() error { return nil }, nil
}
