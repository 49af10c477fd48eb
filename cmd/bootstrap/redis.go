package bootstrap

import (
	"context"
	"log/slog"

	"chargeway/internal/infra/cache"
	"chargeway/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewStationCache,
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return rdb
}

func NewStationCache(rdb *redis.Client, cfg config.Config, logger *slog.Logger) *cache.StationCache {
	return cache.NewStationCache(rdb, cfg.Redis.TTL, logger)
}
