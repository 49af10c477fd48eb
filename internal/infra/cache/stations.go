package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"chargeway/internal/upstream"

	"github.com/redis/go-redis/v9"
)

const (
	stationListKey   = "stations:all"
	stationKeyFormat = "stations:%d"
)

// StationCache keeps upstream station data in redis for a short TTL. Station
// inventory changes rarely and every booking screen re-reads it; a cache miss
// or redis outage silently falls through to the upstream.
type StationCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewStationCache(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *StationCache {
	return &StationCache{rdb: rdb, ttl: ttl, logger: logger}
}

func (c *StationCache) GetAll(ctx context.Context) ([]upstream.Station, bool) {
	raw, err := c.rdb.Get(ctx, stationListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("station cache read failed", "error", err)
		}
		return nil, false
	}

	var stations []upstream.Station
	if err := json.Unmarshal(raw, &stations); err != nil {
		c.logger.Warn("station cache entry corrupt, dropping", "error", err)
		c.rdb.Del(ctx, stationListKey)
		return nil, false
	}
	return stations, true
}

func (c *StationCache) SetAll(ctx context.Context, stations []upstream.Station) {
	raw, err := json.Marshal(stations)
	if err != nil {
		c.logger.Warn("station cache encode failed", "error", err)
		return
	}
	if err := c.rdb.Set(ctx, stationListKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("station cache write failed", "error", err)
	}
}

func (c *StationCache) Get(ctx context.Context, id int64) (*upstream.Station, bool) {
	raw, err := c.rdb.Get(ctx, stationKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("station cache read failed", "station_id", id, "error", err)
		}
		return nil, false
	}

	var station upstream.Station
	if err := json.Unmarshal(raw, &station); err != nil {
		c.logger.Warn("station cache entry corrupt, dropping", "station_id", id, "error", err)
		c.rdb.Del(ctx, stationKey(id))
		return nil, false
	}
	return &station, true
}

func (c *StationCache) Set(ctx context.Context, station *upstream.Station) {
	raw, err := json.Marshal(station)
	if err != nil {
		c.logger.Warn("station cache encode failed", "station_id", station.ID, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, stationKey(station.ID), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("station cache write failed", "station_id", station.ID, "error", err)
	}
}

func stationKey(id int64) string {
	return fmt.Sprintf(stationKeyFormat, id)
}
