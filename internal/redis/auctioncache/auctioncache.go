package auctioncache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"auctionhub/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "auction:"

// ErrMiss is returned when the key is absent or the cached payload cannot
// be decoded.
var ErrMiss = errors.New("cache miss")

// Cache is a JSON read-through cache for single-auction lookups. It is a
// pure accelerator: callers treat every error short of ErrMiss as a miss too
// and fall back to the store.
type Cache struct {
	rdc *redis.Client
	ttl time.Duration
}

func New(rdc *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdc: rdc, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, id string) (models.Auction, error) {
	raw, err := c.rdc.Get(ctx, keyPrefix+id).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zap.L().Debug("auction_cache_get", zap.String("id", id), zap.Error(err))
		}
		return models.Auction{}, ErrMiss
	}
	var a models.Auction
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		zap.L().Debug("auction_cache_decode", zap.String("id", id), zap.Error(err))
		return models.Auction{}, ErrMiss
	}
	return a, nil
}

func (c *Cache) Set(ctx context.Context, a models.Auction) {
	raw, err := json.Marshal(a)
	if err != nil {
		return
	}
	if err := c.rdc.Set(ctx, keyPrefix+a.ID.Hex(), raw, c.ttl).Err(); err != nil {
		zap.L().Debug("auction_cache_set", zap.String("id", a.ID.Hex()), zap.Error(err))
	}
}

// Invalidate drops the cached entry after a mutation.
func (c *Cache) Invalidate(ctx context.Context, id string) {
	if err := c.rdc.Del(ctx, keyPrefix+id).Err(); err != nil {
		zap.L().Debug("auction_cache_del", zap.String("id", id), zap.Error(err))
	}
}
