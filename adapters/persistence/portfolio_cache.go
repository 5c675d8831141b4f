package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/portify/portify-api/internal/domain/portfolio"
	"github.com/portify/portify-api/pkg/logger"
)

// PortfolioCache keeps the assembled section bundle of a profile in Redis,
// keyed by owner id. The profile row itself is never cached so visibility
// changes take effect on the next request.
type PortfolioCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewPortfolioCache(rdb *redis.Client, ttl time.Duration, log logger.Logger) *PortfolioCache {
	return &PortfolioCache{rdb: rdb, ttl: ttl, logger: log}
}

func cacheKey(ownerID uuid.UUID) string {
	return "portfolio:sections:" + ownerID.String()
}

// Get returns the cached bundle, or (nil, nil) on a miss. Cache failures are
// never fatal; callers fall back to the store.
func (c *PortfolioCache) Get(ctx context.Context, ownerID uuid.UUID) (*portfolio.Sections, error) {
	raw, err := c.rdb.Get(ctx, cacheKey(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var sections portfolio.Sections
	if err := json.Unmarshal(raw, &sections); err != nil {
		c.logger.Warn("corrupt portfolio cache entry, dropping",
			zap.String("owner_id", ownerID.String()), zap.Error(err))
		c.rdb.Del(ctx, cacheKey(ownerID))
		return nil, nil
	}
	return &sections, nil
}

func (c *PortfolioCache) Set(ctx context.Context, ownerID uuid.UUID, sections *portfolio.Sections) error {
	raw, err := json.Marshal(sections)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, cacheKey(ownerID), raw, c.ttl).Err()
}

func (c *PortfolioCache) Invalidate(ctx context.Context, ownerID uuid.UUID) error {
	return c.rdb.Del(ctx, cacheKey(ownerID)).Err()
}
