package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const (
	DEPOSIT_TTL = time.Hour
)

// DepositCache remembers recently seen deposits so that blocks scanned
// more than once do not produce duplicate orders.
type DepositCache struct {
	depositCache *ttlcache.Cache[string, struct{}]
}

func NewDepositCache(ctx context.Context, ttl time.Duration) *DepositCache {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, struct{}](ttl),
		ttlcache.WithDisableTouchOnHit[string, struct{}](),
	)

	go cache.Start()
	go func() {
		<-ctx.Done()
		cache.Stop()
	}()
	return &DepositCache{
		depositCache: cache,
	}
}

// Seen marks the deposit as seen and reports if it had already been seen.
func (c *DepositCache) Seen(key string) bool {
	_, seen := c.depositCache.GetOrSet(key, struct{}{})
	return seen
}

func (c *DepositCache) Len() int {
	return c.depositCache.Len()
}
