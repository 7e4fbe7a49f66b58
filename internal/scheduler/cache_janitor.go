package scheduler

import (
	"context"
	"time"

	"github.com/holytrinity/portal/internal/cache"
	"github.com/holytrinity/portal/internal/logger"
)

// DefaultJanitorThreshold is how old an entry must be before the janitor
// removes it. TTL staleness is still decided on the read path; the janitor
// only bounds the memory held by keys nobody asks for anymore.
const DefaultJanitorThreshold = 15 * time.Minute

// CacheJanitor periodically prunes stale entries from the response cache
type CacheJanitor struct {
	cache     *cache.Cache
	logger    logger.Logger
	interval  time.Duration
	threshold time.Duration
	stopCh    chan struct{}
}

// NewCacheJanitor creates a new cache janitor
func NewCacheJanitor(c *cache.Cache, log logger.Logger, interval, threshold time.Duration) *CacheJanitor {
	if threshold <= 0 {
		threshold = DefaultJanitorThreshold
	}
	return &CacheJanitor{
		cache:     c,
		logger:    log,
		interval:  interval,
		threshold: threshold,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the periodic prune process
func (cj *CacheJanitor) Start(ctx context.Context) error {
	ticker := time.NewTicker(cj.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cj.Collect()
			case <-cj.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

// Stop stops the janitor
func (cj *CacheJanitor) Stop() {
	close(cj.stopCh)
}

// Collect runs one prune pass
func (cj *CacheJanitor) Collect() {
	removed := cj.cache.PruneStale(cj.threshold)
	if removed > 0 {
		cj.logger.Info("pruned stale cache entries",
			logger.Int("removed", removed),
			logger.Int("remaining", cj.cache.Len()))
	}
}
