package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/holytrinity/portal/internal/index"
	"github.com/holytrinity/portal/internal/logger"
	"github.com/holytrinity/portal/internal/sources/communities"
)

// CommunityReloader handles periodic reloading of the communities file
type CommunityReloader struct {
	loader        *communities.Loader
	mapper        *communities.Mapper
	registry      *index.Registry
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewCommunityReloader creates a new community reloader
func NewCommunityReloader(
	communityFile string,
	registry *index.Registry,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *CommunityReloader {
	return &CommunityReloader{
		loader:        communities.NewLoader(communityFile),
		mapper:        communities.NewMapper(),
		registry:      registry,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the file once, then begins the periodic reload process.
// The initial load is fatal when it fails; later failures keep serving
// the previous registry.
func (cr *CommunityReloader) Start(ctx context.Context) error {
	if err := cr.Reload(ctx); err != nil {
		return fmt.Errorf("initial community load failed: %w", err)
	}

	ticker := time.NewTicker(cr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload communities",
						logger.Error(err))
				}
			case <-cr.manualTrigger:
				cr.logger.Info("manual community reload triggered")
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload communities",
						logger.Error(err))
				}
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (cr *CommunityReloader) Stop() {
	close(cr.stopCh)
}

// Reload loads the communities file and rebuilds the registry wholesale
func (cr *CommunityReloader) Reload(_ context.Context) error {
	config, err := cr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load communities: %w", err)
	}

	list, err := cr.mapper.MapCommunities(config)
	if err != nil {
		return fmt.Errorf("failed to map communities: %w", err)
	}

	cr.registry.Update(list, config.Minecraft.DefaultServer)

	cr.logger.Info("communities reloaded",
		logger.Int("count", len(list)))
	return nil
}
