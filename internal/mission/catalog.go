package mission

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/QuestBoard_Go/internal/cache"
	"github.com/osse101/QuestBoard_Go/internal/domain"
	"github.com/osse101/QuestBoard_Go/internal/logger"
	"github.com/osse101/QuestBoard_Go/internal/metrics"
	"github.com/osse101/QuestBoard_Go/internal/repository"
)

// Catalog serves mission definitions from a cached snapshot.
// The snapshot is only used for display; completions always read the store.
type Catalog struct {
	repo  repository.Mission
	cache cache.Cache
	ttl   time.Duration
}

// NewCatalog creates a catalog over the mission repository
func NewCatalog(repo repository.Mission, c cache.Cache, ttl time.Duration) *Catalog {
	if ttl <= 0 {
		ttl = DefaultCatalogTTL
	}
	return &Catalog{repo: repo, cache: c, ttl: ttl}
}

// Missions returns the cached snapshot, loading it from the store on a miss
func (c *Catalog) Missions(ctx context.Context) ([]domain.Mission, error) {
	data, err := c.cache.Get(ctx, CatalogCacheKey)
	if err == nil {
		var missions []domain.Mission
		if jsonErr := json.Unmarshal(data, &missions); jsonErr == nil {
			return missions, nil
		}
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		logger.FromContext(ctx).Warn(LogMsgCatalogCacheError, "error", err)
	}

	missions, _, err := c.load(ctx)
	return missions, err
}

// Refresh reloads the snapshot from the store
func (c *Catalog) Refresh(ctx context.Context) error {
	missions, stored, err := c.load(ctx)
	if err != nil || !stored {
		metrics.CatalogRefreshes.WithLabelValues(metrics.StatusError).Inc()
		if err == nil {
			err = errors.New("mission catalog not stored in cache")
		}
		return err
	}
	metrics.CatalogRefreshes.WithLabelValues(metrics.StatusSuccess).Inc()
	logger.FromContext(ctx).Debug(LogMsgCatalogRefreshed, "missions", len(missions))
	return nil
}

func (c *Catalog) load(ctx context.Context) ([]domain.Mission, bool, error) {
	missions, err := c.repo.ListMissions(ctx)
	if err != nil {
		return nil, false, fmt.Errorf(ErrMsgLoadCatalogFailed, err)
	}

	data, err := json.Marshal(missions)
	if err != nil {
		return missions, false, nil
	}
	if err := c.cache.Set(ctx, CatalogCacheKey, data, c.ttl); err != nil {
		logger.FromContext(ctx).Warn(LogMsgCatalogCacheError, "error", err)
		return missions, false, nil
	}
	return missions, true, nil
}
