package cache

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/forwardpoint/backend/internal/consolidation"
	"github.com/forwardpoint/backend/internal/metrics"
	"github.com/forwardpoint/backend/internal/repository"
)

type GroupRepository interface {
	GetAllActiveGroups(ctx context.Context) ([]*repository.ConsolidationGroup, error)
}

// GroupCache holds every group that has not shipped yet. Values are copied on
// the way in and out so callers can never mutate a cached entry.
type GroupCache struct {
	mu    sync.RWMutex
	cache map[string]*repository.ConsolidationGroup
	repo  GroupRepository
}

func NewGroupCache(repo GroupRepository) *GroupCache {
	return &GroupCache{
		cache: make(map[string]*repository.ConsolidationGroup),
		repo:  repo,
	}
}

func (c *GroupCache) LoadInitialData(ctx context.Context) error {
	groups, err := c.repo.GetAllActiveGroups(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, group := range groups {
		groupCopy := *group
		c.cache[group.ID] = &groupCopy
	}
	metrics.GroupCacheItems.Set(float64(len(c.cache)))
	zap.L().Info("loaded active consolidation groups into cache", zap.Int("count", len(c.cache)))
	return nil
}

func (c *GroupCache) Get(groupID string) (*repository.ConsolidationGroup, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	group, found := c.cache[groupID]
	if !found {
		return nil, false
	}
	groupCopy := *group
	return &groupCopy, true
}

func (c *GroupCache) Set(group *repository.ConsolidationGroup) {
	if !isActiveStatus(group.Status) {
		c.Delete(group.ID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	groupCopy := *group
	c.cache[group.ID] = &groupCopy
	metrics.GroupCacheItems.Set(float64(len(c.cache)))
}

func (c *GroupCache) Delete(groupID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[groupID]; found {
		delete(c.cache, groupID)
		metrics.GroupCacheItems.Set(float64(len(c.cache)))
	}
}

func isActiveStatus(status string) bool {
	switch consolidation.GroupStatus(status) {
	case consolidation.StatusOpen, consolidation.StatusPending,
		consolidation.StatusInProgress, consolidation.StatusReadyToShip:
		return true
	}
	return false
}
