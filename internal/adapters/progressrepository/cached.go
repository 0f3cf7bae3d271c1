package progressrepository

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
)

// CachedProgressRepository is a read-through cache in front of another
// repository. Writes go through to the backend and refresh the cached entry,
// so a read after a write never sees a stale slot from this process.
type CachedProgressRepository struct {
	backend ProgressRepository
	cache   *ttlcache.Cache[string, domain.GameState]
}

func NewCachedProgressRepository(backend ProgressRepository, ttl time.Duration) *CachedProgressRepository {
	cache := ttlcache.New[string, domain.GameState](
		ttlcache.WithTTL[string, domain.GameState](ttl),
		ttlcache.WithDisableTouchOnHit[string, domain.GameState](),
	)
	go cache.Start()

	return &CachedProgressRepository{
		backend: backend,
		cache:   cache,
	}
}

func (c *CachedProgressRepository) GetGameState(ctx context.Context, slotID string) (domain.GameState, error) {
	if item := c.cache.Get(slotID); item != nil {
		// Callers mutate what they load, so never hand out the cached
		// collections themselves.
		return item.Value().Clone(), nil
	}

	state, err := c.backend.GetGameState(ctx, slotID)
	if err != nil {
		return domain.GameState{}, err
	}

	c.cache.Set(slotID, state.Clone(), ttlcache.DefaultTTL)
	return state, nil
}

func (c *CachedProgressRepository) StoreGameState(ctx context.Context, slotID string, state domain.GameState) error {
	if err := c.backend.StoreGameState(ctx, slotID, state); err != nil {
		// The write may or may not have landed; drop the entry so the next
		// read goes to the backend.
		c.cache.Delete(slotID)
		return err
	}

	c.cache.Set(slotID, state.Clone(), ttlcache.DefaultTTL)
	return nil
}

func (c *CachedProgressRepository) DeleteGameState(ctx context.Context, slotID string) error {
	c.cache.Delete(slotID)
	return c.backend.DeleteGameState(ctx, slotID)
}
