package progressrepository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ltnguyen/hanhtrinh/internal/adapters/progressrepository"
	"github.com/ltnguyen/hanhtrinh/internal/domain"
)

type countingRepo struct {
	backend  progressrepository.ProgressRepository
	getCalls int
}

func (c *countingRepo) GetGameState(ctx context.Context, slotID string) (domain.GameState, error) {
	c.getCalls++
	return c.backend.GetGameState(ctx, slotID)
}

func (c *countingRepo) StoreGameState(ctx context.Context, slotID string, state domain.GameState) error {
	return c.backend.StoreGameState(ctx, slotID, state)
}

func (c *countingRepo) DeleteGameState(ctx context.Context, slotID string) error {
	return c.backend.DeleteGameState(ctx, slotID)
}

func TestCachedProgressRepository(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	t.Run("repeated reads hit the backend once", func(t *testing.T) {
		t.Parallel()

		backend := &countingRepo{backend: progressrepository.NewInMemoryProgressRepository()}
		repo := progressrepository.NewCachedProgressRepository(backend, time.Minute)

		require.NoError(t, repo.StoreGameState(ctx, testSlotID, testState()))

		for i := 0; i < 3; i++ {
			loaded, err := repo.GetGameState(ctx, testSlotID)
			require.NoError(t, err)
			require.Equal(t, testState(), loaded)
		}
		require.Equal(t, 0, backend.getCalls, "writes prime the cache")
	})

	t.Run("cache misses fall through", func(t *testing.T) {
		t.Parallel()

		inner := progressrepository.NewInMemoryProgressRepository()
		require.NoError(t, inner.StoreGameState(ctx, testSlotID, testState()))

		backend := &countingRepo{backend: inner}
		repo := progressrepository.NewCachedProgressRepository(backend, time.Minute)

		_, err := repo.GetGameState(ctx, testSlotID)
		require.NoError(t, err)
		_, err = repo.GetGameState(ctx, testSlotID)
		require.NoError(t, err)
		require.Equal(t, 1, backend.getCalls)
	})

	t.Run("missing slots are not cached", func(t *testing.T) {
		t.Parallel()

		backend := &countingRepo{backend: progressrepository.NewInMemoryProgressRepository()}
		repo := progressrepository.NewCachedProgressRepository(backend, time.Minute)

		_, err := repo.GetGameState(ctx, testSlotID)
		require.ErrorIs(t, err, domain.ErrSaveNotFound)
		_, err = repo.GetGameState(ctx, testSlotID)
		require.ErrorIs(t, err, domain.ErrSaveNotFound)
		require.Equal(t, 2, backend.getCalls)
	})

	t.Run("loaded states do not alias the cache", func(t *testing.T) {
		t.Parallel()

		backend := &countingRepo{backend: progressrepository.NewInMemoryProgressRepository()}
		repo := progressrepository.NewCachedProgressRepository(backend, time.Minute)

		stored := testState()
		require.NoError(t, repo.StoreGameState(ctx, testSlotID, stored))

		// Mutating what the caller kept must not leak into the cache.
		stored.Scores[domain.MilestoneVietMinhFront] = 50
		stored.Achievements = append(stored.Achievements, domain.AchievementPerfectScore)

		loaded, err := repo.GetGameState(ctx, testSlotID)
		require.NoError(t, err)
		require.Equal(t, testState(), loaded)

		// Nor must mutating what the cache handed out.
		loaded.Scores[domain.MilestonePartyFounding] = 0
		loaded.CompletedMilestones = append(loaded.CompletedMilestones, domain.MilestoneVietMinhFront)

		reloaded, err := repo.GetGameState(ctx, testSlotID)
		require.NoError(t, err)
		require.Equal(t, testState(), reloaded)
	})

	t.Run("delete evicts", func(t *testing.T) {
		t.Parallel()

		backend := &countingRepo{backend: progressrepository.NewInMemoryProgressRepository()}
		repo := progressrepository.NewCachedProgressRepository(backend, time.Minute)

		require.NoError(t, repo.StoreGameState(ctx, testSlotID, testState()))
		require.NoError(t, repo.DeleteGameState(ctx, testSlotID))

		_, err := repo.GetGameState(ctx, testSlotID)
		require.ErrorIs(t, err, domain.ErrSaveNotFound)
	})
}
