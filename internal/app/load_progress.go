package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
	"github.com/ltnguyen/hanhtrinh/internal/logging"
	"github.com/ltnguyen/hanhtrinh/internal/reporting"
	"github.com/ltnguyen/hanhtrinh/internal/strutils"
)

type progressReader interface {
	GetGameState(ctx context.Context, slotID string) (domain.GameState, error)
}

type milestoneCatalog interface {
	Size() int
	FirstID() domain.MilestoneID
	GetByID(id domain.MilestoneID) (domain.Milestone, error)
	IndexOf(id domain.MilestoneID) int
	NextAfter(id domain.MilestoneID) (domain.MilestoneID, bool)
	IsUnlocked(id domain.MilestoneID, completed []domain.MilestoneID) bool
	TotalMaxScore() int
}

type LoadProgress func(ctx context.Context, slotID string) (domain.GameState, error)

// BuildLoadProgress returns the save-slot loader. A slot that has never been
// saved, or whose save cannot be read back, yields a fresh default state
// rather than an error, so starting a new game, resuming an old one and
// recovering from a broken save are the same operation for the caller.
func BuildLoadProgress(
	repo progressReader,
	catalog milestoneCatalog,
) LoadProgress {
	return func(ctx context.Context, slotID string) (domain.GameState, error) {
		if !strutils.UUIDIsNormalized(slotID) {
			err := fmt.Errorf("save slot id is not normalized")
			reporting.Report(ctx, err, map[string]string{
				"slotID": slotID,
			})
			return domain.GameState{}, err
		}

		state, err := repo.GetGameState(ctx, slotID)
		if errors.Is(err, domain.ErrSaveNotFound) {
			logging.FromContext(ctx).Info("No save found - starting fresh", "slotID", slotID)
			return domain.NewDefaultState(catalog.FirstID()), nil
		}
		if err != nil {
			// An unreadable save must not take the session down with it. The
			// player falls back to a fresh journey; the next successful write
			// replaces whatever is in the slot.
			err = fmt.Errorf("failed to load progress: %w", err)
			reporting.Report(ctx, err, map[string]string{
				"slotID": slotID,
			})
			logging.FromContext(ctx).Error("Failed to load save - starting fresh", "slotID", slotID, "error", err.Error())
			return domain.NewDefaultState(catalog.FirstID()), nil
		}

		state = state.Normalized(catalog.FirstID())
		// Any persisted save means the player has been here before, whatever
		// the blob claims.
		state.IsFirstTime = false
		return state, nil
	}
}
