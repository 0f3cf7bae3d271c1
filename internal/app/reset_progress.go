package app

import (
	"context"
	"fmt"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
	"github.com/ltnguyen/hanhtrinh/internal/logging"
	"github.com/ltnguyen/hanhtrinh/internal/reporting"
	"github.com/ltnguyen/hanhtrinh/internal/strutils"
)

type ResetProgress func(ctx context.Context, slotID string) (domain.GameState, error)

// BuildResetProgress returns the use case behind the "play again" button: the
// slot is overwritten with a fresh default state, so a later load starts the
// campaign over. The returned state has IsFirstTime false; the player has seen
// the intro before.
func BuildResetProgress(
	repo progressWriter,
	catalog milestoneCatalog,
) ResetProgress {
	return func(ctx context.Context, slotID string) (domain.GameState, error) {
		if !strutils.UUIDIsNormalized(slotID) {
			err := fmt.Errorf("save slot id is not normalized")
			reporting.Report(ctx, err, map[string]string{
				"slotID": slotID,
			})
			return domain.GameState{}, err
		}

		state := domain.NewDefaultState(catalog.FirstID())
		state.IsFirstTime = false

		if err := repo.StoreGameState(ctx, slotID, state); err != nil {
			return domain.GameState{}, fmt.Errorf("failed to reset progress: %w", err)
		}

		logging.FromContext(ctx).Info("Progress reset", "slotID", slotID)
		return state, nil
	}
}
