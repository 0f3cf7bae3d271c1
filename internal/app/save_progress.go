package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
	"github.com/ltnguyen/hanhtrinh/internal/reporting"
	"github.com/ltnguyen/hanhtrinh/internal/strutils"
)

type progressWriter interface {
	StoreGameState(ctx context.Context, slotID string, state domain.GameState) error
}

type SaveProgress func(ctx context.Context, slotID string, state domain.GameState) (domain.GameState, error)

// BuildSaveProgress returns the save-slot writer. The state is normalized
// before it is written, so a caller can never persist inconsistent derived
// fields, and LastPlayed is always stamped by the server clock.
func BuildSaveProgress(
	repo progressWriter,
	catalog milestoneCatalog,
	now func() time.Time,
) SaveProgress {
	return func(ctx context.Context, slotID string, state domain.GameState) (domain.GameState, error) {
		if !strutils.UUIDIsNormalized(slotID) {
			err := fmt.Errorf("save slot id is not normalized")
			reporting.Report(ctx, err, map[string]string{
				"slotID": slotID,
			})
			return domain.GameState{}, err
		}

		state = state.Normalized(catalog.FirstID())
		state.LastPlayed = now()
		state.IsFirstTime = false

		if err := repo.StoreGameState(ctx, slotID, state); err != nil {
			metrics.saveFailures.Add(ctx, 1)
			return domain.GameState{}, fmt.Errorf("failed to save progress: %w", err)
		}

		return state, nil
	}
}
