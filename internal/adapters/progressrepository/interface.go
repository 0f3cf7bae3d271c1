package progressrepository

import (
	"context"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
)

type ProgressRepository interface {
	GetGameState(ctx context.Context, slotID string) (domain.GameState, error)
	StoreGameState(ctx context.Context, slotID string, state domain.GameState) error
	DeleteGameState(ctx context.Context, slotID string) error
}
