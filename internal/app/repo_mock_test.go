package app_test

import (
	"context"
	"time"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
)

const testSlotID = "12345678-1234-1234-1234-123456789012"

// fakeProgressRepo is a map-backed repository with injectable failures.
type fakeProgressRepo struct {
	states     map[string]domain.GameState
	getErr     error
	storeErr   error
	deleteErr  error
	storeCalls int
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{states: make(map[string]domain.GameState)}
}

func (r *fakeProgressRepo) GetGameState(ctx context.Context, slotID string) (domain.GameState, error) {
	if r.getErr != nil {
		return domain.GameState{}, r.getErr
	}
	state, ok := r.states[slotID]
	if !ok {
		return domain.GameState{}, domain.ErrSaveNotFound
	}
	return state, nil
}

func (r *fakeProgressRepo) StoreGameState(ctx context.Context, slotID string, state domain.GameState) error {
	r.storeCalls++
	if r.storeErr != nil {
		return r.storeErr
	}
	r.states[slotID] = state
	return nil
}

func (r *fakeProgressRepo) DeleteGameState(ctx context.Context, slotID string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.states[slotID]; !ok {
		return domain.ErrSaveNotFound
	}
	delete(r.states, slotID)
	return nil
}

var testNow = time.Date(2026, time.September, 2, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time {
	return testNow
}
