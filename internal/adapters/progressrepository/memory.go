package progressrepository

import (
	"context"
	"sync"
	"time"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
)

// InMemoryProgressRepository keeps save slots in process memory. It backs
// tests and throwaway sessions; states round-trip through the storage codec
// so callers get the same copy semantics as the database backends.
type InMemoryProgressRepository struct {
	mutex sync.RWMutex
	saves map[string]inMemorySave
}

type inMemorySave struct {
	data       []byte
	lastPlayed time.Time
}

func NewInMemoryProgressRepository() *InMemoryProgressRepository {
	return &InMemoryProgressRepository{saves: make(map[string]inMemorySave)}
}

func (r *InMemoryProgressRepository) GetGameState(ctx context.Context, slotID string) (domain.GameState, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	save, ok := r.saves[slotID]
	if !ok {
		return domain.GameState{}, domain.ErrSaveNotFound
	}
	return stateFromDataStorage(save.data, DATA_FORMAT_VERSION, save.lastPlayed)
}

func (r *InMemoryProgressRepository) StoreGameState(ctx context.Context, slotID string, state domain.GameState) error {
	data, err := stateToDataStorage(state)
	if err != nil {
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.saves[slotID] = inMemorySave{data: data, lastPlayed: state.LastPlayed}
	return nil
}

func (r *InMemoryProgressRepository) DeleteGameState(ctx context.Context, slotID string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.saves[slotID]; !ok {
		return domain.ErrSaveNotFound
	}
	delete(r.saves, slotID)
	return nil
}
