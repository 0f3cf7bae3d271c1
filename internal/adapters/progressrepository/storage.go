package progressrepository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
)

const DATA_FORMAT_VERSION = 1

// saveDataStorage is the persisted shape of a save slot. Keys are short to
// keep the blobs small; LastPlayed lives in its own column so it can be
// queried without decoding.
type saveDataStorage struct {
	Cursor         string         `json:"cur,omitempty"`
	Completed      []string       `json:"done,omitempty"`
	Scores         map[string]int `json:"scores,omitempty"`
	TotalPlayTime  int            `json:"time,omitempty"`
	Achievements   []string       `json:"ach,omitempty"`
	Level          int            `json:"lvl,omitempty"`
	UnlockedLevels []int          `json:"lvls,omitempty"`
	FirstTime      bool           `json:"first,omitempty"`
}

func stateToDataStorage(state domain.GameState) ([]byte, error) {
	completed := make([]string, 0, len(state.CompletedMilestones))
	for _, id := range state.CompletedMilestones {
		completed = append(completed, string(id))
	}

	var scores map[string]int
	if len(state.Scores) > 0 {
		scores = make(map[string]int, len(state.Scores))
		for id, score := range state.Scores {
			scores[string(id)] = score
		}
	}

	data := saveDataStorage{
		Cursor:         string(state.CurrentMilestoneID),
		Completed:      completed,
		Scores:         scores,
		TotalPlayTime:  state.TotalPlayTime,
		Achievements:   state.Achievements,
		Level:          state.Character.CurrentLevel,
		UnlockedLevels: state.Character.UnlockedLevels,
		FirstTime:      state.IsFirstTime,
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal save data: %w", err)
	}
	return encoded, nil
}

// stateFromDataStorage decodes a save blob. TotalScore is intentionally not
// stored; domain.GameState.Normalized recomputes it and repairs whatever the
// omitempty encoding dropped.
func stateFromDataStorage(encoded []byte, dataFormatVersion int, lastPlayed time.Time) (domain.GameState, error) {
	if dataFormatVersion != DATA_FORMAT_VERSION {
		return domain.GameState{}, fmt.Errorf("unknown data format version %d", dataFormatVersion)
	}

	var data saveDataStorage
	if err := json.Unmarshal(encoded, &data); err != nil {
		return domain.GameState{}, fmt.Errorf("failed to unmarshal save data: %w", err)
	}

	completed := make([]domain.MilestoneID, 0, len(data.Completed))
	for _, id := range data.Completed {
		completed = append(completed, domain.MilestoneID(id))
	}

	scores := make(map[domain.MilestoneID]int, len(data.Scores))
	for id, score := range data.Scores {
		scores[domain.MilestoneID(id)] = score
	}

	return domain.GameState{
		CurrentMilestoneID:  domain.MilestoneID(data.Cursor),
		CompletedMilestones: completed,
		Scores:              scores,
		TotalPlayTime:       data.TotalPlayTime,
		Achievements:        data.Achievements,
		Character: domain.CharacterProgress{
			CurrentLevel:   data.Level,
			UnlockedLevels: data.UnlockedLevels,
		},
		LastPlayed:  lastPlayed,
		IsFirstTime: data.FirstTime,
	}, nil
}
