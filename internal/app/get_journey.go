package app

import (
	"context"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
)

// MilestoneStatus is a catalog milestone annotated with the slot's progress,
// ready for the map screen.
type MilestoneStatus struct {
	Milestone domain.Milestone
	Unlocked  bool
	Completed bool
	Current   bool
	Score     int
}

type journeyCatalog interface {
	milestoneCatalog
	All() []domain.Milestone
}

type GetJourney func(ctx context.Context, slotID string) ([]MilestoneStatus, domain.GameState, error)

// BuildGetJourney returns the journey overview: every milestone in campaign
// order with its unlock, completion and score status for the given slot.
func BuildGetJourney(
	repo progressReader,
	catalog journeyCatalog,
) GetJourney {
	loadProgress := BuildLoadProgress(repo, catalog)

	return func(ctx context.Context, slotID string) ([]MilestoneStatus, domain.GameState, error) {
		state, err := loadProgress(ctx, slotID)
		if err != nil {
			return nil, domain.GameState{}, err
		}

		milestones := catalog.All()
		statuses := make([]MilestoneStatus, 0, len(milestones))
		for _, milestone := range milestones {
			statuses = append(statuses, MilestoneStatus{
				Milestone: milestone,
				Unlocked:  catalog.IsUnlocked(milestone.ID, state.CompletedMilestones),
				Completed: state.HasCompleted(milestone.ID),
				Current:   milestone.ID == state.CurrentMilestoneID,
				Score:     state.Scores[milestone.ID],
			})
		}

		return statuses, state, nil
	}
}
