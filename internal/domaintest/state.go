package domaintest

import (
	"time"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
)

type stateBuilder struct {
	state *domain.GameState
}

func (sb *stateBuilder) WithCompleted(id domain.MilestoneID, score int) *stateBuilder {
	if !sb.state.HasCompleted(id) {
		sb.state.CompletedMilestones = append(sb.state.CompletedMilestones, id)
	}
	sb.state.Scores[id] = score
	sb.state.TotalScore = sb.state.SumOfScores()
	level := domain.CharacterLevelFor(len(sb.state.CompletedMilestones))
	for l := sb.state.Character.CurrentLevel + 1; l <= level; l++ {
		sb.state.Character.UnlockedLevels = append(sb.state.Character.UnlockedLevels, l)
	}
	sb.state.Character.CurrentLevel = level
	return sb
}

func (sb *stateBuilder) WithCursor(id domain.MilestoneID) *stateBuilder {
	sb.state.CurrentMilestoneID = id
	return sb
}

func (sb *stateBuilder) WithPlayTime(seconds int) *stateBuilder {
	sb.state.TotalPlayTime = seconds
	return sb
}

func (sb *stateBuilder) WithAchievements(ids ...string) *stateBuilder {
	sb.state.Achievements = append(sb.state.Achievements, ids...)
	return sb
}

func (sb *stateBuilder) WithLastPlayed(lastPlayed time.Time) *stateBuilder {
	sb.state.LastPlayed = lastPlayed
	return sb
}

func (sb *stateBuilder) Build() domain.GameState {
	// Copy collections so further builder mutations don't leak into the
	// returned state.
	state := *sb.state
	state.CompletedMilestones = append([]domain.MilestoneID{}, sb.state.CompletedMilestones...)
	state.Achievements = append([]string{}, sb.state.Achievements...)
	state.Character.UnlockedLevels = append([]int{}, sb.state.Character.UnlockedLevels...)
	state.Scores = make(map[domain.MilestoneID]int, len(sb.state.Scores))
	for id, score := range sb.state.Scores {
		state.Scores[id] = score
	}
	return state
}

func NewStateBuilder(firstMilestone domain.MilestoneID) *stateBuilder {
	state := domain.NewDefaultState(firstMilestone)
	state.IsFirstTime = false
	return &stateBuilder{
		state: &state,
	}
}
