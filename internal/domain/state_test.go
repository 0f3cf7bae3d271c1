package domain_test

import (
	"testing"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultState(t *testing.T) {
	state := domain.NewDefaultState(domain.MilestonePartyFounding)

	require.Equal(t, domain.MilestonePartyFounding, state.CurrentMilestoneID)
	require.Empty(t, state.CompletedMilestones)
	require.Empty(t, state.Scores)
	require.Zero(t, state.TotalScore)
	require.Zero(t, state.TotalPlayTime)
	require.Empty(t, state.Achievements)
	require.Equal(t, 0, state.Character.CurrentLevel)
	require.Equal(t, []int{0}, state.Character.UnlockedLevels)
	require.True(t, state.IsFirstTime)
}

func TestGameStateNormalized(t *testing.T) {
	t.Run("zero value becomes usable default", func(t *testing.T) {
		state := domain.GameState{}.Normalized(domain.MilestonePartyFounding)

		require.Equal(t, domain.MilestonePartyFounding, state.CurrentMilestoneID)
		require.NotNil(t, state.CompletedMilestones)
		require.NotNil(t, state.Scores)
		require.NotNil(t, state.Achievements)
		require.Equal(t, []int{0}, state.Character.UnlockedLevels)
	})

	t.Run("total score is recomputed from scores", func(t *testing.T) {
		state := domain.GameState{
			Scores: map[domain.MilestoneID]int{
				domain.MilestonePartyFounding: 80,
				domain.MilestoneVietMinhFront: 70,
			},
			// Stale persisted value, e.g. from a version that stored it
			// separately.
			TotalScore: 9999,
		}.Normalized(domain.MilestonePartyFounding)

		require.Equal(t, 150, state.TotalScore)
	})

	t.Run("duplicate completions are collapsed", func(t *testing.T) {
		state := domain.GameState{
			CompletedMilestones: []domain.MilestoneID{
				domain.MilestonePartyFounding,
				domain.MilestoneVietMinhFront,
				domain.MilestonePartyFounding,
			},
		}.Normalized(domain.MilestonePartyFounding)

		require.Equal(t, []domain.MilestoneID{
			domain.MilestonePartyFounding,
			domain.MilestoneVietMinhFront,
		}, state.CompletedMilestones)
	})

	t.Run("character level matches completion count", func(t *testing.T) {
		state := domain.GameState{
			CompletedMilestones: []domain.MilestoneID{
				domain.MilestonePartyFounding,
				domain.MilestoneVietMinhFront,
				domain.MilestoneUncleHoReturns,
			},
		}.Normalized(domain.MilestonePartyFounding)

		require.Equal(t, 3, state.Character.CurrentLevel)
		require.Equal(t, []int{0, 1, 2, 3}, state.Character.UnlockedLevels)
	})

	t.Run("persisted level is never lowered", func(t *testing.T) {
		state := domain.GameState{
			Character: domain.CharacterProgress{CurrentLevel: 4},
		}.Normalized(domain.MilestonePartyFounding)

		require.Equal(t, 4, state.Character.CurrentLevel)
		require.Equal(t, []int{0, 1, 2, 3, 4}, state.Character.UnlockedLevels)
	})

	t.Run("negative play time is clamped", func(t *testing.T) {
		state := domain.GameState{TotalPlayTime: -30}.Normalized(domain.MilestonePartyFounding)
		require.Zero(t, state.TotalPlayTime)
	})
}

func TestCharacterLevelFor(t *testing.T) {
	tests := []struct {
		completed int
		level     int
	}{
		{completed: -1, level: 0},
		{completed: 0, level: 0},
		{completed: 1, level: 1},
		{completed: 3, level: 3},
		{completed: 6, level: 6},
		{completed: 7, level: 6},
		{completed: 100, level: 6},
	}

	for _, test := range tests {
		require.Equal(t, test.level, domain.CharacterLevelFor(test.completed), "completed=%d", test.completed)
	}
}

func TestStageForLevel(t *testing.T) {
	for level := 0; level <= domain.MaxCharacterLevel; level++ {
		stage, ok := domain.StageForLevel(level)
		require.True(t, ok)
		require.Equal(t, level, stage.Level)
		require.NotEmpty(t, stage.Title)
	}

	_, ok := domain.StageForLevel(-1)
	require.False(t, ok)

	_, ok = domain.StageForLevel(domain.MaxCharacterLevel + 1)
	require.False(t, ok)
}
