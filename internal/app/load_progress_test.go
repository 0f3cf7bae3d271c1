package app_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ltnguyen/hanhtrinh/internal/app"
	"github.com/ltnguyen/hanhtrinh/internal/catalog"
	"github.com/ltnguyen/hanhtrinh/internal/domain"
)

func TestBuildLoadProgress(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	cat := catalog.Default()

	t.Run("missing slot starts a fresh journey", func(t *testing.T) {
		t.Parallel()

		loadProgress := app.BuildLoadProgress(newFakeProgressRepo(), cat)
		state, err := loadProgress(ctx, testSlotID)
		require.NoError(t, err)

		require.Equal(t, domain.MilestonePartyFounding, state.CurrentMilestoneID)
		require.True(t, state.IsFirstTime)
		require.Empty(t, state.CompletedMilestones)
		require.Equal(t, 0, state.Character.CurrentLevel)
	})

	t.Run("stored state comes back normalized", func(t *testing.T) {
		t.Parallel()

		repo := newFakeProgressRepo()
		repo.states[testSlotID] = domain.GameState{
			CurrentMilestoneID:  domain.MilestoneVietMinhFront,
			CompletedMilestones: []domain.MilestoneID{domain.MilestonePartyFounding, domain.MilestonePartyFounding},
			Scores:              map[domain.MilestoneID]int{domain.MilestonePartyFounding: 80},
			TotalScore:          9999,
			TotalPlayTime:       -5,
			IsFirstTime:         true,
		}

		loadProgress := app.BuildLoadProgress(repo, cat)
		state, err := loadProgress(ctx, testSlotID)
		require.NoError(t, err)

		require.Equal(t, []domain.MilestoneID{domain.MilestonePartyFounding}, state.CompletedMilestones)
		require.Equal(t, 80, state.TotalScore, "total score is recomputed from per-milestone scores")
		require.Equal(t, 0, state.TotalPlayTime)
		require.Equal(t, 1, state.Character.CurrentLevel)
		require.Equal(t, []int{0, 1}, state.Character.UnlockedLevels)
		require.False(t, state.IsFirstTime, "an existing save means the player has been here before")
	})

	t.Run("malformed slot id is rejected", func(t *testing.T) {
		t.Parallel()

		loadProgress := app.BuildLoadProgress(newFakeProgressRepo(), cat)
		_, err := loadProgress(ctx, "not-a-uuid")
		require.Error(t, err)
	})

	t.Run("an unreadable save falls back to a fresh journey", func(t *testing.T) {
		t.Parallel()

		repo := newFakeProgressRepo()
		repo.getErr = errors.New("disk on fire")

		loadProgress := app.BuildLoadProgress(repo, cat)
		state, err := loadProgress(ctx, testSlotID)
		require.NoError(t, err)

		require.Equal(t, domain.MilestonePartyFounding, state.CurrentMilestoneID)
		require.Empty(t, state.CompletedMilestones)
		require.True(t, state.IsFirstTime)
	})
}
