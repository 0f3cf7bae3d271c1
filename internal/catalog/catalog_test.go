package catalog_test

import (
	"testing"

	"github.com/ltnguyen/hanhtrinh/internal/catalog"
	"github.com/ltnguyen/hanhtrinh/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogContent(t *testing.T) {
	c := catalog.Default()

	require.Equal(t, 6, c.Size())
	require.Equal(t, domain.MilestonePartyFounding, c.FirstID())

	expectedOrder := []domain.MilestoneID{
		domain.MilestonePartyFounding,
		domain.MilestoneVietMinhFront,
		domain.MilestoneUncleHoReturns,
		domain.MilestoneAugustRevolution,
		domain.MilestoneIndependenceDay,
		domain.MilestoneDienBienPhuVictory,
	}
	expectedGameTypes := []domain.GameType{
		domain.GameTypeQuiz,
		domain.GameTypeImageMatch,
		domain.GameTypeTimelineSort,
		domain.GameTypeMemory,
		domain.GameTypeFillBlank,
		domain.GameTypeWheelFortune,
	}

	all := c.All()
	require.Len(t, all, len(expectedOrder))
	for i, milestone := range all {
		require.Equal(t, expectedOrder[i], milestone.ID)
		require.Equal(t, expectedGameTypes[i], milestone.GameType())
		require.Positive(t, milestone.MaxScore)
		require.NotEmpty(t, milestone.Title)
		require.NotEmpty(t, milestone.InfoText)
	}

	require.Equal(t, 100+80+100+120+150+100, c.TotalMaxScore())
}

func TestGetByID(t *testing.T) {
	c := catalog.Default()

	milestone, err := c.GetByID(domain.MilestoneAugustRevolution)
	require.NoError(t, err)
	require.Equal(t, domain.GameTypeMemory, milestone.GameType())

	_, err = c.GetByID("1975")
	require.ErrorIs(t, err, domain.ErrMilestoneNotFound)
}

func TestNextAfter(t *testing.T) {
	c := catalog.Default()

	next, ok := c.NextAfter(domain.MilestonePartyFounding)
	require.True(t, ok)
	require.Equal(t, domain.MilestoneVietMinhFront, next)

	_, ok = c.NextAfter(domain.MilestoneDienBienPhuVictory)
	require.False(t, ok)

	_, ok = c.NextAfter("1975")
	require.False(t, ok)
}

func TestIsUnlocked(t *testing.T) {
	c := catalog.Default()

	t.Run("first milestone is always unlocked", func(t *testing.T) {
		require.True(t, c.IsUnlocked(domain.MilestonePartyFounding, nil))
	})

	t.Run("later milestones require their predecessor", func(t *testing.T) {
		order := c.All()
		for i := 1; i < len(order); i++ {
			id := order[i].ID
			predecessor := order[i-1].ID

			require.False(t, c.IsUnlocked(id, nil))
			require.True(t, c.IsUnlocked(id, []domain.MilestoneID{predecessor}))
		}
	})

	t.Run("completing others does not skip the chain", func(t *testing.T) {
		completed := []domain.MilestoneID{domain.MilestonePartyFounding}
		require.False(t, c.IsUnlocked(domain.MilestoneUncleHoReturns, completed))
	})

	t.Run("unknown id is locked", func(t *testing.T) {
		require.False(t, c.IsUnlocked("1975", []domain.MilestoneID{domain.MilestonePartyFounding}))
	})
}

func TestNewValidation(t *testing.T) {
	quiz := domain.QuizPayload{Questions: []domain.QuizQuestion{{
		Question:      "q",
		Options:       []string{"a", "b"},
		CorrectAnswer: 0,
	}}}

	t.Run("empty catalog", func(t *testing.T) {
		_, err := catalog.New(nil)
		require.Error(t, err)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		_, err := catalog.New([]domain.Milestone{
			{ID: "a", MaxScore: 100, Game: quiz},
			{ID: "a", MaxScore: 100, Game: quiz},
		})
		require.ErrorContains(t, err, "duplicate milestone id")
	})

	t.Run("missing payload", func(t *testing.T) {
		_, err := catalog.New([]domain.Milestone{{ID: "a", MaxScore: 100}})
		require.ErrorContains(t, err, "no game payload")
	})

	t.Run("non-positive max score", func(t *testing.T) {
		_, err := catalog.New([]domain.Milestone{{ID: "a", Game: quiz}})
		require.ErrorContains(t, err, "max score")
	})
}
