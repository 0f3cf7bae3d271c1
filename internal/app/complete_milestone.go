package app

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
	"github.com/ltnguyen/hanhtrinh/internal/logging"
	"github.com/ltnguyen/hanhtrinh/internal/reporting"
)

type progressRepository interface {
	progressReader
	progressWriter
}

// CompletionResult is what the UI needs to celebrate a finished mini-game:
// the stored state plus what changed compared to the previous state.
type CompletionResult struct {
	State                domain.GameState
	NewCompletion        bool
	LeveledUp            bool
	NewLevel             int
	UnlockedAchievements []string
}

type CompleteMilestone func(ctx context.Context, slotID string, milestoneID domain.MilestoneID, score int, playTimeSeconds int) (CompletionResult, error)

// BuildCompleteMilestone returns the use case that records a finished
// mini-game: it clamps the reported score to the milestone's range, keeps the
// best score across attempts, accumulates play time, advances the milestone
// cursor strictly forward, recomputes the character level and checks for new
// achievements. A failed write is reported but does not fail the completion;
// the in-memory result is still valid and the next write retries the slot.
func BuildCompleteMilestone(
	repo progressRepository,
	catalog milestoneCatalog,
	now func() time.Time,
) CompleteMilestone {
	loadProgress := BuildLoadProgress(repo, catalog)
	// Storage failures during gameplay tend to arrive in bursts.
	reportLimiter := rate.NewLimiter(rate.Every(time.Minute), 5)

	return func(ctx context.Context, slotID string, milestoneID domain.MilestoneID, score int, playTimeSeconds int) (CompletionResult, error) {
		logger := logging.FromContext(ctx)

		milestone, err := catalog.GetByID(milestoneID)
		if err != nil {
			return CompletionResult{}, fmt.Errorf("failed to complete milestone: %w", err)
		}

		state, err := loadProgress(ctx, slotID)
		if err != nil {
			return CompletionResult{}, err
		}

		if !catalog.IsUnlocked(milestoneID, state.CompletedMilestones) {
			return CompletionResult{}, fmt.Errorf("failed to complete milestone %q: %w", milestoneID, domain.ErrMilestoneLocked)
		}

		if score < 0 {
			score = 0
		}
		if score > milestone.MaxScore {
			reporting.Report(ctx, fmt.Errorf("reported score exceeds milestone maximum"), map[string]string{
				"milestoneID": string(milestoneID),
				"score":       fmt.Sprintf("%d", score),
			})
			score = milestone.MaxScore
		}
		if playTimeSeconds < 0 {
			playTimeSeconds = 0
		}

		newCompletion := !state.HasCompleted(milestoneID)
		if newCompletion {
			state.CompletedMilestones = append(state.CompletedMilestones, milestoneID)
		}
		if score > state.Scores[milestoneID] {
			state.Scores[milestoneID] = score
		}
		state.TotalScore = state.SumOfScores()
		state.TotalPlayTime += playTimeSeconds

		if next, ok := catalog.NextAfter(milestoneID); ok {
			if catalog.IndexOf(next) > catalog.IndexOf(state.CurrentMilestoneID) {
				state.CurrentMilestoneID = next
			}
		}

		previousLevel := state.Character.CurrentLevel
		level := domain.CharacterLevelFor(len(state.CompletedMilestones))
		leveledUp := level > previousLevel
		if leveledUp {
			state.Character.CurrentLevel = level
			state.Character.UnlockedLevels = append(state.Character.UnlockedLevels, level)
			metrics.levelUps.Add(ctx, 1)
			logger.Info("Character leveled up", "level", level)
		}

		allUnlocked := domain.CheckAchievements(state, catalog.Size(), catalog.TotalMaxScore())
		var newlyUnlocked []string
		for _, achievementID := range allUnlocked {
			if state.HasAchievement(achievementID) {
				continue
			}
			newlyUnlocked = append(newlyUnlocked, achievementID)
			metrics.achievementUnlocks.Add(ctx, 1, metric.WithAttributes(
				attribute.String("achievement", achievementID),
			))
			logger.Info("Achievement unlocked", "achievement", achievementID)
		}
		state.Achievements = allUnlocked

		state.LastPlayed = now()
		state.IsFirstTime = false

		metrics.milestoneCompletions.Add(ctx, 1, metric.WithAttributes(
			attribute.String("milestone", string(milestoneID)),
			attribute.String("game_type", string(milestone.GameType())),
		))
		metrics.gamePlayTime.Record(ctx, float64(playTimeSeconds), metric.WithAttributes(
			attribute.String("game_type", string(milestone.GameType())),
		))

		if err := repo.StoreGameState(ctx, slotID, state); err != nil {
			metrics.saveFailures.Add(ctx, 1)
			logger.Error("Failed to persist completion", "error", err, "milestoneID", milestoneID)
			if reportLimiter.Allow() {
				reporting.Report(ctx, fmt.Errorf("failed to persist completion: %w", err), map[string]string{
					"slotID":      slotID,
					"milestoneID": string(milestoneID),
				})
			}
		}

		return CompletionResult{
			State:                state,
			NewCompletion:        newCompletion,
			LeveledUp:            leveledUp,
			NewLevel:             state.Character.CurrentLevel,
			UnlockedAchievements: newlyUnlocked,
		}, nil
	}
}
