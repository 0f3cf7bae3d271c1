package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ltnguyen/hanhtrinh/internal/adapters/progressrepository"
	"github.com/ltnguyen/hanhtrinh/internal/app"
	"github.com/ltnguyen/hanhtrinh/internal/catalog"
	"github.com/ltnguyen/hanhtrinh/internal/domain"
	"github.com/ltnguyen/hanhtrinh/internal/logging"
	"github.com/ltnguyen/hanhtrinh/internal/scoring"
	"github.com/ltnguyen/hanhtrinh/internal/telemetry"
)

// simulate plays a perfect run through every milestone against a throwaway
// sqlite save file. It exercises the whole stack end to end: game sessions,
// completion handling, persistence and achievements.

func playMilestone(milestone domain.Milestone, clock scoring.Clock, rng *rand.Rand) (scoring.Result, error) {
	switch game := milestone.Game.(type) {
	case domain.QuizPayload:
		session, err := scoring.NewQuizSession(game, milestone.TimeLimitSeconds, clock)
		if err != nil {
			return scoring.Result{}, err
		}
		for !session.Done() {
			_, question := session.CurrentQuestion()
			if _, err := session.Answer(question.CorrectAnswer); err != nil {
				return scoring.Result{}, err
			}
			if err := session.Next(); err != nil {
				return scoring.Result{}, err
			}
		}
		return session.Finalize()
	case domain.ImageQuizPayload:
		session, err := scoring.NewImageQuizSession(game, clock)
		if err != nil {
			return scoring.Result{}, err
		}
		for !session.Done() {
			_, question := session.CurrentQuestion()
			if _, err := session.Answer(question.CorrectAnswer); err != nil {
				return scoring.Result{}, err
			}
			if err := session.Next(); err != nil {
				return scoring.Result{}, err
			}
		}
		return session.Finalize()
	case domain.ImageMatchPayload:
		session, err := scoring.NewImageMatchSession(game, clock)
		if err != nil {
			return scoring.Result{}, err
		}
		for _, pair := range game.Pairs {
			if _, err := session.Match(pair.ID, pair.ID); err != nil {
				return scoring.Result{}, err
			}
		}
		return session.Finalize()
	case domain.TimelineSortPayload:
		session, err := scoring.NewTimelineSession(game, clock, rng)
		if err != nil {
			return scoring.Result{}, err
		}
		for target := 0; target < len(game.Events); target++ {
			for from, event := range session.Events() {
				if event.CorrectOrder == target {
					if err := session.Move(from, target); err != nil {
						return scoring.Result{}, err
					}
					break
				}
			}
		}
		if _, err := session.Check(); err != nil {
			return scoring.Result{}, err
		}
		return session.Finalize()
	case domain.MemoryPayload:
		session, err := scoring.NewMemorySession(game, clock, rng)
		if err != nil {
			return scoring.Result{}, err
		}
		positions := make(map[string][]int)
		for i, card := range session.Cards() {
			positions[card.PairID] = append(positions[card.PairID], i)
		}
		for _, pair := range positions {
			for _, position := range pair {
				if _, err := session.Flip(position); err != nil {
					return scoring.Result{}, err
				}
			}
		}
		return session.Finalize()
	case domain.FillBlankPayload:
		session, err := scoring.NewFillBlankSession(game, clock)
		if err != nil {
			return scoring.Result{}, err
		}
		for i, answer := range game.Blanks {
			if err := session.Place(answer, i); err != nil {
				return scoring.Result{}, err
			}
		}
		if _, err := session.Check(); err != nil {
			return scoring.Result{}, err
		}
		return session.Finalize()
	case domain.WheelFortunePayload:
		session, err := scoring.NewWheelSession(game, clock, rng)
		if err != nil {
			return scoring.Result{}, err
		}
		if _, err := session.GuessPhrase(game.Phrase); err != nil {
			return scoring.Result{}, err
		}
		return session.Finalize()
	default:
		return scoring.Result{}, fmt.Errorf("unknown game type %q", milestone.GameType())
	}
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	fail := func(msg string, args ...any) {
		logger.Error(msg, args...)
		os.Exit(1)
	}

	ctx := logging.AddToContext(context.Background(), logger)

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		shutdown, err := telemetry.SetupOTelSDK(ctx, "hanhtrinh-simulate")
		if err != nil {
			fail("Failed to set up metrics", "error", err.Error())
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Error("Failed to shut down metrics", "error", err.Error())
			}
		}()
	}

	db, err := progressrepository.NewSQLiteDatabase("hanhtrinh-simulate.db")
	if err != nil {
		fail("Failed to open save file", "error", err.Error())
	}
	repo := progressrepository.NewSQLiteProgressRepository(db)

	cat := catalog.Default()
	completeMilestone := app.BuildCompleteMilestone(repo, cat, time.Now)

	slotID := uuid.New().String()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	logger.Info("Simulating journey", "slotID", slotID)

	var result app.CompletionResult
	for _, milestone := range cat.All() {
		gameResult, err := playMilestone(milestone, scoring.RealClock(), rng)
		if err != nil {
			fail("Failed to play milestone", "milestoneID", milestone.ID, "error", err.Error())
		}

		result, err = completeMilestone(ctx, slotID, milestone.ID, gameResult.Score, gameResult.PlayTimeSeconds)
		if err != nil {
			fail("Failed to complete milestone", "milestoneID", milestone.ID, "error", err.Error())
		}

		fmt.Printf("%s: %d/%d points", milestone.ID, gameResult.Score, milestone.MaxScore)
		if result.LeveledUp {
			fmt.Printf(" (level %d)", result.NewLevel)
		}
		for _, id := range result.UnlockedAchievements {
			if achievement, ok := domain.AchievementByID(id); ok {
				fmt.Printf(" %s", achievement.Icon)
			}
		}
		fmt.Println()
	}

	fmt.Printf("\nTotal: %d/%d, achievements: %d/%d\n",
		result.State.TotalScore, cat.TotalMaxScore(),
		len(result.State.Achievements), len(domain.Achievements),
	)
}
