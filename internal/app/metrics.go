package app

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type appMetricsCollection struct {
	milestoneCompletions metric.Int64Counter
	achievementUnlocks   metric.Int64Counter
	levelUps             metric.Int64Counter
	saveFailures         metric.Int64Counter
	gamePlayTime         metric.Float64Histogram
}

var metrics appMetricsCollection

func init() {
	const name = "hanhtrinh/app"
	meter := otel.Meter(name)

	milestoneCompletions, err := meter.Int64Counter(
		"app/milestone_completions",
		metric.WithDescription("Total number of milestone completions recorded"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create milestone completions metric: %w", err))
	}

	achievementUnlocks, err := meter.Int64Counter(
		"app/achievement_unlocks",
		metric.WithDescription("Total number of achievements unlocked"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create achievement unlocks metric: %w", err))
	}

	levelUps, err := meter.Int64Counter(
		"app/character_level_ups",
		metric.WithDescription("Total number of character level ups"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create level ups metric: %w", err))
	}

	saveFailures, err := meter.Int64Counter(
		"app/save_failures",
		metric.WithDescription("Total number of failed progress writes"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create save failures metric: %w", err))
	}

	gamePlayTime, err := meter.Float64Histogram(
		"app/game_play_time_seconds",
		metric.WithDescription("Reported play time per completed mini-game"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create game play time metric: %w", err))
	}

	metrics = appMetricsCollection{
		milestoneCompletions: milestoneCompletions,
		achievementUnlocks:   achievementUnlocks,
		levelUps:             levelUps,
		saveFailures:         saveFailures,
		gamePlayTime:         gamePlayTime,
	}
}
