package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ltnguyen/hanhtrinh/internal/adapters/database"
	"github.com/ltnguyen/hanhtrinh/internal/adapters/progressrepository"
	"github.com/ltnguyen/hanhtrinh/internal/app"
	"github.com/ltnguyen/hanhtrinh/internal/catalog"
	"github.com/ltnguyen/hanhtrinh/internal/config"
	"github.com/ltnguyen/hanhtrinh/internal/domain"
	"github.com/ltnguyen/hanhtrinh/internal/logging"
	"github.com/ltnguyen/hanhtrinh/internal/reporting"
	"github.com/ltnguyen/hanhtrinh/internal/strutils"
)

// show-progress prints the journey state of one save slot.
//
// Usage: show-progress [slot-id]
//
// Without an argument it shows the default save slot.

func newRepository(conf config.Config, logger *slog.Logger) (progressrepository.ProgressRepository, error) {
	if conf.StorageBackend() == config.StorageSQLite {
		path := conf.SQLitePath()
		if path == "" {
			path = "hanhtrinh.db"
		}
		db, err := progressrepository.NewSQLiteDatabase(path)
		if err != nil {
			return nil, err
		}
		return progressrepository.NewSQLiteProgressRepository(db), nil
	}

	db, err := database.NewConfiguredPostgresDatabase(conf)
	if err != nil {
		return nil, err
	}
	schemaName := progressrepository.GetSchemaName(!conf.IsProduction())
	if err := database.NewDatabaseMigrator(db, logger.With("component", "migrator")).Migrate(context.Background(), schemaName); err != nil {
		return nil, err
	}
	return progressrepository.NewPostgresProgressRepository(db, schemaName), nil
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	fail := func(msg string, args ...any) {
		logger.Error(msg, args...)
		os.Exit(1)
	}

	slotID := domain.DefaultSlotID
	if len(os.Args) >= 2 {
		var err error
		slotID, err = strutils.NormalizeUUID(os.Args[1])
		if err != nil {
			fail("Invalid slot id", "error", err.Error())
		}
	}

	conf, err := config.ConfigFromEnv()
	if err != nil {
		fail("Failed to load config", "error", err.Error())
	}

	flush, err := reporting.NewSentryOrMock(conf)
	if err != nil {
		fail("Failed to initialize Sentry", "error", err.Error())
	}
	defer flush()

	repo, err := newRepository(conf, logger)
	if err != nil {
		fail("Failed to initialize repository", "error", err.Error())
	}

	ctx := reporting.AttachHub(logging.AddToContext(context.Background(), logger))
	ctx = reporting.SetSlotIDInContext(ctx, slotID)
	ctx = reporting.AddTagsToContext(ctx, map[string]string{
		"storage": string(conf.StorageBackend()),
	})

	cat := catalog.Default()
	getJourney := app.BuildGetJourney(progressrepository.NewCachedProgressRepository(repo, time.Minute), cat)

	statuses, state, err := getJourney(ctx, slotID)
	if err != nil {
		fail("Failed to load journey", "error", err.Error())
	}

	fmt.Printf("Slot %s\n", slotID)
	fmt.Printf("Total score: %d/%d\n", state.TotalScore, cat.TotalMaxScore())
	fmt.Printf("Play time: %ds\n", state.TotalPlayTime)
	if stage, ok := domain.StageForLevel(state.Character.CurrentLevel); ok {
		fmt.Printf("Character: level %d (%s)\n", stage.Level, stage.Title)
	}
	fmt.Println()

	for _, status := range statuses {
		marker := " "
		switch {
		case status.Completed:
			marker = "x"
		case status.Current:
			marker = ">"
		}
		lock := ""
		if !status.Unlocked {
			lock = " (locked)"
		}
		fmt.Printf("[%s] %s %s - %d/%d%s\n",
			marker, status.Milestone.ID, status.Milestone.Title,
			status.Score, status.Milestone.MaxScore, lock,
		)
	}

	if len(state.Achievements) > 0 {
		fmt.Println()
		fmt.Println("Achievements:")
		for _, id := range state.Achievements {
			if achievement, ok := domain.AchievementByID(id); ok {
				fmt.Printf("  %s %s - %s\n", achievement.Icon, achievement.Name, achievement.Description)
			}
		}
	}
}
