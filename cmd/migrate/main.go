package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ltnguyen/hanhtrinh/internal/adapters/database"
	"github.com/ltnguyen/hanhtrinh/internal/adapters/progressrepository"
	"github.com/ltnguyen/hanhtrinh/internal/config"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	fail := func(msg string, args ...any) {
		logger.Error(msg, args...)
		os.Exit(1)
	}

	conf, err := config.ConfigFromEnv()
	if err != nil {
		fail("Failed to load config", "error", err.Error())
	}
	logger.Info("Loaded config", "config", conf.NonSensitiveString())

	db, err := database.NewConfiguredPostgresDatabase(conf)
	if err != nil {
		fail("Failed to initialize database connection", "error", err.Error())
	}

	schemaName := progressrepository.GetSchemaName(!conf.IsProduction())

	err = database.NewDatabaseMigrator(db, logger.With("component", "migrator")).Migrate(context.Background(), schemaName)
	if err != nil {
		fail("Failed to migrate database", "error", err.Error())
	}

	logger.Info("Migrations complete", "schema", schemaName)
}
