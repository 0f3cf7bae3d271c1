package config

import (
	"errors"
	"fmt"
	"os"
)

var ErrMissingRequiredValue = errors.New("missing required value")
var ErrInvalidValue = errors.New("invalid value")

type environment string

const (
	production  environment = "production"
	staging     environment = "staging"
	development environment = "development"
)

type storageBackend string

const (
	// StoragePostgres keeps save slots in a shared postgres database.
	StoragePostgres storageBackend = "postgres"
	// StorageSQLite keeps save slots in a local file, for offline play.
	StorageSQLite storageBackend = "sqlite"
)

type Config struct {
	storageBackend storageBackend
	dBHost         string
	dBPassword     string
	dBUsername     string
	sqlitePath     string
	sentryDSN      string
	env            environment
}

func (c *Config) StorageBackend() storageBackend {
	return c.storageBackend
}

func (c *Config) DBHost() string {
	return c.dBHost
}

func (c *Config) DBPassword() string {
	return c.dBPassword
}

func (c *Config) DBUsername() string {
	return c.dBUsername
}

func (c *Config) SQLitePath() string {
	return c.sqlitePath
}

func (c *Config) SentryDSN() string {
	return c.sentryDSN
}

func (c *Config) IsProduction() bool {
	return c.env == production
}

func (c *Config) IsStaging() bool {
	return c.env == staging
}

func (c *Config) IsDevelopment() bool {
	return c.env == development
}

// Return a string representation suitable for logging etc
func (c *Config) NonSensitiveString() string {
	return fmt.Sprintf("Config{env: %s, storage: %s, ...}", string(c.env), string(c.storageBackend))
}

func ConfigFromEnv() (Config, error) {
	missingKey := func(key string) (Config, error) {
		return Config{}, fmt.Errorf("%w: %s", ErrMissingRequiredValue, key)
	}

	var env environment
	rawEnv, ok := os.LookupEnv("HANHTRINH_ENVIRONMENT")
	if !ok {
		return missingKey("HANHTRINH_ENVIRONMENT")
	}
	switch rawEnv {
	case "production":
		env = production
	case "staging":
		env = staging
	case "development":
		env = development
	default:
		return Config{}, fmt.Errorf("%w: HANHTRINH_ENVIRONMENT (%s)", ErrInvalidValue, rawEnv)
	}
	if string(env) == "" {
		panic("logic error: env is empty")
	}

	backend := StoragePostgres
	rawBackend, ok := os.LookupEnv("STORAGE_BACKEND")
	if ok {
		switch rawBackend {
		case "postgres":
			backend = StoragePostgres
		case "sqlite":
			backend = StorageSQLite
		default:
			return Config{}, fmt.Errorf("%w: STORAGE_BACKEND (%s)", ErrInvalidValue, rawBackend)
		}
	}

	dbHost := os.Getenv("DB_HOST")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbUsername := os.Getenv("DB_USERNAME")
	sqlitePath := os.Getenv("SQLITE_PATH")
	sentryDSN := os.Getenv("SENTRY_DSN")

	if env == production || env == staging {
		if sentryDSN == "" {
			return missingKey("SENTRY_DSN")
		}
		if backend == StoragePostgres {
			if dbHost == "" {
				return missingKey("DB_HOST")
			}
			if dbUsername == "" {
				return missingKey("DB_USERNAME")
			}
			if dbPassword == "" {
				return missingKey("DB_PASSWORD")
			}
		}
		if backend == StorageSQLite && sqlitePath == "" {
			return missingKey("SQLITE_PATH")
		}
	}

	return Config{
		storageBackend: backend,
		dBHost:         dbHost,
		dBPassword:     dbPassword,
		dBUsername:     dbUsername,
		sqlitePath:     sqlitePath,
		sentryDSN:      sentryDSN,
		env:            env,
	}, nil
}
