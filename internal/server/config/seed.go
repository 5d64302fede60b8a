package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// SeedConfig конфигурация импорта аккаунтов.
// Хранилище выбирается теми же переменными UCENTER_*, что и у сервера.
type SeedConfig struct {
	Storage     string `env:"UCENTER_STORAGE"    envDefault:"sqlite"`
	DBPath      string `env:"UCENTER_DB_PATH"    envDefault:"ucenter.db"`
	LogLevel    string `env:"UCENTER_LOG_LEVEL"  envDefault:"info"`
	LogFormat   string `env:"UCENTER_LOG_FORMAT" envDefault:"text"`
	File        string
	ShowVersion bool
}

// LoadSeed собирает конфигурацию импорта по тем же правилам, что и Load
func LoadSeed(name string, args []string, output io.Writer) (*SeedConfig, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	var (
		file        = fs.String("file", "", "YAML file with accounts to import")
		dbPath      = fs.String("db", "", "Path to database file (env UCENTER_DB_PATH)")
		storageType = fs.String("storage", "", "Storage backend: sqlite or bolt (env UCENTER_STORAGE)")
		envFile     = fs.String("env-file", "", "Optional .env file with UCENTER_* variables")
		showVersion = fs.Bool("version", false, "Show version information")
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &SeedConfig{ShowVersion: *showVersion, File: *file}
	if cfg.ShowVersion {
		return cfg, nil
	}

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", *envFile, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "db":
			cfg.DBPath = *dbPath
		case "storage":
			cfg.Storage = *storageType
		}
	})

	var errs []error
	if cfg.File == "" {
		errs = append(errs, errors.New("seed file is required (-file)"))
	}
	switch cfg.Storage {
	case StorageSQLite, StorageBolt:
	default:
		errs = append(errs, fmt.Errorf("unknown storage %q, expected %s or %s", cfg.Storage, StorageSQLite, StorageBolt))
	}
	if cfg.DBPath == "" {
		errs = append(errs, errors.New("database path cannot be empty"))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}

	return cfg, nil
}
