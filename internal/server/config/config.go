package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Поддерживаемые типы хранилища
const (
	StorageSQLite = "sqlite"
	StorageBolt   = "bolt"
)

// minMasterSecretLen минимальная длина мастер-секрета для подписи токенов
const minMasterSecretLen = 16

// Config конфигурация сервера.
// Значения читаются из переменных окружения UCENTER_*, флаги командной строки их переопределяют.
type Config struct {
	Addr            string        `env:"UCENTER_ADDR"             envDefault:":8080"`
	Storage         string        `env:"UCENTER_STORAGE"          envDefault:"sqlite"`
	DBPath          string        `env:"UCENTER_DB_PATH"          envDefault:"ucenter.db"`
	MasterSecret    string        `env:"UCENTER_MASTER_SECRET"`
	LogLevel        string        `env:"UCENTER_LOG_LEVEL"        envDefault:"info"`
	LogFormat       string        `env:"UCENTER_LOG_FORMAT"       envDefault:"text"`
	AppTokenTTL     time.Duration `env:"UCENTER_APP_TOKEN_TTL"    envDefault:"24h"`
	RequestTimeout  time.Duration `env:"UCENTER_REQUEST_TIMEOUT"  envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"UCENTER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RateLimit       float64       `env:"UCENTER_RATE_LIMIT"       envDefault:"50"`
	RateBurst       int           `env:"UCENTER_RATE_BURST"       envDefault:"100"`
	TrustProxy      bool          `env:"UCENTER_TRUST_PROXY"      envDefault:"false"`
	ShowVersion     bool
}

// Load собирает конфигурацию: флаги, затем .env файл (если задан -env-file),
// затем переменные окружения. Явно заданные флаги имеют приоритет.
// Возвращает flag.ErrHelp, если запрошена справка.
func Load(name string, args []string, output io.Writer) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	var (
		addr        = fs.String("addr", "", "HTTP listen address (env UCENTER_ADDR)")
		dbPath      = fs.String("db", "", "Path to database file (env UCENTER_DB_PATH)")
		storageType = fs.String("storage", "", "Storage backend: sqlite or bolt (env UCENTER_STORAGE)")
		envFile     = fs.String("env-file", "", "Optional .env file with UCENTER_* variables")
		showVersion = fs.Bool("version", false, "Show version information")
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{ShowVersion: *showVersion}
	if cfg.ShowVersion {
		return cfg, nil
	}

	if *envFile != "" {
		// Уже установленные переменные окружения не перезаписываются
		if err := godotenv.Load(*envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", *envFile, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Addr = *addr
		case "db":
			cfg.DBPath = *dbPath
		case "storage":
			cfg.Storage = *storageType
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	var errs []error

	if c.Addr == "" {
		errs = append(errs, errors.New("listen address cannot be empty"))
	}

	switch c.Storage {
	case StorageSQLite, StorageBolt:
	default:
		errs = append(errs, fmt.Errorf("unknown storage %q, expected %s or %s", c.Storage, StorageSQLite, StorageBolt))
	}

	if c.DBPath == "" {
		errs = append(errs, errors.New("database path cannot be empty"))
	}

	if len(c.MasterSecret) < minMasterSecretLen {
		errs = append(errs, fmt.Errorf("UCENTER_MASTER_SECRET must be at least %d characters", minMasterSecretLen))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}

	if c.AppTokenTTL <= 0 {
		errs = append(errs, errors.New("app token TTL must be positive"))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("request timeout must be positive"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown timeout must be positive"))
	}
	if c.RateLimit <= 0 || c.RateBurst <= 0 {
		errs = append(errs, errors.New("rate limit and burst must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
