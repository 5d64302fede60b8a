package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/iudanet/ucenter/internal/models"
)

//go:generate moq -out store_mock_test.go . AppStore AccountStore AppDataStore TokenIssuer

// AppStore хранилище приложений
type AppStore interface {
	GetApp(ctx context.Context, appID string) (*models.App, error)
	CreateApp(ctx context.Context, app *models.App) error
	UpdateAppToken(ctx context.Context, appID, token string) error
}

// AccountStore хранилище аккаунтов (только чтение: аккаунты создаются вне сервиса)
type AccountStore interface {
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)
}

// AppDataStore хранилище данных приложений по аккаунтам
type AppDataStore interface {
	GetAppData(ctx context.Context, key models.AppAccountDataKey) (*models.AppAccountData, error)
	UpsertAppData(ctx context.Context, data *models.AppAccountData) error
}

// TokenIssuer выдает токены сессии приложений
type TokenIssuer interface {
	IssueAppToken(appID string) (string, int64, error)
}

// AppService проверяет приложения и аккаунты и управляет данными аккаунтов.
// Сервис не хранит состояния между запросами: каждая операция
// читает и пишет хранилище в рамках контекста запроса.
type AppService struct {
	apps     AppStore
	accounts AccountStore
	appData  AppDataStore
	tokens   TokenIssuer
	logger   *slog.Logger
	now      func() time.Time
}

// Option настраивает AppService
type Option func(*AppService)

// WithClock подменяет источник текущего времени (для тестов)
func WithClock(now func() time.Time) Option {
	return func(s *AppService) {
		s.now = now
	}
}

// New создает AppService
func New(logger *slog.Logger, apps AppStore, accounts AccountStore, appData AppDataStore, tokens TokenIssuer, opts ...Option) *AppService {
	s := &AppService{
		apps:     apps,
		accounts: accounts,
		appData:  appData,
		tokens:   tokens,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
