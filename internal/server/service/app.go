package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/ucenter/internal/crypto"
	"github.com/iudanet/ucenter/internal/models"
	"github.com/iudanet/ucenter/internal/server/storage"
)

// AppLoginResult результат логина приложения
type AppLoginResult struct {
	AppID     string
	AppToken  string
	ExpiresIn int64
}

// VerifyApp проверяет, что приложение существует и секрет совпадает.
// Должна выполняться до любого обращения к аккаунтам и данным.
func (s *AppService) VerifyApp(ctx context.Context, appID, appSecret string) (*models.App, error) {
	app, err := s.apps.GetApp(ctx, appID)
	if err != nil {
		if errors.Is(err, storage.ErrAppNotFound) {
			return nil, ErrAppNotExist
		}
		return nil, fmt.Errorf("failed to get app: %w", err)
	}

	if !crypto.Equal(appSecret, app.Secret) {
		return nil, ErrAppAuthFailedSecretNotMatch
	}

	return app, nil
}

// CreateApp регистрирует приложение. Повторный вызов с тем же appID
// ничего не меняет и возвращает ранее сохраненную запись (секрет из
// запроса при этом игнорируется).
func (s *AppService) CreateApp(ctx context.Context, appID, appSecret string) (*models.App, error) {
	app, err := s.apps.GetApp(ctx, appID)
	if err == nil {
		return app, nil
	}
	if !errors.Is(err, storage.ErrAppNotFound) {
		return nil, fmt.Errorf("failed to get app: %w", err)
	}

	now := s.now()
	app = &models.App{
		ID:        appID,
		Name:      appID,
		Secret:    appSecret,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.apps.CreateApp(ctx, app); err != nil {
		if !errors.Is(err, storage.ErrAppAlreadyExists) {
			return nil, fmt.Errorf("failed to create app: %w", err)
		}

		// Параллельный запрос успел создать приложение раньше - возвращаем его запись
		s.logger.DebugContext(ctx, "app created concurrently", slog.String("app_id", appID))
		existing, err := s.apps.GetApp(ctx, appID)
		if err != nil {
			return nil, fmt.Errorf("failed to get app: %w", err)
		}
		return existing, nil
	}

	return app, nil
}

// LoginApp проверяет приложение и выдает ему новый токен сессии.
// Предыдущий токен приложения заменяется.
func (s *AppService) LoginApp(ctx context.Context, appID, appSecret string) (*AppLoginResult, error) {
	if _, err := s.VerifyApp(ctx, appID, appSecret); err != nil {
		return nil, err
	}

	token, expiresIn, err := s.tokens.IssueAppToken(appID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue app token: %w", err)
	}

	if err := s.apps.UpdateAppToken(ctx, appID, token); err != nil {
		if errors.Is(err, storage.ErrAppNotFound) {
			return nil, ErrAppNotExist
		}
		return nil, fmt.Errorf("failed to save app token: %w", err)
	}

	return &AppLoginResult{
		AppID:     appID,
		AppToken:  token,
		ExpiresIn: expiresIn,
	}, nil
}
