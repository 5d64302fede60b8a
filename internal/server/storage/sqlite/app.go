package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/ucenter/internal/models"
	"github.com/iudanet/ucenter/internal/server/storage"
)

// GetApp retrieves app by ID
func (s *Storage) GetApp(ctx context.Context, appID string) (*models.App, error) {
	query := `
		SELECT id, name, secret, token, created_at, updated_at
		FROM apps
		WHERE id = ?
	`

	app := &models.App{}
	var createdAt, updatedAt int64

	err := s.db.QueryRowContext(ctx, query, appID).Scan(
		&app.ID,
		&app.Name,
		&app.Secret,
		&app.Token,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAppNotFound
		}
		return nil, fmt.Errorf("failed to get app: %w", err)
	}

	app.CreatedAt = millisToTime(createdAt)
	app.UpdatedAt = millisToTime(updatedAt)

	return app, nil
}

// CreateApp inserts a new app, existing app with the same ID is left untouched
func (s *Storage) CreateApp(ctx context.Context, app *models.App) error {
	query := `
		INSERT INTO apps (id, name, secret, token, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`

	result, err := s.db.ExecContext(ctx, query,
		app.ID,
		app.Name,
		app.Secret,
		app.Token,
		timeToMillis(app.CreatedAt),
		timeToMillis(app.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert app: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	// Конфликт по первичному ключу - приложение уже зарегистрировано
	if rows == 0 {
		return storage.ErrAppAlreadyExists
	}

	return nil
}

// UpdateAppToken replaces the session token of the app
func (s *Storage) UpdateAppToken(ctx context.Context, appID, token string) error {
	query := `UPDATE apps SET token = ?, updated_at = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, token, timeToMillis(time.Now()), appID)
	if err != nil {
		return fmt.Errorf("failed to update app token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrAppNotFound
	}

	return nil
}
