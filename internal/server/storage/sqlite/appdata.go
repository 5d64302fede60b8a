package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/ucenter/internal/models"
	"github.com/iudanet/ucenter/internal/server/storage"
)

// GetAppData retrieves data record by composite key
func (s *Storage) GetAppData(ctx context.Context, key models.AppAccountDataKey) (*models.AppAccountData, error) {
	query := `
		SELECT app_id, account_id, data, created_at, updated_at
		FROM app_account_data
		WHERE app_id = ? AND account_id = ?
	`

	data := &models.AppAccountData{}
	var createdAt, updatedAt int64

	err := s.db.QueryRowContext(ctx, query, key.AppID, key.AccountID).Scan(
		&data.AppID,
		&data.AccountID,
		&data.Data,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAppDataNotFound
		}
		return nil, fmt.Errorf("failed to get app data: %w", err)
	}

	data.CreatedAt = millisToTime(createdAt)
	data.UpdatedAt = millisToTime(updatedAt)

	return data, nil
}

// UpsertAppData creates or fully replaces the record for the (app, account) pair
func (s *Storage) UpsertAppData(ctx context.Context, data *models.AppAccountData) error {
	query := `
		INSERT INTO app_account_data (app_id, account_id, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (app_id, account_id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		data.AppID,
		data.AccountID,
		data.Data,
		timeToMillis(data.CreatedAt),
		timeToMillis(data.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert app data: %w", err)
	}

	return nil
}
