package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/ucenter/internal/models"
	"github.com/iudanet/ucenter/internal/server/storage"
)

// GetAccount retrieves account by ID
func (s *Storage) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	query := `
		SELECT id, name, token, last_login_at, last_verify_at, created_at, updated_at
		FROM accounts
		WHERE id = ?
	`

	account := &models.Account{}
	var lastLoginAt, lastVerifyAt, createdAt, updatedAt int64

	err := s.db.QueryRowContext(ctx, query, accountID).Scan(
		&account.ID,
		&account.Name,
		&account.Token,
		&lastLoginAt,
		&lastVerifyAt,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	account.LastLoginAt = millisToTime(lastLoginAt)
	account.LastVerifyAt = millisToTime(lastVerifyAt)
	account.CreatedAt = millisToTime(createdAt)
	account.UpdatedAt = millisToTime(updatedAt)

	return account, nil
}

// UpsertAccount creates the account or replaces all its fields except created_at
func (s *Storage) UpsertAccount(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (id, name, token, last_login_at, last_verify_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			token = excluded.token,
			last_login_at = excluded.last_login_at,
			last_verify_at = excluded.last_verify_at,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		account.ID,
		account.Name,
		account.Token,
		timeToMillis(account.LastLoginAt),
		timeToMillis(account.LastVerifyAt),
		timeToMillis(account.CreatedAt),
		timeToMillis(account.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert account: %w", err)
	}

	return nil
}
