package storage

import (
	"context"

	"github.com/iudanet/ucenter/internal/models"
)

// AccountStorage defines interface for account records persistence
type AccountStorage interface {
	// GetAccount retrieves account by ID
	// Returns ErrAccountNotFound if account doesn't exist
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)

	// UpsertAccount creates the account or replaces all its fields
	UpsertAccount(ctx context.Context, account *models.Account) error
}
