package storage

import (
	"context"

	"github.com/iudanet/ucenter/internal/models"
)

// AppStorage defines interface for app records persistence
type AppStorage interface {
	// GetApp retrieves app by ID
	// Returns ErrAppNotFound if app doesn't exist
	GetApp(ctx context.Context, appID string) (*models.App, error)

	// CreateApp inserts a new app
	// Returns ErrAppAlreadyExists if app with the same ID exists, existing record is not touched
	CreateApp(ctx context.Context, app *models.App) error

	// UpdateAppToken replaces the session token of the app
	// Returns ErrAppNotFound if app doesn't exist
	UpdateAppToken(ctx context.Context, appID, token string) error
}
