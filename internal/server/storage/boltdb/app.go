package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/ucenter/internal/models"
	"github.com/iudanet/ucenter/internal/server/storage"
)

// GetApp retrieves app by ID
func (s *Storage) GetApp(ctx context.Context, appID string) (*models.App, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	app := &models.App{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		found, err := getDocument(tx, bucketApps, []byte(appID), app)
		if err != nil {
			return err
		}
		if !found {
			return storage.ErrAppNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return app, nil
}

// CreateApp inserts a new app, existing app with the same ID is left untouched
func (s *Storage) CreateApp(ctx context.Context, app *models.App) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketApps).Get([]byte(app.ID)) != nil {
			return storage.ErrAppAlreadyExists
		}
		if err := putDocument(tx, bucketApps, []byte(app.ID), app); err != nil {
			return fmt.Errorf("failed to insert app: %w", err)
		}
		return nil
	})
}

// UpdateAppToken replaces the session token of the app
func (s *Storage) UpdateAppToken(ctx context.Context, appID, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		app := &models.App{}
		found, err := getDocument(tx, bucketApps, []byte(appID), app)
		if err != nil {
			return err
		}
		if !found {
			return storage.ErrAppNotFound
		}

		app.Token = token
		app.UpdatedAt = time.Now()

		if err := putDocument(tx, bucketApps, []byte(appID), app); err != nil {
			return fmt.Errorf("failed to update app token: %w", err)
		}
		return nil
	})
}
