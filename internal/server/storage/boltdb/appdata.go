package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/ucenter/internal/models"
	"github.com/iudanet/ucenter/internal/server/storage"
)

// GetAppData retrieves data document by its flat composite key "appId##accountId"
func (s *Storage) GetAppData(ctx context.Context, key models.AppAccountDataKey) (*models.AppAccountData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := &models.AppAccountData{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		found, err := getDocument(tx, bucketAppData, []byte(key.String()), data)
		if err != nil {
			return err
		}
		if !found {
			return storage.ErrAppDataNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

// UpsertAppData creates or fully replaces the data document of the pair
func (s *Storage) UpsertAppData(ctx context.Context, data *models.AppAccountData) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := putDocument(tx, bucketAppData, []byte(data.Key().String()), data); err != nil {
			return fmt.Errorf("failed to upsert app data: %w", err)
		}
		return nil
	})
}
