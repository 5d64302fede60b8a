package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/ucenter/internal/models"
	"github.com/iudanet/ucenter/internal/server/storage"
)

// GetAccount retrieves account by ID
func (s *Storage) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	account := &models.Account{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		found, err := getDocument(tx, bucketAccount, []byte(accountID), account)
		if err != nil {
			return err
		}
		if !found {
			return storage.ErrAccountNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// UpsertAccount creates the account or replaces the whole document.
// CreatedAt существующего документа сохраняется.
func (s *Storage) UpsertAccount(ctx context.Context, account *models.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		doc := *account

		existing := &models.Account{}
		found, err := getDocument(tx, bucketAccount, []byte(account.ID), existing)
		if err != nil {
			return err
		}
		if found {
			doc.CreatedAt = existing.CreatedAt
		}

		if err := putDocument(tx, bucketAccount, []byte(account.ID), &doc); err != nil {
			return fmt.Errorf("failed to upsert account: %w", err)
		}
		return nil
	})
}
