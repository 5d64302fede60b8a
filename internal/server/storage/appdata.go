package storage

import (
	"context"

	"github.com/iudanet/ucenter/internal/models"
)

// AppDataStorage defines interface for per (app, account) data persistence
type AppDataStorage interface {
	// GetAppData retrieves data record by composite key
	// Returns ErrAppDataNotFound if nothing was written for the pair
	GetAppData(ctx context.Context, key models.AppAccountDataKey) (*models.AppAccountData, error)

	// UpsertAppData creates or fully replaces the record addressed by data.Key()
	// No version check: the last write wins
	UpsertAppData(ctx context.Context, data *models.AppAccountData) error
}

// Storage объединяет все хранилища, которые нужны серверу
type Storage interface {
	AppStorage
	AccountStorage
	AppDataStorage

	// Ping проверяет доступность хранилища
	Ping(ctx context.Context) error
	Close() error
}
