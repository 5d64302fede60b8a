package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/ucenter/internal/server/storage"
)

var (
	// BoltDB bucket names
	bucketApps    = []byte("apps")
	bucketAccount = []byte("accounts")
	bucketAppData = []byte("app_account_data")
)

var _ storage.Storage = (*Storage)(nil)

// Storage represents BoltDB document storage implementation for server.
// Каждая запись хранится как JSON документ под своим идентификатором.
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping checks that the database file is still open
func (s *Storage) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketApps) == nil {
			return fmt.Errorf("apps bucket not found")
		}
		return nil
	})
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketApps, bucketAccount, bucketAppData} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// getDocument читает JSON документ, found=false если ключа нет
func getDocument(tx *bbolt.Tx, bucketName, key []byte, v any) (bool, error) {
	bucket := tx.Bucket(bucketName)
	if bucket == nil {
		return false, fmt.Errorf("%s bucket not found", bucketName)
	}

	raw := bucket.Get(key)
	if raw == nil {
		return false, nil
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("failed to unmarshal document: %w", err)
	}

	return true, nil
}

// putDocument сериализует v в JSON и сохраняет под ключом
func putDocument(tx *bbolt.Tx, bucketName, key []byte, v any) error {
	bucket := tx.Bucket(bucketName)
	if bucket == nil {
		return fmt.Errorf("%s bucket not found", bucketName)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := bucket.Put(key, raw); err != nil {
		return fmt.Errorf("failed to put document: %w", err)
	}

	return nil
}
