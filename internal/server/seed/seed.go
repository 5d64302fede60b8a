// Package seed импортирует аккаунты из YAML файла.
// Регистрации аккаунтов в брокере нет, это единственный способ их создать.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/iudanet/ucenter/internal/crypto"
	"github.com/iudanet/ucenter/internal/models"
	"github.com/iudanet/ucenter/internal/validation"
)

// AccountSeed запись аккаунта в файле импорта.
// Пустые id и token генерируются.
type AccountSeed struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Token string `yaml:"token"`
}

// File формат файла импорта
type File struct {
	Accounts []AccountSeed `yaml:"accounts"`
}

// AccountWriter сохраняет аккаунты
type AccountWriter interface {
	UpsertAccount(ctx context.Context, account *models.Account) error
}

// Parse читает файл импорта, неизвестные поля считаются ошибкой
func Parse(r io.Reader) ([]AccountSeed, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var file File
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	return file.Accounts, nil
}

// Load читает файл импорта с диска
func Load(path string) ([]AccountSeed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return Parse(f)
}

// Seeder записывает аккаунты в хранилище
type Seeder struct {
	logger   *slog.Logger
	store    AccountWriter
	now      func() time.Time
	newID    func() string
	newToken func() (string, error)
}

// Option настраивает Seeder
type Option func(*Seeder)

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(s *Seeder) {
		s.now = now
	}
}

// New создает Seeder
func New(logger *slog.Logger, store AccountWriter, opts ...Option) *Seeder {
	s := &Seeder{
		logger:   logger,
		store:    store,
		now:      time.Now,
		newID:    uuid.NewString,
		newToken: crypto.GenerateToken,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Apply проверяет все записи и затем сохраняет их.
// Возвращает сохраненные аккаунты с итоговыми id и токенами.
// Повторный импорт того же id заменяет имя и токен.
func (s *Seeder) Apply(ctx context.Context, seeds []AccountSeed) ([]models.Account, error) {
	now := s.now().UTC()
	accounts := make([]models.Account, 0, len(seeds))
	seen := make(map[string]int, len(seeds))

	var errs []error
	for i, seed := range seeds {
		account, err := s.prepare(seed, now)
		if err != nil {
			errs = append(errs, fmt.Errorf("account #%d: %w", i+1, err))
			continue
		}
		if prev, ok := seen[account.ID]; ok {
			errs = append(errs, fmt.Errorf("account #%d: duplicate id %q (first seen in #%d)", i+1, account.ID, prev+1))
			continue
		}
		seen[account.ID] = i
		accounts = append(accounts, account)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	for i := range accounts {
		if err := s.store.UpsertAccount(ctx, &accounts[i]); err != nil {
			return nil, fmt.Errorf("failed to save account %s: %w", accounts[i].ID, err)
		}
		s.logger.Info("account seeded",
			slog.String("account_id", accounts[i].ID),
			slog.String("name", accounts[i].Name))
	}

	return accounts, nil
}

func (s *Seeder) prepare(seed AccountSeed, now time.Time) (models.Account, error) {
	id := seed.ID
	if id == "" {
		id = s.newID()
	}
	if err := validation.ValidateID("id", id); err != nil {
		return models.Account{}, err
	}

	token := seed.Token
	if token == "" {
		var err error
		token, err = s.newToken()
		if err != nil {
			return models.Account{}, err
		}
	}
	if err := validation.ValidateCredential("token", token); err != nil {
		return models.Account{}, err
	}

	name := seed.Name
	if name == "" {
		name = id
	}

	return models.Account{
		ID:          id,
		Name:        name,
		Token:       token,
		LastLoginAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
