package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/ucenter/internal/crypto"
	"github.com/iudanet/ucenter/internal/models"
	"github.com/iudanet/ucenter/internal/server/storage"
)

// AccountSnapshot состояние аккаунта, возвращаемое после проверки
type AccountSnapshot struct {
	LastLoginAt  time.Time
	LastVerifyAt time.Time
	AccountID    string
	AccountName  string
	AccountToken string
}

// GetAccount проверяет только существование аккаунта
func (s *AppService) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	account, err := s.accounts.GetAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return nil, ErrAccountNotExist
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// VerifyAccount проверяет существование аккаунта и точное совпадение токена
func (s *AppService) VerifyAccount(ctx context.Context, accountID, accountToken string) (*models.Account, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if !crypto.Equal(accountToken, account.Token) {
		return nil, ErrAccountLoginFailedTokenNotMatch
	}

	return account, nil
}

// LoginAndVerifyAccount проверяет приложение, затем аккаунт с токеном.
// LastVerifyAt вычисляется на момент ответа и не сохраняется.
func (s *AppService) LoginAndVerifyAccount(ctx context.Context, appID, appSecret, accountID, accountToken string) (*AccountSnapshot, error) {
	if _, err := s.VerifyApp(ctx, appID, appSecret); err != nil {
		return nil, err
	}

	account, err := s.VerifyAccount(ctx, accountID, accountToken)
	if err != nil {
		return nil, err
	}

	return &AccountSnapshot{
		AccountID:    account.ID,
		AccountName:  account.Name,
		AccountToken: account.Token,
		LastLoginAt:  account.LastLoginAt,
		LastVerifyAt: s.now().UTC(),
	}, nil
}
