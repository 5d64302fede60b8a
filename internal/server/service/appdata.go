package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/ucenter/internal/models"
	"github.com/iudanet/ucenter/internal/server/storage"
)

// AppAccountDataResult данные аккаунта в приложении.
// Data равен nil, если для пары еще ничего не записано.
type AppAccountDataResult struct {
	Data      *string
	AppID     string
	AccountID string
}

// ReadData возвращает данные пары или nil, если записи нет.
// Отсутствие записи не является ошибкой и отличается от пустой строки.
func (s *AppService) ReadData(ctx context.Context, key models.AppAccountDataKey) (*string, error) {
	record, err := s.appData.GetAppData(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrAppDataNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get app data: %w", err)
	}

	data := record.Data
	return &data, nil
}

// WriteData заменяет данные пары целиком (создает запись при первой записи).
// Версии не проверяются: при параллельной записи побеждает последний upsert.
func (s *AppService) WriteData(ctx context.Context, key models.AppAccountDataKey, data string) (string, error) {
	now := s.now()

	record, err := s.appData.GetAppData(ctx, key)
	switch {
	case err == nil:
		record.Data = data
		record.UpdatedAt = now
	case errors.Is(err, storage.ErrAppDataNotFound):
		record = &models.AppAccountData{
			AppID:     key.AppID,
			AccountID: key.AccountID,
			Data:      data,
			CreatedAt: now,
			UpdatedAt: now,
		}
	default:
		return "", fmt.Errorf("failed to get app data: %w", err)
	}

	if err := s.appData.UpsertAppData(ctx, record); err != nil {
		return "", fmt.Errorf("failed to upsert app data: %w", err)
	}

	return record.Data, nil
}

// ReadAppAccountData проверяет приложение и существование аккаунта, затем читает данные
func (s *AppService) ReadAppAccountData(ctx context.Context, appID, appSecret, accountID string) (*AppAccountDataResult, error) {
	key, err := s.authorizeDataAccess(ctx, appID, appSecret, accountID)
	if err != nil {
		return nil, err
	}

	data, err := s.ReadData(ctx, key)
	if err != nil {
		return nil, err
	}

	return &AppAccountDataResult{
		AppID:     appID,
		AccountID: accountID,
		Data:      data,
	}, nil
}

// WriteAppAccountData проверяет приложение и существование аккаунта, затем записывает данные
func (s *AppService) WriteAppAccountData(ctx context.Context, appID, appSecret, accountID, data string) (*AppAccountDataResult, error) {
	key, err := s.authorizeDataAccess(ctx, appID, appSecret, accountID)
	if err != nil {
		return nil, err
	}

	stored, err := s.WriteData(ctx, key, data)
	if err != nil {
		return nil, err
	}

	return &AppAccountDataResult{
		AppID:     appID,
		AccountID: accountID,
		Data:      &stored,
	}, nil
}

// authorizeDataAccess общая цепочка проверок для чтения и записи данных
func (s *AppService) authorizeDataAccess(ctx context.Context, appID, appSecret, accountID string) (models.AppAccountDataKey, error) {
	if _, err := s.VerifyApp(ctx, appID, appSecret); err != nil {
		return models.AppAccountDataKey{}, err
	}

	if _, err := s.GetAccount(ctx, accountID); err != nil {
		return models.AppAccountDataKey{}, err
	}

	return models.NewAppAccountDataKey(appID, accountID), nil
}
