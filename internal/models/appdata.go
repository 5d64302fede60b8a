package models

import "time"

// AppAccountDataKeySeparator разделитель составного ключа в плоском виде.
// Символ '#' запрещен в идентификаторах (см. validation.ValidateID),
// поэтому разделитель однозначен.
const AppAccountDataKeySeparator = "##"

// AppAccountDataKey адресует данные одного аккаунта в одном приложении
type AppAccountDataKey struct {
	AppID     string
	AccountID string
}

// NewAppAccountDataKey создает ключ для пары (приложение, аккаунт)
func NewAppAccountDataKey(appID, accountID string) AppAccountDataKey {
	return AppAccountDataKey{AppID: appID, AccountID: accountID}
}

// String возвращает плоское представление ключа для хранилищ с одним ключом
func (k AppAccountDataKey) String() string {
	return k.AppID + AppAccountDataKeySeparator + k.AccountID
}

// AppAccountData непрозрачные данные приложения для конкретного аккаунта
type AppAccountData struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	AppID     string    `json:"app_id"`
	AccountID string    `json:"account_id"`
	Data      string    `json:"data"` // заменяется целиком при записи
}

// Key возвращает составной ключ записи
func (d *AppAccountData) Key() AppAccountDataKey {
	return NewAppAccountDataKey(d.AppID, d.AccountID)
}
