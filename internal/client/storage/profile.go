package storage

import (
	"context"
)

// ProfileStorage хранит профиль приложения, от имени которого работает CLI.
// Профиль один: повторное сохранение заменяет предыдущий.
type ProfileStorage interface {
	// SaveProfile сохраняет профиль как есть
	SaveProfile(ctx context.Context, profile *Profile) error

	// GetProfile возвращает ErrProfileNotFound, если профиль не сохранен
	GetProfile(ctx context.Context) (*Profile, error)

	// DeleteProfile удаляет профиль (forget)
	DeleteProfile(ctx context.Context) error
}

// Profile учетные данные приложения для обращений к серверу.
// Секрет хранится открытым текстом, файл создается с правами 0600.
type Profile struct {
	ServerURL string `json:"server_url"`
	AppID     string `json:"app_id"`
	AppSecret string `json:"app_secret"`
	SavedAt   int64  `json:"saved_at"`
}
