package models

import "time"

// App представляет зарегистрированное стороннее приложение
type App struct {
	CreatedAt time.Time `json:"created_at"` // время регистрации
	UpdatedAt time.Time `json:"updated_at"` // время последнего изменения (логин)
	ID        string    `json:"id"`         // уникальный идентификатор, задается клиентом
	Name      string    `json:"name"`       // отображаемое имя, по умолчанию равно ID
	Secret    string    `json:"secret"`     // секрет приложения, хранится как есть
	Token     string    `json:"token"`      // токен сессии, пустой до первого логина
}

// Account представляет учетную запись конечного пользователя
type Account struct {
	LastLoginAt  time.Time `json:"last_login_at"`  // время последнего логина
	LastVerifyAt time.Time `json:"last_verify_at"` // время последней проверки
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ID           string    `json:"id"`    // уникальный идентификатор аккаунта
	Name         string    `json:"name"`  // отображаемое имя
	Token        string    `json:"token"` // токен сессии, выдается вне этого сервиса
}
