package api

import "time"

// AppInfo представляет запрос на создание приложения
type AppInfo struct {
	AppID     string `json:"appId"`     // идентификатор приложения (он же имя)
	AppSecret string `json:"appSecret"` // секрет приложения
}

// AppResponse представляет ответ на создание приложения.
// Возвращается сохраненный секрет, а не переданный в запросе.
type AppResponse struct {
	AppID     string `json:"appId"`
	AppSecret string `json:"appSecret"`
}

// AppLoginInfo представляет запрос на логин приложения
type AppLoginInfo struct {
	AppID     string `json:"appId"`
	AppSecret string `json:"appSecret"`
}

// AppLoginResponse представляет ответ с токеном приложения
type AppLoginResponse struct {
	AppID     string `json:"appId"`
	AppToken  string `json:"appToken"`  // подписанный токен сессии приложения
	ExpiresIn int64  `json:"expiresIn"` // время жизни токена в секундах
}

// AccountLoginAppInfo представляет запрос на проверку аккаунта через приложение
type AccountLoginAppInfo struct {
	AppID        string `json:"appId"`
	AppSecret    string `json:"appSecret"`
	AccountID    string `json:"accountId"`
	AccountToken string `json:"accountToken"`
}

// AccountLoginAppResponse представляет снимок аккаунта после успешной проверки
type AccountLoginAppResponse struct {
	LastLoginDateTime  time.Time `json:"lastLoginDateTime"`
	LastVerifyDateTime time.Time `json:"lastVerifyDateTime"` // всегда текущее время, не сохраняется
	AccountID          string    `json:"accountId"`
	AccountName        string    `json:"accountName"`
	AccountToken       string    `json:"accountToken"`
}

// AppAccountDataInfo представляет запрос на чтение или запись данных аккаунта.
// Data игнорируется при чтении.
type AppAccountDataInfo struct {
	AppID     string `json:"appId"`
	AppSecret string `json:"appSecret"`
	AccountID string `json:"accountId"`
	Data      string `json:"data"`
}

// AppAccountDataResponse представляет данные аккаунта в приложении.
// Data равен nil, если данные еще не записывались.
type AppAccountDataResponse struct {
	Data      *string `json:"data"`
	AppID     string  `json:"appId"`
	AccountID string  `json:"accountId"`
}
