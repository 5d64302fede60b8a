package validation

import (
	"fmt"
	"regexp"
)

// IDPattern определяет допустимый формат идентификатора приложения и аккаунта
// Латинские буквы, цифры и символы _ . @ -
// Символ '#' запрещен: он используется как разделитель составного ключа данных
var IDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.@-]+$`)

const (
	// MaxIDLen максимальная длина идентификатора
	MaxIDLen = 128
	// MaxCredentialLen максимальная длина секрета или токена
	MaxCredentialLen = 256
	// MaxDataLen максимальный размер данных аккаунта в байтах (1 MiB)
	MaxDataLen = 1 << 20
)

// ValidateID проверяет идентификатор приложения или аккаунта
// field используется в тексте ошибки (например, "appId")
func ValidateID(field, id string) error {
	if id == "" {
		return fmt.Errorf("%s cannot be empty", field)
	}

	if len(id) > MaxIDLen {
		return fmt.Errorf("%s must not exceed %d characters", field, MaxIDLen)
	}

	if !IDPattern.MatchString(id) {
		return fmt.Errorf("%s can only contain letters, numbers, and the characters _ . @ -", field)
	}

	return nil
}

// ValidateCredential проверяет секрет приложения или токен аккаунта
// Содержимое не проверяется: значение непрозрачно и сравнивается как есть
func ValidateCredential(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", field)
	}

	if len(value) > MaxCredentialLen {
		return fmt.Errorf("%s must not exceed %d characters", field, MaxCredentialLen)
	}

	return nil
}

// ValidateData проверяет размер данных аккаунта
func ValidateData(data string) error {
	if len(data) > MaxDataLen {
		return fmt.Errorf("data must not exceed %d bytes", MaxDataLen)
	}
	return nil
}
