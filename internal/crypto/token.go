package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
)

// TokenSize размер случайного токена в байтах
const TokenSize = 32

// GenerateToken создает криптографически случайный токен в base64 (URL-safe)
func GenerateToken() (string, error) {
	tokenBytes := make([]byte, TokenSize)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(tokenBytes), nil
}

// Equal сравнивает секреты и токены за постоянное время.
// Сравнение точное: регистр и пробелы значимы, нормализации нет.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
