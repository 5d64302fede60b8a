package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// SigningKeySize длина производного ключа подписи в байтах
const SigningKeySize = 32

// DeriveSigningKey получает ключ для конкретного назначения (purpose)
// из мастер-секрета сервера через HKDF-SHA256.
// Разные purpose дают независимые ключи.
func DeriveSigningKey(masterSecret []byte, purpose string) ([]byte, error) {
	if len(masterSecret) == 0 {
		return nil, fmt.Errorf("master secret cannot be empty")
	}
	if purpose == "" {
		return nil, fmt.Errorf("purpose cannot be empty")
	}

	reader := hkdf.New(sha256.New, masterSecret, nil, []byte("ucenter:"+purpose))

	key := make([]byte, SigningKeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return key, nil
}
