package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer значение claim "iss" для токенов приложений
const Issuer = "ucenter"

// AppClaims представляет claims токена сессии приложения
type AppClaims struct {
	AppID string `json:"app_id"`
	jwt.RegisteredClaims
}

// Service provides app session token generation
type Service struct {
	now    func() time.Time
	secret []byte
	ttl    time.Duration
}

// NewService creates a new JWT service
// secret should be a derived signing key (see crypto.DeriveSigningKey)
func NewService(secret []byte, ttl time.Duration) *Service {
	return &Service{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// IssueAppToken создает подписанный токен сессии для приложения.
// Возвращает токен и время жизни в секундах.
func (s *Service) IssueAppToken(appID string) (string, int64, error) {
	now := s.now()

	claims := AppClaims{
		AppID: appID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   appID,
			Issuer:    Issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, int64(s.ttl.Seconds()), nil
}
