package service

import (
	"github.com/iudanet/ucenter/pkg/api"
)

// Error доменная ошибка с символьным кодом для конверта ответа
type Error struct {
	Code    api.ErrorCode
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Is сравнивает ошибки по коду, сообщение не учитывается
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Ошибки проверки приложения и аккаунта
var (
	ErrAppNotExist = &Error{
		Code:    api.ErrorCodeAppNotExist,
		Message: "App does not exist",
	}
	ErrAppAuthFailedSecretNotMatch = &Error{
		Code:    api.ErrorCodeAppAuthFailedSecretNotMatch,
		Message: "App secret incorrect",
	}
	ErrAccountNotExist = &Error{
		Code:    api.ErrorCodeAccountNotExist,
		Message: "Account does not exist",
	}
	ErrAccountLoginFailedTokenNotMatch = &Error{
		Code:    api.ErrorCodeAccountLoginFailedTokenNotMatch,
		Message: "Account token does not match",
	}
)
