package api

import (
	"encoding/json"
	"fmt"
)

// ResponseStatus статус конверта ответа
type ResponseStatus string

const (
	StatusSuccess ResponseStatus = "Success"
	StatusError   ResponseStatus = "Error"
)

// ErrorCode символьный код ошибки в конверте ответа
type ErrorCode string

const (
	ErrorCodeAppNotExist                     ErrorCode = "AppNotExist"
	ErrorCodeAppAuthFailedSecretNotMatch     ErrorCode = "AppAuthFailedSecretNotMatch"
	ErrorCodeAccountNotExist                 ErrorCode = "AccountNotExist"
	ErrorCodeAccountLoginFailedTokenNotMatch ErrorCode = "AccountLoginFailedTokenNotMatch"
	ErrorCodeInvalidRequest                  ErrorCode = "InvalidRequest"
	ErrorCodeRequestCanceled                 ErrorCode = "RequestCanceled"
	ErrorCodeTooManyRequests                 ErrorCode = "TooManyRequests"
	ErrorCodeInternalServerError             ErrorCode = "InternalServerError"
)

// Response единый конверт для всех ответов API.
// При успехе заполнен Result, при ошибке - Error.
type Response struct {
	Error  *ErrorInfo      `json:"error,omitempty"`
	Status ResponseStatus  `json:"status"`
	Result json.RawMessage `json:"result,omitempty"`
}

// ErrorInfo описание ошибки внутри конверта
type ErrorInfo struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Error ошибка, полученная от сервера в конверте ответа.
// Позволяет клиенту проверить код через errors.As.
type Error struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
}

func (e *Error) Error() string {
	return fmt.Sprintf("ucenter error %s: %s", e.Code, e.Message)
}

// NewSuccessResponse упаковывает payload в успешный конверт
func NewSuccessResponse(payload any) (*Response, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &Response{Status: StatusSuccess, Result: raw}, nil
}

// NewErrorResponse создает конверт с ошибкой
func NewErrorResponse(code ErrorCode, message string) *Response {
	return &Response{
		Status: StatusError,
		Error:  &ErrorInfo{Code: code, Message: message},
	}
}
