package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/ucenter/internal/server/service"
	"github.com/iudanet/ucenter/pkg/api"
)

// outcomeSuccess метка успешной операции в метриках
const outcomeSuccess = string(api.StatusSuccess)

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendResult упаковывает payload в успешный конверт
func sendResult(logger *slog.Logger, w http.ResponseWriter, payload any) {
	resp, err := api.NewSuccessResponse(payload)
	if err != nil {
		logger.Error("failed to build response", slog.Any("error", err))
		sendError(logger, w, api.ErrorCodeInternalServerError, "internal server error", http.StatusInternalServerError)
		return
	}
	sendJSON(logger, w, resp, http.StatusOK)
}

// sendError отправляет конверт с ошибкой
func sendError(logger *slog.Logger, w http.ResponseWriter, code api.ErrorCode, message string, statusCode int) {
	sendJSON(logger, w, api.NewErrorResponse(code, message), statusCode)
}

// errorOutcome определяет код ошибки и HTTP статус ответа.
// Доменные ошибки отдаются со статусом 200, как и успешные ответы.
func errorOutcome(err error) (api.ErrorCode, string, int) {
	var domainErr *service.Error
	switch {
	case errors.As(err, &domainErr):
		return domainErr.Code, domainErr.Message, http.StatusOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return api.ErrorCodeRequestCanceled, "request canceled", http.StatusRequestTimeout
	default:
		return api.ErrorCodeInternalServerError, "internal server error", http.StatusInternalServerError
	}
}
