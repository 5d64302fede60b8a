package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/ucenter/internal/models"
	"github.com/iudanet/ucenter/internal/server/service"
	"github.com/iudanet/ucenter/internal/validation"
	"github.com/iudanet/ucenter/pkg/api"
)

// Имена операций для логов и метрик
const (
	OpCreateApp    = "create"
	OpAppLogin     = "login"
	OpAccountLogin = "accountlogin"
	OpReadData     = "readdata"
	OpWriteData    = "writedata"
)

// maxRequestBodySize данные аккаунта в худшем случае экранирования JSON (\u003c, 6 байт на символ)
// плюс запас на остальные поля. Сам лимит данных проверяет validation.ValidateData.
const maxRequestBodySize = 6*validation.MaxDataLen + 64<<10

// AppService операции брокера, которые вызывают handlers
type AppService interface {
	CreateApp(ctx context.Context, appID, appSecret string) (*models.App, error)
	LoginApp(ctx context.Context, appID, appSecret string) (*service.AppLoginResult, error)
	LoginAndVerifyAccount(ctx context.Context, appID, appSecret, accountID, accountToken string) (*service.AccountSnapshot, error)
	ReadAppAccountData(ctx context.Context, appID, appSecret, accountID string) (*service.AppAccountDataResult, error)
	WriteAppAccountData(ctx context.Context, appID, appSecret, accountID, data string) (*service.AppAccountDataResult, error)
}

// OperationRecorder учитывает исход операций (см. metrics.Metrics)
type OperationRecorder interface {
	RecordOperation(operation, outcome string, duration time.Duration)
}

// AppHandler обрабатывает запросы приложений к /api/app/*
type AppHandler struct {
	logger   *slog.Logger
	service  AppService
	recorder OperationRecorder
}

// NewAppHandler создает новый handler для операций приложений
func NewAppHandler(logger *slog.Logger, svc AppService, recorder OperationRecorder) *AppHandler {
	return &AppHandler{
		logger:   logger,
		service:  svc,
		recorder: recorder,
	}
}

// CreateApp обрабатывает POST /api/app/create
// Регистрация приложения, повторный вызов возвращает существующую запись
func (h *AppHandler) CreateApp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req api.AppInfo
	if !h.decodeRequest(w, r, OpCreateApp, start, &req) {
		return
	}

	if err := errors.Join(
		validation.ValidateID("appId", req.AppID),
		validation.ValidateCredential("appSecret", req.AppSecret),
	); err != nil {
		h.rejectRequest(w, r, OpCreateApp, start, err)
		return
	}

	app, err := h.service.CreateApp(ctx, req.AppID, req.AppSecret)
	if err != nil {
		h.fail(w, r, OpCreateApp, start, err)
		return
	}

	h.logger.InfoContext(ctx, "app registered", slog.String("app_id", app.ID))

	h.succeed(w, OpCreateApp, start, api.AppResponse{
		AppID:     app.ID,
		AppSecret: app.Secret,
	})
}

// AppLogin обрабатывает POST /api/app/login
// Проверка приложения и выдача нового токена сессии
func (h *AppHandler) AppLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req api.AppLoginInfo
	if !h.decodeRequest(w, r, OpAppLogin, start, &req) {
		return
	}

	if err := errors.Join(
		validation.ValidateID("appId", req.AppID),
		validation.ValidateCredential("appSecret", req.AppSecret),
	); err != nil {
		h.rejectRequest(w, r, OpAppLogin, start, err)
		return
	}

	result, err := h.service.LoginApp(ctx, req.AppID, req.AppSecret)
	if err != nil {
		h.fail(w, r, OpAppLogin, start, err)
		return
	}

	h.logger.InfoContext(ctx, "app logged in", slog.String("app_id", result.AppID))

	h.succeed(w, OpAppLogin, start, api.AppLoginResponse{
		AppID:     result.AppID,
		AppToken:  result.AppToken,
		ExpiresIn: result.ExpiresIn,
	})
}

// AccountLogin обрабатывает POST /api/app/accountlogin
// Проверка приложения, затем аккаунта по токену
func (h *AppHandler) AccountLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req api.AccountLoginAppInfo
	if !h.decodeRequest(w, r, OpAccountLogin, start, &req) {
		return
	}

	if err := errors.Join(
		validation.ValidateID("appId", req.AppID),
		validation.ValidateCredential("appSecret", req.AppSecret),
		validation.ValidateID("accountId", req.AccountID),
		validation.ValidateCredential("accountToken", req.AccountToken),
	); err != nil {
		h.rejectRequest(w, r, OpAccountLogin, start, err)
		return
	}

	snapshot, err := h.service.LoginAndVerifyAccount(ctx, req.AppID, req.AppSecret, req.AccountID, req.AccountToken)
	if err != nil {
		h.fail(w, r, OpAccountLogin, start, err)
		return
	}

	h.logger.InfoContext(ctx, "account verified",
		slog.String("app_id", req.AppID),
		slog.String("account_id", snapshot.AccountID))

	h.succeed(w, OpAccountLogin, start, api.AccountLoginAppResponse{
		AccountID:          snapshot.AccountID,
		AccountName:        snapshot.AccountName,
		AccountToken:       snapshot.AccountToken,
		LastLoginDateTime:  snapshot.LastLoginAt,
		LastVerifyDateTime: snapshot.LastVerifyAt,
	})
}

// ReadData обрабатывает POST /api/app/readdata
// data в ответе равен null, если для пары ничего не записано
func (h *AppHandler) ReadData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req api.AppAccountDataInfo
	if !h.decodeRequest(w, r, OpReadData, start, &req) {
		return
	}

	if err := errors.Join(
		validation.ValidateID("appId", req.AppID),
		validation.ValidateCredential("appSecret", req.AppSecret),
		validation.ValidateID("accountId", req.AccountID),
	); err != nil {
		h.rejectRequest(w, r, OpReadData, start, err)
		return
	}

	result, err := h.service.ReadAppAccountData(ctx, req.AppID, req.AppSecret, req.AccountID)
	if err != nil {
		h.fail(w, r, OpReadData, start, err)
		return
	}

	h.logger.DebugContext(ctx, "app data read",
		slog.String("app_id", result.AppID),
		slog.String("account_id", result.AccountID),
		slog.Bool("found", result.Data != nil))

	h.succeed(w, OpReadData, start, api.AppAccountDataResponse{
		AppID:     result.AppID,
		AccountID: result.AccountID,
		Data:      result.Data,
	})
}

// WriteData обрабатывает POST /api/app/writedata
// Данные пары заменяются целиком
func (h *AppHandler) WriteData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req api.AppAccountDataInfo
	if !h.decodeRequest(w, r, OpWriteData, start, &req) {
		return
	}

	if err := errors.Join(
		validation.ValidateID("appId", req.AppID),
		validation.ValidateCredential("appSecret", req.AppSecret),
		validation.ValidateID("accountId", req.AccountID),
		validation.ValidateData(req.Data),
	); err != nil {
		h.rejectRequest(w, r, OpWriteData, start, err)
		return
	}

	result, err := h.service.WriteAppAccountData(ctx, req.AppID, req.AppSecret, req.AccountID, req.Data)
	if err != nil {
		h.fail(w, r, OpWriteData, start, err)
		return
	}

	h.logger.InfoContext(ctx, "app data written",
		slog.String("app_id", result.AppID),
		slog.String("account_id", result.AccountID),
		slog.Int("size", len(req.Data)))

	h.succeed(w, OpWriteData, start, api.AppAccountDataResponse{
		AppID:     result.AppID,
		AccountID: result.AccountID,
		Data:      result.Data,
	})
}

// decodeRequest читает JSON тело запроса в dst.
// При ошибке сам отправляет InvalidRequest и возвращает false.
func (h *AppHandler) decodeRequest(w http.ResponseWriter, r *http.Request, op string, start time.Time, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.WarnContext(r.Context(), "failed to decode request",
			slog.String("operation", op),
			slog.Any("error", err))
		h.recorder.RecordOperation(op, string(api.ErrorCodeInvalidRequest), time.Since(start))
		sendError(h.logger, w, api.ErrorCodeInvalidRequest, "invalid request body", http.StatusBadRequest)
		return false
	}

	return true
}

// rejectRequest отвечает InvalidRequest на невалидные поля запроса
func (h *AppHandler) rejectRequest(w http.ResponseWriter, r *http.Request, op string, start time.Time, err error) {
	h.logger.WarnContext(r.Context(), "invalid request",
		slog.String("operation", op),
		slog.Any("error", err))
	h.recorder.RecordOperation(op, string(api.ErrorCodeInvalidRequest), time.Since(start))
	sendError(h.logger, w, api.ErrorCodeInvalidRequest, err.Error(), http.StatusBadRequest)
}

// fail отображает ошибку сервиса в конверт ответа.
// Внутренние ошибки логируются, клиент получает только общий код.
func (h *AppHandler) fail(w http.ResponseWriter, r *http.Request, op string, start time.Time, err error) {
	code, message, status := errorOutcome(err)

	switch code {
	case api.ErrorCodeInternalServerError:
		h.logger.ErrorContext(r.Context(), "operation failed",
			slog.String("operation", op),
			slog.Any("error", err))
	default:
		h.logger.WarnContext(r.Context(), "operation rejected",
			slog.String("operation", op),
			slog.String("code", string(code)))
	}

	h.recorder.RecordOperation(op, string(code), time.Since(start))
	sendError(h.logger, w, code, message, status)
}

func (h *AppHandler) succeed(w http.ResponseWriter, op string, start time.Time, payload any) {
	h.recorder.RecordOperation(op, outcomeSuccess, time.Since(start))
	sendResult(h.logger, w, payload)
}
