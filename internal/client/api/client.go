package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/ucenter/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером брокера.
// Ошибки из конверта ответа возвращаются как *api.Error, повторов нет.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateApp регистрирует приложение (повторный вызов возвращает существующую запись)
func (c *Client) CreateApp(ctx context.Context, req api.AppInfo) (*api.AppResponse, error) {
	var resp api.AppResponse
	if err := c.doRequest(ctx, "/api/app/create", req, &resp); err != nil {
		return nil, fmt.Errorf("create app request failed: %w", err)
	}
	return &resp, nil
}

// LoginApp получает токен сессии приложения
func (c *Client) LoginApp(ctx context.Context, req api.AppLoginInfo) (*api.AppLoginResponse, error) {
	var resp api.AppLoginResponse
	if err := c.doRequest(ctx, "/api/app/login", req, &resp); err != nil {
		return nil, fmt.Errorf("app login request failed: %w", err)
	}
	return &resp, nil
}

// AccountLogin проверяет аккаунт через приложение
func (c *Client) AccountLogin(ctx context.Context, req api.AccountLoginAppInfo) (*api.AccountLoginAppResponse, error) {
	var resp api.AccountLoginAppResponse
	if err := c.doRequest(ctx, "/api/app/accountlogin", req, &resp); err != nil {
		return nil, fmt.Errorf("account login request failed: %w", err)
	}
	return &resp, nil
}

// ReadData читает данные аккаунта в приложении, Data равен nil если записи нет
func (c *Client) ReadData(ctx context.Context, req api.AppAccountDataInfo) (*api.AppAccountDataResponse, error) {
	var resp api.AppAccountDataResponse
	if err := c.doRequest(ctx, "/api/app/readdata", req, &resp); err != nil {
		return nil, fmt.Errorf("read data request failed: %w", err)
	}
	return &resp, nil
}

// WriteData заменяет данные аккаунта в приложении
func (c *Client) WriteData(ctx context.Context, req api.AppAccountDataInfo) (*api.AppAccountDataResponse, error) {
	var resp api.AppAccountDataResponse
	if err := c.doRequest(ctx, "/api/app/writedata", req, &resp); err != nil {
		return nil, fmt.Errorf("write data request failed: %w", err)
	}
	return &resp, nil
}

// doRequest отправляет POST с JSON телом и распаковывает конверт ответа в result
func (c *Client) doRequest(ctx context.Context, path string, body, result any) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var envelope api.Response
	if err := json.Unmarshal(respBody, &envelope); err != nil || envelope.Status == "" {
		// Не конверт: ответ прокси или неизвестный маршрут
		return fmt.Errorf("unexpected response (%d): %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	if envelope.Status != api.StatusSuccess {
		apiErr := &api.Error{
			Code:       api.ErrorCodeInternalServerError,
			Message:    "malformed error response",
			HTTPStatus: resp.StatusCode,
		}
		if envelope.Error != nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
