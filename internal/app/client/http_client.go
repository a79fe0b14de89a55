package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"sensorlist/internal/domain/record"

	"golang.org/x/exp/slog"
)

const recordsPath = "/api/v1/records"

// APIError - ответ сервера со статусом fail или error.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Status, e.Message)
}

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewHTTPClient(baseURL string, timeout time.Duration, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &httpClient{
		client:    client,
		log:       log,
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "sensorctl/1.0",
	}
}

// HealthCheck проверяет доступность сервера и хранилища
func (h *httpClient) HealthCheck(ctx context.Context) error {
	return h.do(ctx, http.MethodGet, "/api/v1/health", nil, nil)
}

func (h *httpClient) ListRecords(ctx context.Context) ([]record.Record, error) {
	var out struct {
		Results int             `json:"results"`
		Notes   []record.Record `json:"notes"`
	}
	if err := h.do(ctx, http.MethodGet, recordsPath, nil, &out); err != nil {
		return nil, err
	}
	return out.Notes, nil
}

func (h *httpClient) GetRecord(ctx context.Context, id int) (*record.Record, error) {
	return h.data(ctx, http.MethodGet, recordPath(id), nil)
}

func (h *httpClient) CreateRecord(ctx context.Context, rec record.Record) (*record.Record, error) {
	return h.data(ctx, http.MethodPost, recordsPath, rec)
}

// UpdateRecord возвращает строку в том виде, в каком её сохранил сервер
func (h *httpClient) UpdateRecord(ctx context.Context, id int, attrs record.Attributes) (*record.Record, error) {
	return h.data(ctx, http.MethodPut, recordPath(id), attrs)
}

func (h *httpClient) DeleteRecord(ctx context.Context, id int) error {
	return h.do(ctx, http.MethodDelete, recordPath(id), nil, nil)
}

func (h *httpClient) data(ctx context.Context, method, path string, body any) (*record.Record, error) {
	var out struct {
		Data *record.Record `json:"data"`
	}
	if err := h.do(ctx, method, path, body, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return nil, fmt.Errorf("пустой ответ сервера на %s %s", method, path)
	}
	return out.Data, nil
}

func (h *httpClient) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	h.log.Debug("HTTP request", slog.String("method", method), slog.String("path", path))

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	defer resp.Body.Close()

	return h.parseResponse(resp, out)
}

func (h *httpClient) parseResponse(resp *http.Response, out any) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var env struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			apiErr.Status, apiErr.Message = env.Status, env.Message
		} else {
			apiErr.Status = "error"
			apiErr.Message = strings.TrimSpace(string(raw))
			if apiErr.Message == "" {
				apiErr.Message = http.StatusText(resp.StatusCode)
			}
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("ошибка разбора ответа: %w", err)
	}
	return nil
}

func recordPath(id int) string {
	return recordsPath + "/" + strconv.Itoa(id)
}
