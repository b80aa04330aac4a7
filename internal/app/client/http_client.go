package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"todosync/internal/app/client/config"
	"todosync/internal/model"
)

// TodoAPI - контракт REST API задач. Ошибка возвращается только при сбое
// транспорта или декодирования; success=false приходит внутри конверта.
type TodoAPI interface {
	GetTodos(ctx context.Context) (*model.ListEnvelope, error)
	GetTodoByID(ctx context.Context, id int) (*model.ItemEnvelope, error)
	CreateTodo(ctx context.Context, upsert model.TodoUpsert) (*model.ItemEnvelope, error)
	UpdateTodo(ctx context.Context, id int, upsert model.TodoUpsert) (*model.ItemEnvelope, error)
	DeleteTodo(ctx context.Context, id int) (*model.ItemEnvelope, error)
}

// StatusError - ответ не 2xx, тело которого не является конвертом API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("сервер вернул статус %d: %s", e.StatusCode, e.Body)
}

var errEmptyEnvelope = errors.New("пустой ответ сервера")

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   *url.URL
	userAgent string
}

// NewHTTPClient создает единственный на процесс HTTP клиент API.
func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	base, err := url.Parse(cfg.BaseURL())
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора адреса сервера: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "TodoSync-Client/1.0"
	}

	return &httpClient{
		client:    client,
		log:       log.With("component", "http_client"),
		baseURL:   base,
		userAgent: userAgent,
	}, nil
}

// GetTodos - GET todos
func (h *httpClient) GetTodos(ctx context.Context) (*model.ListEnvelope, error) {
	var env model.ListEnvelope
	if err := h.do(ctx, http.MethodGet, "todos", nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// GetTodoByID - GET todos/{id}
func (h *httpClient) GetTodoByID(ctx context.Context, id int) (*model.ItemEnvelope, error) {
	return h.item(ctx, http.MethodGet, todoPath(id), nil)
}

// CreateTodo - POST todos
func (h *httpClient) CreateTodo(ctx context.Context, upsert model.TodoUpsert) (*model.ItemEnvelope, error) {
	return h.item(ctx, http.MethodPost, "todos", upsert)
}

// UpdateTodo - PUT todos/{id}
func (h *httpClient) UpdateTodo(ctx context.Context, id int, upsert model.TodoUpsert) (*model.ItemEnvelope, error) {
	return h.item(ctx, http.MethodPut, todoPath(id), upsert)
}

// DeleteTodo - DELETE todos/{id}
func (h *httpClient) DeleteTodo(ctx context.Context, id int) (*model.ItemEnvelope, error) {
	return h.item(ctx, http.MethodDelete, todoPath(id), nil)
}

func todoPath(id int) string {
	return "todos/" + strconv.Itoa(id)
}

func (h *httpClient) item(ctx context.Context, method, path string, body interface{}) (*model.ItemEnvelope, error) {
	var env model.ItemEnvelope
	if err := h.do(ctx, method, path, body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (h *httpClient) do(ctx context.Context, method, path string, body, result interface{}) error {
	resp, err := h.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, result)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	target := h.baseURL.ResolveReference(&url.URL{Path: path})

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", target.String(),
		"request_id", requestID,
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

// parseResponse декодирует конверт. Для ответа не 2xx конверт с success=false
// считается отказом сервера, все остальное - *StatusError.
func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"body", string(body),
	)

	if resp.StatusCode >= 300 {
		var probe struct {
			Success *bool `json:"success"`
		}
		if err := json.Unmarshal(body, &probe); err == nil && probe.Success != nil && !*probe.Success {
			if err := json.Unmarshal(body, result); err == nil {
				return nil
			}
		}
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return errEmptyEnvelope
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("ошибка парсинга ответа: %w", err)
	}

	return nil
}
