package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/atereshkin/staffdir/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// authorized returns a request with the stored bearer token attached.
func (h *httpServerAdapter) authorized(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (models.TokenResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		Post("/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	var token models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return models.TokenResponse{}, fmt.Errorf("login decode response: %w", err)
	}

	h.SetToken(token.AccessToken)
	return token, nil
}

func (h *httpServerAdapter) CreateDepartment(ctx context.Context, request models.CreateDepartmentRequest) (models.Department, error) {
	resp, err := h.authorized(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/departments")
	if err != nil {
		return models.Department{}, fmt.Errorf("create department request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Department{}, err
	}

	var created models.Department
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Department{}, fmt.Errorf("create department decode response: %w", err)
	}

	return created, nil
}

func (h *httpServerAdapter) ListDepartments(ctx context.Context) ([]models.Department, error) {
	resp, err := h.authorized(ctx).Get("/departments")
	if err != nil {
		return nil, fmt.Errorf("list departments request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var listed []models.Department
	if err = json.Unmarshal(resp.Body(), &listed); err != nil {
		return nil, fmt.Errorf("list departments decode response: %w", err)
	}

	return listed, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.UserListItem, error) {
	resp, err := h.authorized(ctx).Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var listed []models.UserListItem
	if err = json.Unmarshal(resp.Body(), &listed); err != nil {
		return nil, fmt.Errorf("list users decode response: %w", err)
	}

	return listed, nil
}

func (h *httpServerAdapter) CreateSalary(ctx context.Context, request models.CreateSalaryRequest) error {
	resp, err := h.authorized(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/salary")
	if err != nil {
		return fmt.Errorf("create salary request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetUserDetail(ctx context.Context, userID int64) (models.UserDetail, error) {
	resp, err := h.authorized(ctx).Get("/users/" + strconv.FormatInt(userID, 10))
	if err != nil {
		return models.UserDetail{}, fmt.Errorf("user detail request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserDetail{}, err
	}

	var detail models.UserDetail
	if err = json.Unmarshal(resp.Body(), &detail); err != nil {
		return models.UserDetail{}, fmt.Errorf("user detail decode response: %w", err)
	}

	return detail, nil
}
