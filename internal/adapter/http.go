package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/maxazure/home/internal/config"
	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/utils"
	"github.com/maxazure/home/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds a resty-backed [ServerAdapter] for the server
// at cfg.HTTPAddress. An address without a scheme is taken as http.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
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

// Login posts the credentials to POST /api/admin/login and keeps the bearer
// token from the Authorization response header.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/admin/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return result, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) Status(ctx context.Context) (models.StatusResponse, error) {
	var status models.StatusResponse
	err := h.get(ctx, "/api/auth/status", &status)
	return status, err
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse
	err := h.get(ctx, "/api/version", &version)
	return version, err
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.UserResponse, error) {
	var users []models.UserResponse
	err := h.get(ctx, "/api/admin/users", &users)
	return users, err
}

func (h *httpServerAdapter) UnlockUser(ctx context.Context, userID int64) (string, error) {
	return h.post(ctx, fmt.Sprintf("/api/admin/users/%d/unlock", userID), nil)
}

func (h *httpServerAdapter) ListIPBlocks(ctx context.Context) ([]models.IPBlockResponse, error) {
	var blocks []models.IPBlockResponse
	err := h.get(ctx, "/api/admin/ip-blocks", &blocks)
	return blocks, err
}

func (h *httpServerAdapter) UnblockIP(ctx context.Context, blockID int64) (string, error) {
	return h.post(ctx, fmt.Sprintf("/api/admin/ip-blocks/%d/unblock", blockID), nil)
}

func (h *httpServerAdapter) ListCategories(ctx context.Context) ([]models.CategoryResponse, error) {
	var categories []models.CategoryResponse
	err := h.get(ctx, "/api/categories", &categories)
	return categories, err
}

func (h *httpServerAdapter) MoveCategory(ctx context.Context, req models.MoveCategoryRequest) (string, error) {
	return h.post(ctx, "/api/admin/categories/move", req)
}

func (h *httpServerAdapter) ReorderCategory(ctx context.Context, req models.ReorderCategoryRequest) (string, error) {
	return h.post(ctx, "/api/admin/categories/reorder", req)
}

func (h *httpServerAdapter) ReorderSection(ctx context.Context, req models.ReorderSectionRequest) (string, error) {
	return h.post(ctx, "/api/admin/sections/reorder", req)
}

func (h *httpServerAdapter) get(ctx context.Context, path string, result any) error {
	resp, err := h.authedRequest(ctx).SetResult(result).Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

// post sends body (if any) and returns the message of the acknowledgement.
func (h *httpServerAdapter) post(ctx context.Context, path string, body any) (string, error) {
	var result models.MessageResponse

	req := h.authedRequest(ctx).SetResult(&result)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return "", fmt.Errorf("POST %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.logger.Debug().Str("path", path).Str("message", result.Message).Msg("server acknowledged")
	return result.Message, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
