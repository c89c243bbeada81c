// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the linkctl transport to the link directory server.
//
// [ServerAdapter] hides the HTTP API behind typed calls. Error responses are
// mapped by mapHTTPError onto the sentinels in errors.go so that callers can
// use [errors.Is] (e.g. [ErrForbidden] for 403, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/maxazure/home/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter.go -package=mock

// ServerAdapter is the admin API of the link directory server as seen by
// linkctl.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before a login.
	Token() string

	// Login opens a session and stores its bearer token.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	Logout(ctx context.Context) error
	Status(ctx context.Context) (models.StatusResponse, error)
	Version(ctx context.Context) (models.VersionResponse, error)

	ListUsers(ctx context.Context) ([]models.UserResponse, error)
	UnlockUser(ctx context.Context, userID int64) (string, error)
	ListIPBlocks(ctx context.Context) ([]models.IPBlockResponse, error)
	UnblockIP(ctx context.Context, blockID int64) (string, error)

	ListCategories(ctx context.Context) ([]models.CategoryResponse, error)
	MoveCategory(ctx context.Context, req models.MoveCategoryRequest) (string, error)
	ReorderCategory(ctx context.Context, req models.ReorderCategoryRequest) (string, error)
	ReorderSection(ctx context.Context, req models.ReorderSectionRequest) (string, error)
}
