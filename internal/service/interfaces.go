package service

import (
	"context"

	"github.com/maxazure/home/internal/store"
	"github.com/maxazure/home/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service.go -package=mock

// AuthGuard runs the login brute-force state machine. Every method works
// inside the unit of work supplied by the caller.
type AuthGuard interface {
	// AttemptLogin evaluates one attempt and records its outcome. The error
	// is reserved for storage failures; a rejected attempt is reported
	// through the result status so that its counters are committed.
	AttemptLogin(ctx context.Context, uow store.UnitOfWork, attempt models.LoginAttempt) (models.AuthResult, error)
	UnlockUser(ctx context.Context, uow store.UnitOfWork, userID int64) (models.User, error)
	UnblockIP(ctx context.Context, uow store.UnitOfWork, blockID int64) (models.IPBlock, error)
	ListIPBlocks(ctx context.Context, uow store.UnitOfWork) ([]models.IPBlock, error)
}

// OrderingService maintains section_order and category_order. Every method
// works inside the unit of work supplied by the caller and wraps any failure
// into ErrReorderFailed.
type OrderingService interface {
	MoveCategory(ctx context.Context, uow store.UnitOfWork, categoryID int64, dir models.Direction) error
	ReorderCategory(ctx context.Context, uow store.UnitOfWork, sourceID, targetID int64) error
	ReorderSection(ctx context.Context, uow store.UnitOfWork, sectionName string, dir models.Direction) error
	// Normalize renumbers both orders densely, keeping their relative order.
	Normalize(ctx context.Context, uow store.UnitOfWork) error
}

type SessionService interface {
	CreateToken(ctx context.Context, user models.User, remember bool) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// Principal resolves a raw token into the user it was issued to, or
	// [models.Anonymous] when the token or the user is gone.
	Principal(ctx context.Context, tokenString string) models.Principal
}

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (models.User, error)
	Create(ctx context.Context, req models.UserRequest) (models.User, error)
	Update(ctx context.Context, id int64, req models.UserRequest) (models.User, error)
	Delete(ctx context.Context, id int64) error
	// EnsureAdmin creates the given account when no user exists yet.
	EnsureAdmin(ctx context.Context, username, password string) error
}

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int64) (models.Category, error)
	ListLinks(ctx context.Context, categoryID int64) ([]models.Link, error)
	Create(ctx context.Context, req models.CategoryRequest) (models.Category, error)
	Update(ctx context.Context, id int64, req models.CategoryRequest) (models.Category, error)
	Delete(ctx context.Context, id int64) error

	CreateSection(ctx context.Context, sectionName string) (models.Category, error)
	RenameSection(ctx context.Context, oldName, newName string) error
	DeleteSection(ctx context.Context, sectionName string) error
}

type LinkService interface {
	List(ctx context.Context) ([]models.Link, error)
	Get(ctx context.Context, id int64) (models.Link, error)
	Create(ctx context.Context, req models.LinkRequest) (models.Link, error)
	Update(ctx context.Context, id int64, req models.LinkRequest) (models.Link, error)
	Delete(ctx context.Context, id int64) error
}

type PageService interface {
	List(ctx context.Context) ([]models.Page, error)
	Get(ctx context.Context, id int64) (models.Page, error)
	Create(ctx context.Context, req models.PageRequest) (models.Page, error)
	Update(ctx context.Context, id int64, req models.PageRequest) (models.Page, error)
	Delete(ctx context.Context, id int64) error
}

type RegionService interface {
	List(ctx context.Context) ([]models.Region, error)
	Get(ctx context.Context, id int64) (models.Region, error)
	Create(ctx context.Context, req models.RegionRequest) (models.Region, error)
	Update(ctx context.Context, id int64, req models.RegionRequest) (models.Region, error)
	Delete(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
