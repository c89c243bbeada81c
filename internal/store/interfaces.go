package store

import (
	"context"

	"github.com/maxazure/home/models"
)

// UserRepository persists administrator accounts and their login guard
// counters. Lock* methods take a row lock held until the unit of work ends.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
	LockByID(ctx context.Context, id int64) (models.User, error)
	LockByUsername(ctx context.Context, username string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	// CountForUpdate counts users while locking every user row.
	CountForUpdate(ctx context.Context) (int, error)
	// Update stores username and password hash.
	Update(ctx context.Context, user models.User) error
	// UpdateGuard stores is_locked, failed_login_attempts and last_failed_login.
	UpdateGuard(ctx context.Context, user models.User) error
	Delete(ctx context.Context, id int64) error
}

// IPBlockRepository persists per-address failure counters.
type IPBlockRepository interface {
	// InsertIfAbsent creates the record for block.IPAddress. It returns
	// [ErrIPBlockAlreadyExists] when the address already has a record.
	InsertIfAbsent(ctx context.Context, block models.IPBlock) (models.IPBlock, error)
	FindByID(ctx context.Context, id int64) (models.IPBlock, error)
	LockByID(ctx context.Context, id int64) (models.IPBlock, error)
	LockByAddress(ctx context.Context, ip string) (models.IPBlock, error)
	List(ctx context.Context) ([]models.IPBlock, error)
	// UpdateGuard stores failed_attempts, is_blocked and last_attempt.
	UpdateGuard(ctx context.Context, block models.IPBlock) error
}

// CategoryRepository persists categories together with the two orderings
// they carry: section_order shared by a section and category_order within
// it.
type CategoryRepository interface {
	Create(ctx context.Context, category models.Category) (models.Category, error)
	FindByID(ctx context.Context, id int64) (models.Category, error)
	LockByID(ctx context.Context, id int64) (models.Category, error)
	// List returns every category ordered by section_order, section_name and
	// category_order.
	List(ctx context.Context) ([]models.Category, error)
	ListByRegion(ctx context.Context, regionID int64) ([]models.Category, error)
	Update(ctx context.Context, category models.Category) error
	Delete(ctx context.Context, id int64) error

	// LockSection locks and returns the rows of a section ordered by
	// category_order. It returns [ErrSectionNotFound] for an empty section.
	LockSection(ctx context.Context, sectionName string) ([]models.Category, error)
	// FindNeighbor returns the nearest category of the section above
	// (smaller order) or below (larger order) the given category_order, or
	// [ErrCategoryNotFound].
	FindNeighbor(ctx context.Context, sectionName string, categoryOrder int, dir models.Direction) (models.Category, error)
	SetCategoryOrder(ctx context.Context, id int64, categoryOrder int) error
	// ShiftCategoryOrders adds delta to category_order of every row of the
	// section whose order lies in [from, to].
	ShiftCategoryOrders(ctx context.Context, sectionName string, from, to, delta int) error
	MaxCategoryOrder(ctx context.Context, sectionName string) (int, error)

	// SectionOrder returns the section_order of a section or
	// [ErrSectionNotFound].
	SectionOrder(ctx context.Context, sectionName string) (int, error)
	// FindAdjacentSection returns the name and order of the nearest section
	// above or below sectionOrder, or [ErrSectionNotFound].
	FindAdjacentSection(ctx context.Context, sectionOrder int, dir models.Direction) (string, int, error)
	// SetSectionOrder updates section_order on every row of the section and
	// returns the number of rows changed.
	SetSectionOrder(ctx context.Context, sectionName string, sectionOrder int) (int64, error)
	// ShiftSectionOrders adds delta to section_order of every row whose
	// section_order is greater than after.
	ShiftSectionOrders(ctx context.Context, after, delta int) error
	MaxSectionOrder(ctx context.Context) (int, error)
	RenameSection(ctx context.Context, oldName, newName string) (int64, error)
	DeleteSection(ctx context.Context, sectionName string) (int64, error)
}

// LinkRepository persists links.
type LinkRepository interface {
	Create(ctx context.Context, link models.Link) (models.Link, error)
	FindByID(ctx context.Context, id int64) (models.Link, error)
	List(ctx context.Context) ([]models.Link, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]models.Link, error)
	Update(ctx context.Context, link models.Link) error
	Delete(ctx context.Context, id int64) error
}

// PageRepository persists pages.
type PageRepository interface {
	Create(ctx context.Context, page models.Page) (models.Page, error)
	FindByID(ctx context.Context, id int64) (models.Page, error)
	List(ctx context.Context) ([]models.Page, error)
	Update(ctx context.Context, page models.Page) error
	Delete(ctx context.Context, id int64) error
}

// RegionRepository persists regions.
type RegionRepository interface {
	Create(ctx context.Context, region models.Region) (models.Region, error)
	FindByID(ctx context.Context, id int64) (models.Region, error)
	List(ctx context.Context) ([]models.Region, error)
	ListByPage(ctx context.Context, pageID int64) ([]models.Region, error)
	Update(ctx context.Context, region models.Region) error
	Delete(ctx context.Context, id int64) error
}
