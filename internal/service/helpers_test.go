package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/maxazure/home/internal/config"
	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/store"
	"github.com/maxazure/home/internal/utils"
	"github.com/maxazure/home/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────
// In-memory SQLite
// ─────────────────────────────────────────────

func newTestDB(t *testing.T) *store.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := config.DB{Driver: config.DriverSQLite, DSN: fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name)}

	db, err := store.NewDB(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(context.Background()))
	return db
}

func seedUser(t *testing.T, db *store.DB, username, password string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)

	var user models.User
	require.NoError(t, store.WithinTx(context.Background(), db, func(uow store.UnitOfWork) error {
		user, err = uow.Users().Create(context.Background(), models.User{Username: username, PasswordHash: hash})
		return err
	}))
	return user
}

// seedSection creates one category per title in sectionName with dense
// category orders starting at 1 and returns them in order.
func seedSection(t *testing.T, db *store.DB, sectionName string, sectionOrder int, titles ...string) []models.Category {
	t.Helper()
	out := make([]models.Category, 0, len(titles))
	require.NoError(t, store.WithinTx(context.Background(), db, func(uow store.UnitOfWork) error {
		for i, title := range titles {
			c, err := uow.Categories().Create(context.Background(), models.Category{
				Title: title, SectionName: sectionName, SectionOrder: sectionOrder, CategoryOrder: i + 1,
			})
			if err != nil {
				return err
			}
			out = append(out, c)
		}
		return nil
	}))
	return out
}

func loadUser(t *testing.T, db *store.DB, id int64) models.User {
	t.Helper()
	var user models.User
	require.NoError(t, store.ReadOnly(context.Background(), db, func(uow store.UnitOfWork) (err error) {
		user, err = uow.Users().FindByID(context.Background(), id)
		return err
	}))
	return user
}

func loadIPBlock(t *testing.T, db *store.DB, ip string) (models.IPBlock, bool) {
	t.Helper()
	var (
		block models.IPBlock
		found bool
	)
	require.NoError(t, store.ReadOnly(context.Background(), db, func(uow store.UnitOfWork) error {
		b, err := uow.IPBlocks().LockByAddress(context.Background(), ip)
		if err != nil {
			return nil
		}
		block, found = b, true
		return nil
	}))
	return block, found
}

func loadCategories(t *testing.T, db *store.DB) []models.Category {
	t.Helper()
	var categories []models.Category
	require.NoError(t, store.ReadOnly(context.Background(), db, func(uow store.UnitOfWork) (err error) {
		categories, err = uow.Categories().List(context.Background())
		return err
	}))
	return categories
}

// orders maps title to category_order for the given section.
func orders(categories []models.Category, sectionName string) map[string]int {
	out := make(map[string]int)
	for _, c := range categories {
		if c.SectionName == sectionName {
			out[c.Title] = c.CategoryOrder
		}
	}
	return out
}

// sectionOrders maps section name to section_order, failing on rows of one
// section that disagree.
func sectionOrders(t *testing.T, categories []models.Category) map[string]int {
	t.Helper()
	out := make(map[string]int)
	for _, c := range categories {
		if prev, ok := out[c.SectionName]; ok {
			require.Equal(t, prev, c.SectionOrder, "rows of section %q disagree", c.SectionName)
		}
		out[c.SectionName] = c.SectionOrder
	}
	return out
}

// ─────────────────────────────────────────────
// Failure injection
// ─────────────────────────────────────────────

// failingUnitOfWork overrides single repositories of a real unit of work.
type failingUnitOfWork struct {
	store.UnitOfWork
	categories store.CategoryRepository
	ipBlocks   store.IPBlockRepository
}

func (f failingUnitOfWork) Categories() store.CategoryRepository {
	if f.categories != nil {
		return f.categories
	}
	return f.UnitOfWork.Categories()
}

func (f failingUnitOfWork) IPBlocks() store.IPBlockRepository {
	if f.ipBlocks != nil {
		return f.ipBlocks
	}
	return f.UnitOfWork.IPBlocks()
}

type failingCategories struct {
	store.CategoryRepository
	setCategoryOrderErr error
}

func (f failingCategories) SetCategoryOrder(ctx context.Context, id int64, order int) error {
	if f.setCategoryOrderErr != nil {
		return f.setCategoryOrderErr
	}
	return f.CategoryRepository.SetCategoryOrder(ctx, id, order)
}

type failingIPBlocks struct {
	store.IPBlockRepository
	lockByAddressErr error
}

func (f failingIPBlocks) LockByAddress(ctx context.Context, ip string) (models.IPBlock, error) {
	if f.lockByAddressErr != nil {
		return models.IPBlock{}, f.lockByAddressErr
	}
	return f.IPBlockRepository.LockByAddress(ctx, ip)
}
