package service

import (
	"context"
	"testing"

	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/store"
	"github.com/maxazure/home/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Pages
// ─────────────────────────────────────────────

func TestPageService_CreateDerivesSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewPageService(db, NewOrderingService(logger.Nop()), logger.Nop())

	page, err := svc.Create(context.Background(), models.PageRequest{Name: ptr("My Start Page")})

	require.NoError(t, err)
	assert.Equal(t, "my-start-page", page.Slug)

	_, err = svc.Create(context.Background(), models.PageRequest{Name: ptr("My start page")})
	assert.ErrorIs(t, err, store.ErrSlugAlreadyExists)
}

func TestPageService_CreateExplicitSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewPageService(db, NewOrderingService(logger.Nop()), logger.Nop())

	page, err := svc.Create(context.Background(), models.PageRequest{Name: ptr("Home"), Slug: ptr("start")})
	require.NoError(t, err)
	assert.Equal(t, "start", page.Slug)

	_, err = svc.Create(context.Background(), models.PageRequest{Name: ptr("Home"), Slug: ptr("Not A Slug")})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestPageService_UpdateRenamesSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewPageService(db, NewOrderingService(logger.Nop()), logger.Nop())
	page, err := svc.Create(context.Background(), models.PageRequest{Name: ptr("Home")})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), page.ID, models.PageRequest{Name: ptr("Work Links")})

	require.NoError(t, err)
	assert.Equal(t, "work-links", updated.Slug)
}

func TestPageService_DeleteCascadesAndNormalizes(t *testing.T) {
	db := newTestDB(t)
	ordering := NewOrderingService(logger.Nop())
	pages := NewPageService(db, ordering, logger.Nop())
	regions := NewRegionService(db, ordering, logger.Nop())
	categories := newTestCategoryService(db)

	seedSection(t, db, "Tools", 1, "a")
	page, err := pages.Create(context.Background(), models.PageRequest{Name: ptr("Home")})
	require.NoError(t, err)
	region, err := regions.Create(context.Background(), models.RegionRequest{Name: ptr("Main"), PageID: ptr(page.ID)})
	require.NoError(t, err)
	_, err = categories.Create(context.Background(), models.CategoryRequest{Title: ptr("x"), SectionName: ptr("News"), RegionID: ptr(region.ID)})
	require.NoError(t, err)
	seedSection(t, db, "Fun", 3, "z")

	got, err := pages.Get(context.Background(), page.ID)
	require.NoError(t, err)
	require.Len(t, got.Regions, 1)

	require.NoError(t, pages.Delete(context.Background(), page.ID))

	_, err = regions.Get(context.Background(), region.ID)
	assert.ErrorIs(t, err, store.ErrRegionNotFound)
	assert.Equal(t, map[string]int{"Tools": 1, "Fun": 2}, sectionOrders(t, loadCategories(t, db)))
}

// ─────────────────────────────────────────────
// Regions
// ─────────────────────────────────────────────

func TestRegionService_GetNestsCategoriesAndLinks(t *testing.T) {
	db := newTestDB(t)
	regions := NewRegionService(db, NewOrderingService(logger.Nop()), logger.Nop())
	region, err := regions.Create(context.Background(), models.RegionRequest{Name: ptr("Sidebar")})
	require.NoError(t, err)
	cat, err := newTestCategoryService(db).Create(context.Background(), models.CategoryRequest{Title: ptr("Dev"), SectionName: ptr("Work"), RegionID: ptr(region.ID)})
	require.NoError(t, err)
	_, err = NewLinkService(db, logger.Nop()).Create(context.Background(), models.LinkRequest{Name: ptr("Go"), URL: ptr("https://go.dev"), CategoryID: ptr(cat.ID)})
	require.NoError(t, err)

	got, err := regions.Get(context.Background(), region.ID)

	require.NoError(t, err)
	require.Len(t, got.Categories, 1)
	require.Len(t, got.Categories[0].Links, 1)
	assert.Equal(t, "https://go.dev", got.Categories[0].Links[0].URL)
}

func TestRegionService_UnknownPage(t *testing.T) {
	db := newTestDB(t)
	regions := NewRegionService(db, NewOrderingService(logger.Nop()), logger.Nop())

	_, err := regions.Create(context.Background(), models.RegionRequest{Name: ptr("x"), PageID: ptr(int64(404))})

	assert.ErrorIs(t, err, store.ErrPageNotFound)
}

// ─────────────────────────────────────────────
// Links
// ─────────────────────────────────────────────

func TestLinkService_CRUD(t *testing.T) {
	db := newTestDB(t)
	cats := seedSection(t, db, "Tools", 1, "a", "b")
	svc := NewLinkService(db, logger.Nop())

	link, err := svc.Create(context.Background(), models.LinkRequest{Name: ptr("Go"), URL: ptr("https://go.dev"), CategoryID: ptr(cats[0].ID)})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), link.ID, models.LinkRequest{CategoryID: ptr(cats[1].ID)})
	require.NoError(t, err)
	assert.Equal(t, cats[1].ID, updated.CategoryID)
	assert.Equal(t, "Go", updated.Name)

	require.NoError(t, svc.Delete(context.Background(), link.ID))
	_, err = svc.Get(context.Background(), link.ID)
	assert.ErrorIs(t, err, store.ErrLinkNotFound)
}

func TestLinkService_UnknownCategory(t *testing.T) {
	db := newTestDB(t)

	_, err := NewLinkService(db, logger.Nop()).Create(context.Background(), models.LinkRequest{
		Name: ptr("Go"), URL: ptr("https://go.dev"), CategoryID: ptr(int64(404)),
	})

	assert.ErrorIs(t, err, store.ErrCategoryNotFound)
}

func TestLinkService_InvalidURL(t *testing.T) {
	db := newTestDB(t)

	_, err := NewLinkService(db, logger.Nop()).Create(context.Background(), models.LinkRequest{
		Name: ptr("Go"), URL: ptr("go.dev"), CategoryID: ptr(int64(1)),
	})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
