package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/models"
)

// categoryRepository is the SQL implementation of [CategoryRepository].
type categoryRepository struct {
	sqlRepository
}

func scanCategory(row rowScanner) (models.Category, error) {
	var c models.Category
	var regionID sql.NullInt64

	err := row.Scan(&c.ID, &c.Title, &c.SectionName, &c.SectionOrder, &c.CategoryOrder, &regionID)
	if err != nil {
		return models.Category{}, err
	}
	c.RegionID = int64Ptr(regionID)

	return c, nil
}

func (r *categoryRepository) Create(ctx context.Context, c models.Category) (models.Category, error) {
	query, args, err := r.q.insertCategory(c)
	err = r.queryRow(ctx, "categoryRepository.Create", query, args, err, ErrExecutingQuery, &c.ID)
	if err != nil {
		return models.Category{}, r.constraintError(err, nil, ErrRegionNotFound)
	}
	return c, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id int64) (models.Category, error) {
	query, args, err := r.q.selectCategories(sq.Eq{"id": id}, false)
	return queryOne(ctx, r.sqlRepository, "categoryRepository.FindByID", query, args, err, ErrCategoryNotFound, scanCategory)
}

func (r *categoryRepository) LockByID(ctx context.Context, id int64) (models.Category, error) {
	query, args, err := r.q.selectCategories(sq.Eq{"id": id}, true)
	return queryOne(ctx, r.sqlRepository, "categoryRepository.LockByID", query, args, err, ErrCategoryNotFound, scanCategory)
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	query, args, err := r.q.selectCategories(nil, false)
	return queryAll(ctx, r.sqlRepository, "categoryRepository.List", query, args, err, scanCategory)
}

func (r *categoryRepository) ListByRegion(ctx context.Context, regionID int64) ([]models.Category, error) {
	query, args, err := r.q.selectCategories(sq.Eq{"region_id": regionID}, false)
	return queryAll(ctx, r.sqlRepository, "categoryRepository.ListByRegion", query, args, err, scanCategory)
}

func (r *categoryRepository) Update(ctx context.Context, c models.Category) error {
	query, args, err := r.q.updateCategory(c)
	err = r.execOne(ctx, "categoryRepository.Update", query, args, err, ErrCategoryNotFound)
	return r.constraintError(err, nil, ErrRegionNotFound)
}

// Delete removes the category; its links go with it through the cascade.
func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.q.deleteByID(categoriesTable, id)
	return r.execOne(ctx, "categoryRepository.Delete", query, args, err, ErrCategoryNotFound)
}

func (r *categoryRepository) LockSection(ctx context.Context, sectionName string) ([]models.Category, error) {
	query, args, err := r.q.selectCategories(sq.Eq{"section_name": sectionName}, true)
	rows, err := queryAll(ctx, r.sqlRepository, "categoryRepository.LockSection", query, args, err, scanCategory)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrSectionNotFound
	}
	return rows, nil
}

func (r *categoryRepository) FindNeighbor(ctx context.Context, sectionName string, categoryOrder int, dir models.Direction) (models.Category, error) {
	query, args, err := r.q.selectNeighbor(sectionName, categoryOrder, dir)
	return queryOne(ctx, r.sqlRepository, "categoryRepository.FindNeighbor", query, args, err, ErrCategoryNotFound, scanCategory)
}

func (r *categoryRepository) SetCategoryOrder(ctx context.Context, id int64, categoryOrder int) error {
	query, args, err := r.q.setCategoryOrder(id, categoryOrder)
	return r.execOne(ctx, "categoryRepository.SetCategoryOrder", query, args, err, ErrCategoryNotFound)
}

// ShiftCategoryOrders moves a contiguous range of the section by delta in
// one statement.
func (r *categoryRepository) ShiftCategoryOrders(ctx context.Context, sectionName string, from, to, delta int) error {
	query, args, err := r.q.shiftCategoryOrders(sectionName, from, to, delta)
	affected, err := r.exec(ctx, "categoryRepository.ShiftCategoryOrders", query, args, err)
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "categoryRepository.ShiftCategoryOrders").
		Str("section", sectionName).
		Int("from", from).
		Int("to", to).
		Int("delta", delta).
		Int64("affected", affected).
		Msg("shifted category orders")

	return nil
}

func (r *categoryRepository) MaxCategoryOrder(ctx context.Context, sectionName string) (int, error) {
	var maxOrder int
	query, args, err := r.q.selectMaxCategoryOrder(sectionName)
	err = r.queryRow(ctx, "categoryRepository.MaxCategoryOrder", query, args, err, ErrExecutingQuery, &maxOrder)
	return maxOrder, err
}

func (r *categoryRepository) SectionOrder(ctx context.Context, sectionName string) (int, error) {
	var order int
	query, args, err := r.q.selectSectionOrder(sectionName)
	err = r.queryRow(ctx, "categoryRepository.SectionOrder", query, args, err, ErrSectionNotFound, &order)
	return order, err
}

func (r *categoryRepository) FindAdjacentSection(ctx context.Context, sectionOrder int, dir models.Direction) (string, int, error) {
	var name string
	var order int
	query, args, err := r.q.selectAdjacentSection(sectionOrder, dir)
	err = r.queryRow(ctx, "categoryRepository.FindAdjacentSection", query, args, err, ErrSectionNotFound, &name, &order)
	return name, order, err
}

func (r *categoryRepository) SetSectionOrder(ctx context.Context, sectionName string, sectionOrder int) (int64, error) {
	query, args, err := r.q.setSectionOrder(sectionName, sectionOrder)
	return r.exec(ctx, "categoryRepository.SetSectionOrder", query, args, err)
}

func (r *categoryRepository) ShiftSectionOrders(ctx context.Context, after, delta int) error {
	query, args, err := r.q.shiftSectionOrders(after, delta)
	_, err = r.exec(ctx, "categoryRepository.ShiftSectionOrders", query, args, err)
	return err
}

func (r *categoryRepository) MaxSectionOrder(ctx context.Context) (int, error) {
	var maxOrder int
	query, args, err := r.q.selectMaxSectionOrder()
	err = r.queryRow(ctx, "categoryRepository.MaxSectionOrder", query, args, err, ErrExecutingQuery, &maxOrder)
	return maxOrder, err
}

func (r *categoryRepository) RenameSection(ctx context.Context, oldName, newName string) (int64, error) {
	query, args, err := r.q.renameSection(oldName, newName)
	return r.exec(ctx, "categoryRepository.RenameSection", query, args, err)
}

func (r *categoryRepository) DeleteSection(ctx context.Context, sectionName string) (int64, error) {
	query, args, err := r.q.deleteSection(sectionName)
	return r.exec(ctx, "categoryRepository.DeleteSection", query, args, err)
}
