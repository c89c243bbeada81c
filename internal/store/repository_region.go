package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/maxazure/home/models"
)

type regionRepository struct {
	sqlRepository
}

func scanRegion(row rowScanner) (models.Region, error) {
	var reg models.Region
	var pageID sql.NullInt64

	if err := row.Scan(&reg.ID, &reg.Name, &pageID); err != nil {
		return models.Region{}, err
	}
	reg.PageID = int64Ptr(pageID)

	return reg, nil
}

func (r *regionRepository) Create(ctx context.Context, reg models.Region) (models.Region, error) {
	query, args, err := r.q.insertRegion(reg)
	err = r.queryRow(ctx, "regionRepository.Create", query, args, err, ErrExecutingQuery, &reg.ID)
	if err != nil {
		return models.Region{}, r.constraintError(err, nil, ErrPageNotFound)
	}
	return reg, nil
}

func (r *regionRepository) FindByID(ctx context.Context, id int64) (models.Region, error) {
	query, args, err := r.q.selectRegions(sq.Eq{"id": id})
	return queryOne(ctx, r.sqlRepository, "regionRepository.FindByID", query, args, err, ErrRegionNotFound, scanRegion)
}

func (r *regionRepository) List(ctx context.Context) ([]models.Region, error) {
	query, args, err := r.q.selectRegions(nil)
	return queryAll(ctx, r.sqlRepository, "regionRepository.List", query, args, err, scanRegion)
}

func (r *regionRepository) ListByPage(ctx context.Context, pageID int64) ([]models.Region, error) {
	query, args, err := r.q.selectRegions(sq.Eq{"page_id": pageID})
	return queryAll(ctx, r.sqlRepository, "regionRepository.ListByPage", query, args, err, scanRegion)
}

func (r *regionRepository) Update(ctx context.Context, reg models.Region) error {
	query, args, err := r.q.updateRegion(reg)
	err = r.execOne(ctx, "regionRepository.Update", query, args, err, ErrRegionNotFound)
	return r.constraintError(err, nil, ErrPageNotFound)
}

// Delete removes the region with its categories and their links.
func (r *regionRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.q.deleteByID(regionsTable, id)
	return r.execOne(ctx, "regionRepository.Delete", query, args, err, ErrRegionNotFound)
}
