package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/maxazure/home/models"
)

type pageRepository struct {
	sqlRepository
}

func scanPage(row rowScanner) (models.Page, error) {
	var p models.Page
	err := row.Scan(&p.ID, &p.Name, &p.Slug)
	return p, err
}

func (r *pageRepository) Create(ctx context.Context, p models.Page) (models.Page, error) {
	query, args, err := r.q.insertPage(p)
	err = r.queryRow(ctx, "pageRepository.Create", query, args, err, ErrExecutingQuery, &p.ID)
	if err != nil {
		return models.Page{}, r.constraintError(err, ErrSlugAlreadyExists, nil)
	}
	return p, nil
}

func (r *pageRepository) FindByID(ctx context.Context, id int64) (models.Page, error) {
	query, args, err := r.q.selectPages(sq.Eq{"id": id})
	return queryOne(ctx, r.sqlRepository, "pageRepository.FindByID", query, args, err, ErrPageNotFound, scanPage)
}

func (r *pageRepository) List(ctx context.Context) ([]models.Page, error) {
	query, args, err := r.q.selectPages(nil)
	return queryAll(ctx, r.sqlRepository, "pageRepository.List", query, args, err, scanPage)
}

func (r *pageRepository) Update(ctx context.Context, p models.Page) error {
	query, args, err := r.q.updatePage(p)
	err = r.execOne(ctx, "pageRepository.Update", query, args, err, ErrPageNotFound)
	return r.constraintError(err, ErrSlugAlreadyExists, nil)
}

// Delete removes the page with its regions and, through them, their
// categories and links.
func (r *pageRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.q.deleteByID(pagesTable, id)
	return r.execOne(ctx, "pageRepository.Delete", query, args, err, ErrPageNotFound)
}
