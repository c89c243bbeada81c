package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/maxazure/home/models"
)

type linkRepository struct {
	sqlRepository
}

func scanLink(row rowScanner) (models.Link, error) {
	var l models.Link
	err := row.Scan(&l.ID, &l.Name, &l.URL, &l.CategoryID)
	return l, err
}

func (r *linkRepository) Create(ctx context.Context, l models.Link) (models.Link, error) {
	query, args, err := r.q.insertLink(l)
	err = r.queryRow(ctx, "linkRepository.Create", query, args, err, ErrExecutingQuery, &l.ID)
	if err != nil {
		return models.Link{}, r.constraintError(err, nil, ErrCategoryNotFound)
	}
	return l, nil
}

func (r *linkRepository) FindByID(ctx context.Context, id int64) (models.Link, error) {
	query, args, err := r.q.selectLinks(sq.Eq{"id": id})
	return queryOne(ctx, r.sqlRepository, "linkRepository.FindByID", query, args, err, ErrLinkNotFound, scanLink)
}

func (r *linkRepository) List(ctx context.Context) ([]models.Link, error) {
	query, args, err := r.q.selectLinks(nil)
	return queryAll(ctx, r.sqlRepository, "linkRepository.List", query, args, err, scanLink)
}

func (r *linkRepository) ListByCategory(ctx context.Context, categoryID int64) ([]models.Link, error) {
	query, args, err := r.q.selectLinks(sq.Eq{"category_id": categoryID})
	return queryAll(ctx, r.sqlRepository, "linkRepository.ListByCategory", query, args, err, scanLink)
}

func (r *linkRepository) Update(ctx context.Context, l models.Link) error {
	query, args, err := r.q.updateLink(l)
	err = r.execOne(ctx, "linkRepository.Update", query, args, err, ErrLinkNotFound)
	return r.constraintError(err, nil, ErrCategoryNotFound)
}

func (r *linkRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.q.deleteByID(linksTable, id)
	return r.execOne(ctx, "linkRepository.Delete", query, args, err, ErrLinkNotFound)
}
