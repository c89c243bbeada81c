package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/store"
	"github.com/maxazure/home/internal/validators"
	"github.com/maxazure/home/models"
)

type pageService struct {
	transactor store.Transactor
	ordering   OrderingService
	validator  validators.Validator

	logger *logger.Logger
}

func NewPageService(transactor store.Transactor, ordering OrderingService, logger *logger.Logger) PageService {
	return &pageService{
		transactor: transactor,
		ordering:   ordering,
		validator:  validators.NewRequestValidator(),
		logger:     logger,
	}
}

// derivePageSlug returns the explicit slug when one is given and derives
// it from the name otherwise.
func derivePageSlug(name string, explicit *string) (string, error) {
	if explicit != nil && *explicit != "" {
		return *explicit, nil
	}
	if s := slug.Make(name); s != "" {
		return s, nil
	}
	return "", fmt.Errorf("%w: cannot derive a slug from %q", ErrInvalidDataProvided, name)
}

func (s *pageService) List(ctx context.Context) (pages []models.Page, err error) {
	err = store.ReadOnly(ctx, s.transactor, func(uow store.UnitOfWork) error {
		if pages, err = uow.Pages().List(ctx); err != nil {
			return err
		}
		regions, err := uow.Regions().List(ctx)
		if err != nil {
			return err
		}

		byPage := make(map[int64][]models.Region, len(pages))
		for _, r := range regions {
			if r.PageID != nil {
				byPage[*r.PageID] = append(byPage[*r.PageID], r)
			}
		}
		for i := range pages {
			pages[i].Regions = byPage[pages[i].ID]
		}
		return nil
	})
	return pages, err
}

func (s *pageService) Get(ctx context.Context, id int64) (page models.Page, err error) {
	err = store.ReadOnly(ctx, s.transactor, func(uow store.UnitOfWork) error {
		if page, err = uow.Pages().FindByID(ctx, id); err != nil {
			return err
		}
		page.Regions, err = uow.Regions().ListByPage(ctx, id)
		return err
	})
	return page, err
}

func (s *pageService) Create(ctx context.Context, req models.PageRequest) (models.Page, error) {
	if err := s.validator.Validate(ctx, req, validators.FieldName, validators.FieldSlug); err != nil {
		return models.Page{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	name := strings.TrimSpace(*req.Name)
	pageSlug, err := derivePageSlug(name, req.Slug)
	if err != nil {
		return models.Page{}, err
	}

	var page models.Page
	err = store.WithinTx(ctx, s.transactor, func(uow store.UnitOfWork) error {
		page, err = uow.Pages().Create(ctx, models.Page{Name: name, Slug: pageSlug})
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "pageService.Create").Str("slug", pageSlug).Msg("page creation ended with error")
		return models.Page{}, fmt.Errorf("page creation ended with error: %w", err)
	}

	return page, nil
}

// Update renames the page. The slug follows the new name unless the
// request sets it explicitly.
func (s *pageService) Update(ctx context.Context, id int64, req models.PageRequest) (models.Page, error) {
	fields := []string{validators.FieldAny, validators.FieldSlug}
	if req.Name != nil {
		fields = append(fields, validators.FieldName)
	}
	if err := s.validator.Validate(ctx, req, fields...); err != nil {
		return models.Page{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	var page models.Page
	err := store.WithinTx(ctx, s.transactor, func(uow store.UnitOfWork) error {
		var err error
		if page, err = uow.Pages().FindByID(ctx, id); err != nil {
			return err
		}

		if req.Name != nil {
			page.Name = strings.TrimSpace(*req.Name)
			if page.Slug, err = derivePageSlug(page.Name, req.Slug); err != nil {
				return err
			}
		} else if req.Slug != nil && *req.Slug != "" {
			page.Slug = *req.Slug
		}
		return uow.Pages().Update(ctx, page)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "pageService.Update").Int64("page_id", id).Msg("page update ended with error")
		return models.Page{}, fmt.Errorf("page update ended with error: %w", err)
	}

	return page, nil
}

// Delete removes the page with its regions, their categories and links.
// The orders are renumbered afterwards since whole sections may be gone.
func (s *pageService) Delete(ctx context.Context, id int64) error {
	err := store.WithinTx(ctx, s.transactor, func(uow store.UnitOfWork) error {
		if err := uow.Pages().Delete(ctx, id); err != nil {
			return err
		}
		return s.ordering.Normalize(ctx, uow)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "pageService.Delete").Int64("page_id", id).Msg("page deletion ended with error")
		return fmt.Errorf("page deletion ended with error: %w", err)
	}
	return nil
}
