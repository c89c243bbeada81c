package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/store"
	"github.com/maxazure/home/internal/validators"
	"github.com/maxazure/home/models"
)

type linkService struct {
	transactor store.Transactor
	validator  validators.Validator

	logger *logger.Logger
}

func NewLinkService(transactor store.Transactor, logger *logger.Logger) LinkService {
	return &linkService{
		transactor: transactor,
		validator:  validators.NewRequestValidator(),
		logger:     logger,
	}
}

func (s *linkService) List(ctx context.Context) (links []models.Link, err error) {
	err = store.ReadOnly(ctx, s.transactor, func(uow store.UnitOfWork) error {
		links, err = uow.Links().List(ctx)
		return err
	})
	return links, err
}

func (s *linkService) Get(ctx context.Context, id int64) (link models.Link, err error) {
	err = store.ReadOnly(ctx, s.transactor, func(uow store.UnitOfWork) error {
		link, err = uow.Links().FindByID(ctx, id)
		return err
	})
	return link, err
}

func (s *linkService) Create(ctx context.Context, req models.LinkRequest) (models.Link, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Link{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	var link models.Link
	err := store.WithinTx(ctx, s.transactor, func(uow store.UnitOfWork) error {
		var err error
		link, err = uow.Links().Create(ctx, models.Link{
			Name:       strings.TrimSpace(*req.Name),
			URL:        strings.TrimSpace(*req.URL),
			CategoryID: *req.CategoryID,
		})
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "linkService.Create").Msg("link creation ended with error")
		return models.Link{}, fmt.Errorf("link creation ended with error: %w", err)
	}

	return link, nil
}

func (s *linkService) Update(ctx context.Context, id int64, req models.LinkRequest) (models.Link, error) {
	fields := []string{validators.FieldAny}
	if req.Name != nil {
		fields = append(fields, validators.FieldName)
	}
	if req.URL != nil {
		fields = append(fields, validators.FieldURL)
	}
	if req.CategoryID != nil {
		fields = append(fields, validators.FieldCategoryID)
	}
	if err := s.validator.Validate(ctx, req, fields...); err != nil {
		return models.Link{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	var link models.Link
	err := store.WithinTx(ctx, s.transactor, func(uow store.UnitOfWork) error {
		var err error
		if link, err = uow.Links().FindByID(ctx, id); err != nil {
			return err
		}

		if req.Name != nil {
			link.Name = strings.TrimSpace(*req.Name)
		}
		if req.URL != nil {
			link.URL = strings.TrimSpace(*req.URL)
		}
		if req.CategoryID != nil {
			link.CategoryID = *req.CategoryID
		}
		return uow.Links().Update(ctx, link)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "linkService.Update").Int64("link_id", id).Msg("link update ended with error")
		return models.Link{}, fmt.Errorf("link update ended with error: %w", err)
	}

	return link, nil
}

func (s *linkService) Delete(ctx context.Context, id int64) error {
	err := store.WithinTx(ctx, s.transactor, func(uow store.UnitOfWork) error {
		return uow.Links().Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("link deletion ended with error: %w", err)
	}
	return nil
}
