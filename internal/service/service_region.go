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

type regionService struct {
	transactor store.Transactor
	ordering   OrderingService
	validator  validators.Validator

	logger *logger.Logger
}

func NewRegionService(transactor store.Transactor, ordering OrderingService, logger *logger.Logger) RegionService {
	return &regionService{
		transactor: transactor,
		ordering:   ordering,
		validator:  validators.NewRequestValidator(),
		logger:     logger,
	}
}

func (s *regionService) List(ctx context.Context) (regions []models.Region, err error) {
	err = store.ReadOnly(ctx, s.transactor, func(uow store.UnitOfWork) error {
		regions, err = uow.Regions().List(ctx)
		return err
	})
	return regions, err
}

// Get returns the region with its categories in display order, links
// attached.
func (s *regionService) Get(ctx context.Context, id int64) (region models.Region, err error) {
	err = store.ReadOnly(ctx, s.transactor, func(uow store.UnitOfWork) error {
		if region, err = uow.Regions().FindByID(ctx, id); err != nil {
			return err
		}
		if region.Categories, err = uow.Categories().ListByRegion(ctx, id); err != nil {
			return err
		}
		for i := range region.Categories {
			region.Categories[i].Links, err = uow.Links().ListByCategory(ctx, region.Categories[i].ID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	return region, err
}

func (s *regionService) Create(ctx context.Context, req models.RegionRequest) (models.Region, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Region{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	var region models.Region
	err := store.WithinTx(ctx, s.transactor, func(uow store.UnitOfWork) error {
		var err error
		region, err = uow.Regions().Create(ctx, models.Region{Name: strings.TrimSpace(*req.Name), PageID: req.PageID})
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "regionService.Create").Msg("region creation ended with error")
		return models.Region{}, fmt.Errorf("region creation ended with error: %w", err)
	}

	return region, nil
}

func (s *regionService) Update(ctx context.Context, id int64, req models.RegionRequest) (models.Region, error) {
	fields := []string{validators.FieldAny}
	if req.Name != nil {
		fields = append(fields, validators.FieldName)
	}
	if err := s.validator.Validate(ctx, req, fields...); err != nil {
		return models.Region{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	var region models.Region
	err := store.WithinTx(ctx, s.transactor, func(uow store.UnitOfWork) error {
		var err error
		if region, err = uow.Regions().FindByID(ctx, id); err != nil {
			return err
		}
		if req.Name != nil {
			region.Name = strings.TrimSpace(*req.Name)
		}
		if req.PageID != nil {
			region.PageID = req.PageID
		}
		return uow.Regions().Update(ctx, region)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "regionService.Update").Int64("region_id", id).Msg("region update ended with error")
		return models.Region{}, fmt.Errorf("region update ended with error: %w", err)
	}

	return region, nil
}

func (s *regionService) Delete(ctx context.Context, id int64) error {
	err := store.WithinTx(ctx, s.transactor, func(uow store.UnitOfWork) error {
		if err := uow.Regions().Delete(ctx, id); err != nil {
			return err
		}
		return s.ordering.Normalize(ctx, uow)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "regionService.Delete").Int64("region_id", id).Msg("region deletion ended with error")
		return fmt.Errorf("region deletion ended with error: %w", err)
	}
	return nil
}
