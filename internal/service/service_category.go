package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/store"
	"github.com/maxazure/home/internal/validators"
	"github.com/maxazure/home/models"
)

// defaultCategoryTitle names the category a new section starts with.
const defaultCategoryTitle = "%s Default"

type categoryService struct {
	transactor store.Transactor
	ordering   OrderingService
	validator  validators.Validator

	logger *logger.Logger
}

func NewCategoryService(transactor store.Transactor, ordering OrderingService, logger *logger.Logger) CategoryService {
	return &categoryService{
		transactor: transactor,
		ordering:   ordering,
		validator:  validators.NewRequestValidator(),
		logger:     logger,
	}
}

// List returns every category in display order with its links attached.
func (s *categoryService) List(ctx context.Context) (categories []models.Category, err error) {
	err = store.ReadOnly(ctx, s.transactor, func(uow store.UnitOfWork) error {
		if categories, err = uow.Categories().List(ctx); err != nil {
			return err
		}
		links, err := uow.Links().List(ctx)
		if err != nil {
			return err
		}
		attachLinks(categories, links)
		return nil
	})
	return categories, err
}

func attachLinks(categories []models.Category, links []models.Link) {
	byCategory := make(map[int64][]models.Link, len(categories))
	for _, l := range links {
		byCategory[l.CategoryID] = append(byCategory[l.CategoryID], l)
	}
	for i := range categories {
		categories[i].Links = byCategory[categories[i].ID]
	}
}

func (s *categoryService) Get(ctx context.Context, id int64) (category models.Category, err error) {
	err = store.ReadOnly(ctx, s.transactor, func(uow store.UnitOfWork) error {
		if category, err = uow.Categories().FindByID(ctx, id); err != nil {
			return err
		}
		category.Links, err = uow.Links().ListByCategory(ctx, id)
		return err
	})
	return category, err
}

func (s *categoryService) ListLinks(ctx context.Context, categoryID int64) (links []models.Link, err error) {
	err = store.ReadOnly(ctx, s.transactor, func(uow store.UnitOfWork) error {
		if _, err = uow.Categories().FindByID(ctx, categoryID); err != nil {
			return err
		}
		links, err = uow.Links().ListByCategory(ctx, categoryID)
		return err
	})
	return links, err
}

// Create appends the category to the end of its section. A section that
// does not exist yet is appended after the last section.
func (s *categoryService) Create(ctx context.Context, req models.CategoryRequest) (models.Category, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	var created models.Category
	err := store.WithinTx(ctx, s.transactor, func(uow store.UnitOfWork) error {
		category := models.Category{
			Title:       strings.TrimSpace(*req.Title),
			SectionName: strings.TrimSpace(*req.SectionName),
			RegionID:    req.RegionID,
		}
		if err := appendPosition(ctx, uow, &category); err != nil {
			return err
		}

		var err error
		created, err = uow.Categories().Create(ctx, category)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "categoryService.Create").Msg("category creation ended with error")
		return models.Category{}, fmt.Errorf("category creation ended with error: %w", err)
	}

	return created, nil
}

// appendPosition sets both orders so that category lands after the last
// category of its section.
func appendPosition(ctx context.Context, uow store.UnitOfWork, category *models.Category) error {
	categories := uow.Categories()

	sectionOrder, err := categories.SectionOrder(ctx, category.SectionName)
	if errors.Is(err, store.ErrSectionNotFound) {
		maxSection, err := categories.MaxSectionOrder(ctx)
		if err != nil {
			return err
		}
		category.SectionOrder = maxSection + 1
		category.CategoryOrder = 1
		return nil
	}
	if err != nil {
		return err
	}

	if _, err = categories.LockSection(ctx, category.SectionName); err != nil {
		return err
	}
	maxCategory, err := categories.MaxCategoryOrder(ctx, category.SectionName)
	if err != nil {
		return err
	}

	category.SectionOrder = sectionOrder
	category.CategoryOrder = maxCategory + 1
	return nil
}

// Update changes the given fields. A category moved to another section is
// appended there and the section it left is compacted.
func (s *categoryService) Update(ctx context.Context, id int64, req models.CategoryRequest) (models.Category, error) {
	fields := []string{validators.FieldAny}
	if req.Title != nil {
		fields = append(fields, validators.FieldTitle)
	}
	if req.SectionName != nil {
		fields = append(fields, validators.FieldSectionName)
	}
	if err := s.validator.Validate(ctx, req, fields...); err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	var category models.Category
	err := store.WithinTx(ctx, s.transactor, func(uow store.UnitOfWork) error {
		var err error
		if category, err = uow.Categories().LockByID(ctx, id); err != nil {
			return err
		}

		if req.Title != nil {
			category.Title = strings.TrimSpace(*req.Title)
		}
		if req.RegionID != nil {
			category.RegionID = req.RegionID
		}

		moved := false
		if req.SectionName != nil {
			if name := strings.TrimSpace(*req.SectionName); name != category.SectionName {
				category.SectionName = name
				if err = appendPosition(ctx, uow, &category); err != nil {
					return err
				}
				moved = true
			}
		}

		if err = uow.Categories().Update(ctx, category); err != nil {
			return err
		}
		if !moved {
			return nil
		}

		if err = s.ordering.Normalize(ctx, uow); err != nil {
			return err
		}
		category, err = uow.Categories().FindByID(ctx, id)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "categoryService.Update").Int64("category_id", id).Msg("category update ended with error")
		return models.Category{}, fmt.Errorf("category update ended with error: %w", err)
	}

	return category, nil
}

// Delete removes the category with its links and closes the gap it leaves.
func (s *categoryService) Delete(ctx context.Context, id int64) error {
	err := store.WithinTx(ctx, s.transactor, func(uow store.UnitOfWork) error {
		category, err := uow.Categories().LockByID(ctx, id)
		if err != nil {
			return err
		}
		if _, err = uow.Categories().LockSection(ctx, category.SectionName); err != nil {
			return err
		}
		if err = uow.Categories().Delete(ctx, id); err != nil {
			return err
		}
		return s.ordering.Normalize(ctx, uow)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "categoryService.Delete").Int64("category_id", id).Msg("category deletion ended with error")
		return fmt.Errorf("category deletion ended with error: %w", err)
	}

	return nil
}

// CreateSection starts a new section at the end with one default category.
func (s *categoryService) CreateSection(ctx context.Context, sectionName string) (models.Category, error) {
	if err := s.validator.Validate(ctx, models.SectionRequest{SectionName: sectionName}); err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	sectionName = strings.TrimSpace(sectionName)

	var created models.Category
	err := store.WithinTx(ctx, s.transactor, func(uow store.UnitOfWork) error {
		categories := uow.Categories()

		_, err := categories.SectionOrder(ctx, sectionName)
		if err == nil {
			return fmt.Errorf("%w: %q", store.ErrSectionAlreadyExists, sectionName)
		}
		if !errors.Is(err, store.ErrSectionNotFound) {
			return err
		}

		maxSection, err := categories.MaxSectionOrder(ctx)
		if err != nil {
			return err
		}
		created, err = categories.Create(ctx, models.Category{
			Title:         fmt.Sprintf(defaultCategoryTitle, sectionName),
			SectionName:   sectionName,
			SectionOrder:  maxSection + 1,
			CategoryOrder: 1,
		})
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "categoryService.CreateSection").Str("section", sectionName).Msg("section creation ended with error")
		return models.Category{}, fmt.Errorf("section creation ended with error: %w", err)
	}

	return created, nil
}

func (s *categoryService) RenameSection(ctx context.Context, oldName, newName string) error {
	req := models.RenameSectionRequest{OldSectionName: oldName, SectionName: newName}
	if err := s.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	oldName, newName = strings.TrimSpace(oldName), strings.TrimSpace(newName)
	if oldName == newName {
		return nil
	}

	err := store.WithinTx(ctx, s.transactor, func(uow store.UnitOfWork) error {
		categories := uow.Categories()

		if _, err := categories.LockSection(ctx, oldName); err != nil {
			return err
		}

		_, err := categories.SectionOrder(ctx, newName)
		if err == nil {
			return fmt.Errorf("%w: %q", store.ErrSectionAlreadyExists, newName)
		}
		if !errors.Is(err, store.ErrSectionNotFound) {
			return err
		}

		_, err = categories.RenameSection(ctx, oldName, newName)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "categoryService.RenameSection").Str("section", oldName).Msg("section rename ended with error")
		return fmt.Errorf("section rename ended with error: %w", err)
	}

	return nil
}

// DeleteSection removes every category of the section with their links and
// moves the following sections up by one.
func (s *categoryService) DeleteSection(ctx context.Context, sectionName string) error {
	if err := s.validator.Validate(ctx, models.SectionRequest{SectionName: sectionName}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	sectionName = strings.TrimSpace(sectionName)

	err := store.WithinTx(ctx, s.transactor, func(uow store.UnitOfWork) error {
		categories := uow.Categories()

		if _, err := categories.LockSection(ctx, sectionName); err != nil {
			return err
		}
		order, err := categories.SectionOrder(ctx, sectionName)
		if err != nil {
			return err
		}
		if _, err = categories.DeleteSection(ctx, sectionName); err != nil {
			return err
		}
		return categories.ShiftSectionOrders(ctx, order, -1)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "categoryService.DeleteSection").Str("section", sectionName).Msg("section deletion ended with error")
		return fmt.Errorf("section deletion ended with error: %w", err)
	}

	return nil
}
