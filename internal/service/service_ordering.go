package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/store"
	"github.com/maxazure/home/models"
)

// orderingService keeps two dense orders: section_order across sections and
// category_order inside each section. Rows of the affected sections are
// locked before they are read for a decision.
type orderingService struct {
	logger *logger.Logger
}

func NewOrderingService(logger *logger.Logger) OrderingService {
	return &orderingService{logger: logger}
}

// MoveCategory swaps the category with its nearest neighbour in the given
// direction. At the edge of the section nothing changes.
func (o *orderingService) MoveCategory(ctx context.Context, uow store.UnitOfWork, categoryID int64, dir models.Direction) error {
	if err := o.moveCategory(ctx, uow, categoryID, dir); err != nil {
		return o.failed(ctx, "orderingService.MoveCategory", err)
	}
	return nil
}

func (o *orderingService) moveCategory(ctx context.Context, uow store.UnitOfWork, categoryID int64, dir models.Direction) error {
	categories := uow.Categories()

	category, err := categories.LockByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if _, err = categories.LockSection(ctx, category.SectionName); err != nil {
		return err
	}

	neighbor, err := categories.FindNeighbor(ctx, category.SectionName, category.CategoryOrder, dir)
	if errors.Is(err, store.ErrCategoryNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = categories.SetCategoryOrder(ctx, category.ID, neighbor.CategoryOrder); err != nil {
		return err
	}
	if err = categories.SetCategoryOrder(ctx, neighbor.ID, category.CategoryOrder); err != nil {
		return err
	}

	return o.compactSection(ctx, uow, category.SectionName)
}

// ReorderCategory moves the source category to the position of the target
// and shifts every category in between by one.
func (o *orderingService) ReorderCategory(ctx context.Context, uow store.UnitOfWork, sourceID, targetID int64) error {
	if err := o.reorderCategory(ctx, uow, sourceID, targetID); err != nil {
		return o.failed(ctx, "orderingService.ReorderCategory", err)
	}
	return nil
}

func (o *orderingService) reorderCategory(ctx context.Context, uow store.UnitOfWork, sourceID, targetID int64) error {
	categories := uow.Categories()

	source, err := categories.LockByID(ctx, sourceID)
	if err != nil {
		return err
	}
	target, err := categories.LockByID(ctx, targetID)
	if err != nil {
		return err
	}
	if source.SectionName != target.SectionName {
		return fmt.Errorf("%w: %q and %q", ErrCrossSectionReorder, source.SectionName, target.SectionName)
	}
	if source.ID == target.ID {
		return nil
	}

	section := source.SectionName
	if _, err = categories.LockSection(ctx, section); err != nil {
		return err
	}

	from, to := source.CategoryOrder, target.CategoryOrder
	switch {
	case from > to:
		err = categories.ShiftCategoryOrders(ctx, section, to, from-1, 1)
	case from < to:
		err = categories.ShiftCategoryOrders(ctx, section, from+1, to, -1)
	}
	if err != nil {
		return err
	}

	if err = categories.SetCategoryOrder(ctx, source.ID, to); err != nil {
		return err
	}

	return o.compactSection(ctx, uow, section)
}

// ReorderSection swaps section_order of the section with its neighbour on
// every row of both sections.
func (o *orderingService) ReorderSection(ctx context.Context, uow store.UnitOfWork, sectionName string, dir models.Direction) error {
	if err := o.reorderSection(ctx, uow, sectionName, dir); err != nil {
		return o.failed(ctx, "orderingService.ReorderSection", err)
	}
	return nil
}

func (o *orderingService) reorderSection(ctx context.Context, uow store.UnitOfWork, sectionName string, dir models.Direction) error {
	categories := uow.Categories()

	if _, err := categories.LockSection(ctx, sectionName); err != nil {
		return err
	}
	order, err := categories.SectionOrder(ctx, sectionName)
	if err != nil {
		return err
	}

	otherName, otherOrder, err := categories.FindAdjacentSection(ctx, order, dir)
	if errors.Is(err, store.ErrSectionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if _, err = categories.LockSection(ctx, otherName); err != nil {
		return err
	}

	if _, err = categories.SetSectionOrder(ctx, sectionName, otherOrder); err != nil {
		return err
	}
	_, err = categories.SetSectionOrder(ctx, otherName, order)
	return err
}

func (o *orderingService) Normalize(ctx context.Context, uow store.UnitOfWork) error {
	if err := o.normalize(ctx, uow); err != nil {
		return o.failed(ctx, "orderingService.Normalize", err)
	}
	return nil
}

func (o *orderingService) normalize(ctx context.Context, uow store.UnitOfWork) error {
	categories := uow.Categories()

	all, err := categories.List(ctx)
	if err != nil {
		return err
	}

	sectionOrder := 0
	categoryOrder := 0
	current := ""
	for i, c := range all {
		if i == 0 || c.SectionName != current {
			current = c.SectionName
			sectionOrder++
			categoryOrder = 0
			if c.SectionOrder != sectionOrder {
				if _, err = categories.SetSectionOrder(ctx, current, sectionOrder); err != nil {
					return err
				}
			}
		}

		categoryOrder++
		if c.CategoryOrder != categoryOrder {
			if err = categories.SetCategoryOrder(ctx, c.ID, categoryOrder); err != nil {
				return err
			}
		}
	}

	return nil
}

// compactSection renumbers category_order of a section to 1..N keeping the
// current relative order.
func (o *orderingService) compactSection(ctx context.Context, uow store.UnitOfWork, sectionName string) error {
	rows, err := uow.Categories().LockSection(ctx, sectionName)
	if errors.Is(err, store.ErrSectionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	for i, c := range rows {
		if c.CategoryOrder == i+1 {
			continue
		}
		if err = uow.Categories().SetCategoryOrder(ctx, c.ID, i+1); err != nil {
			return err
		}
	}
	return nil
}

func (o *orderingService) failed(ctx context.Context, fn string, err error) error {
	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("reorder failed")
	return fmt.Errorf("%w: %w", ErrReorderFailed, err)
}
