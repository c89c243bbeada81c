package http

import (
	"net/http"

	"github.com/maxazure/home/internal/store"
	"github.com/maxazure/home/models"
)

// reorderCategory places the source category at the position of the target
// category inside their shared section.
func (h *Handler) reorderCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ReorderCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.reorderCategory", err)
		return
	}
	if err := h.validate(r, req); err != nil {
		writeError(w, r, "Handler.reorderCategory", err)
		return
	}

	err := store.WithinTx(ctx, h.services.Transactor, func(uow store.UnitOfWork) error {
		return h.services.OrderingService.ReorderCategory(ctx, uow, req.SourceID, req.TargetID)
	})
	if err != nil {
		writeError(w, r, "Handler.reorderCategory", err)
		return
	}

	writeMessage(w, "category reordered")
}

// moveCategory swaps a category with its neighbour. At the edge of the
// section this is a successful no-op.
func (h *Handler) moveCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.MoveCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.moveCategory", err)
		return
	}
	if err := h.validate(r, req); err != nil {
		writeError(w, r, "Handler.moveCategory", err)
		return
	}
	dir, _ := models.ParseDirection(req.Direction)

	err := store.WithinTx(ctx, h.services.Transactor, func(uow store.UnitOfWork) error {
		return h.services.OrderingService.MoveCategory(ctx, uow, req.CategoryID, dir)
	})
	if err != nil {
		writeError(w, r, "Handler.moveCategory", err)
		return
	}

	writeMessage(w, "category moved")
}

func (h *Handler) reorderSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ReorderSectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.reorderSection", err)
		return
	}
	if err := h.validate(r, req); err != nil {
		writeError(w, r, "Handler.reorderSection", err)
		return
	}
	dir, _ := models.ParseDirection(req.Direction)

	err := store.WithinTx(ctx, h.services.Transactor, func(uow store.UnitOfWork) error {
		return h.services.OrderingService.ReorderSection(ctx, uow, req.SectionName, dir)
	})
	if err != nil {
		writeError(w, r, "Handler.reorderSection", err)
		return
	}

	writeMessage(w, "section reordered")
}
