package http

import (
	"fmt"
	"net/http"

	"github.com/maxazure/home/models"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.CategoryService.List(r.Context())
	if err != nil {
		writeError(w, r, "Handler.listCategories", err)
		return
	}

	writeOK(w, models.NewCategoryResponses(categories))
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "Handler.getCategory", err)
		return
	}

	category, err := h.services.CategoryService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, "Handler.getCategory", err)
		return
	}

	writeOK(w, models.NewCategoryResponse(category))
}

func (h *Handler) listCategoryLinks(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "Handler.listCategoryLinks", err)
		return
	}

	links, err := h.services.CategoryService.ListLinks(r.Context(), id)
	if err != nil {
		writeError(w, r, "Handler.listCategoryLinks", err)
		return
	}

	writeOK(w, models.NewLinkResponses(links))
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.createCategory", err)
		return
	}

	category, err := h.services.CategoryService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, "Handler.createCategory", err)
		return
	}

	writeOK(w, models.NewCategoryResponse(category))
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "Handler.updateCategory", err)
		return
	}

	var req models.CategoryRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.updateCategory", err)
		return
	}

	category, err := h.services.CategoryService.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, r, "Handler.updateCategory", err)
		return
	}

	writeOK(w, models.NewCategoryResponse(category))
}

// deleteCategory removes the category with its links and closes the gap it
// leaves in the order.
func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "Handler.deleteCategory", err)
		return
	}

	if err = h.services.CategoryService.Delete(r.Context(), id); err != nil {
		writeError(w, r, "Handler.deleteCategory", err)
		return
	}

	writeMessage(w, "category deleted")
}

// createSection opens a section with one default category.
func (h *Handler) createSection(w http.ResponseWriter, r *http.Request) {
	var req models.SectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.createSection", err)
		return
	}

	category, err := h.services.CategoryService.CreateSection(r.Context(), req.SectionName)
	if err != nil {
		writeError(w, r, "Handler.createSection", err)
		return
	}

	writeOK(w, models.NewCategoryResponse(category))
}

func (h *Handler) renameSection(w http.ResponseWriter, r *http.Request) {
	var req models.RenameSectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.renameSection", err)
		return
	}

	if err := h.services.CategoryService.RenameSection(r.Context(), req.OldSectionName, req.SectionName); err != nil {
		writeError(w, r, "Handler.renameSection", err)
		return
	}

	writeMessage(w, fmt.Sprintf("section %s renamed to %s", req.OldSectionName, req.SectionName))
}

func (h *Handler) deleteSection(w http.ResponseWriter, r *http.Request) {
	var req models.SectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.deleteSection", err)
		return
	}

	if err := h.services.CategoryService.DeleteSection(r.Context(), req.SectionName); err != nil {
		writeError(w, r, "Handler.deleteSection", err)
		return
	}

	writeMessage(w, fmt.Sprintf("section %s deleted", req.SectionName))
}
