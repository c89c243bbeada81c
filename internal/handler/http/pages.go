package http

import (
	"net/http"

	"github.com/maxazure/home/models"
)

func (h *Handler) listPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.services.PageService.List(r.Context())
	if err != nil {
		writeError(w, r, "Handler.listPages", err)
		return
	}

	writeOK(w, models.NewPageResponses(pages))
}

func (h *Handler) getPage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "Handler.getPage", err)
		return
	}

	page, err := h.services.PageService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, "Handler.getPage", err)
		return
	}

	writeOK(w, models.NewPageResponse(page))
}

// createPage derives the slug from the name unless the request sets one.
func (h *Handler) createPage(w http.ResponseWriter, r *http.Request) {
	var req models.PageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.createPage", err)
		return
	}

	page, err := h.services.PageService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, "Handler.createPage", err)
		return
	}

	writeCreated(w, models.NewPageResponse(page))
}

func (h *Handler) updatePage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "Handler.updatePage", err)
		return
	}

	var req models.PageRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.updatePage", err)
		return
	}

	page, err := h.services.PageService.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, r, "Handler.updatePage", err)
		return
	}

	writeOK(w, models.NewPageResponse(page))
}

// deletePage removes the page with its regions, their categories and links.
func (h *Handler) deletePage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "Handler.deletePage", err)
		return
	}

	if err = h.services.PageService.Delete(r.Context(), id); err != nil {
		writeError(w, r, "Handler.deletePage", err)
		return
	}

	writeMessage(w, "page deleted")
}
