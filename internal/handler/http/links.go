package http

import (
	"net/http"

	"github.com/maxazure/home/models"
)

func (h *Handler) listLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.services.LinkService.List(r.Context())
	if err != nil {
		writeError(w, r, "Handler.listLinks", err)
		return
	}

	writeOK(w, models.NewLinkResponses(links))
}

func (h *Handler) getLink(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "Handler.getLink", err)
		return
	}

	link, err := h.services.LinkService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, "Handler.getLink", err)
		return
	}

	writeOK(w, models.NewLinkResponse(link))
}

func (h *Handler) createLink(w http.ResponseWriter, r *http.Request) {
	var req models.LinkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.createLink", err)
		return
	}

	link, err := h.services.LinkService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, "Handler.createLink", err)
		return
	}

	writeOK(w, models.NewLinkResponse(link))
}

func (h *Handler) updateLink(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "Handler.updateLink", err)
		return
	}

	var req models.LinkRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.updateLink", err)
		return
	}

	link, err := h.services.LinkService.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, r, "Handler.updateLink", err)
		return
	}

	writeOK(w, models.NewLinkResponse(link))
}

func (h *Handler) deleteLink(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "Handler.deleteLink", err)
		return
	}

	if err = h.services.LinkService.Delete(r.Context(), id); err != nil {
		writeError(w, r, "Handler.deleteLink", err)
		return
	}

	writeMessage(w, "link deleted")
}
