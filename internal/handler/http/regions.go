package http

import (
	"net/http"

	"github.com/maxazure/home/models"
)

func (h *Handler) listRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.services.RegionService.List(r.Context())
	if err != nil {
		writeError(w, r, "Handler.listRegions", err)
		return
	}

	writeOK(w, models.NewRegionResponses(regions))
}

func (h *Handler) getRegion(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "Handler.getRegion", err)
		return
	}

	region, err := h.services.RegionService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, "Handler.getRegion", err)
		return
	}

	writeOK(w, models.NewRegionResponse(region))
}

func (h *Handler) createRegion(w http.ResponseWriter, r *http.Request) {
	var req models.RegionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.createRegion", err)
		return
	}

	region, err := h.services.RegionService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, "Handler.createRegion", err)
		return
	}

	writeCreated(w, models.NewRegionResponse(region))
}

func (h *Handler) updateRegion(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "Handler.updateRegion", err)
		return
	}

	var req models.RegionRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.updateRegion", err)
		return
	}

	region, err := h.services.RegionService.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, r, "Handler.updateRegion", err)
		return
	}

	writeOK(w, models.NewRegionResponse(region))
}

func (h *Handler) deleteRegion(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "Handler.deleteRegion", err)
		return
	}

	if err = h.services.RegionService.Delete(r.Context(), id); err != nil {
		writeError(w, r, "Handler.deleteRegion", err)
		return
	}

	writeMessage(w, "region deleted")
}
