package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/maxazure/home/internal/service"
	"github.com/maxazure/home/internal/utils"
	"github.com/maxazure/home/models"
)

// decodeJSON reads the request body into dst. Failures are reported as
// invalid input.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w: %w", service.ErrInvalidDataProvided, ErrInvalidJSON, err)
	}
	return nil
}

// idParam parses the {id} path segment.
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, ErrInvalidPathID)
	}
	return id, nil
}

// validate checks obj against the request validator and tags a failure as
// invalid input.
func (h *Handler) validate(r *http.Request, obj any, fields ...string) error {
	if err := h.validator.Validate(r.Context(), obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}
	return nil
}

func writeMessage(w http.ResponseWriter, message string) {
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: message}, http.StatusOK)
}

func writeOK(w http.ResponseWriter, body any) {
	_, _ = utils.WriteJSON(w, body, http.StatusOK)
}

func writeCreated(w http.ResponseWriter, body any) {
	_, _ = utils.WriteJSON(w, body, http.StatusCreated)
}
