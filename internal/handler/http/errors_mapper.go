package http

import (
	"errors"
	"net/http"

	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/service"
	"github.com/maxazure/home/internal/store"
	"github.com/maxazure/home/internal/utils"
	"github.com/maxazure/home/internal/validators"
	"github.com/maxazure/home/models"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is matched top to bottom. Service errors often wrap a store
// sentinel under a generic one (ErrReorderFailed over ErrCategoryNotFound),
// so the specific entries come first.
var errorStatuses = []errorStatus{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrCrossSectionReorder, http.StatusBadRequest},
	{service.ErrLastAdmin, http.StatusBadRequest},
	{validators.ErrInvalidID, http.StatusBadRequest},

	{service.ErrAccessDenied, http.StatusForbidden},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrIPBlockNotFound, http.StatusNotFound},
	{store.ErrCategoryNotFound, http.StatusNotFound},
	{store.ErrSectionNotFound, http.StatusNotFound},
	{store.ErrLinkNotFound, http.StatusNotFound},
	{store.ErrPageNotFound, http.StatusNotFound},
	{store.ErrRegionNotFound, http.StatusNotFound},

	{store.ErrUsernameAlreadyExists, http.StatusConflict},
	{store.ErrSlugAlreadyExists, http.StatusConflict},
	{store.ErrSectionAlreadyExists, http.StatusConflict},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Server-side
// failures get a generic message; their detail stays in the log.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("request failed")
		message = http.StatusText(status)
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusForbidden {
		message = service.ErrAccessDenied.Error()
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}
