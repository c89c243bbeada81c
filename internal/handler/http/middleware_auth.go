package http

import (
	"errors"
	"net/http"

	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/utils"
	"github.com/maxazure/home/models"
)

// withPrincipal resolves the session token of the request into a principal
// and stores it in the request context under [utils.PrincipalCtxKey].
//
// The token is taken from the "Authorization: Bearer" header and, when the
// header is absent, from the session cookie. A request without a usable
// token continues as [models.Anonymous]; rejecting it is left to
// [Handler.requireAuth].
func (h *Handler) withPrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var principal models.Principal = models.Anonymous{}
		tokenString, err := tokenFromRequest(r)
		if err == nil {
			principal = h.services.SessionService.Principal(ctx, tokenString)
		} else if !errors.Is(err, ErrNoSessionToken) {
			logger.FromRequest(r).Debug().Err(err).Str("func", "Handler.withPrincipal").Msg("unusable session token")
		}

		next.ServeHTTP(w, r.WithContext(utils.ContextWithPrincipal(ctx, principal)))
	})
}

// requireAuth answers 401 to requests whose principal is not authenticated.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !utils.PrincipalFromContext(r.Context()).IsAuthenticated() {
			logger.FromRequest(r).Debug().Str("func", "Handler.requireAuth").Str("path", r.URL.Path).Msg("unauthenticated request")
			_, _ = utils.WriteJSON(w, models.MessageResponse{Message: ErrNotAuthenticated.Error()}, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// tokenFromRequest returns the raw session token of r.
func tokenFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		return utils.ParseBearerToken(authHeader)
	}
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}
	return "", ErrNoSessionToken
}
