package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/service"
	"github.com/maxazure/home/internal/store"
	"github.com/maxazure/home/internal/utils"
	"github.com/maxazure/home/models"
)

// login runs one attempt through the login guard. The attempt and its
// counter updates are committed in one unit of work even when the attempt
// is rejected. Every lock or block outcome gets the same 403 answer.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Handler.login", err)
		return
	}
	if err := h.validate(r, req); err != nil {
		writeError(w, r, "Handler.login", err)
		return
	}

	attempt := models.LoginAttempt{
		Username: req.Username,
		Password: req.Password,
		SourceIP: utils.ClientIP(r),
	}

	var result models.AuthResult
	err := store.WithinTx(ctx, h.services.Transactor, func(uow store.UnitOfWork) error {
		var err error
		result, err = h.services.AuthGuard.AttemptLogin(ctx, uow, attempt)
		return err
	})
	if err != nil {
		writeError(w, r, "Handler.login", err)
		return
	}

	switch result.Status {
	case models.AuthAccessDenied:
		log.Info().Str("ip", attempt.SourceIP).Msg("login denied")
		writeError(w, r, "Handler.login", service.ErrAccessDenied)
		return
	case models.AuthInvalidCredentials:
		writeError(w, r, "Handler.login", service.ErrInvalidCredentials)
		return
	}

	// an absent flag keeps the long session
	remember := req.Remember == nil || *req.Remember
	token, err := h.services.SessionService.CreateToken(ctx, result.User, remember)
	if err != nil {
		writeError(w, r, "Handler.login", err)
		return
	}

	log.Info().Int64("user_id", result.User.ID).Msg("user logged in")

	http.SetCookie(w, h.sessionCookie(token.SignedString, token.ExpiresAt))
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	writeOK(w, models.LoginResponse{Success: true, User: models.NewUserResponse(result.User)})
}

// logout expires the session cookie. Tokens are stateless, so a copy of the
// bearer token stays valid until it expires.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	cookie := h.sessionCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)

	writeOK(w, models.SuccessResponse{Success: true})
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	resp := models.StatusResponse{}
	if user, ok := utils.PrincipalFromContext(r.Context()).(models.User); ok && user.IsAuthenticated() {
		userResponse := models.NewUserResponse(user)
		resp.Authenticated = true
		resp.User = &userResponse
	}

	writeOK(w, resp)
}

func (h *Handler) sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.server.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
