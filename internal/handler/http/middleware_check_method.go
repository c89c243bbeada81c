// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/maxazure/home/internal/utils"
	"github.com/maxazure/home/models"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// A path that exists under another method is answered with 404 instead of
// chi's 405, so callers cannot probe which admin routes exist. Route
// patterns with parameters are resolved with [chi.Mux.Match].
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		_, _ = utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
	}
}
