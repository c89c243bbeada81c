// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux without services.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/links", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("links"))
	})
	router.Get("/api/links/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chi.URLParam(r, "id")))
	})
	router.Put("/api/admin/links/{id}", func(w http.ResponseWriter, r *http.Request) {})
	router.Delete("/api/admin/links/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{name: "registered GET", method: http.MethodGet, path: "/api/links", expectedStatus: http.StatusOK, expectedBody: "links"},
		{name: "registered GET with param", method: http.MethodGet, path: "/api/links/7", expectedStatus: http.StatusOK, expectedBody: "7"},
		{name: "registered DELETE with param", method: http.MethodDelete, path: "/api/admin/links/7", expectedStatus: http.StatusNoContent},
		{name: "POST on GET route", method: http.MethodPost, path: "/api/links", expectedStatus: http.StatusNotFound},
		{name: "PATCH on param route", method: http.MethodPatch, path: "/api/admin/links/7", expectedStatus: http.StatusNotFound},
		{name: "DELETE on public route", method: http.MethodDelete, path: "/api/links/7", expectedStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestCheckHTTPMethod_WrongMethodHasJSONBody(t *testing.T) {
	router := buildRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/links/3", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Not Found"}`, rr.Body.String())
}
