package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/maxazure/home/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{
			name:     "acknowledgement",
			data:     models.MessageResponse{Message: "category moved"},
			status:   http.StatusOK,
			wantBody: `{"message":"category moved"}`,
		},
		{
			name:     "error status is kept",
			data:     models.MessageResponse{Message: "access denied"},
			status:   http.StatusForbidden,
			wantBody: `{"message":"access denied"}`,
		},
		{
			name:     "created page",
			data:     models.PageResponse{ID: 3, Name: "Home", Slug: "home", Regions: []models.RegionRef{}},
			status:   http.StatusCreated,
			wantBody: `{"id":3,"name":"Home","slug":"home","regions":[]}`,
		},
		{
			name:     "empty list",
			data:     []models.IPBlockResponse{},
			status:   http.StatusOK,
			wantBody: `[]`,
		},
		{
			name:     "nil",
			data:     nil,
			status:   http.StatusOK,
			wantBody: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_UnencodableValue(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		want       string
	}{
		{name: "ipv4 with port", remoteAddr: "10.0.0.1:5123", want: "10.0.0.1"},
		{name: "ipv6 with port", remoteAddr: "[::1]:5123", want: "::1"},
		{name: "bare address from RealIP", remoteAddr: "203.0.113.9", want: "203.0.113.9"},
		{name: "surrounding spaces", remoteAddr: " 10.0.0.2:80 ", want: "10.0.0.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/admin/login", nil)
			r.RemoteAddr = tt.remoteAddr

			assert.Equal(t, tt.want, ClientIP(r))
		})
	}
}
