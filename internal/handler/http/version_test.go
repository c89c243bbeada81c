package http

import (
	"net/http"
	"testing"

	"github.com/maxazure/home/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	d := newTestDeps(t)
	d.appInfo.EXPECT().GetBuildInfo(gomock.Any()).
		Return(models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"))

	rr := serve(d.router(), http.MethodGet, "/api/version", "", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"version":"1.2.3","date":"2026-10-01","commit":"abc123"}`, rr.Body.String())
}

func TestGetServerVersion_UnstampedBuild(t *testing.T) {
	d := newTestDeps(t)
	d.appInfo.EXPECT().GetBuildInfo(gomock.Any()).
		Return(models.NewAppBuildInfo("0.9.0", "", ""))

	rr := serve(d.router(), http.MethodGet, "/api/version", "", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"0.9.0","date":"N/A","commit":"N/A"}`, rr.Body.String())
}
