package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/maxazure/home/internal/config"
	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/mock"
	"github.com/maxazure/home/internal/service"
	"github.com/maxazure/home/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Test dependencies
// ─────────────────────────────────────────────

const adminToken = "admin-token"

var adminUser = models.User{ID: 1, Username: "admin"}

// testDeps holds one gomock mock per service plus a transactor that hands
// out a single mocked unit of work.
type testDeps struct {
	transactor *mock.MockTransactor
	uow        *mock.MockUnitOfWork

	guard      *mock.MockAuthGuard
	ordering   *mock.MockOrderingService
	session    *mock.MockSessionService
	users      *mock.MockUserService
	categories *mock.MockCategoryService
	links      *mock.MockLinkService
	pages      *mock.MockPageService
	regions    *mock.MockRegionService
	appInfo    *mock.MockAppInfoService

	server   config.Server
	security config.Security
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	return &testDeps{
		transactor: mock.NewMockTransactor(ctrl),
		uow:        mock.NewMockUnitOfWork(ctrl),
		guard:      mock.NewMockAuthGuard(ctrl),
		ordering:   mock.NewMockOrderingService(ctrl),
		session:    mock.NewMockSessionService(ctrl),
		users:      mock.NewMockUserService(ctrl),
		categories: mock.NewMockCategoryService(ctrl),
		links:      mock.NewMockLinkService(ctrl),
		pages:      mock.NewMockPageService(ctrl),
		regions:    mock.NewMockRegionService(ctrl),
		appInfo:    mock.NewMockAppInfoService(ctrl),
	}
}

func (d *testDeps) handler() *Handler {
	services := &service.Services{
		Transactor:      d.transactor,
		AuthGuard:       d.guard,
		OrderingService: d.ordering,
		SessionService:  d.session,
		UserService:     d.users,
		CategoryService: d.categories,
		LinkService:     d.links,
		PageService:     d.pages,
		RegionService:   d.regions,
		AppInfoService:  d.appInfo,
	}
	return NewHandler(services, d.server, d.security, logger.Nop())
}

// router builds the full route table. The admin token resolves to adminUser
// and every other token to an anonymous principal.
func (d *testDeps) router() http.Handler {
	d.session.EXPECT().Principal(gomock.Any(), adminToken).Return(adminUser).AnyTimes()
	d.session.EXPECT().Principal(gomock.Any(), gomock.Not(adminToken)).Return(models.Anonymous{}).AnyTimes()
	return d.handler().Init()
}

// expectCommit expects one unit of work that is committed.
func (d *testDeps) expectCommit() {
	d.transactor.EXPECT().Begin(gomock.Any()).Return(d.uow, nil)
	d.uow.EXPECT().Commit().Return(nil)
}

// expectRollback expects one unit of work that is rolled back.
func (d *testDeps) expectRollback() {
	d.transactor.EXPECT().Begin(gomock.Any()).Return(d.uow, nil)
	d.uow.EXPECT().Rollback().Return(nil)
}

// ─────────────────────────────────────────────
// Requests
// ─────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *strings.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

// serve sends one request through router. A non-empty token is sent as a
// bearer header.
func serve(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &msg))
	return msg.Message
}
