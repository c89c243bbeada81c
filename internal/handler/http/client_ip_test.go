package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/maxazure/home/internal/config"
	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/service"
	"github.com/maxazure/home/internal/store"
	"github.com/maxazure/home/internal/utils"
	"github.com/maxazure/home/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newStoreRouter builds the route table over real services and a SQLite
// file with one administrator.
func newStoreRouter(t *testing.T, security config.Security) (http.Handler, *store.DB) {
	t.Helper()
	ctx := context.Background()

	db, err := store.NewDB(ctx, config.DB{Driver: config.DriverSQLite, DSN: filepath.Join(t.TempDir(), "home.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(ctx))

	hash, err := utils.HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, store.WithinTx(ctx, db, func(uow store.UnitOfWork) error {
		_, err := uow.Users().Create(ctx, models.User{Username: "admin", PasswordHash: hash})
		return err
	}))

	cfg := config.StructuredConfig{App: config.App{TokenSignKey: "test-key", TokenIssuer: "home"}, Security: security}
	services, err := service.NewServices(db, cfg, models.NewAppBuildInfo("test", "", ""), logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, config.Server{}, security, logger.Nop()).Init(), db
}

func listIPBlocks(t *testing.T, db *store.DB) map[string]int {
	t.Helper()
	out := make(map[string]int)
	require.NoError(t, store.ReadOnly(context.Background(), db, func(uow store.UnitOfWork) error {
		blocks, err := uow.IPBlocks().List(context.Background())
		for _, b := range blocks {
			out[b.IPAddress] = b.FailedAttempts
		}
		return err
	}))
	return out
}

func TestLogin_ForwardedHeadersDoNotRotateAddress(t *testing.T) {
	spoofed := []map[string]string{
		{"X-Forwarded-For": "203.0.113.1"},
		{"X-Forwarded-For": "203.0.113.2, 10.0.0.1"},
		{"X-Real-IP": "203.0.113.3"},
		{},
	}

	tests := []struct {
		name       string
		trusted    bool
		wantBlocks map[string]int
	}{
		{
			name:       "untrusted proxy headers",
			trusted:    false,
			wantBlocks: map[string]int{"192.0.2.1": len(spoofed)},
		},
		{
			name:    "trusted proxy headers",
			trusted: true,
			wantBlocks: map[string]int{
				"203.0.113.1": 1,
				"203.0.113.2": 1,
				"203.0.113.3": 1,
				"192.0.2.1":   1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, db := newStoreRouter(t, config.Security{BcryptCost: bcrypt.MinCost, TrustProxyHeaders: tt.trusted})

			for _, headers := range spoofed {
				req := loginRequest(`{"username":"nobody","password":"wrong"}`)
				req.RemoteAddr = "192.0.2.1:5000"
				for k, v := range headers {
					req.Header.Set(k, v)
				}
				rr := httptest.NewRecorder()
				router.ServeHTTP(rr, req)
				require.Equal(t, http.StatusUnauthorized, rr.Code)
			}

			assert.Equal(t, tt.wantBlocks, listIPBlocks(t, db))
		})
	}
}

func TestLogin_UntrustedHeadersCannotEscapeBlock(t *testing.T) {
	router, _ := newStoreRouter(t, config.Security{BcryptCost: bcrypt.MinCost})

	codes := make([]int, 0, service.FailureThreshold+1)
	for i := 0; i <= service.FailureThreshold; i++ {
		req := loginRequest(`{"username":"nobody","password":"wrong"}`)
		req.RemoteAddr = "192.0.2.1:5000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i+1))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, http.StatusForbidden, codes[service.FailureThreshold-1], "the tenth failure blocks the address")
	assert.Equal(t, http.StatusForbidden, codes[service.FailureThreshold])

	// the correct password from a blocked address is still denied
	req := loginRequest(`{"username":"admin","password":"secret"}`)
	req.RemoteAddr = "192.0.2.1:5000"
	req.Header.Set("X-Forwarded-For", "198.51.100.200")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}
