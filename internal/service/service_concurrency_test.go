package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/maxazure/home/internal/config"
	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/store"
	"github.com/maxazure/home/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFileTestDB opens a database file so goroutines get their own
// connections and contend for the write lock.
func newFileTestDB(t *testing.T) *store.DB {
	t.Helper()
	cfg := config.DB{Driver: config.DriverSQLite, DSN: filepath.Join(t.TempDir(), "home.db")}

	db, err := store.NewDB(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(context.Background()))
	return db
}

func TestAttemptLogin_ParallelFailuresLatch(t *testing.T) {
	db := newFileTestDB(t)
	user := seedUser(t, db, "admin", "secret")
	g := newTestGuard()

	const n = 30
	var wg sync.WaitGroup
	wg.Add(n)

	errs := make([]error, n)
	results := make([]models.AuthResult, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			errs[i] = store.WithinTx(context.Background(), db, func(uow store.UnitOfWork) (err error) {
				results[i], err = g.AttemptLogin(context.Background(), uow, models.LoginAttempt{
					Username: "admin", Password: "wrong", SourceIP: "198.51.100.9",
				})
				return err
			})
		}(i)
	}
	wg.Wait()

	invalid, denied := 0, 0
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i], "attempt %d", i)
		switch results[i].Status {
		case models.AuthInvalidCredentials:
			invalid++
		case models.AuthAccessDenied:
			denied++
		default:
			t.Fatalf("attempt %d: unexpected status %v", i, results[i].Status)
		}
	}
	assert.Equal(t, FailureThreshold-1, invalid)
	assert.Equal(t, n-FailureThreshold+1, denied)

	stored := loadUser(t, db, user.ID)
	assert.True(t, stored.IsLocked)
	assert.Equal(t, FailureThreshold, stored.FailedLoginAttempts)

	block, found := loadIPBlock(t, db, "198.51.100.9")
	require.True(t, found)
	assert.True(t, block.IsBlocked)
	assert.Equal(t, FailureThreshold, block.FailedAttempts)
}

func TestAttemptLogin_ParallelFailuresFromManyAddresses(t *testing.T) {
	db := newFileTestDB(t)
	user := seedUser(t, db, "admin", "secret")
	g := newTestGuard()

	const n = 24
	ips := []string{"192.0.2.1", "192.0.2.2", "192.0.2.3"}

	var wg sync.WaitGroup
	wg.Add(n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			errs[i] = store.WithinTx(context.Background(), db, func(uow store.UnitOfWork) error {
				_, err := g.AttemptLogin(context.Background(), uow, models.LoginAttempt{
					Username: "admin", Password: "wrong", SourceIP: ips[i%len(ips)],
				})
				return err
			})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "attempt %d", i)
	}

	stored := loadUser(t, db, user.ID)
	assert.True(t, stored.IsLocked)
	assert.Equal(t, FailureThreshold, stored.FailedLoginAttempts)

	// every attempt charges exactly one address
	total := 0
	for _, ip := range ips {
		block, found := loadIPBlock(t, db, ip)
		require.True(t, found, ip)
		assert.False(t, block.IsBlocked, ip)
		total += block.FailedAttempts
	}
	assert.Equal(t, n, total)
}

func TestReorderCategory_ParallelKeepsSectionDense(t *testing.T) {
	db := newFileTestDB(t)
	cats := seedSection(t, db, "Tools", 1, "a", "b", "c", "d", "e", "f")
	seedSection(t, db, "News", 2, "x", "y")
	o := NewOrderingService(logger.Nop())

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			source := cats[i%len(cats)]
			target := cats[(i*5+1)%len(cats)]
			errs[i] = store.WithinTx(context.Background(), db, func(uow store.UnitOfWork) error {
				if i%4 == 0 {
					return o.MoveCategory(context.Background(), uow, source.ID, models.DirectionUp)
				}
				return o.ReorderCategory(context.Background(), uow, source.ID, target.ID)
			})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "reorder %d", i)
	}

	categories := loadCategories(t, db)

	tools := orders(categories, "Tools")
	require.Len(t, tools, len(cats))
	got := make([]int, 0, len(tools))
	for _, order := range tools {
		got = append(got, order)
	}
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6}, got)

	assert.Equal(t, map[string]int{"x": 1, "y": 2}, orders(categories, "News"))
	assert.Equal(t, map[string]int{"Tools": 1, "News": 2}, sectionOrders(t, categories))
}

func TestReorderSection_ParallelKeepsSectionOrdersDense(t *testing.T) {
	db := newFileTestDB(t)
	seedSection(t, db, "Tools", 1, "a", "b")
	seedSection(t, db, "News", 2, "x")
	seedSection(t, db, "Games", 3, "g", "h", "i")
	o := NewOrderingService(logger.Nop())

	names := []string{"Tools", "News", "Games"}
	dirs := []models.Direction{models.DirectionUp, models.DirectionDown}

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			errs[i] = store.WithinTx(context.Background(), db, func(uow store.UnitOfWork) error {
				return o.ReorderSection(context.Background(), uow, names[i%len(names)], dirs[i%len(dirs)])
			})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "reorder %d", i)
	}

	sections := sectionOrders(t, loadCategories(t, db))
	require.Len(t, sections, len(names))
	got := make([]int, 0, len(sections))
	for _, order := range sections {
		got = append(got, order)
	}
	assert.ElementsMatch(t, []int{1, 2, 3}, got)
}
