package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/maxazure/home/internal/config"
	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/migrations"
)

// DBTX is the subset of database/sql used by repositories.
// Both *sql.DB and *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// dialect captures the per-driver differences in generated SQL.
type dialect struct {
	driver      string
	placeholder sq.PlaceholderFormat
	// lockSuffix is appended to SELECTs that must lock the rows they read.
	// Empty where the engine serialises writers at transaction start.
	lockSuffix string
}

var (
	postgresDialect = dialect{driver: config.DriverPostgres, placeholder: sq.Dollar, lockSuffix: "FOR UPDATE"}
	sqliteDialect   = dialect{driver: config.DriverSQLite, placeholder: sq.Question}
)

// DB is a database handle together with its dialect and error classifier.
// reader serves read-only units of work; nil means the writer handle.
type DB struct {
	*sql.DB
	reader             *sql.DB
	dialect            dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the database selected by cfg.Driver and pings it.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Close closes the writer handle and a separate reader handle.
func (db *DB) Close() error {
	err := db.DB.Close()
	if db.reader != nil && db.reader != db.DB {
		err = errors.Join(err, db.reader.Close())
	}
	return err
}

// Migrate applies the embedded schema migrations for the database driver.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect.driver)
}

// Driver returns the database/sql driver name of db.
func (db *DB) Driver() string {
	return db.dialect.driver
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
