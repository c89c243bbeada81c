package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/maxazure/home/internal/config"
	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newMockDB(t *testing.T, d dialect) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	var classifier ErrorClassificator = NewPostgresErrorClassifier()
	if d.driver == config.DriverSQLite {
		classifier = NewSQLiteErrorClassifier()
	}

	return &DB{DB: sqlDB, dialect: d, logger: logger.Nop(), errorClassificator: classifier}, mock
}

func newMockUnitOfWork(t *testing.T) (UnitOfWork, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t, postgresDialect)
	mock.ExpectBegin()

	uow, err := db.Begin(context.Background())
	require.NoError(t, err)
	return uow, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ── classifiers ───────────────────────────────────────────────────────────────

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.SerializationFailure)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.DeadlockDetected)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.LockNotAvailable)))
	assert.Equal(t, UniqueViolation, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, ForeignKeyViolation, c.Classify(pgError(pgerrcode.ForeignKeyViolation)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.SyntaxError)))
}

func TestPostgresErrorClassifier_ClassifiesWrapped(t *testing.T) {
	c := NewPostgresErrorClassifier()
	err := errors.Join(ErrExecutingQuery, pgError(pgerrcode.UniqueViolation))

	assert.Equal(t, UniqueViolation, c.Classify(err))
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, UniqueViolation, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.Equal(t, ForeignKeyViolation, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
}

// ── connection ────────────────────────────────────────────────────────────────

func TestNewDB_UnsupportedDriver(t *testing.T) {
	_, err := NewDB(context.Background(), config.DB{Driver: "mysql", DSN: "x"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "home.db?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate", sqliteDSN("home.db", sqliteWriterTxLock))
	assert.Equal(t, "home.db?_foreign_keys=on&_busy_timeout=5000&_txlock=deferred", sqliteDSN("home.db", sqliteReaderTxLock))
	assert.Equal(t,
		"file:x?mode=memory&_txlock=deferred&_foreign_keys=on&_busy_timeout=5000",
		sqliteDSN("file:x?mode=memory&_txlock=deferred", sqliteWriterTxLock))
}

// ── unit of work ──────────────────────────────────────────────────────────────

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t, postgresDialect)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET is_locked = $1")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := WithinTx(context.Background(), db, func(uow UnitOfWork) error {
		return uow.Users().UpdateGuard(context.Background(), models.User{ID: 1})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t, postgresDialect)
	mock.ExpectBegin()
	mock.ExpectRollback()

	err := WithinTx(context.Background(), db, func(uow UnitOfWork) error {
		return assert.AnError
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_RollsBackAndRepanics(t *testing.T) {
	db, mock := newMockDB(t, postgresDialect)
	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = WithinTx(context.Background(), db, func(uow UnitOfWork) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_RetriesSerializationFailure(t *testing.T) {
	db, mock := newMockDB(t, postgresDialect)
	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := WithinTx(context.Background(), db, func(uow UnitOfWork) error {
		calls++
		if calls == 1 {
			return pgError(pgerrcode.SerializationFailure)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_BeginFailure(t *testing.T) {
	db, mock := newMockDB(t, postgresDialect)
	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	err := WithinTx(context.Background(), db, func(uow UnitOfWork) error {
		t.Fatal("fn must not run")
		return nil
	})

	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestWithinTx_CommitFailure(t *testing.T) {
	db, mock := newMockDB(t, postgresDialect)
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(sql.ErrConnDone)

	err := WithinTx(context.Background(), db, func(uow UnitOfWork) error { return nil })

	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestReadOnly_AlwaysRollsBack(t *testing.T) {
	db, mock := newMockDB(t, postgresDialect)
	mock.ExpectBegin()
	mock.ExpectRollback()

	err := ReadOnly(context.Background(), db, func(uow UnitOfWork) error { return nil })

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
