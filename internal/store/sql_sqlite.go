package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
	"github.com/maxazure/home/internal/config"
	"github.com/maxazure/home/internal/logger"
)

// sqliteDSNDefaults are appended to the DSN unless already present.
var sqliteDSNDefaults = []string{"_foreign_keys=on", "_busy_timeout=5000"}

// Writer transactions take the write lock at BEGIN, so concurrent
// read-modify-write sequences are serialised. Reader transactions only take
// a shared lock on their first read.
const (
	sqliteWriterTxLock = "_txlock=immediate"
	sqliteReaderTxLock = "_txlock=deferred"
)

// NewConnectSQLite opens a SQLite database through mattn/go-sqlite3.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", sqliteDSN(cfg.DSN, sqliteWriterTxLock))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// in-memory databases exist per connection, so readers share the writer
	reader := conn
	if isSQLiteMemory(cfg.DSN) {
		conn.SetMaxOpenConns(1)
	} else {
		reader, err = sql.Open("sqlite3", sqliteDSN(cfg.DSN, sqliteReaderTxLock))
		if err != nil {
			conn.Close()
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening reader connection")
			return nil, fmt.Errorf("error opening connection to DB: %w", err)
		}
	}

	db := &DB{
		DB:                 conn,
		reader:             reader,
		dialect:            sqliteDialect,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		db.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return db, nil
}

func isSQLiteMemory(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

func sqliteDSN(dsn, txLock string) string {
	for _, opt := range append(sqliteDSNDefaults, txLock) {
		key := opt[:strings.Index(opt, "=")+1]
		if strings.Contains(dsn, key) {
			continue
		}
		if strings.Contains(dsn, "?") {
			dsn += "&" + opt
		} else {
			dsn += "?" + opt
		}
	}
	return dsn
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator] using the extended result code
// of a sqlite3.Error.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}
