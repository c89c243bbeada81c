package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/maxazure/home/internal/logger"
)

//go:generate mockgen -source=unit_of_work.go -destination=../mock/unit_of_work.go -package=mock

// maxTxAttempts bounds how often WithinTx re-runs a transaction that failed
// with a [Retryable] error.
const maxTxAttempts = 3

// UnitOfWork is one database transaction with every repository bound to it.
// Nothing is visible to other transactions until Commit.
type UnitOfWork interface {
	Users() UserRepository
	IPBlocks() IPBlockRepository
	Categories() CategoryRepository
	Links() LinkRepository
	Pages() PageRepository
	Regions() RegionRepository

	Commit() error
	Rollback() error
}

// Transactor opens units of work.
type Transactor interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}

type sqlUnitOfWork struct {
	tx *sql.Tx
	q  queries
	db *DB
}

// Begin starts a transaction and binds the repositories to it.
func (db *DB) Begin(ctx context.Context) (UnitOfWork, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	return &sqlUnitOfWork{tx: tx, q: newQueries(db.dialect), db: db}, nil
}

// BeginReadOnly starts a read-only transaction on the reader handle.
func (db *DB) BeginReadOnly(ctx context.Context) (UnitOfWork, error) {
	reader := db.reader
	if reader == nil {
		reader = db.DB
	}

	tx, err := reader.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	return &sqlUnitOfWork{tx: tx, q: newQueries(db.dialect), db: db}, nil
}

func (u *sqlUnitOfWork) repository() sqlRepository {
	return sqlRepository{db: u.tx, q: u.q, classify: u.db.classify}
}

func (u *sqlUnitOfWork) Users() UserRepository {
	return &userRepository{u.repository()}
}

func (u *sqlUnitOfWork) IPBlocks() IPBlockRepository {
	return &ipBlockRepository{u.repository()}
}

func (u *sqlUnitOfWork) Categories() CategoryRepository {
	return &categoryRepository{u.repository()}
}

func (u *sqlUnitOfWork) Links() LinkRepository {
	return &linkRepository{u.repository()}
}

func (u *sqlUnitOfWork) Pages() PageRepository {
	return &pageRepository{u.repository()}
}

func (u *sqlUnitOfWork) Regions() RegionRepository {
	return &regionRepository{u.repository()}
}

func (u *sqlUnitOfWork) Commit() error {
	if err := u.tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (u *sqlUnitOfWork) Rollback() error {
	err := u.tx.Rollback()
	if errors.Is(err, sql.ErrTxDone) {
		return nil
	}
	return err
}

// retryClassifier is implemented by transactors that can tell a transient
// failure from a permanent one.
type retryClassifier interface {
	classify(err error) ErrorClassification
}

// WithinTx runs fn inside a new unit of work. The unit is committed when fn
// returns nil and rolled back otherwise. A panic in fn rolls back and is
// re-raised. When the transactor classifies the failure as [Retryable] the
// whole unit is run again, up to maxTxAttempts times.
func WithinTx(ctx context.Context, t Transactor, fn func(uow UnitOfWork) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = runTx(ctx, t, fn)
		if err == nil {
			return nil
		}

		rc, ok := t.(retryClassifier)
		if !ok || rc.classify(err) != Retryable || ctx.Err() != nil {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "store.WithinTx").
			Int("attempt", attempt).
			Msg("retrying transaction after transient failure")
	}

	return err
}

func runTx(ctx context.Context, t Transactor, fn func(uow UnitOfWork) error) (err error) {
	uow, err := t.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = uow.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := uow.Rollback(); rbErr != nil {
				logger.FromContext(ctx).Err(rbErr).Str("func", "store.WithinTx").Msg("rollback failed")
			}
			return
		}
		err = uow.Commit()
	}()

	err = fn(uow)
	return err
}

// readOnlyTransactor is implemented by transactors with a read path that
// does not take the write lock.
type readOnlyTransactor interface {
	BeginReadOnly(ctx context.Context) (UnitOfWork, error)
}

// ReadOnly runs fn inside a unit of work that is always rolled back. It uses
// the read path of t when t has one.
func ReadOnly(ctx context.Context, t Transactor, fn func(uow UnitOfWork) error) error {
	begin := t.Begin
	if ro, ok := t.(readOnlyTransactor); ok {
		begin = ro.BeginReadOnly
	}

	uow, err := begin(ctx)
	if err != nil {
		return err
	}
	defer uow.Rollback()

	return fn(uow)
}
