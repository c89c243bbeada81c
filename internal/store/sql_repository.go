package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/maxazure/home/internal/logger"
)

// sqlRepository holds what every repository of a unit of work shares.
type sqlRepository struct {
	db       DBTX
	q        queries
	classify func(error) ErrorClassification
}

type rowScanner interface {
	Scan(dest ...any) error
}

// queryRow runs a single-row query. A missing row is reported as notFound.
func (r sqlRepository) queryRow(ctx context.Context, fn string, query string, args []any, buildErr error, notFound error, dest ...any) error {
	log := logger.FromContext(ctx)

	if buildErr != nil {
		log.Err(buildErr).Str("func", fn).Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
	}

	err := r.db.QueryRowContext(ctx, query, args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// exec runs a statement and returns the number of affected rows.
func (r sqlRepository) exec(ctx context.Context, fn string, query string, args []any, buildErr error) (int64, error) {
	log := logger.FromContext(ctx)

	if buildErr != nil {
		log.Err(buildErr).Str("func", fn).Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

// execOne runs a statement that must change exactly the addressed row.
func (r sqlRepository) execOne(ctx context.Context, fn string, query string, args []any, buildErr error, notFound error) error {
	affected, err := r.exec(ctx, fn, query, args, buildErr)
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

// queryAll runs a multi-row query and scans each row with scan.
func queryAll[T any](ctx context.Context, r sqlRepository, fn string, query string, args []any, buildErr error, scan func(rowScanner) (T, error)) ([]T, error) {
	log := logger.FromContext(ctx)

	if buildErr != nil {
		log.Err(buildErr).Str("func", fn).Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			log.Err(err).Str("func", fn).Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// queryOne runs a query expected to return at most one row.
func queryOne[T any](ctx context.Context, r sqlRepository, fn string, query string, args []any, buildErr error, notFound error, scan func(rowScanner) (T, error)) (T, error) {
	items, err := queryAll(ctx, r, fn, query, args, buildErr, scan)
	if err != nil {
		var zero T
		return zero, err
	}
	if len(items) == 0 {
		var zero T
		return zero, notFound
	}
	return items[0], nil
}

// constraintError translates a unique or foreign key violation into the
// matching domain error, leaving any other error untouched.
func (r sqlRepository) constraintError(err error, unique, foreignKey error) error {
	if err == nil || r.classify == nil {
		return err
	}

	switch r.classify(err) {
	case UniqueViolation:
		if unique != nil {
			return unique
		}
	case ForeignKeyViolation:
		if foreignKey != nil {
			return foreignKey
		}
	}
	return err
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
