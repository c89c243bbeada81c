package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the id or username.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameAlreadyExists is returned when a user insert or rename
	// collides with the unique username constraint.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrIPBlockNotFound is returned when no ip record matches the id or
	// address.
	ErrIPBlockNotFound = errors.New("ip block not found")

	// ErrIPBlockAlreadyExists is returned by the first-failure insert when a
	// concurrent request created the record for the same address first.
	ErrIPBlockAlreadyExists = errors.New("ip block already exists")

	// ErrCategoryNotFound is returned when no category matches the id, or
	// when a section has no neighbour in the requested direction.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrSectionNotFound is returned when no category carries the section
	// name, or when there is no adjacent section in the requested direction.
	ErrSectionNotFound = errors.New("section not found")

	// ErrSectionAlreadyExists is returned when creating or renaming to a
	// section name that is already in use.
	ErrSectionAlreadyExists = errors.New("section already exists")

	ErrLinkNotFound = errors.New("link not found")

	ErrPageNotFound = errors.New("page not found")

	// ErrSlugAlreadyExists is returned when a page insert or update collides
	// with the unique slug constraint.
	ErrSlugAlreadyExists = errors.New("page slug already exists")

	ErrRegionNotFound = errors.New("region not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned when the configured database driver
	// has no dialect.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
