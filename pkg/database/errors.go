package database

import "errors"

var (
	// ErrNotBound is returned when an operation needs a connection but the
	// owning Database was never bound to one.
	ErrNotBound = errors.New("database is not bound to a connection")

	// ErrNoPrimaryKey means an update or delete condition could not be built
	// because the table has no primary-key columns.
	ErrNoPrimaryKey = errors.New("table has no primary key")

	// ErrFieldMismatch means insert data did not supply exactly the table's
	// column set.
	ErrFieldMismatch = errors.New("insert data does not match table columns")

	// ErrUnknownField is returned by Row.Set for a field name that is not part
	// of the row's snapshot. The snapshot is left untouched.
	ErrUnknownField = errors.New("field is not part of the row snapshot")

	// ErrColumnsNotLoaded means column metadata was requested before it was
	// ever loaded for the table.
	ErrColumnsNotLoaded = errors.New("table columns are not loaded")

	// ErrQueryFailed wraps failures of one-shot metadata queries such as
	// SHOW CREATE TABLE.
	ErrQueryFailed = errors.New("query failed")
)
