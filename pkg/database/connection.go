package database

// FetchMode selects how a Connection materializes result rows.
type FetchMode int

const (
	// FetchAssoc returns each result row as a Record keyed by column name.
	// It is the only mode this package uses; Bind sets it once.
	FetchAssoc FetchMode = iota
)

// Connection is the boundary this package requires from a database handle.
// Everything real (connection establishment, dialect, transactions, driver
// behavior) lives behind it. Implementations are owned by the caller and
// shared by every facade object built on top of them.
type Connection interface {
	// Name returns the name of the bound database.
	Name() string

	// SetFetchMode configures how result rows are keyed. Called once at bind
	// time with FetchAssoc.
	SetFetchMode(mode FetchMode) error

	// TableNames lists the tables of the bound database, in driver order.
	TableNames() ([]string, error)

	// Columns returns one canonical metadata record per column of the table,
	// in driver column order. Canonical keys: "name", "type", "notnull",
	// "length", "autoincrement", "primary". Extra driver keys may follow.
	Columns(table string) ([]Record, error)

	// Query executes a SELECT and returns its rows.
	Query(query string) ([]Record, error)

	// QueryValue executes a query expected to yield a single scalar.
	QueryValue(query string) (interface{}, error)

	// QueryRecord executes a query expected to yield a single record.
	QueryRecord(query string) (Record, error)

	// Exec executes a write statement and returns the affected-row count.
	Exec(query string) (int64, error)

	// Quote escapes a scalar value for embedding into literal SQL text.
	Quote(v interface{}) string
}

// Canonical keys of the column metadata records produced by Connection.Columns.
const (
	ColKeyName          = "name"
	ColKeyType          = "type"
	ColKeyNotNull       = "notnull"
	ColKeyLength        = "length"
	ColKeyAutoIncrement = "autoincrement"
	ColKeyPrimary       = "primary"
)
