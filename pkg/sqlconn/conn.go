// Package sqlconn implements the database.Connection boundary on top of
// database/sql, speaking the MySQL dialect for introspection and quoting.
package sqlconn

import (
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/bisegni/sqlwalk/pkg/database"
)

// Conn adapts a *sql.DB to the facade's Connection interface.
type Conn struct {
	db   *sql.DB
	name string
}

// New wraps an already-opened handle. name is the database the handle is
// bound to.
func New(db *sql.DB, name string) *Conn {
	return &Conn{db: db, name: name}
}

// Open parses a MySQL DSN (user:pass@tcp(host)/dbname), opens a handle and
// wraps it. The connection is established lazily by database/sql.
func Open(dsn string) (*Conn, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if cfg.DBName == "" {
		return nil, fmt.Errorf("dsn %q selects no database", dsn)
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBName, err)
	}
	return New(db, cfg.DBName), nil
}

// Close releases the underlying handle.
func (c *Conn) Close() error {
	return c.db.Close()
}

// Name returns the bound database's name.
func (c *Conn) Name() string { return c.name }

// SetFetchMode accepts only associative fetching; rows are always
// materialized as Records keyed by column name.
func (c *Conn) SetFetchMode(mode database.FetchMode) error {
	if mode != database.FetchAssoc {
		return fmt.Errorf("unsupported fetch mode %d", mode)
	}
	return nil
}

// TableNames lists the tables via SHOW TABLES, in server order.
func (c *Conn) TableNames() ([]string, error) {
	rows, err := c.db.Query("SHOW TABLES")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Columns introspects a table via SHOW FULL COLUMNS and translates each row
// into the canonical metadata record the facade expects.
func (c *Conn) Columns(table string) ([]database.Record, error) {
	raw, err := c.Query("SHOW FULL COLUMNS FROM " + table)
	if err != nil {
		return nil, err
	}

	records := make([]database.Record, 0, len(raw))
	for _, rec := range raw {
		records = append(records, columnRecord(rec))
	}
	return records, nil
}

// Query executes a SELECT-style statement and materializes every row as an
// ordered Record keyed by column name. []byte values arrive as strings.
func (c *Conn) Query(query string) ([]database.Record, error) {
	rows, err := c.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var records []database.Record
	for rows.Next() {
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		rec := make(database.Record, 0, len(cols))
		for i, name := range cols {
			rec = append(rec, database.Field{Name: name, Value: normalize(values[i])})
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// QueryValue returns the first column of the first result row.
func (c *Conn) QueryValue(query string) (interface{}, error) {
	var v interface{}
	if err := c.db.QueryRow(query).Scan(&v); err != nil {
		return nil, err
	}
	return normalize(v), nil
}

// QueryRecord returns the first result row as a Record.
func (c *Conn) QueryRecord(query string) (database.Record, error) {
	records, err := c.Query(query)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, sql.ErrNoRows
	}
	return records[0], nil
}

// Exec runs a write statement and reports the affected-row count.
func (c *Conn) Exec(query string) (int64, error) {
	res, err := c.db.Exec(query)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func normalize(v interface{}) interface{} {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
