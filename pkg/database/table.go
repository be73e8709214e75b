package database

import (
	"fmt"
	"strconv"
)

const defaultSelect = "*"

// Table is a per-table view: a mutable query specification (select / where /
// order / limit), eagerly loaded column metadata and a lazily loaded, memoized
// row sequence. The row sequence is reset after any mutation through a Row.
//
// The Select/Where/OrderBy/Limit chain stores raw SQL fragments verbatim,
// with no parsing and no escaping. The caller is responsible for injection-safe content;
// WhereValue and AndWhere form the safer tier, quoting values through the
// connection.
type Table struct {
	name string
	db   *Database // relation only, never ownership

	selectCols  string
	whereClause string
	orderClause string
	limitClause string

	columns  []*Column
	colIndex map[string]*Column

	// Row cache tri-state: loaded=false means never queried; loaded=true with
	// an empty slice means queried, zero rows.
	rows   []*Row
	loaded bool
}

// newTable builds the view and synchronously loads column metadata from the
// connection, propagating any introspection failure.
func newTable(db *Database, name string) (*Table, error) {
	t := &Table{
		name:       name,
		db:         db,
		selectCols: defaultSelect,
	}
	if err := t.loadColumns(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) loadColumns() error {
	records, err := t.db.conn.Columns(t.name)
	if err != nil {
		return fmt.Errorf("load columns of %s: %w", t.name, err)
	}

	t.columns = make([]*Column, 0, len(records))
	t.colIndex = make(map[string]*Column, len(records))
	for _, rec := range records {
		col := &Column{table: t}
		col.load(rec)
		t.columns = append(t.columns, col)
		t.colIndex[col.Name()] = col
	}
	return nil
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Database returns the owning traversal root.
func (t *Table) Database() *Database { return t.db }

// Reset clears the loaded row sequence, forcing a reload on next access. With
// clearSpec it also resets select/where/order/limit to their defaults.
func (t *Table) Reset(clearSpec bool) {
	t.rows = nil
	t.loaded = false
	if clearSpec {
		t.selectCols = defaultSelect
		t.whereClause = ""
		t.orderClause = ""
		t.limitClause = ""
	}
}

// Select sets the select-columns fragment. The fragment is stored verbatim.
func (t *Table) Select(columns string) *Table {
	t.selectCols = columns
	return t
}

// Where sets the WHERE fragment. The fragment is stored verbatim; it is the
// caller's job to keep it injection safe. See WhereValue for the quoted tier.
func (t *Table) Where(clause string) *Table {
	t.whereClause = clause
	return t
}

// OrderBy sets the ORDER BY fragment, stored verbatim.
func (t *Table) OrderBy(clause string) *Table {
	t.orderClause = clause
	return t
}

// Limit sets the LIMIT fragment, stored verbatim (e.g. "10" or "0,10").
func (t *Table) Limit(clause string) *Table {
	t.limitClause = clause
	return t
}

// WhereValue replaces the WHERE fragment with a single comparison whose value
// is quoted through the connection.
func (t *Table) WhereValue(column, op string, value interface{}) *Table {
	t.whereClause = t.comparison(column, op, value)
	return t
}

// AndWhere appends a quoted comparison to the current WHERE fragment with AND,
// or starts one if no fragment is set.
func (t *Table) AndWhere(column, op string, value interface{}) *Table {
	cmp := t.comparison(column, op, value)
	if t.whereClause == "" {
		t.whereClause = cmp
	} else {
		t.whereClause += " AND " + cmp
	}
	return t
}

func (t *Table) comparison(column, op string, value interface{}) string {
	return column + " " + op + " " + t.Quote(value)
}

// Quote escapes a scalar through the owning connection.
func (t *Table) Quote(v interface{}) string {
	if t.db == nil || t.db.conn == nil {
		return fmt.Sprintf("%v", v)
	}
	return t.db.conn.Quote(v)
}

// BuildQuery assembles the SELECT statement from the current specification.
// Pure function of the specification; clauses are appended only when set.
func (t *Table) BuildQuery() string {
	q := "SELECT " + t.selectCols + " FROM " + t.name
	if t.whereClause != "" {
		q += " WHERE " + t.whereClause
	}
	if t.orderClause != "" {
		q += " ORDER BY " + t.orderClause
	}
	if t.limitClause != "" {
		q += " LIMIT " + t.limitClause
	}
	return q
}

// Execute runs BuildQuery against the connection and replaces the row sequence
// with one Row per returned record, in driver order. A failed query yields a
// loaded-but-empty sequence rather than an error; the failure is not retried
// until Reset.
func (t *Table) Execute() []*Row {
	t.rows = nil
	t.loaded = true

	if t.db == nil || t.db.conn == nil {
		return nil
	}

	records, err := t.db.conn.Query(t.BuildQuery())
	if err != nil {
		return nil
	}

	t.rows = make([]*Row, 0, len(records))
	for _, rec := range records {
		row := t.NewRow()
		row.Load(rec)
		t.rows = append(t.rows, row)
	}
	return t.rows
}

// Rows returns the memoized row sequence, executing the current specification
// exactly once if it has not been loaded yet.
func (t *Table) Rows() []*Row {
	if !t.loaded {
		return t.Execute()
	}
	return t.rows
}

// Row returns the row at position i of the loaded sequence.
func (t *Table) Row(i int) (*Row, bool) {
	rows := t.Rows()
	if i < 0 || i >= len(rows) {
		return nil, false
	}
	return rows[i], true
}

// RowCount returns the size of the currently loaded row sequence, triggering a
// load if needed. This counts materialized rows; see TotalCount for the
// server-side count.
func (t *Table) RowCount() int {
	return len(t.Rows())
}

// TotalCount issues SELECT COUNT(*) against the table, ignoring the current
// query specification.
func (t *Table) TotalCount() (int64, error) {
	if t.db == nil || t.db.conn == nil {
		return 0, fmt.Errorf("table %s: %w", t.name, ErrNotBound)
	}
	v, err := t.db.conn.QueryValue("SELECT COUNT(*) FROM " + t.name)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", t.name, err)
	}
	n, err := scalarToInt64(v)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", t.name, err)
	}
	return n, nil
}

// ForEach invokes fn once per row, in sequence order, loading the sequence if
// needed.
func (t *Table) ForEach(fn func(*Row)) {
	for _, row := range t.Rows() {
		fn(row)
	}
}

// Columns returns the column descriptors in driver order.
func (t *Table) Columns() []*Column {
	return t.columns
}

// Column returns the descriptor for a column name.
func (t *Table) Column(name string) (*Column, bool) {
	col, ok := t.colIndex[name]
	return col, ok
}

// PrimaryKeys returns the subset of Columns with the primary-key flag set,
// preserving column order. It fails only if columns were never loaded, which
// cannot normally happen after construction.
func (t *Table) PrimaryKeys() ([]*Column, error) {
	if t.columns == nil {
		return nil, fmt.Errorf("table %s: %w", t.name, ErrColumnsNotLoaded)
	}
	var pks []*Column
	for _, col := range t.columns {
		if col.IsPrimaryKey() {
			pks = append(pks, col)
		}
	}
	return pks, nil
}

// CreateTable fetches the table's DDL via SHOW CREATE TABLE. Unlike row
// loading, a failure here is an explicit error.
func (t *Table) CreateTable() (string, error) {
	if t.db == nil || t.db.conn == nil {
		return "", fmt.Errorf("table %s: %w", t.name, ErrNotBound)
	}
	rec, err := t.db.conn.QueryRecord("SHOW CREATE TABLE " + t.name)
	if err != nil {
		return "", fmt.Errorf("show create table %s: %w: %v", t.name, ErrQueryFailed, err)
	}
	if v, ok := rec.Get("Create Table"); ok {
		return asString(v), nil
	}
	// Drivers returning a two-column (name, ddl) record without the MySQL
	// header fall back to positional access.
	if rec.Len() > 1 {
		return asString(rec[1].Value), nil
	}
	return "", fmt.Errorf("show create table %s: empty result: %w", t.name, ErrQueryFailed)
}

// NewRow returns a fresh Row bound to this table with an empty field snapshot,
// for population and Insert.
func (t *Table) NewRow() *Row {
	return &Row{table: t, tableName: t.name}
}

// Insert creates a new row and delegates to its Insert. The row cache is reset
// on success; the query specification is kept.
func (t *Table) Insert(data map[string]interface{}) (int64, error) {
	return t.NewRow().Insert(data)
}

func scalarToInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		return int64(n), nil
	case []byte:
		return strconv.ParseInt(string(n), 10, 64)
	case string:
		return strconv.ParseInt(n, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected scalar type %T", v)
	}
}
