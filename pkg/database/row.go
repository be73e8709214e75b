package database

import (
	"fmt"
	"strings"
)

// Row holds the snapshot of one table row's field values. It is created either
// by a table's query execution (snapshot populated from the driver record) or
// by Table.NewRow (empty snapshot, to be populated before Insert).
type Row struct {
	table     *Table // relation only, never ownership
	tableName string
	fields    Record
}

// Load populates the field snapshot from a record, skipping purely numeric
// keys that positional driver layers may produce.
func (r *Row) Load(rec Record) {
	for _, f := range rec {
		if isNumericKey(f.Name) {
			continue
		}
		r.fields.Set(f.Name, f.Value)
	}
}

// Get returns the value of a field, or ok=false if the snapshot does not
// contain it.
func (r *Row) Get(name string) (interface{}, bool) {
	return r.fields.Get(name)
}

// Set replaces the value of an existing field. Setting a field that is not
// part of the snapshot returns ErrUnknownField and leaves the snapshot
// untouched; a row built by NewRow must be inserted via Insert, not Set.
func (r *Row) Set(name string, value interface{}) error {
	if !r.fields.Has(name) {
		return fmt.Errorf("set %q: %w", name, ErrUnknownField)
	}
	r.fields.Set(name, value)
	return nil
}

// Fields returns the ordered field snapshot.
func (r *Row) Fields() Record {
	return r.fields
}

// ForEach invokes fn once per field, in snapshot order.
func (r *Row) ForEach(fn func(name string, value interface{})) {
	for _, f := range r.fields {
		fn(f.Name, f.Value)
	}
}

// Table returns the owning table view.
func (r *Row) Table() *Table { return r.table }

// TableName returns the name of the owning table.
func (r *Row) TableName() string { return r.tableName }

// String renders the snapshot as a definition list, one "name: value" line per
// field in snapshot order. Intended for human-readable printing, not as a data
// exchange format.
func (r *Row) String() string {
	var b strings.Builder
	for _, f := range r.fields {
		fmt.Fprintf(&b, "%s: %v\n", f.Name, f.Value)
	}
	return b.String()
}

// Update builds and executes an UPDATE statement over all non-primary-key
// columns whose current field value is non-nil, identified by the primary-key
// condition. The owning table's row cache is reset on success. Returns the
// affected-row count.
func (r *Row) Update() (int64, error) {
	conn, err := r.conn()
	if err != nil {
		return 0, err
	}

	cond, err := r.pkCondition()
	if err != nil {
		return 0, err
	}

	var assignments []string
	for _, col := range r.table.Columns() {
		if col.IsPrimaryKey() {
			continue
		}
		v, ok := r.fields.Get(col.Name())
		if !ok || v == nil {
			continue
		}
		assignments = append(assignments, col.Name()+" = "+conn.Quote(v))
	}
	if len(assignments) == 0 {
		return 0, nil
	}

	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE %s", r.tableName, strings.Join(assignments, ", "), cond)
	affected, err := conn.Exec(stmt)
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", r.tableName, err)
	}
	r.table.Reset(false)
	return affected, nil
}

// Insert validates that data supplies a value for exactly the columns the
// table has (extra or missing fields both fail), then builds and
// executes an INSERT with values quoted in table-column order. The owning
// table's row cache is reset on success. Returns the affected-row count.
func (r *Row) Insert(data map[string]interface{}) (int64, error) {
	conn, err := r.conn()
	if err != nil {
		return 0, err
	}

	cols := r.table.Columns()
	if len(data) != len(cols) {
		return 0, fmt.Errorf("insert into %s: got %d fields, table has %d columns: %w",
			r.tableName, len(data), len(cols), ErrFieldMismatch)
	}

	names := make([]string, 0, len(cols))
	values := make([]string, 0, len(cols))
	for _, col := range cols {
		v, ok := data[col.Name()]
		if !ok {
			return 0, fmt.Errorf("insert into %s: missing field %q: %w", r.tableName, col.Name(), ErrFieldMismatch)
		}
		names = append(names, col.Name())
		values = append(values, conn.Quote(v))
	}

	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", r.tableName, strings.Join(names, ", "), strings.Join(values, ", "))
	affected, err := conn.Exec(stmt)
	if err != nil {
		return 0, fmt.Errorf("insert into %s: %w", r.tableName, err)
	}
	r.table.Reset(false)
	return affected, nil
}

// Delete builds and executes a DELETE identified by the primary-key condition.
// The owning table's row cache is reset on success. Returns the affected-row
// count.
func (r *Row) Delete() (int64, error) {
	conn, err := r.conn()
	if err != nil {
		return 0, err
	}

	cond, err := r.pkCondition()
	if err != nil {
		return 0, err
	}

	stmt := fmt.Sprintf("DELETE FROM %s WHERE %s", r.tableName, cond)
	affected, err := conn.Exec(stmt)
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", r.tableName, err)
	}
	r.table.Reset(false)
	return affected, nil
}

// pkCondition emits "col = quoted(value)" for each primary-key column, joined
// by AND. Fails if the table has zero primary-key columns.
func (r *Row) pkCondition() (string, error) {
	conn, err := r.conn()
	if err != nil {
		return "", err
	}

	pks, err := r.table.PrimaryKeys()
	if err != nil {
		return "", err
	}
	if len(pks) == 0 {
		return "", fmt.Errorf("table %s: %w", r.tableName, ErrNoPrimaryKey)
	}

	parts := make([]string, 0, len(pks))
	for _, pk := range pks {
		v, _ := r.fields.Get(pk.Name())
		parts = append(parts, pk.Name()+" = "+conn.Quote(v))
	}
	return strings.Join(parts, " AND "), nil
}

func (r *Row) conn() (Connection, error) {
	if r.table == nil || r.table.db == nil || r.table.db.conn == nil {
		return nil, fmt.Errorf("row of %s: %w", r.tableName, ErrNotBound)
	}
	return r.table.db.conn, nil
}
