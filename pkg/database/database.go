package database

import "fmt"

// Database is the traversal root: it enumerates the tables of a bound
// connection and hands out per-table views by name or in insertion order.
//
// The facade is single-threaded by design; callers sharing a Database across
// goroutines must serialize access themselves.
type Database struct {
	conn Connection
	name string

	// names keeps driver-reported table order; tables is nil until the mapping
	// has been loaded, so an Unset of every table stays distinct from "never
	// loaded".
	names  []string
	tables map[string]*Table
}

// Bind stores the connection, captures the database name, switches the
// connection to associative fetching and performs the initial table load.
func Bind(conn Connection) (*Database, error) {
	if conn == nil {
		return nil, ErrNotBound
	}
	if err := conn.SetFetchMode(FetchAssoc); err != nil {
		return nil, fmt.Errorf("set fetch mode: %w", err)
	}

	d := &Database{
		conn: conn,
		name: conn.Name(),
	}
	if err := d.ReloadTables(); err != nil {
		return nil, err
	}
	return d, nil
}

// Name returns the bound database's name.
func (d *Database) Name() string { return d.name }

// Connection returns the bound connection.
func (d *Database) Connection() Connection { return d.conn }

// ReloadTables queries the connection for the table list and rebuilds the
// mapping with fresh Table views. This is a full replace, not a merge: prior
// views are discarded along with any in-flight query specification or loaded
// rows.
func (d *Database) ReloadTables() error {
	if d.conn == nil {
		return ErrNotBound
	}

	names, err := d.conn.TableNames()
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}

	order := make([]string, 0, len(names))
	tables := make(map[string]*Table, len(names))
	for _, name := range names {
		t, err := newTable(d, name)
		if err != nil {
			return err
		}
		order = append(order, name)
		tables[name] = t
	}

	d.names = order
	d.tables = tables
	return nil
}

// ensureTables lazily populates the mapping when it was never loaded.
func (d *Database) ensureTables() error {
	if d.tables == nil {
		return d.ReloadTables()
	}
	return nil
}

// Get returns the table view for a name, or (nil, nil) when the name is
// absent. The mapping is lazily loaded if needed.
func (d *Database) Get(name string) (*Table, error) {
	if err := d.ensureTables(); err != nil {
		return nil, err
	}
	return d.tables[name], nil
}

// Set assigns a table view directly under a name, appending it to the
// traversal order when new. Intended for tests and advanced use, not the
// normal flow.
func (d *Database) Set(name string, t *Table) {
	if d.tables == nil {
		d.tables = make(map[string]*Table)
	}
	if _, exists := d.tables[name]; !exists {
		d.names = append(d.names, name)
	}
	d.tables[name] = t
}

// Unset removes a table view from the mapping.
func (d *Database) Unset(name string) {
	if d.tables == nil {
		return
	}
	if _, exists := d.tables[name]; !exists {
		return
	}
	delete(d.tables, name)
	for i, n := range d.names {
		if n == name {
			d.names = append(d.names[:i], d.names[i+1:]...)
			break
		}
	}
}

// TableNames returns the table names in traversal order, lazily loading the
// mapping if needed.
func (d *Database) TableNames() ([]string, error) {
	if err := d.ensureTables(); err != nil {
		return nil, err
	}
	return d.names, nil
}

// Tables returns the table views in traversal order. The sequence restarts
// from the first table on every call.
func (d *Database) Tables() ([]*Table, error) {
	if err := d.ensureTables(); err != nil {
		return nil, err
	}
	tables := make([]*Table, 0, len(d.names))
	for _, name := range d.names {
		tables = append(tables, d.tables[name])
	}
	return tables, nil
}

// ForEach invokes the visitor once per table view, in traversal order,
// synchronously.
func (d *Database) ForEach(visitor func(*Table)) error {
	tables, err := d.Tables()
	if err != nil {
		return err
	}
	for _, t := range tables {
		visitor(t)
	}
	return nil
}
