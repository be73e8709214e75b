package database

import (
	"fmt"
	"strconv"
	"strings"
)

// fakeConn is a scripted Connection that records every statement it is asked
// to run.
type fakeConn struct {
	name    string
	tables  []string
	columns map[string][]Record
	results map[string][]Record
	values  map[string]interface{}
	records map[string]Record

	failQueries map[string]bool
	execErr     error
	affected    int64

	queries    []string
	execs      []string
	fetchModes []FetchMode
}

// newFakeConn scripts a "shop" database with a keyed users table and a
// keyless logs table.
func newFakeConn() *fakeConn {
	return &fakeConn{
		name:   "shop",
		tables: []string{"users", "logs"},
		columns: map[string][]Record{
			"users": {
				colRec("id", "int", true, 11, true, true),
				colRec("name", "varchar", true, 100, false, false),
				colRec("age", "int", false, 11, false, false),
			},
			"logs": {
				colRec("message", "text", false, -1, false, false),
				colRec("level", "varchar", false, 20, false, false),
			},
		},
		results:     map[string][]Record{},
		values:      map[string]interface{}{},
		records:     map[string]Record{},
		failQueries: map[string]bool{},
		affected:    1,
	}
}

func colRec(name, typ string, notnull bool, length int64, autoinc, primary bool) Record {
	return Record{
		{Name: ColKeyName, Value: name},
		{Name: ColKeyType, Value: typ},
		{Name: ColKeyNotNull, Value: notnull},
		{Name: ColKeyLength, Value: length},
		{Name: ColKeyAutoIncrement, Value: autoinc},
		{Name: ColKeyPrimary, Value: primary},
	}
}

func (f *fakeConn) Name() string { return f.name }

func (f *fakeConn) SetFetchMode(mode FetchMode) error {
	f.fetchModes = append(f.fetchModes, mode)
	return nil
}

func (f *fakeConn) TableNames() ([]string, error) {
	return f.tables, nil
}

func (f *fakeConn) Columns(table string) ([]Record, error) {
	cols, ok := f.columns[table]
	if !ok {
		return nil, fmt.Errorf("no such table %q", table)
	}
	return cols, nil
}

func (f *fakeConn) Query(query string) ([]Record, error) {
	f.queries = append(f.queries, query)
	if f.failQueries[query] {
		return nil, fmt.Errorf("query %q refused", query)
	}
	return f.results[query], nil
}

func (f *fakeConn) QueryValue(query string) (interface{}, error) {
	v, ok := f.values[query]
	if !ok {
		return nil, fmt.Errorf("no scripted value for %q", query)
	}
	return v, nil
}

func (f *fakeConn) QueryRecord(query string) (Record, error) {
	rec, ok := f.records[query]
	if !ok {
		return nil, fmt.Errorf("no scripted record for %q", query)
	}
	return rec, nil
}

func (f *fakeConn) Exec(query string) (int64, error) {
	if f.execErr != nil {
		return 0, f.execErr
	}
	f.execs = append(f.execs, query)
	return f.affected, nil
}

func (f *fakeConn) Quote(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		if x {
			return "1"
		}
		return "0"
	case string:
		return "'" + strings.ReplaceAll(x, "'", "''") + "'"
	default:
		return fmt.Sprintf("'%v'", x)
	}
}

// queryCount counts how often a statement was issued.
func (f *fakeConn) queryCount(query string) int {
	n := 0
	for _, q := range f.queries {
		if q == query {
			n++
		}
	}
	return n
}

func mustTable(conn *fakeConn, name string) (*Database, *Table) {
	db, err := Bind(conn)
	if err != nil {
		panic(err)
	}
	t, err := db.Get(name)
	if err != nil || t == nil {
		panic(fmt.Sprintf("table %q not available: %v", name, err))
	}
	return db, t
}
