package database

import (
	"errors"
	"testing"
)

func TestRowLoadSkipsNumericKeys(t *testing.T) {
	_, tab := mustTable(newFakeConn(), "users")
	row := tab.NewRow()

	row.Load(Record{
		{Name: "0", Value: 1},
		{Name: "id", Value: 1},
		{Name: "1", Value: "x"},
		{Name: "title", Value: "x"},
	})

	if got, ok := row.Get("id"); !ok || got != 1 {
		t.Errorf("Get(id) = %v, %v", got, ok)
	}
	if got, ok := row.Get("title"); !ok || got != "x" {
		t.Errorf("Get(title) = %v, %v", got, ok)
	}
	if _, ok := row.Get("0"); ok {
		t.Error("numeric key survived Load")
	}
	if row.Fields().Len() != 2 {
		t.Errorf("Fields().Len() = %d, want 2", row.Fields().Len())
	}
}

func TestRowGetAbsentField(t *testing.T) {
	_, tab := mustTable(newFakeConn(), "users")
	row := tab.NewRow()
	row.Load(Record{{Name: "id", Value: 1}})

	if v, ok := row.Get("unknown"); ok {
		t.Errorf("Get(unknown) = %v, want absent", v)
	}
}

// A brand-new row has an empty snapshot; Set must not create fields on it.
// Insert is the only way to populate a fresh row.
func TestRowSetUnknownFieldIsRejected(t *testing.T) {
	_, tab := mustTable(newFakeConn(), "users")
	row := tab.NewRow()

	if err := row.Set("name", "alice"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("Set error = %v, want ErrUnknownField", err)
	}
	if _, ok := row.Get("name"); ok {
		t.Error("rejected Set still created the field")
	}
}

func TestRowSetExistingField(t *testing.T) {
	_, tab := mustTable(newFakeConn(), "users")
	row := tab.NewRow()
	row.Load(Record{{Name: "name", Value: "alice"}})

	if err := row.Set("name", "bob"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, _ := row.Get("name"); got != "bob" {
		t.Errorf("Get(name) = %v, want bob", got)
	}
}

func TestRowStringIsDefinitionList(t *testing.T) {
	_, tab := mustTable(newFakeConn(), "users")
	row := tab.NewRow()
	row.Load(Record{
		{Name: "id", Value: 1},
		{Name: "title", Value: "x"},
	})

	want := "id: 1\ntitle: x\n"
	if got := row.String(); got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}

func TestUpdateBuildsStatementAndResetsCache(t *testing.T) {
	conn := newFakeConn()
	conn.results["SELECT * FROM users"] = []Record{
		{{Name: "id", Value: 1}, {Name: "name", Value: "alice"}, {Name: "age", Value: nil}},
	}
	_, tab := mustTable(conn, "users")

	row, ok := tab.Row(0)
	if !ok {
		t.Fatal("no row loaded")
	}
	if err := row.Set("name", "alicia"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	affected, err := row.Update()
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if affected != 1 {
		t.Errorf("affected = %d, want 1", affected)
	}

	// nil age is skipped, primary key id only appears in the condition.
	want := "UPDATE users SET name = 'alicia' WHERE id = 1"
	if len(conn.execs) != 1 || conn.execs[0] != want {
		t.Errorf("execs = %v, want [%q]", conn.execs, want)
	}

	// Cache was invalidated: next access re-executes.
	tab.Rows()
	if got := conn.queryCount("SELECT * FROM users"); got != 2 {
		t.Errorf("select executed %d times, want 2", got)
	}
}

func TestUpdateWithoutPrimaryKeyFails(t *testing.T) {
	conn := newFakeConn()
	db, _ := mustTable(conn, "users")
	logs, _ := db.Get("logs")

	row := logs.NewRow()
	row.Load(Record{{Name: "message", Value: "boom"}, {Name: "level", Value: "error"}})

	if _, err := row.Update(); !errors.Is(err, ErrNoPrimaryKey) {
		t.Fatalf("Update error = %v, want ErrNoPrimaryKey", err)
	}
	if len(conn.execs) != 0 {
		t.Errorf("execs = %v, want none", conn.execs)
	}
}

func TestDeleteBuildsStatement(t *testing.T) {
	conn := newFakeConn()
	_, tab := mustTable(conn, "users")

	row := tab.NewRow()
	row.Load(Record{{Name: "id", Value: 7}, {Name: "name", Value: "bob"}})

	affected, err := row.Delete()
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if affected != 1 {
		t.Errorf("affected = %d, want 1", affected)
	}

	want := "DELETE FROM users WHERE id = 7"
	if len(conn.execs) != 1 || conn.execs[0] != want {
		t.Errorf("execs = %v, want [%q]", conn.execs, want)
	}
}

func TestDeleteWithoutPrimaryKeyFails(t *testing.T) {
	conn := newFakeConn()
	db, _ := mustTable(conn, "users")
	logs, _ := db.Get("logs")

	row := logs.NewRow()
	row.Load(Record{{Name: "message", Value: "boom"}})

	if _, err := row.Delete(); !errors.Is(err, ErrNoPrimaryKey) {
		t.Fatalf("Delete error = %v, want ErrNoPrimaryKey", err)
	}
	if len(conn.execs) != 0 {
		t.Errorf("execs = %v, want none", conn.execs)
	}
}

func TestInsertFieldSetMustMatchExactly(t *testing.T) {
	tests := []struct {
		name string
		data map[string]interface{}
	}{
		{
			name: "strict subset",
			data: map[string]interface{}{"id": 1},
		},
		{
			name: "superset",
			data: map[string]interface{}{"id": 1, "name": "bob", "age": 33, "extra": true},
		},
		{
			name: "same size wrong names",
			data: map[string]interface{}{"id": 1, "name": "bob", "nickname": "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := newFakeConn()
			_, tab := mustTable(conn, "users")

			if _, err := tab.Insert(tt.data); !errors.Is(err, ErrFieldMismatch) {
				t.Fatalf("Insert error = %v, want ErrFieldMismatch", err)
			}
			if len(conn.execs) != 0 {
				t.Errorf("execs = %v, want none", conn.execs)
			}
		})
	}
}

func TestInsertExactMatchSucceeds(t *testing.T) {
	conn := newFakeConn()
	_, tab := mustTable(conn, "users")

	affected, err := tab.Insert(map[string]interface{}{"id": 1, "name": "bob", "age": 33})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if affected != 1 {
		t.Errorf("affected = %d, want 1", affected)
	}

	// Values are quoted in table-column order.
	want := "INSERT INTO users (id, name, age) VALUES (1, 'bob', 33)"
	if len(conn.execs) != 1 || conn.execs[0] != want {
		t.Errorf("execs = %v, want [%q]", conn.execs, want)
	}
}

func TestWriteFailurePropagates(t *testing.T) {
	conn := newFakeConn()
	conn.execErr = errors.New("deadlock")
	_, tab := mustTable(conn, "users")

	row := tab.NewRow()
	row.Load(Record{{Name: "id", Value: 1}, {Name: "name", Value: "x"}})

	if _, err := row.Delete(); err == nil {
		t.Fatal("Delete succeeded, want error")
	}
}
