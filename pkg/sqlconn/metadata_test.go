package sqlconn

import (
	"testing"

	"github.com/bisegni/sqlwalk/pkg/database"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		tag        string
		wantBase   string
		wantLength int64
	}{
		{"varchar(255)", "varchar", 255},
		{"int(11)", "int", 11},
		{"decimal(10,2)", "decimal", 10},
		{"text", "text", -1},
		{"int unsigned", "int unsigned", -1},
		{"varchar(", "varchar", -1},
		{"enum('a','b')", "enum", -1},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			base, length := parseType(tt.tag)
			if base != tt.wantBase || length != tt.wantLength {
				t.Errorf("parseType(%q) = (%q, %d), want (%q, %d)",
					tt.tag, base, length, tt.wantBase, tt.wantLength)
			}
		})
	}
}

func TestColumnRecord(t *testing.T) {
	raw := database.Record{
		{Name: "Field", Value: "id"},
		{Name: "Type", Value: "int(11)"},
		{Name: "Collation", Value: nil},
		{Name: "Null", Value: "NO"},
		{Name: "Key", Value: "PRI"},
		{Name: "Default", Value: nil},
		{Name: "Extra", Value: "auto_increment"},
		{Name: "Comment", Value: "surrogate key"},
	}

	rec := columnRecord(raw)

	checks := []struct {
		key  string
		want interface{}
	}{
		{database.ColKeyName, "id"},
		{database.ColKeyType, "int"},
		{database.ColKeyNotNull, true},
		{database.ColKeyLength, int64(11)},
		{database.ColKeyAutoIncrement, true},
		{database.ColKeyPrimary, true},
		{"comment", "surrogate key"},
	}
	for _, c := range checks {
		got, ok := rec.Get(c.key)
		if !ok {
			t.Errorf("key %q missing", c.key)
			continue
		}
		if got != c.want {
			t.Errorf("%s = %v, want %v", c.key, got, c.want)
		}
	}

	// Canonical keys come first so facade-side loading sees them in order.
	if rec[0].Name != database.ColKeyName {
		t.Errorf("first key = %q, want %q", rec[0].Name, database.ColKeyName)
	}
}

func TestColumnRecordNullable(t *testing.T) {
	raw := database.Record{
		{Name: "Field", Value: "age"},
		{Name: "Type", Value: "int(11)"},
		{Name: "Null", Value: "YES"},
		{Name: "Key", Value: ""},
		{Name: "Extra", Value: ""},
	}

	rec := columnRecord(raw)

	if v, _ := rec.Get(database.ColKeyNotNull); v != false {
		t.Errorf("notnull = %v, want false", v)
	}
	if v, _ := rec.Get(database.ColKeyPrimary); v != false {
		t.Errorf("primary = %v, want false", v)
	}
	if v, _ := rec.Get(database.ColKeyAutoIncrement); v != false {
		t.Errorf("autoincrement = %v, want false", v)
	}
}
