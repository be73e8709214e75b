package sqlconn

import (
	"strconv"
	"strings"

	"github.com/bisegni/sqlwalk/pkg/database"
)

// columnRecord translates one SHOW FULL COLUMNS row (Field, Type, Collation,
// Null, Key, Default, Extra, Privileges, Comment) into the canonical metadata
// record the facade expects. Driver-specific keys are carried through after
// the canonical ones so they stay reachable via Column.Attr.
func columnRecord(raw database.Record) database.Record {
	field, _ := raw.Get("Field")
	typ, _ := raw.Get("Type")
	null, _ := raw.Get("Null")
	key, _ := raw.Get("Key")
	extra, _ := raw.Get("Extra")

	baseType, length := parseType(asString(typ))

	rec := database.Record{
		{Name: database.ColKeyName, Value: asString(field)},
		{Name: database.ColKeyType, Value: baseType},
		{Name: database.ColKeyNotNull, Value: strings.EqualFold(asString(null), "NO")},
		{Name: database.ColKeyLength, Value: length},
		{Name: database.ColKeyAutoIncrement, Value: strings.Contains(asString(extra), "auto_increment")},
		{Name: database.ColKeyPrimary, Value: asString(key) == "PRI"},
	}

	for _, f := range raw {
		switch f.Name {
		case "Field", "Type", "Null", "Key", "Extra":
			continue
		}
		rec.Set(strings.ToLower(f.Name), f.Value)
	}
	return rec
}

// parseType splits a MySQL type tag like "varchar(255)" or "decimal(10,2)
// unsigned" into its base type and declared length. Length is -1 when the tag
// carries none.
func parseType(tag string) (string, int64) {
	open := strings.IndexByte(tag, '(')
	if open < 0 {
		return strings.TrimSpace(tag), -1
	}

	base := strings.TrimSpace(tag[:open])
	rest := tag[open+1:]
	end := strings.IndexByte(rest, ')')
	if end < 0 {
		return base, -1
	}

	inner := rest[:end]
	if comma := strings.IndexByte(inner, ','); comma >= 0 {
		inner = inner[:comma]
	}
	length, err := strconv.ParseInt(strings.TrimSpace(inner), 10, 64)
	if err != nil {
		return base, -1
	}
	return base, length
}

func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return ""
	}
}
