package database

import "strconv"

// Column is the static metadata record for one table column. It is populated
// once by load at table construction and never mutated afterwards.
type Column struct {
	table *Table // lookup only, never ownership
	props Record

	name          string
	typ           string
	notNull       bool
	maxLength     int64
	autoIncrement bool
	primaryKey    bool
}

// load populates the descriptor from a column metadata record, skipping purely
// numeric keys. The raw record stays reachable through Attr.
func (c *Column) load(props Record) {
	for _, f := range props {
		if isNumericKey(f.Name) {
			continue
		}
		c.props.Set(f.Name, f.Value)
	}

	c.name = asString(c.attr(ColKeyName))
	c.typ = asString(c.attr(ColKeyType))
	c.notNull = asBool(c.attr(ColKeyNotNull))
	c.maxLength = asInt64(c.attr(ColKeyLength), -1)
	c.autoIncrement = asBool(c.attr(ColKeyAutoIncrement))
	c.primaryKey = asBool(c.attr(ColKeyPrimary))
}

func (c *Column) attr(name string) interface{} {
	v, _ := c.props.Get(name)
	return v
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Type returns the driver-reported type tag.
func (c *Column) Type() string { return c.typ }

// NotNull reports whether the column rejects NULL values.
func (c *Column) NotNull() bool { return c.notNull }

// MaxLength returns the maximum length, or -1 when the driver reports none.
func (c *Column) MaxLength() int64 { return c.maxLength }

// AutoIncrement reports whether the column auto-increments.
func (c *Column) AutoIncrement() bool { return c.autoIncrement }

// IsPrimaryKey reports whether the column is part of the primary key.
func (c *Column) IsPrimaryKey() bool { return c.primaryKey }

// Attr returns a named attribute from the raw metadata record, or ok=false if
// the driver never reported it.
func (c *Column) Attr(name string) (interface{}, bool) {
	return c.props.Get(name)
}

// Table returns the owning table view.
func (c *Column) Table() *Table { return c.table }

func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	case nil:
		return ""
	default:
		return ""
	}
}

func asBool(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "1" || b == "true" || b == "YES"
	case int:
		return b != 0
	case int64:
		return b != 0
	default:
		return false
	}
}

func asInt64(v interface{}, fallback int64) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case string:
		if parsed, err := strconv.ParseInt(n, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
