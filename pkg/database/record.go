package database

import (
	"bytes"
	"encoding/json"
)

// Field is one named value inside a Record.
type Field struct {
	Name  string
	Value interface{}
}

// Record is a column-name → value mapping that preserves insertion order.
// It is implemented as a slice of Field pairs to keep it simple and lightweight
// for the row sizes this package handles.
type Record []Field

// Get returns the value for a field name (O(N) lookup, but explicit for small rows).
func (r Record) Get(name string) (interface{}, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Has reports whether the record contains the field.
func (r Record) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Set updates the field in place, appending it if absent.
func (r *Record) Set(name string, value interface{}) {
	for i, f := range *r {
		if f.Name == name {
			(*r)[i].Value = value
			return
		}
	}
	*r = append(*r, Field{Name: name, Value: value})
}

// Keys returns the field names in insertion order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for _, f := range r {
		keys = append(keys, f.Name)
	}
	return keys
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r)
}

// ToMap converts to a standard map (losing order).
func (r Record) ToMap() map[string]interface{} {
	m := make(map[string]interface{}, len(r))
	for _, f := range r {
		m[f.Name] = f.Value
	}
	return m
}

// FromMap creates a Record from a standard map (arbitrary order).
// Useful for compatibility; not what we want when order matters.
func FromMap(m map[string]interface{}) Record {
	r := make(Record, 0, len(m))
	for k, v := range m {
		r = append(r, Field{Name: k, Value: v})
	}
	return r
}

// MarshalJSON implements the json.Marshaler interface, emitting an object
// whose keys appear in insertion order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyBytes, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')
		valBytes, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(valBytes)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String implements fmt.Stringer.
func (r Record) String() string {
	b, _ := r.MarshalJSON()
	return string(b)
}

// isNumericKey reports whether a key consists solely of digits. Driver layers
// that return positional duplicates alongside named fields produce such keys;
// record loading skips them.
func isNumericKey(k string) bool {
	if k == "" {
		return false
	}
	for _, c := range k {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
