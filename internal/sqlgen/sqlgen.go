// Package sqlgen turns sparse field-sets into parameterized SQL fragments for
// partial updates (SET) and filtered reads (WHERE). Values never enter the SQL
// text; they are returned as an ordered argument list matching $1..$n
// placeholders.
package sqlgen

import (
	"fmt"
	"strings"

	"orderdesk/internal/domain"
)

// Mapper maps an application field name to its storage column name. Fields
// without an entry map to themselves, so only names that differ need an entry.
type Mapper map[string]string

// Column resolves a field name. Unknown fields pass through unchanged; callers
// are responsible for only submitting real columns.
func (m Mapper) Column(field string) string {
	if col, ok := m[field]; ok {
		return col
	}
	return field
}

// Field is one (name, value) pair of a sparse field-set.
type Field struct {
	Name  string
	Value any
}

// Fields is a sparse field-set with explicit ordering. Parameter positions
// follow slice order, never map iteration order.
type Fields []Field

// Set appends a field, replacing the value in place when the name is already
// present so positions stay stable.
func (f Fields) Set(name string, value any) Fields {
	for i := range f {
		if f[i].Name == name {
			f[i].Value = value
			return f
		}
	}
	return append(f, Field{Name: name, Value: value})
}

// Has reports whether the set contains the named field.
func (f Fields) Has(name string) bool {
	for i := range f {
		if f[i].Name == name {
			return true
		}
	}
	return false
}

// BuildSet renders a SET clause like "first_name = $1, email = $2" plus the
// argument list in the same order. Placeholder numbering starts at 1 and
// increments by one per field; a trailing parameter appended by the caller
// (typically the row id of an UPDATE) takes position len(args)+1.
//
// An empty field-set is a caller error: updating without anything to set is
// rejected with domain.ErrEmptyUpdate before any SQL is issued.
func BuildSet(fields Fields, m Mapper) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, domain.ErrEmptyUpdate
	}
	parts := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))
	for i, f := range fields {
		parts = append(parts, fmt.Sprintf("%s = $%d", m.Column(f.Name), i+1))
		args = append(args, f.Value)
	}
	return strings.Join(parts, ", "), args, nil
}

// BuildFilter renders a WHERE body like "customer_id = $1 AND status = $2"
// plus the argument list. An empty field-set yields an empty clause and nil
// args: filtering is optional, so the caller simply omits the WHERE and scans
// everything.
func BuildFilter(fields Fields, m Mapper) (string, []any) {
	if len(fields) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))
	for i, f := range fields {
		parts = append(parts, fmt.Sprintf("%s = $%d", m.Column(f.Name), i+1))
		args = append(args, f.Value)
	}
	return strings.Join(parts, " AND "), args
}
