// Package transfer moves table data between databases one row at a time:
// source cursor -> codec read -> record -> codec write -> destination
// insert. It owns statement text generation and row streaming; the codec
// owns everything about a single row.
package transfer

import (
	"strings"

	"github.com/leapstack-labs/dbrow/pkg/record"
)

// InsertSQL builds a parameterized INSERT for the given fields in schema
// order, using the destination dialect's placeholder style.
func InsertSQL(table string, fields []record.Field, placeholder func(int) string) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(table)
	b.WriteString(" (")
	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
	}
	b.WriteString(") VALUES (")
	for i := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(placeholder(i + 1))
	}
	b.WriteString(")")
	return b.String()
}

// SelectSQL builds the full-table read query for a source table.
func SelectSQL(table string) string {
	return "SELECT * FROM " + table
}
