package record

import (
	"fmt"

	"github.com/leapstack-labs/dbrow/pkg/sqltype"
)

// ColumnType names one destination column together with its native SQL
// type. The native type is information the portable schema cannot carry:
// an Int32 field may target a narrow integer column, an Int64 field a
// date, time, timestamp or plain bigint column, a Bytes field a blob or a
// plain varbinary column.
type ColumnType struct {
	Name string
	Type sqltype.Type
}

// ColumnTypes is the ordered per-column native type table for one
// destination table. It is validated against a schema at construction:
// entry i must name the schema's field i. The table is a static property
// of the destination table and may be shared across many records, but
// never across goroutines mid-write (the codec is single-threaded per
// statement).
type ColumnTypes struct {
	cols []ColumnType
}

// NewColumnTypes validates the column list against the schema it will be
// used with. Length mismatch or a name misalignment at any position is a
// SchemaError; silent positional aliasing is not allowed.
func NewColumnTypes(schema *Schema, cols []ColumnType) (*ColumnTypes, error) {
	if len(cols) != schema.Len() {
		return nil, &SchemaError{Reason: fmt.Sprintf(
			"column type table has %d entries, schema %q has %d fields", len(cols), schema.Name(), schema.Len())}
	}
	for i, c := range cols {
		f := schema.FieldAt(i)
		if c.Name != f.Name {
			return nil, &SchemaError{Field: f.Name, Reason: fmt.Sprintf(
				"column type table entry %d is %q, want %q", i, c.Name, f.Name)}
		}
		if c.Type == sqltype.Invalid {
			return nil, &SchemaError{Field: f.Name, Reason: "column type table entry has invalid native type"}
		}
	}
	return &ColumnTypes{cols: append([]ColumnType(nil), cols...)}, nil
}

// Len returns the number of columns.
func (ct *ColumnTypes) Len() int { return len(ct.cols) }

// At returns the column entry at position i.
func (ct *ColumnTypes) At(i int) ColumnType { return ct.cols[i] }
