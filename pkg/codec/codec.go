package codec

import (
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/leapstack-labs/dbrow/pkg/record"
	"github.com/leapstack-labs/dbrow/pkg/sqltype"
)

// Cursor is the read-path surface the codec needs from a positioned result
// row. *sql.Rows satisfies it. Advancing to the next row stays with the
// caller; Read consumes exactly the current row.
type Cursor interface {
	Scan(dest ...any) error
}

// Codec reads cursor rows into records and writes records into prepared
// statements. It is built once per cursor from that cursor's column
// metadata and holds the inferred schema together with the source native
// types, which the schema alone cannot carry (an Int64 field may originate
// from a bigint or a timestamp column).
//
// A Codec has no internal locking. Use one instance per cursor or
// statement; independent instances may run concurrently.
type Codec struct {
	schema   *record.Schema
	srcTypes []sqltype.Type
}

// New builds a codec from driver-reported column metadata.
func New(name string, cols []ColumnInfo) (*Codec, error) {
	schema, types, err := InferSchema(name, cols)
	if err != nil {
		return nil, err
	}
	return &Codec{schema: schema, srcTypes: types}, nil
}

// FromRows builds a codec from the column metadata of an open result set.
func FromRows(name string, rows *sql.Rows) (*Codec, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("reading column metadata: %w", err)
	}
	return New(name, Columns(types))
}

// ForSchema returns a write-only codec for a schema built upstream of any
// cursor. Such a codec can bind records to statements but cannot Read:
// reading requires the source native types only cursor metadata carries.
func ForSchema(schema *record.Schema) *Codec {
	return &Codec{schema: schema}
}

// Schema returns the schema the codec reads and writes against.
func (c *Codec) Schema() *record.Schema { return c.schema }

// Read consumes the current cursor row and assembles an immutable record:
// one scan, then per-column normalization in schema order. Scan failures
// pass through unchanged.
func (c *Codec) Read(cur Cursor) (*record.Record, error) {
	if c.srcTypes == nil {
		return nil, fmt.Errorf("codec for schema %q has no source column types; build it from cursor metadata to read", c.schema.Name())
	}
	n := c.schema.Len()
	raw := make([]any, n)
	dest := make([]any, n)
	for i := range raw {
		dest[i] = &raw[i]
	}
	if err := cur.Scan(dest...); err != nil {
		return nil, err
	}

	b := record.NewBuilder(c.schema)
	for i := 0; i < n; i++ {
		f := c.schema.FieldAt(i)
		v, err := Normalize(f.Name, raw[i], c.srcTypes[i])
		if err != nil {
			return nil, err
		}
		v, err = coerce(v, f)
		if err != nil {
			return nil, err
		}
		if err := b.Set(f.Name, v); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// Write binds one record's fields into a prepared statement at positions
// 1..N in schema order. types must have been built against the same schema.
//
// Each field is checked and bound independently: a failure partway leaves
// earlier positions bound on the statement, and the caller is expected to
// abandon the statement without executing it.
func (c *Codec) Write(rec *record.Record, types *record.ColumnTypes, stmt Statement) error {
	if types.Len() != c.schema.Len() {
		return &record.SchemaError{Reason: fmt.Sprintf(
			"column type table has %d entries, schema %q has %d fields", types.Len(), c.schema.Name(), c.schema.Len())}
	}
	for i := 0; i < c.schema.Len(); i++ {
		f := c.schema.FieldAt(i)
		// The declared kind is checked per field, before its binding call,
		// regardless of whether the value is null.
		if !f.Kind.Scalar() {
			return &record.SchemaError{Field: f.Name, Kind: f.Kind}
		}
		v, _ := rec.Get(f.Name)
		arg, err := v.BindArg(types.At(i).Type)
		if err != nil {
			var re *record.RangeError
			if errors.As(err, &re) {
				re.Field = f.Name
			}
			return err
		}
		if err := stmt.Bind(i+1, arg); err != nil {
			return err
		}
	}
	return nil
}

// coerce narrows a normalized value to the field's declared kind. Drivers
// report every integer as int64 and most floats as float64 regardless of
// column width, so the declared schema is what decides the stored kind.
// A value that cannot represent the declared kind is a SchemaError;
// nothing is silently truncated.
func coerce(v record.Value, f record.Field) (record.Value, error) {
	if v.Kind() == record.KindNull || v.Kind() == f.Kind {
		return v, nil
	}
	switch f.Kind {
	case record.KindBool:
		if n, ok := v.(record.Int64); ok && (n == 0 || n == 1) {
			return record.Bool(n == 1), nil
		}
	case record.KindInt32:
		if n, ok := v.(record.Int64); ok {
			if n < math.MinInt32 || n > math.MaxInt32 {
				return nil, &record.SchemaError{Field: f.Name, Reason: fmt.Sprintf("value %d overflows int32", int64(n))}
			}
			return record.Int32(n), nil
		}
	case record.KindInt64:
		if n, ok := v.(record.Int32); ok {
			return record.Int64(n), nil
		}
	case record.KindFloat32:
		if n, ok := v.(record.Float64); ok {
			return record.Float32(n), nil
		}
	case record.KindFloat64:
		switch n := v.(type) {
		case record.Float32:
			return record.Float64(n), nil
		case record.Int64:
			return record.Float64(n), nil
		}
	case record.KindString:
		if b, ok := v.(record.Bytes); ok {
			return record.String(b), nil
		}
	case record.KindBytes:
		if s, ok := v.(record.String); ok {
			return record.Bytes(s), nil
		}
	}
	return nil, &record.SchemaError{Field: f.Name, Reason: fmt.Sprintf(
		"cannot store %s value in %s field", v.Kind(), f.Kind)}
}
