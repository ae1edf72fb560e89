// Package codec translates between relational rows and portable records.
//
// The read path infers a schema from cursor column metadata, normalizes
// each native driver value into the portable value union and assembles an
// immutable record. The write path binds a record back into a
// parameterized statement, using a per-destination column type table to
// recover the exact native binding the portable schema cannot express.
//
// A codec instance is single-threaded: it serves one cursor or one
// statement at a time and holds no shared state. Run one instance per
// partition for parallel batch work.
package codec

import (
	"database/sql"

	"github.com/leapstack-labs/dbrow/pkg/record"
	"github.com/leapstack-labs/dbrow/pkg/sqltype"
)

// ColumnInfo is the driver-reported metadata for one cursor column.
type ColumnInfo struct {
	Name     string
	TypeName string
	Nullable bool
}

// Columns extracts ColumnInfo from database/sql column metadata. Drivers
// that do not report nullability get nullable=true, the safe default.
func Columns(types []*sql.ColumnType) []ColumnInfo {
	cols := make([]ColumnInfo, len(types))
	for i, t := range types {
		nullable, ok := t.Nullable()
		cols[i] = ColumnInfo{
			Name:     t.Name(),
			TypeName: t.DatabaseTypeName(),
			Nullable: nullable || !ok,
		}
	}
	return cols
}

// kindOf is the fixed native-type to portable-kind table used by schema
// inference. It is exhaustive over the sqltype constants; a native type
// missing here cannot be read.
func kindOf(t sqltype.Type) (record.Kind, bool) {
	switch t {
	case sqltype.Bit, sqltype.Boolean:
		return record.KindBool, true
	case sqltype.TinyInt, sqltype.SmallInt, sqltype.Integer:
		return record.KindInt32, true
	case sqltype.BigInt, sqltype.Date, sqltype.Time, sqltype.Timestamp:
		return record.KindInt64, true
	case sqltype.Real:
		return record.KindFloat32, true
	case sqltype.Float, sqltype.Double, sqltype.Numeric, sqltype.Decimal:
		return record.KindFloat64, true
	case sqltype.Char, sqltype.Varchar, sqltype.LongVarchar, sqltype.Clob:
		return record.KindString, true
	case sqltype.Binary, sqltype.Varbinary, sqltype.LongVarbinary, sqltype.Blob:
		return record.KindBytes, true
	}
	return 0, false
}

// InferSchema derives a schema from ordered cursor column metadata.
// Field order matches column order exactly; the write path later relies on
// that order for positional alignment with a column type table. A column
// whose type name cannot be parsed or mapped fails with an
// UnsupportedTypeError naming the column.
func InferSchema(name string, cols []ColumnInfo) (*record.Schema, []sqltype.Type, error) {
	fields := make([]record.Field, len(cols))
	types := make([]sqltype.Type, len(cols))
	for i, c := range cols {
		t, ok := sqltype.Parse(c.TypeName)
		if !ok {
			return nil, nil, &record.UnsupportedTypeError{Column: c.Name, TypeName: c.TypeName}
		}
		k, ok := kindOf(t)
		if !ok {
			return nil, nil, &record.UnsupportedTypeError{Column: c.Name, TypeName: t.String()}
		}
		fields[i] = record.Field{Name: c.Name, Kind: k, Nullable: c.Nullable}
		types[i] = t
	}
	schema, err := record.NewSchema(name, fields)
	if err != nil {
		return nil, nil, err
	}
	return schema, types, nil
}
