// Package record defines the portable value model of the row codec: the
// closed set of scalar value kinds, the schema and record containers built
// from them, and the per-destination column type table the write path needs.
package record

import (
	"math"

	"github.com/leapstack-labs/dbrow/pkg/sqltype"
)

// Kind identifies a portable value kind.
//
// Only the scalar kinds (KindBool through KindBytes) are representable as
// bound values. The composite kinds exist so that schemas built upstream of
// the codec can still be described; a composite field is rejected with a
// SchemaError before anything is bound for it.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindString
	KindBytes

	// composite kinds, never inferred and never bindable
	KindArray
	KindMap
	KindRecord
)

var kindNames = map[Kind]string{
	KindNull:    "null",
	KindBool:    "boolean",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindString:  "string",
	KindBytes:   "bytes",
	KindArray:   "array",
	KindMap:     "map",
	KindRecord:  "record",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Scalar reports whether values of this kind can be bound to a statement.
func (k Kind) Scalar() bool {
	switch k {
	case KindBool, KindInt32, KindInt64, KindFloat32, KindFloat64, KindString, KindBytes:
		return true
	}
	return false
}

// Value is the sealed union over the portable scalar kinds plus Null.
//
// Every concrete value type must implement BindArg, which is the single
// source of truth for write-path coercion: given the destination column's
// native type it returns the driver-ready argument. Adding a new kind
// without deciding its bindings is therefore a compile error, not a
// runtime fallthrough.
type Value interface {
	// Kind returns the portable kind of this value.
	Kind() Kind

	// BindArg returns the argument to bind for this value against a
	// destination column of native type ct.
	BindArg(ct sqltype.Type) (any, error)

	sealed()
}

// Null is the absence of a value. It binds as a SQL NULL typed by the
// destination column, never by the field's declared kind.
type Null struct{}

// Bool is a boolean value.
type Bool bool

// Int32 is a 32-bit integer value.
type Int32 int32

// Int64 is a 64-bit integer value. Temporal columns (date, time,
// timestamp) travel as Int64 epoch milliseconds; the destination column
// type decides which temporal binding they get back.
type Int64 int64

// Float32 is a 32-bit floating point value.
type Float32 float32

// Float64 is a 64-bit floating point value. Decimal and numeric columns
// normalize to Float64; precision beyond float64 is lost, which is an
// accepted property of the codec.
type Float64 float64

// String is a character value.
type String string

// Bytes is a byte sequence value.
type Bytes []byte

func (Null) Kind() Kind    { return KindNull }
func (Bool) Kind() Kind    { return KindBool }
func (Int32) Kind() Kind   { return KindInt32 }
func (Int64) Kind() Kind   { return KindInt64 }
func (Float32) Kind() Kind { return KindFloat32 }
func (Float64) Kind() Kind { return KindFloat64 }
func (String) Kind() Kind  { return KindString }
func (Bytes) Kind() Kind   { return KindBytes }

func (Null) sealed()    {}
func (Bool) sealed()    {}
func (Int32) sealed()   {}
func (Int64) sealed()   {}
func (Float32) sealed() {}
func (Float64) sealed() {}
func (String) sealed()  {}
func (Bytes) sealed()   {}

// BindArg implements Value.
func (Null) BindArg(ct sqltype.Type) (any, error) {
	return sqltype.NullParam{Type: ct}, nil
}

// BindArg implements Value.
func (v Bool) BindArg(sqltype.Type) (any, error) {
	return bool(v), nil
}

// BindArg implements Value. Narrow integer targets are bound as 16-bit
// parameters after a range check against the column's own range; anything
// else is bound as a 32-bit integer.
func (v Int32) BindArg(ct sqltype.Type) (any, error) {
	switch ct {
	case sqltype.TinyInt:
		if v < math.MinInt8 || v > math.MaxInt8 {
			return nil, &RangeError{Value: int64(v), Type: ct, Min: math.MinInt8, Max: math.MaxInt8}
		}
		return int16(v), nil
	case sqltype.SmallInt:
		if v < math.MinInt16 || v > math.MaxInt16 {
			return nil, &RangeError{Value: int64(v), Type: ct, Min: math.MinInt16, Max: math.MaxInt16}
		}
		return int16(v), nil
	}
	return int32(v), nil
}

// BindArg implements Value. Temporal destination columns reconstruct the
// native date, time or timestamp from epoch milliseconds; any other column
// receives the integer as-is.
func (v Int64) BindArg(ct sqltype.Type) (any, error) {
	switch ct {
	case sqltype.Date:
		return sqltype.DateParam(v), nil
	case sqltype.Time:
		return sqltype.TimeParam(v), nil
	case sqltype.Timestamp:
		return sqltype.TimestampParam(v), nil
	}
	return int64(v), nil
}

// BindArg implements Value.
func (v Float32) BindArg(sqltype.Type) (any, error) {
	return float32(v), nil
}

// BindArg implements Value.
func (v Float64) BindArg(sqltype.Type) (any, error) {
	return float64(v), nil
}

// BindArg implements Value. Clob targets accept plain strings.
func (v String) BindArg(sqltype.Type) (any, error) {
	return string(v), nil
}

// BindArg implements Value. Large-object targets get a wrapped blob;
// binary, varbinary and long varbinary targets get the raw bytes.
func (v Bytes) BindArg(ct sqltype.Type) (any, error) {
	if ct == sqltype.Blob {
		return sqltype.BlobParam(v), nil
	}
	return []byte(v), nil
}
