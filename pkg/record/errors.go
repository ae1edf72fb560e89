package record

import (
	"fmt"

	"github.com/leapstack-labs/dbrow/pkg/sqltype"
)

// UnsupportedTypeError is returned when a driver-reported column type has
// no portable kind mapping, or a native value's Go representation has no
// place in the value union.
type UnsupportedTypeError struct {
	Column   string
	TypeName string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("column %q: unsupported SQL type %q", e.Column, e.TypeName)
}

// SchemaError is returned when a record, schema and column type table
// disagree: a non-scalar field reaches the write path, lengths mismatch,
// names misalign, or a value does not fit its declared field.
type SchemaError struct {
	Field  string
	Kind   Kind
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return "schema: " + e.Reason
	}
	if e.Reason == "" {
		return fmt.Sprintf("field %q: kind %s is not a scalar; only scalar kinds "+
			"(boolean, int32, int64, float32, float64, string, bytes) can be written", e.Field, e.Kind)
	}
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// RangeError is returned when a value does not fit the destination
// column's narrow integer range. The binding fails instead of truncating.
type RangeError struct {
	Field string
	Value int64
	Type  sqltype.Type
	Min   int64
	Max   int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("field %q: value %d out of range [%d, %d] for %s column",
		e.Field, e.Value, e.Min, e.Max, e.Type)
}

// ResourceError is returned when streaming a large-object value fails.
// The underlying handle has already been released by the time it surfaces.
type ResourceError struct {
	Column string
	Err    error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("column %q: reading large object: %v", e.Column, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }
