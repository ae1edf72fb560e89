package sqltype

import (
	"database/sql/driver"
	"time"
)

// The parameter wrapper types below are the write-path currency of the
// codec. database/sql flattens every argument to a driver.Value, which
// loses the distinction between a 64-bit integer and a timestamp, or
// between plain bytes and a large object. Binding through these wrappers
// keeps the destination column's native type visible to drivers (via
// Value) and to tests, mirroring what setDate/setTime/setTimestamp/
// setBlob/setNull keep distinct on a JDBC prepared statement.

// DateParam binds an epoch-millisecond instant as a SQL DATE parameter.
// The time-of-day portion is truncated in UTC.
type DateParam int64

// Value implements driver.Valuer.
func (d DateParam) Value() (driver.Value, error) {
	t := time.UnixMilli(int64(d)).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Millis returns the wrapped epoch-millisecond value.
func (d DateParam) Millis() int64 { return int64(d) }

// TimeParam binds an epoch-millisecond instant as a SQL TIME parameter.
type TimeParam int64

// Value implements driver.Valuer.
func (t TimeParam) Value() (driver.Value, error) {
	return time.UnixMilli(int64(t)).UTC(), nil
}

// Millis returns the wrapped epoch-millisecond value.
func (t TimeParam) Millis() int64 { return int64(t) }

// TimestampParam binds an epoch-millisecond instant as a SQL TIMESTAMP
// parameter.
type TimestampParam int64

// Value implements driver.Valuer.
func (ts TimestampParam) Value() (driver.Value, error) {
	return time.UnixMilli(int64(ts)).UTC(), nil
}

// Millis returns the wrapped epoch-millisecond value.
func (ts TimestampParam) Millis() int64 { return int64(ts) }

// BlobParam binds a byte sequence as a large binary object parameter.
type BlobParam []byte

// Value implements driver.Valuer.
func (b BlobParam) Value() (driver.Value, error) { return []byte(b), nil }

// NullParam binds a SQL NULL typed by the destination column's native
// type. database/sql sends plain nil on the wire; Type is retained so
// callers and tests can see which column type the null was aimed at.
type NullParam struct {
	Type Type
}

// Value implements driver.Valuer.
func (NullParam) Value() (driver.Value, error) { return nil, nil }
