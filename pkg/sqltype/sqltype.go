// Package sqltype defines the closed set of native SQL column type codes
// used by the row codec, plus parsing from driver-reported type names and
// the bind wrappers that carry native-type intent through database/sql.
//
// The Golden Rule: pkg/sqltype imports ONLY stdlib.
// pkg/record and everything above depend on it, not the reverse.
package sqltype

// Type identifies a native SQL column type independent of any one driver's
// spelling. It is deliberately a small closed set: the codec only needs
// enough resolution to pick a portable kind on the read path and the exact
// parameter binding on the write path.
type Type int

const (
	// Invalid is the zero value; no real column parses to it.
	Invalid Type = iota

	Bit
	Boolean

	TinyInt
	SmallInt
	Integer
	BigInt

	Real
	Float
	Double
	Numeric
	Decimal

	Char
	Varchar
	LongVarchar
	Clob

	Date
	Time
	Timestamp

	Binary
	Varbinary
	LongVarbinary
	Blob
)

var typeNames = map[Type]string{
	Invalid:       "INVALID",
	Bit:           "BIT",
	Boolean:       "BOOLEAN",
	TinyInt:       "TINYINT",
	SmallInt:      "SMALLINT",
	Integer:       "INTEGER",
	BigInt:        "BIGINT",
	Real:          "REAL",
	Float:         "FLOAT",
	Double:        "DOUBLE",
	Numeric:       "NUMERIC",
	Decimal:       "DECIMAL",
	Char:          "CHAR",
	Varchar:       "VARCHAR",
	LongVarchar:   "LONGVARCHAR",
	Clob:          "CLOB",
	Date:          "DATE",
	Time:          "TIME",
	Timestamp:     "TIMESTAMP",
	Binary:        "BINARY",
	Varbinary:     "VARBINARY",
	LongVarbinary: "LONGVARBINARY",
	Blob:          "BLOB",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "INVALID"
}

// NarrowInteger reports whether t is an integer type narrower than 32 bits.
// Narrow targets are bound as 16-bit parameters after a range check.
func (t Type) NarrowInteger() bool {
	return t == TinyInt || t == SmallInt
}

// Temporal reports whether t is a date, time or timestamp type. Temporal
// values travel through the codec as epoch-millisecond Int64 values.
func (t Type) Temporal() bool {
	return t == Date || t == Time || t == Timestamp
}

// DecimalLike reports whether t is an arbitrary-precision numeric type.
func (t Type) DecimalLike() bool {
	return t == Numeric || t == Decimal
}
