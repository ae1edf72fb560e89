package sqltype

import "strings"

// parseTable maps driver-reported type names to codes. Spellings are the
// union of what pgx, go-duckdb, modernc sqlite, go-sql-driver/mysql and
// go-mssqldb return from ColumnType.DatabaseTypeName, after normalization
// by Parse (upper-casing, stripping length/precision arguments).
var parseTable = map[string]Type{
	// boolean family
	"BIT":     Bit,
	"BOOL":    Boolean,
	"BOOLEAN": Boolean,

	// integer family
	"TINYINT":   TinyInt,
	"UTINYINT":  TinyInt,
	"INT2":      SmallInt,
	"SMALLINT":  SmallInt,
	"USMALLINT": SmallInt,
	"INT":       Integer,
	"INT4":      Integer,
	"INTEGER":   Integer,
	"MEDIUMINT": Integer,
	"SERIAL":    Integer,
	"INT8":      BigInt,
	"BIGINT":    BigInt,
	"UBIGINT":   BigInt,
	"HUGEINT":   BigInt,
	"BIGSERIAL": BigInt,

	// floating point and exact numerics
	"REAL":             Real,
	"FLOAT4":           Real,
	"FLOAT":            Float,
	"DOUBLE":           Double,
	"DOUBLE PRECISION": Double,
	"FLOAT8":           Double,
	"NUMERIC":          Numeric,
	"DECIMAL":          Decimal,
	"MONEY":            Decimal,
	"SMALLMONEY":       Decimal,

	// character family
	"CHAR":              Char,
	"NCHAR":             Char,
	"BPCHAR":            Char,
	"CHARACTER":         Char,
	"UNIQUEIDENTIFIER":  Char,
	"UUID":              Char,
	"VARCHAR":           Varchar,
	"NVARCHAR":          Varchar,
	"CHARACTER VARYING": Varchar,
	"NAME":              Varchar,
	"ENUM":              Varchar,
	"JSON":              Varchar,
	"JSONB":             Varchar,
	"XML":               Varchar,
	"TEXT":              LongVarchar,
	"NTEXT":             LongVarchar,
	"TINYTEXT":          LongVarchar,
	"MEDIUMTEXT":        LongVarchar,
	"LONGTEXT":          LongVarchar,
	"LONGVARCHAR":       LongVarchar,
	"CLOB":              Clob,

	// temporal family
	"DATE":           Date,
	"TIME":           Time,
	"TIMETZ":         Time,
	"TIMESTAMP":      Timestamp,
	"TIMESTAMPTZ":    Timestamp,
	"DATETIME":       Timestamp,
	"DATETIME2":      Timestamp,
	"SMALLDATETIME":  Timestamp,
	"DATETIMEOFFSET": Timestamp,

	// binary family
	"BINARY":        Binary,
	"VARBINARY":     Varbinary,
	"BYTEA":         Varbinary,
	"LONGVARBINARY": LongVarbinary,
	"IMAGE":         LongVarbinary,
	"TINYBLOB":      Blob,
	"MEDIUMBLOB":    Blob,
	"LONGBLOB":      Blob,
	"BLOB":          Blob,
}

// Parse resolves a driver-reported column type name to a Type.
// Names are case-insensitive and may carry length or precision arguments
// ("VARCHAR(64)", "DECIMAL(18,3)"), which are ignored. The second return
// is false when the name has no mapping.
func Parse(name string) (Type, bool) {
	s := strings.ToUpper(strings.TrimSpace(name))
	if i := strings.IndexByte(s, '('); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	t, ok := parseTable[s]
	return t, ok
}
