package codec

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/leapstack-labs/dbrow/pkg/record"
	"github.com/leapstack-labs/dbrow/pkg/sqltype"
)

// temporalLayouts covers the text forms string-typed drivers (sqlite
// declared columns, mysql without parseTime) hand back for temporal
// columns. All are interpreted in UTC.
var temporalLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"15:04:05.999999999",
	"15:04:05",
}

// Normalize converts one native driver value, given its originating native
// SQL type, into a portable value. column is used only for error context.
//
// Decimal and numeric values become Float64, losing precision beyond
// float64 by design. Date, time and timestamp values become Int64 epoch
// milliseconds. Large objects are read in full, with the handle released
// before return on every path. Anything else maps structurally into the
// value union.
func Normalize(column string, v any, t sqltype.Type) (record.Value, error) {
	if v == nil {
		return record.Null{}, nil
	}

	switch {
	case t.DecimalLike():
		return normalizeDecimal(column, v)
	case t.Temporal():
		return normalizeTemporal(column, v)
	case t == sqltype.Blob:
		if r, ok := v.(io.Reader); ok {
			data, err := readLargeObject(column, r)
			if err != nil {
				return nil, err
			}
			return record.Bytes(data), nil
		}
	case t == sqltype.Clob:
		if r, ok := v.(io.Reader); ok {
			data, err := readLargeObject(column, r)
			if err != nil {
				return nil, err
			}
			return record.String(joinLines(string(data))), nil
		}
		switch s := v.(type) {
		case string:
			return record.String(joinLines(s)), nil
		case []byte:
			return record.String(joinLines(string(s))), nil
		}
	}

	switch n := v.(type) {
	case bool:
		return record.Bool(n), nil
	case int64:
		return record.Int64(n), nil
	case int:
		return record.Int64(n), nil
	case int32:
		return record.Int64(n), nil
	case int16:
		return record.Int64(n), nil
	case int8:
		return record.Int64(n), nil
	case uint64:
		return record.Int64(n), nil
	case float64:
		return record.Float64(n), nil
	case float32:
		return record.Float32(n), nil
	case string:
		return record.String(n), nil
	case []byte:
		return record.Bytes(append([]byte(nil), n...)), nil
	case time.Time:
		return record.Int64(n.UnixMilli()), nil
	}
	return nil, &record.UnsupportedTypeError{Column: column, TypeName: fmt.Sprintf("%T", v)}
}

func normalizeDecimal(column string, v any) (record.Value, error) {
	switch n := v.(type) {
	case float64:
		return record.Float64(n), nil
	case float32:
		return record.Float64(n), nil
	case int64:
		return record.Float64(n), nil
	case string:
		return parseDecimal(column, n)
	case []byte:
		return parseDecimal(column, string(n))
	}
	return nil, &record.UnsupportedTypeError{Column: column, TypeName: fmt.Sprintf("%T", v)}
}

func parseDecimal(column, s string) (record.Value, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, fmt.Errorf("column %q: parsing decimal value %q: %w", column, s, err)
	}
	return record.Float64(f), nil
}

func normalizeTemporal(column string, v any) (record.Value, error) {
	switch n := v.(type) {
	case time.Time:
		return record.Int64(n.UnixMilli()), nil
	case int64:
		// already epoch milliseconds
		return record.Int64(n), nil
	case string:
		return parseTemporal(column, n)
	case []byte:
		return parseTemporal(column, string(n))
	}
	return nil, &record.UnsupportedTypeError{Column: column, TypeName: fmt.Sprintf("%T", v)}
}

func parseTemporal(column, s string) (record.Value, error) {
	s = strings.TrimSpace(s)
	for _, layout := range temporalLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return record.Int64(t.UnixMilli()), nil
		}
	}
	return nil, fmt.Errorf("column %q: unrecognized temporal value %q", column, s)
}

// readLargeObject drains a driver large-object handle. The handle is
// scoped to this call: if it is an io.Closer it is released before return
// on both the success and failure paths. Stream failures surface as a
// ResourceError after the release has been attempted.
func readLargeObject(column string, r io.Reader) ([]byte, error) {
	data, readErr := io.ReadAll(r)
	var closeErr error
	if c, ok := r.(io.Closer); ok {
		closeErr = c.Close()
	}
	if readErr != nil {
		return nil, &record.ResourceError{Column: column, Err: readErr}
	}
	if closeErr != nil {
		return nil, &record.ResourceError{Column: column, Err: closeErr}
	}
	return data, nil
}

// joinLines rejoins character-large-object content as a single string:
// every line terminator (LF, CR or CRLF) becomes a single newline, and a
// terminator at end of content is dropped. This is a normalization of line
// structure, not a verbatim reproduction of the original bytes.
func joinLines(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	start := 0
	first := true
	flush := func(end int) {
		if !first {
			b.WriteByte('\n')
		}
		b.WriteString(s[start:end])
		first = false
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			flush(i)
			start = i + 1
		case '\r':
			flush(i)
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(s) {
		flush(len(s))
	}
	return b.String()
}
