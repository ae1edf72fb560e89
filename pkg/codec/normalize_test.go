package codec

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/dbrow/pkg/record"
	"github.com/leapstack-labs/dbrow/pkg/sqltype"
)

func TestNormalizeNull(t *testing.T) {
	for _, ct := range []sqltype.Type{sqltype.Integer, sqltype.Timestamp, sqltype.Blob, sqltype.Clob, sqltype.Decimal} {
		v, err := Normalize("c", nil, ct)
		require.NoError(t, err)
		assert.Equal(t, record.Null{}, v, ct.String())
	}
}

func TestNormalizeDecimal(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want record.Value
	}{
		{"float64", 12.75, record.Float64(12.75)},
		{"string", "12.75", record.Float64(12.75)},
		{"bytes", []byte("-0.5"), record.Float64(-0.5)},
		{"int64", int64(42), record.Float64(42)},
		{"padded string", " 3.25 ", record.Float64(3.25)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Normalize("amount", tt.in, sqltype.Numeric)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}

	_, err := Normalize("amount", "not a number", sqltype.Decimal)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "amount"`)
}

func TestNormalizeTemporal(t *testing.T) {
	ts := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	millis := ts.UnixMilli()

	tests := []struct {
		name string
		in   any
		ct   sqltype.Type
		want int64
	}{
		{"time.Time timestamp", ts, sqltype.Timestamp, millis},
		{"time.Time date", ts, sqltype.Date, millis},
		{"time.Time time", ts, sqltype.Time, millis},
		{"rfc3339 string", "2021-01-01T00:00:00Z", sqltype.Timestamp, millis},
		{"sql datetime string", "2021-01-01 00:00:00", sqltype.Timestamp, millis},
		{"date-only string", "2021-01-01", sqltype.Date, millis},
		{"datetime bytes", []byte("2021-01-01 00:00:00"), sqltype.Timestamp, millis},
		{"epoch millis passthrough", millis, sqltype.Timestamp, millis},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Normalize("created", tt.in, tt.ct)
			require.NoError(t, err)
			assert.Equal(t, record.Int64(tt.want), v)
		})
	}

	_, err := Normalize("created", "yesterday-ish", sqltype.Timestamp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized temporal value")
}

// trackedReader is a large-object handle that records whether it was
// released.
type trackedReader struct {
	io.Reader
	closed bool
	failOn bool // Close returns an error
}

func (r *trackedReader) Close() error {
	r.closed = true
	if r.failOn {
		return errors.New("release failed")
	}
	return nil
}

// failingReader fails partway through the stream.
type failingReader struct {
	data []byte
	done bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, errors.New("connection reset")
	}
	r.done = true
	n := copy(p, r.data)
	return n, nil
}

func TestNormalizeBlobHandle(t *testing.T) {
	h := &trackedReader{Reader: bytes.NewReader([]byte{1, 2, 3})}
	v, err := Normalize("photo", h, sqltype.Blob)
	require.NoError(t, err)
	assert.Equal(t, record.Bytes{1, 2, 3}, v)
	assert.True(t, h.closed, "handle must be released after a successful read")
}

func TestNormalizeBlobHandleStreamFailure(t *testing.T) {
	h := &trackedReader{Reader: &failingReader{data: []byte{1}}}
	_, err := Normalize("photo", h, sqltype.Blob)

	var re *record.ResourceError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "photo", re.Column)
	assert.True(t, h.closed, "handle must be released before the error propagates")
}

func TestNormalizeBlobHandleReleaseFailure(t *testing.T) {
	h := &trackedReader{Reader: bytes.NewReader([]byte{1}), failOn: true}
	_, err := Normalize("photo", h, sqltype.Blob)

	var re *record.ResourceError
	require.ErrorAs(t, err, &re)
	assert.True(t, h.closed)
}

func TestNormalizeBlobBytes(t *testing.T) {
	v, err := Normalize("photo", []byte{9, 8}, sqltype.Blob)
	require.NoError(t, err)
	assert.Equal(t, record.Bytes{9, 8}, v)
}

func TestNormalizeClob(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single line", "hello", "hello"},
		{"two lines", "a\nb", "a\nb"},
		{"trailing newline dropped", "a\n", "a"},
		{"crlf terminators", "a\r\nb\r\n", "a\nb"},
		{"bare cr terminators", "a\rb", "a\nb"},
		{"mixed terminators", "a\r\nb\rc\nd", "a\nb\nc\nd"},
		{"empty content", "", ""},
		{"lone newline", "\n", ""},
		{"blank interior line kept", "a\n\nb", "a\n\nb"},
		{"trailing blank line kept", "a\n\n", "a\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Normalize("notes", tt.in, sqltype.Clob)
			require.NoError(t, err)
			assert.Equal(t, record.String(tt.want), v)
		})
	}
}

func TestNormalizeClobHandle(t *testing.T) {
	h := &trackedReader{Reader: bytes.NewReader([]byte("line one\r\nline two"))}
	v, err := Normalize("notes", h, sqltype.Clob)
	require.NoError(t, err)
	assert.Equal(t, record.String("line one\nline two"), v)
	assert.True(t, h.closed)
}

func TestNormalizePassthrough(t *testing.T) {
	tests := []struct {
		name string
		in   any
		ct   sqltype.Type
		want record.Value
	}{
		{"bool", true, sqltype.Boolean, record.Bool(true)},
		{"int64", int64(5), sqltype.Integer, record.Int64(5)},
		{"int", 5, sqltype.Integer, record.Int64(5)},
		{"float64", 2.5, sqltype.Double, record.Float64(2.5)},
		{"float32", float32(1.5), sqltype.Real, record.Float32(1.5)},
		{"string", "x", sqltype.Varchar, record.String("x")},
		{"bytes", []byte{1}, sqltype.Varbinary, record.Bytes{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Normalize("c", tt.in, tt.ct)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestNormalizeBytesAreCopied(t *testing.T) {
	src := []byte{1, 2, 3}
	v, err := Normalize("c", src, sqltype.Varbinary)
	require.NoError(t, err)

	src[0] = 99
	assert.Equal(t, record.Bytes{1, 2, 3}, v)
}

func TestNormalizeUnsupportedGoType(t *testing.T) {
	_, err := Normalize("c", struct{}{}, sqltype.Varchar)
	var ue *record.UnsupportedTypeError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "c", ue.Column)
}
