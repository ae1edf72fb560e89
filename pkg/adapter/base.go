package adapter

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/dbrow/pkg/codec"
	"github.com/leapstack-labs/dbrow/pkg/record"
	"github.com/leapstack-labs/dbrow/pkg/sqltype"
)

// BaseSQLAdapter provides common database/sql functionality for adapters.
// Embed this struct in concrete adapter implementations to get standard
// Close, DB and column-type capture implementations.
type BaseSQLAdapter struct {
	Conn   *sql.DB
	Cfg    Config
	Logger *slog.Logger
}

// Close closes the database connection.
func (b *BaseSQLAdapter) Close() error {
	if b.Conn != nil {
		if b.Logger != nil {
			b.Logger.Debug("closing database connection")
		}
		return b.Conn.Close()
	}
	return nil
}

// DB returns the underlying connection pool.
func (b *BaseSQLAdapter) DB() *sql.DB { return b.Conn }

// IsConnected returns true if the database connection is established.
func (b *BaseSQLAdapter) IsConnected() bool { return b.Conn != nil }

// CaptureColumnTypes reads the destination table's native column types,
// once, and validates them against the record schema that will be written.
// The resulting table is a static property of the destination table; it
// may be reused across every record bound for that table.
//
// The portable schema cannot stand in for this: a narrow integer column
// and a standard integer column infer to the same portable kind, and a
// date, time, timestamp or bigint column all infer to int64.
func (b *BaseSQLAdapter) CaptureColumnTypes(ctx context.Context, table string, schema *record.Schema) (*record.ColumnTypes, error) {
	if b.Conn == nil {
		return nil, fmt.Errorf("database connection not established")
	}

	// Zero-row select: metadata only, no data transfer.
	//nolint:gosec // table comes from operator configuration, not row data
	query := fmt.Sprintf("SELECT * FROM %s WHERE 1=0", table)
	rows, err := b.Conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query column metadata for %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to read column metadata for %s: %w", table, err)
	}

	cols := make([]record.ColumnType, len(colTypes))
	for i, ct := range colTypes {
		t, ok := sqltype.Parse(ct.DatabaseTypeName())
		if !ok {
			return nil, &record.UnsupportedTypeError{Column: ct.Name(), TypeName: ct.DatabaseTypeName()}
		}
		cols[i] = record.ColumnType{Name: ct.Name(), Type: t}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating column metadata for %s: %w", table, err)
	}

	if b.Logger != nil {
		b.Logger.Debug("captured destination column types",
			slog.String("table", table), slog.Int("columns", len(cols)))
	}
	return record.NewColumnTypes(schema, cols)
}

// InferTableSchema builds a codec for a table or query by inspecting its
// result metadata without fetching data.
func (b *BaseSQLAdapter) InferTableSchema(ctx context.Context, table string) (*codec.Codec, error) {
	if b.Conn == nil {
		return nil, fmt.Errorf("database connection not established")
	}
	//nolint:gosec // table comes from operator configuration, not row data
	query := fmt.Sprintf("SELECT * FROM %s WHERE 1=0", table)
	rows, err := b.Conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query column metadata for %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	c, err := codec.FromRows(table, rows)
	if err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating column metadata for %s: %w", table, err)
	}
	return c, nil
}
