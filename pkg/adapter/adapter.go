// Package adapter provides the database adapter contract for dbrow.
//
// An adapter owns connection construction and the few dialect facts the
// transfer engine needs, chiefly the parameter placeholder style. Concrete
// implementations live in pkg/adapters/ subdirectories and register
// themselves by name in their init functions.
package adapter

import (
	"context"
	"database/sql"

	"github.com/leapstack-labs/dbrow/pkg/codec"
	"github.com/leapstack-labs/dbrow/pkg/record"
)

// Config holds connection settings for a database adapter.
type Config struct {
	Type     string
	Path     string
	Host     string
	Port     int
	Database string
	Username string
	Password string
	Schema   string
	Options  map[string]string
}

// Adapter is the contract all database adapters implement.
type Adapter interface {
	// Connect establishes a connection using the provided config.
	Connect(ctx context.Context, cfg Config) error

	// Close closes the database connection and releases resources.
	Close() error

	// DB exposes the underlying connection pool. Cursor and statement
	// lifecycle stays with the caller.
	DB() *sql.DB

	// Placeholder formats the 1-based parameter placeholder for this
	// database ("?", "$1", "@p1", ...).
	Placeholder(i int) string

	// InferTableSchema builds a row codec from a table's column metadata
	// without fetching data.
	InferTableSchema(ctx context.Context, table string) (*codec.Codec, error)

	// CaptureColumnTypes reads a destination table's native column types
	// and validates them against the schema that will be written to it.
	CaptureColumnTypes(ctx context.Context, table string, schema *record.Schema) (*record.ColumnTypes, error)
}
