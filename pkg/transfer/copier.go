package transfer

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/dbrow/pkg/adapter"
	"github.com/leapstack-labs/dbrow/pkg/codec"
)

// Options configures one table copy.
type Options struct {
	// Table is the destination table name. Required.
	Table string

	// Query is the source read query. Defaults to SELECT * over Table.
	Query string

	// Partitions holds independent source queries that together cover the
	// source data. When set, each partition is copied by its own codec and
	// prepared statement on its own goroutine; Query is ignored.
	Partitions []string
}

// Copier streams rows from a source adapter into a destination table.
//
// Each partition runs single-threaded end to end with private codec and
// statement state; parallelism only ever exists between partitions.
type Copier struct {
	src    adapter.Adapter
	dst    adapter.Adapter
	logger *slog.Logger
}

// NewCopier creates a copier. If logger is nil, a discard logger is used.
func NewCopier(src, dst adapter.Adapter, logger *slog.Logger) *Copier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Copier{src: src, dst: dst, logger: logger}
}

// Run copies rows and returns how many were written. A failure on any
// partition cancels the others; rows already inserted are not rolled back,
// transactional semantics stay with the caller.
func (c *Copier) Run(ctx context.Context, opts Options) (int64, error) {
	if opts.Table == "" {
		return 0, fmt.Errorf("transfer: destination table not specified")
	}

	if len(opts.Partitions) == 0 {
		query := opts.Query
		if query == "" {
			query = SelectSQL(opts.Table)
		}
		return c.copyPartition(ctx, query, opts.Table)
	}

	counts := make([]int64, len(opts.Partitions))
	g, gctx := errgroup.WithContext(ctx)
	for i, query := range opts.Partitions {
		g.Go(func() error {
			n, err := c.copyPartition(gctx, query, opts.Table)
			counts[i] = n
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int64
	for _, n := range counts {
		total += n
	}
	return total, nil
}

// copyPartition copies one source query into the destination table with a
// fresh codec, column type table and prepared statement.
func (c *Copier) copyPartition(ctx context.Context, query, table string) (n int64, err error) {
	rows, err := c.src.DB().QueryContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to execute source query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	cdc, err := codec.FromRows(table, rows)
	if err != nil {
		return 0, err
	}

	types, err := c.dst.CaptureColumnTypes(ctx, table, cdc.Schema())
	if err != nil {
		return 0, err
	}

	insert := InsertSQL(table, cdc.Schema().Fields(), c.dst.Placeholder)
	c.logger.Debug("prepared destination insert", slog.String("sql", insert))

	stmt, err := c.dst.DB().PrepareContext(ctx, insert)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	var args codec.Args
	for rows.Next() {
		rec, err := cdc.Read(rows)
		if err != nil {
			return n, err
		}
		args.Reset()
		if err := cdc.Write(rec, types, &args); err != nil {
			return n, err
		}
		if _, err := stmt.ExecContext(ctx, args.Values()...); err != nil {
			return n, fmt.Errorf("failed to insert row %d: %w", n+1, err)
		}
		n++
	}
	if err := rows.Err(); err != nil {
		return n, fmt.Errorf("error iterating source rows: %w", err)
	}

	c.logger.Debug("partition copied", slog.String("table", table), slog.Int64("rows", n))
	return n, nil
}
