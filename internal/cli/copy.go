package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/dbrow/pkg/adapter"
	"github.com/leapstack-labs/dbrow/pkg/transfer"
)

// copyOptions holds flag overrides for the copy command.
type copyOptions struct {
	Table      string
	Query      string
	Partitions []string
}

func newCopyCommand() *cobra.Command {
	opts := &copyOptions{}

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy a table from the source database to the target database",
		Long: `Copy rows from the configured source to the configured target.

The destination table must already exist; its column types drive the
write-path parameter bindings. Partition queries, when given, are copied
concurrently with one codec per partition.`,
		Example: `  # Copy the table named in dbrow.yaml
  dbrow copy

  # Copy a specific table
  dbrow copy --table events

  # Copy with a custom read query
  dbrow copy --table events --query "SELECT * FROM events WHERE ts >= '2026-01-01'"

  # Copy four partitions in parallel
  dbrow copy --table events \
    --partition "SELECT * FROM events WHERE id % 2 = 0" \
    --partition "SELECT * FROM events WHERE id % 2 = 1"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCopy(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Table, "table", "t", "", "Destination table (overrides copy.table)")
	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "Source query (overrides copy.query)")
	cmd.Flags().StringArrayVar(&opts.Partitions, "partition", nil, "Partition query, repeatable (overrides copy.partitions)")

	return cmd
}

func runCopy(cmd *cobra.Command, opts *copyOptions) error {
	ctx := cmd.Context()

	table := cfg.Copy.Table
	if opts.Table != "" {
		table = opts.Table
	}
	query := cfg.Copy.Query
	if opts.Query != "" {
		query = opts.Query
	}
	partitions := cfg.Copy.Partitions
	if len(opts.Partitions) > 0 {
		partitions = opts.Partitions
	}

	src, err := connect(ctx, cfg.Source.AdapterConfig())
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}
	defer func() { _ = src.Close() }()

	dst, err := connect(ctx, cfg.Target.AdapterConfig())
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}
	defer func() { _ = dst.Close() }()

	start := time.Now()
	rows, err := transfer.NewCopier(src, dst, logger).Run(ctx, transfer.Options{
		Table:      table,
		Query:      query,
		Partitions: partitions,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "copied %d rows to %s in %s\n", rows, table, time.Since(start).Round(time.Millisecond))
	return nil
}

func connect(ctx context.Context, c adapter.Config) (adapter.Adapter, error) {
	a, err := adapter.New(c, logger)
	if err != nil {
		return nil, err
	}
	if err := a.Connect(ctx, c); err != nil {
		return nil, err
	}
	return a, nil
}
