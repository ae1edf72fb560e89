// Package cli provides the dbrow command-line interface.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/dbrow/internal/config"

	// Register the built-in database adapters.
	_ "github.com/leapstack-labs/dbrow/pkg/adapters/duckdb"
	_ "github.com/leapstack-labs/dbrow/pkg/adapters/mssql"
	_ "github.com/leapstack-labs/dbrow/pkg/adapters/mysql"
	_ "github.com/leapstack-labs/dbrow/pkg/adapters/postgres"
	_ "github.com/leapstack-labs/dbrow/pkg/adapters/sqlite"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
	logger  *slog.Logger
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dbrow",
		Short: "dbrow - relational row transfer through a portable record codec",
		Long: `dbrow copies table data between relational databases.

Rows are read through a portable record codec: each source row becomes a
schema-typed record, and each record is bound back into a parameterized
insert using the destination table's native column types.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if verbose || cfg.Verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}} (` + GitCommit + `)
`)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to config file (default dbrow.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newCopyCommand())
	rootCmd.AddCommand(newSchemaCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("command failed", slog.String("error", err.Error()))
		return 1
	}
	return 0
}
