package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSchemaCommand() *cobra.Command {
	var fromTarget bool

	cmd := &cobra.Command{
		Use:   "schema <table>",
		Short: "Show the portable schema inferred for a table",
		Long: `Infer and print the portable schema for a table by inspecting its
column metadata, the same way the copy read path does.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			table := args[0]

			endpoint := cfg.Source
			if fromTarget {
				endpoint = cfg.Target
			}

			a, err := connect(ctx, endpoint.AdapterConfig())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			cdc, err := a.InferTableSchema(ctx, table)
			if err != nil {
				return err
			}

			schema := cdc.Schema()
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d columns)\n", schema.Name(), schema.Len())
			for _, f := range schema.Fields() {
				null := "not null"
				if f.Nullable {
					null = "nullable"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %-24s %-8s %s\n", f.Name, f.Kind, null)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromTarget, "target", false, "Inspect the target database instead of the source")

	return cmd
}
