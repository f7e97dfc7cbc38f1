package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"recs-data/internal/app"
)

func newTablesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the tables known to the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTables(cmd)
		},
	}
}

func runTables(cmd *cobra.Command) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, table := range service.Tables() {
		marker := " "
		if table.Structured {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s %s  %s\n", marker, table.Release, table.ID, table.Title)
	}
	return nil
}

type inspectOptions struct {
	Table string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List every row and column path of a table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Table, "table", "", "Table id, e.g. hc1.1")
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Inspect(app.InspectRequest{
		Table: resolveString(cmd, opts.Table, "table", "table"),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s (units: %s)\n", result.Table.ID, result.Table.Title, formatValue(result.Units))
	fmt.Fprintf(out, "columns: %d\n", len(result.Columns))
	for _, leaf := range result.Columns {
		fmt.Fprintf(out, "- %s -> %s\n", leaf.Path, leaf.Address)
	}
	fmt.Fprintf(out, "rows: %d\n", len(result.Rows))
	for _, leaf := range result.Rows {
		fmt.Fprintf(out, "- %s -> %s\n", leaf.Path, leaf.Address)
	}
	return nil
}
