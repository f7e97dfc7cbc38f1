package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"recs-data/internal/app"
	"recs-data/internal/types"
)

type findOptions struct {
	Table  string
	Sheet  string
	Row    string
	Column string
}

func (o *findOptions) register(cmd *cobra.Command, withSheet bool) {
	cmd.Flags().StringVar(&o.Table, "table", "", "Table id, e.g. hc1.1")
	cmd.Flags().StringVar(&o.Row, "row", "", "Row path, keys separated by "+types.KeyPathSeparator)
	cmd.Flags().StringVar(&o.Column, "column", "", "Column path, keys separated by "+types.KeyPathSeparator)
	if withSheet {
		cmd.Flags().StringVar(&o.Sheet, "sheet", types.SheetData, "Sheet to read (data or rse)")
	}
}

func (o findOptions) request(cmd *cobra.Command) app.FindRequest {
	return app.FindRequest{
		Table:   resolveString(cmd, o.Table, "table", "table"),
		Sheet:   resolveString(cmd, o.Sheet, "sheet", "sheet"),
		Rows:    types.ParseKeyPath(o.Row),
		Columns: types.ParseKeyPath(o.Column),
	}
}

func newFindCommand() *cobra.Command {
	opts := findOptions{}
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Look up the figure at a row path and a column path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFind(cmd.Context(), cmd, opts)
		},
	}
	opts.register(cmd, true)
	return cmd
}

func runFind(ctx context.Context, cmd *cobra.Command, opts findOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Find(ctx, opts.request(cmd))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if result.Resolution.IsResolved() {
		fmt.Fprintf(out, "%s %s %s: %s\n", result.Table, result.Sheet, result.Resolution.Address, formatValue(result.Resolution.Value))
		return nil
	}
	printRemainders(out, result.Resolution.Rows, result.Resolution.Columns, result.Hints)
	return nil
}

func newBrowseCommand() *cobra.Command {
	opts := findOptions{}
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Show the keys below a row path and a column path without downloading",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd.Context(), cmd, opts)
		},
	}
	opts.register(cmd, false)
	return cmd
}

func runBrowse(ctx context.Context, cmd *cobra.Command, opts findOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Browse(ctx, opts.request(cmd))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if result.Address != "" {
		fmt.Fprintf(out, "%s cell: %s\n", result.Table, result.Address)
		return nil
	}
	printRemainders(out, result.Rows, result.Columns, result.Hints)
	return nil
}

func printRemainders(out io.Writer, rows types.Remainder, columns types.Remainder, hints []string) {
	fmt.Fprintf(out, "rows: %s\n", rows)
	fmt.Fprintf(out, "columns: %s\n", columns)
	for _, hint := range hints {
		fmt.Fprintln(out, hint)
	}
}

func formatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
