package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"recs-data/internal/app"
)

type microdataOptions struct {
	Column string
	Row    int
}

func newMicrodataCommand() *cobra.Command {
	opts := microdataOptions{}
	cmd := &cobra.Command{
		Use:   "microdata",
		Short: "Read one value from the household microdata file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMicrodata(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Column, "column", "", "Microdata column; omit to list columns")
	cmd.Flags().IntVar(&opts.Row, "row", 0, "Zero-based household row")
	return cmd
}

func runMicrodata(ctx context.Context, cmd *cobra.Command, opts microdataOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Microdata(ctx, app.MicrodataRequest{
		Column: resolveString(cmd, opts.Column, "microdata_column", "column"),
		Row:    resolveInt(cmd, opts.Row, "microdata_row", "row"),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if result.Column == "" {
		fmt.Fprintf(out, "households: %d\n", result.Count)
		fmt.Fprintf(out, "columns: %s\n", strings.Join(result.Columns, ", "))
		return nil
	}
	fmt.Fprintf(out, "%s[%d]: %s\n", result.Column, result.Row, formatValue(result.Value))
	return nil
}
