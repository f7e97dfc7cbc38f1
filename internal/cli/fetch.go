package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"recs-data/internal/app"
)

type fetchOptions struct {
	Table     string
	Microdata bool
}

func newFetchCommand() *cobra.Command {
	opts := fetchOptions{}
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download a table workbook or the microdata file into the cache",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFetch(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Table, "table", "", "Table id, e.g. hc1.1")
	cmd.Flags().BoolVar(&opts.Microdata, "microdata", false, "Fetch the microdata file instead of a table")
	return cmd
}

func runFetch(ctx context.Context, cmd *cobra.Command, opts fetchOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Fetch(ctx, app.FetchRequest{
		Table:     resolveString(cmd, opts.Table, "table", "table"),
		Microdata: opts.Microdata,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "cached: %s\n", result.Path)
	return nil
}

type releaseOptions struct {
	Table string
}

func newReleaseCommand() *cobra.Command {
	opts := releaseOptions{}
	cmd := &cobra.Command{
		Use:   "release",
		Short: "Show when a table was released and last revised",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRelease(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Table, "table", "", "Table id, e.g. hc1.1")
	return cmd
}

func runRelease(ctx context.Context, cmd *cobra.Command, opts releaseOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Release(ctx, app.ReleaseRequest{
		Table: resolveString(cmd, opts.Table, "table", "table"),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s released: %s\n", result.Table, result.Info.ReleasedOn.Format("January 2006"))
	fmt.Fprintf(out, "%s revised: %s\n", result.Table, result.Info.RevisedOn.Format("January 2006"))
	return nil
}
