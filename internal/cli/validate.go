package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"recs-data/internal/app"
)

type validateOptions struct {
	Catalogs []string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate catalog overlay files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Catalogs, "catalog", nil, "Catalog files to validate")
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Validate(ctx, app.ValidateRequest{
		CatalogFiles: resolveStrings(cmd, opts.Catalogs, "schema", "catalog"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "validated: %s\n", strings.Join(result.Tables, ", "))
	return nil
}
