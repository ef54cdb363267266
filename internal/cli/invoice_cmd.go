package cli

import (
	"fmt"

	"github.com/alexanderramin/freeflow/internal/cli/formatter"
	"github.com/alexanderramin/freeflow/internal/invoice"
	"github.com/spf13/cobra"
)

func newInvoiceCmd(app *App) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "invoice PROJECT",
		Short: "Write a PDF invoice for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, id)
			if err != nil {
				return err
			}

			gen := app.Invoices
			if gen == nil || outDir != "" {
				fontPath := ""
				if gen != nil {
					fontPath = gen.FontPath
				}
				gen = invoice.NewGenerator(outDir, fontPath)
			}
			path, err := gen.Generate(p, app.Issuer)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Wrote "+path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default from config)")
	return cmd
}
