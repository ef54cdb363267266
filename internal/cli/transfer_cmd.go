package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/freeflow/internal/cli/formatter"
	"github.com/alexanderramin/freeflow/internal/repository"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all projects and clients as JSON or YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := repository.FormatJSON
			switch {
			case cmd.Flags().Changed("format"):
				parsed, err := repository.ParseFormat(format)
				if err != nil {
					return err
				}
				f = parsed
			case out != "":
				f = repository.FormatForPath(out)
			}

			if out == "" {
				return app.Transfer.Export(cmd.Context(), cmd.OutOrStdout(), f)
			}

			file, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			if err := app.Transfer.Export(cmd.Context(), file, f); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), formatter.Success("Exported to "+out))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format: json, yaml")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var format string
	var replace bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Load a JSON or YAML snapshot",
		Long: `Load a JSON or YAML snapshot. By default the snapshot is merged and
the whole import fails if any id already exists. --replace discards all
current data first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := repository.FormatForPath(args[0])
			if format != "" {
				parsed, err := repository.ParseFormat(format)
				if err != nil {
					return err
				}
				f = parsed
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer file.Close()

			res, err := app.Transfer.Import(cmd.Context(), file, f, replace)
			if err != nil {
				return err
			}
			verb := "Merged"
			if res.Replaced {
				verb = "Replaced data with"
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(
				fmt.Sprintf("%s %d projects and %d clients", verb, res.Projects, res.Clients)))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Input format (default from file extension)")
	cmd.Flags().BoolVar(&replace, "replace", false, "Discard existing data before importing")
	return cmd
}
