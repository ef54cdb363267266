package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/freeflow/internal/smart"
	"github.com/spf13/cobra"
)

func newParseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Try the shorthand parsers used by quick entry",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "date INPUT",
			Short: "Normalise a shorthand date such as 134 or 13/4/25",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), smart.ParseDateFrom(strings.Join(args, " "), app.now()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "number INPUT",
			Short: "Read a dotted amount and print it formatted",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n := smart.ParseNumber(args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", n, smart.FormatNumber(n))
				return nil
			},
		},
		&cobra.Command{
			Use:   `task "title - date - amount"`,
			Short: "Split a task line into title, due date and budget",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				t, ok := smart.ParseTaskLineFrom(strings.Join(args, " "), 0, app.now())
				if !ok {
					return fmt.Errorf("task line has no title")
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "title:  %s\n", t.Title)
				fmt.Fprintf(out, "due:    %s\n", t.DueDate)
				fmt.Fprintf(out, "budget: %s\n", smart.FormatNumber(t.Budget))
				fmt.Fprintf(out, "color:  %s\n", t.Color)
				return nil
			},
		},
	)

	return cmd
}
