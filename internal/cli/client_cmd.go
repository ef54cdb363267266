package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/freeflow/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newClientCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients",
	}

	cmd.AddCommand(
		newClientAddCmd(app),
		newClientListCmd(app),
		newClientRemoveCmd(app),
	)

	return cmd
}

func newClientAddCmd(app *App) *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Register a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Clients.Create(cmd.Context(), args[0], color)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(
				fmt.Sprintf("Added client %s %s", formatter.Swatch(c.Color), c.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "Accent colour (default: next palette colour)")
	return cmd
}

func newClientListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := app.Clients.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(clients) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No clients yet."))
				return nil
			}
			rows := make([][]string, 0, len(clients))
			for _, c := range clients {
				rows = append(rows, []string{formatter.TruncID(c.ID), formatter.Swatch(c.Color), c.Name, formatter.Dim(c.Color)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Clients",
				formatter.RenderTable([]string{"ID", "", "NAME", "COLOR"}, rows)))
			return nil
		},
	}
}

func newClientRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm CLIENT",
		Aliases: []string{"remove"},
		Short:   "Remove a client by id prefix or name; projects keep their copy",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			clients, err := app.Clients.List(ctx)
			if err != nil {
				return err
			}
			var matches []string
			for _, c := range clients {
				if c.ID == args[0] || strings.HasPrefix(c.ID, args[0]) || strings.EqualFold(c.Name, args[0]) {
					matches = append(matches, c.ID)
				}
			}
			switch len(matches) {
			case 0:
				return fmt.Errorf("client not found: %q", args[0])
			case 1:
			default:
				return fmt.Errorf("client %q is ambiguous (%d matches)", args[0], len(matches))
			}
			if err := app.Clients.Delete(ctx, matches[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Removed client "+args[0]))
			return nil
		},
	}
}
