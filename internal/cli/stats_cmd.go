package cli

import (
	"fmt"

	"github.com/alexanderramin/freeflow/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show revenue, progress, the urgent queue and the budget chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			ov, err := app.Dashboard.Overview(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatStats(ov.Stats))
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.FormatUrgentQueue(ov.Urgent, app.now()))
			fmt.Fprintln(out, formatter.FormatChart(ov.Chart))
			return nil
		},
	}
}

func newAdviseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "advise",
		Short: "Get three pieces of advice about the current workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ov, err := app.Dashboard.Overview(ctx)
			if err != nil {
				return err
			}
			advice, err := app.Advisor.WorkloadAdvice(ctx, ov.Projects)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAdvice(advice.Points, advice.Source))
			return nil
		},
	}
}
