package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/freeflow/internal/cli/formatter"
	"github.com/alexanderramin/freeflow/internal/domain"
	"github.com/alexanderramin/freeflow/internal/intelligence"
	"github.com/alexanderramin/freeflow/internal/smart"
	"github.com/spf13/cobra"
)

func newDraftCmd(app *App) *cobra.Command {
	var clientName, name string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "draft --client CLIENT --name NAME TEXT...",
		Short: "Draft a complex project from a free-text brief",
		Long: `Draft a complex project from a free-text brief. With an LLM configured
the brief is turned into tasks by the model; otherwise each line of the
brief is read as "title - date - amount".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now := app.now()
			text := strings.Join(args, " ")

			extracted, err := app.Extractor.Extract(ctx, text, now)
			if err != nil {
				return err
			}
			tasks := intelligence.ToTasks(extracted, 0, now)
			source := "model"
			if len(tasks) == 0 {
				tasks = smart.ParseTaskLines(strings.Join(args, "\n"), 0, now)
				source = "shorthand"
			}
			if len(tasks) == 0 {
				return fmt.Errorf("no tasks found in the brief")
			}

			p := &domain.Project{
				Name:        name,
				ClientName:  clientName,
				Description: text,
				Kind:        domain.KindComplex,
				Tasks:       tasks,
				Deadline:    intelligence.LatestDueDate(tasks, smart.Today(now)),
			}

			out := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("%d tasks from %s (dry run)", len(tasks), source)))
				p.Reconcile()
				fmt.Fprintln(out, formatter.FormatProjectDetail(p, now))
				return nil
			}
			if err := app.Projects.Create(ctx, p); err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.Success(fmt.Sprintf("Drafted %s [%s] with %d tasks from %s",
				p.Name, p.DisplayID(), len(p.Tasks), source)))
			fmt.Fprintln(out, formatter.FormatProjectDetail(p, now))
			return nil
		},
	}

	cmd.Flags().StringVar(&clientName, "client", "", "Client name")
	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the drafted project without saving it")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
