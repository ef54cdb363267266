package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/freeflow/internal/cli/formatter"
	"github.com/alexanderramin/freeflow/internal/dashboard"
	"github.com/alexanderramin/freeflow/internal/domain"
	"github.com/alexanderramin/freeflow/internal/service"
	"github.com/alexanderramin/freeflow/internal/smart"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"p"},
		Short:   "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectEditCmd(app),
		newProjectStatusCmd(app),
		newProjectPayCmd(app),
		newProjectUrgentCmd(app),
		newProjectDoneAllCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var v projectFormValues
	var taskLines []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if v.Name == "" || v.Client == "" {
				if !app.interactive() {
					return fmt.Errorf("--name and --client are required")
				}
				if err := newProjectForm(ctx, app, &v).Run(); err != nil {
					return err
				}
			}
			for _, line := range taskLines {
				v.Tasks += line + "\n"
			}

			p, err := v.buildProject(app)
			if err != nil {
				return err
			}
			if err := app.Projects.Create(ctx, p); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(
				fmt.Sprintf("Created project %s [%s]", p.Name, p.DisplayID())))
			return nil
		},
	}

	cmd.Flags().StringVar(&v.Name, "name", "", "Project name")
	cmd.Flags().StringVar(&v.Client, "client", "", "Client name")
	cmd.Flags().StringVar(&v.Description, "desc", "", "Description")
	cmd.Flags().StringVar(&v.Kind, "kind", "single", "Project kind (single, complex)")
	cmd.Flags().StringVar(&v.Budget, "budget", "", "Budget, e.g. 1.500.000")
	cmd.Flags().StringVar(&v.Deadline, "deadline", "", "Deadline, e.g. 2025-04-13 or 134")
	cmd.Flags().BoolVar(&v.Urgent, "urgent", false, "Mark as urgent")
	cmd.Flags().StringArrayVar(&taskLines, "task", nil, `Task line "title - date - amount" (complex projects, repeatable)`)

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var filter, sortKey string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context(),
				dashboard.ParseFilter(filter), dashboard.ParseSortKey(sortKey))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectList(projects, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "all", "Filter: all, urgent, active, completed")
	cmd.Flags().StringVarP(&sortKey, "sort", "s", "none", "Sort: none, deadline-asc, deadline-desc, budget-desc, newest")

	return cmd
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PROJECT",
		Short: "Show a project and its tasks",
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
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectDetail(p, app.now()))
			return nil
		},
	}
}

func newProjectEditCmd(app *App) *cobra.Command {
	var name, desc, client, deadline string
	var budget amountValue

	cmd := &cobra.Command{
		Use:   "edit PROJECT",
		Short: "Edit project fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch service.ProjectPatch
			flags := cmd.Flags()
			if flags.Changed("name") {
				patch.Name = &name
			}
			if flags.Changed("desc") {
				patch.Description = &desc
			}
			if flags.Changed("client") {
				patch.ClientName = &client
			}
			if flags.Changed("deadline") {
				d := smart.ParseDateFrom(strings.TrimSpace(deadline), app.now())
				patch.Deadline = &d
			}
			if flags.Changed("budget") {
				b := int64(budget)
				patch.Budget = &b
			}

			return withProject(cmd, app, args[0], func(ctx context.Context, id string) (*domain.Project, error) {
				return app.Projects.Update(ctx, id, patch)
			}, "Updated")
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&desc, "desc", "", "New description")
	cmd.Flags().StringVar(&client, "client", "", "New client name")
	cmd.Flags().StringVar(&deadline, "deadline", "", "New deadline (single projects or complex without tasks)")
	cmd.Flags().Var(&budget, "budget", "New budget (single projects or complex without tasks)")

	return cmd
}

func newProjectStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status PROJECT STATUS",
		Short: "Set workflow status (planning, in-progress, review, on-hold, completed)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseProjectStatus(args[1])
			if err != nil {
				return err
			}
			return withProject(cmd, app, args[0], func(ctx context.Context, id string) (*domain.Project, error) {
				return app.Projects.SetStatus(ctx, id, status)
			}, "Status set to "+string(status)+" for")
		},
	}
}

func newProjectPayCmd(app *App) *cobra.Command {
	var set string

	cmd := &cobra.Command{
		Use:   "pay PROJECT",
		Short: "Toggle payment between Paid and Pending, or set it with --set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if set == "" {
				return withProject(cmd, app, args[0], app.Projects.TogglePayment, "Payment toggled for")
			}
			status, err := domain.ParsePaymentStatus(set)
			if err != nil {
				return err
			}
			return withProject(cmd, app, args[0], func(ctx context.Context, id string) (*domain.Project, error) {
				return app.Projects.SetPayment(ctx, id, status)
			}, "Payment set to "+string(status)+" for")
		},
	}

	cmd.Flags().StringVar(&set, "set", "", "Payment status: pending, paid, overdue")
	return cmd
}

func newProjectUrgentCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "urgent PROJECT",
		Short: "Toggle the urgent flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(cmd, app, args[0], app.Projects.ToggleUrgent, "Urgent toggled for")
		},
	}
}

func newProjectDoneAllCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done-all PROJECT",
		Short: "Mark every task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(cmd, app, args[0], app.Projects.CompleteAllTasks, "Completed all tasks of")
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm PROJECT",
		Aliases: []string{"remove"},
		Short:   "Delete a project and its tasks",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Removed project "+formatter.TruncID(id)))
			return nil
		},
	}
}

// withProject resolves ref, applies fn and prints a one-line summary.
func withProject(cmd *cobra.Command, app *App, ref string, fn func(context.Context, string) (*domain.Project, error), verb string) error {
	ctx := cmd.Context()
	id, err := resolveProjectID(ctx, app, ref)
	if err != nil {
		return err
	}
	p, err := fn(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.Success(fmt.Sprintf("%s %s [%s]", verb, p.Name, p.DisplayID())))
	fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s  %s  %s\n",
		formatter.StatusPill(p.Status), formatter.PaymentPill(p.PaymentStatus),
		formatter.Money(p.Budget), formatter.DeadlineStyled(p.Deadline, app.now(), p.Status == domain.StatusCompleted))
	return nil
}
