package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/freeflow/internal/cli/formatter"
	"github.com/alexanderramin/freeflow/internal/domain"
	"github.com/alexanderramin/freeflow/internal/smart"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"t"},
		Short:   "Manage the tasks of a project",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskNewCmd(app),
		newTaskEditCmd(app),
		newTaskToggleCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   `add PROJECT "title - date - amount"`,
		Short: "Quick-add a task from a shorthand line",
		Long: `Quick-add a task. The line is split on '-': the first part is the
title, the second a date such as 134 or 13/4/25 (today when missing) and the
third an amount such as 1.500.000.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.QuickAdd(ctx, id, args[1])
			if err != nil {
				return err
			}
			printTaskAdded(cmd, t)
			return nil
		},
	}
}

func newTaskNewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "new PROJECT TITLE",
		Short: "Add a task due today with the given title",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.AddTitle(ctx, id, args[1])
			if err != nil {
				return err
			}
			printTaskAdded(cmd, t)
			return nil
		},
	}
}

func newTaskEditCmd(app *App) *cobra.Command {
	var title, due, color string
	var budget amountValue
	var done bool

	cmd := &cobra.Command{
		Use:   "edit PROJECT TASK",
		Short: "Edit a task (TASK is a 1-based number or an id prefix)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.TaskPatch
			flags := cmd.Flags()
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("due") {
				d := smart.ParseDateFrom(strings.TrimSpace(due), app.now())
				patch.DueDate = &d
			}
			if flags.Changed("budget") {
				b := int64(budget)
				patch.Budget = &b
			}
			if flags.Changed("color") {
				patch.Color = &color
			}
			if flags.Changed("done") {
				patch.Completed = &done
			}

			return withTask(cmd, app, args[0], args[1], func(ctx context.Context, pid, tid string) (*domain.Project, error) {
				return app.Tasks.Update(ctx, pid, tid, patch)
			}, "Updated task in")
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&due, "due", "", "New due date, e.g. 2025-04-13 or 134")
	cmd.Flags().Var(&budget, "budget", "New budget, e.g. 500.000")
	cmd.Flags().StringVar(&color, "color", "", "Accent colour, e.g. #10b981")
	cmd.Flags().BoolVar(&done, "done", false, "Completion flag")

	return cmd
}

func newTaskToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle PROJECT TASK",
		Short: "Toggle task completion",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTask(cmd, app, args[0], args[1], app.Tasks.Toggle, "Toggled task in")
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm PROJECT TASK",
		Aliases: []string{"remove"},
		Short:   "Remove a task",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTask(cmd, app, args[0], args[1], app.Tasks.Delete, "Removed task from")
		},
	}
}

// withTask resolves both references, applies fn and prints the project's
// task list afterwards.
func withTask(cmd *cobra.Command, app *App, projectRef, taskRef string,
	fn func(ctx context.Context, projectID, taskID string) (*domain.Project, error), verb string) error {
	ctx := cmd.Context()
	pid, err := resolveProjectID(ctx, app, projectRef)
	if err != nil {
		return err
	}
	p, err := app.Projects.GetByID(ctx, pid)
	if err != nil {
		return err
	}
	tid, err := resolveTaskID(p, taskRef)
	if err != nil {
		return err
	}
	p, err = fn(ctx, pid, tid)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatter.Success(fmt.Sprintf("%s %s [%s]", verb, p.Name, p.DisplayID())))
	fmt.Fprintln(out, formatter.FormatProjectDetail(p, app.now()))
	return nil
}

func printTaskAdded(cmd *cobra.Command, t *domain.Task) {
	fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Added %q due %s, %s",
		t.Title, t.DueDate, formatter.Money(t.Budget))))
}
