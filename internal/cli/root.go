package cli

import (
	"time"

	"github.com/alexanderramin/freeflow/internal/intelligence"
	"github.com/alexanderramin/freeflow/internal/invoice"
	"github.com/alexanderramin/freeflow/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects  service.ProjectService
	Tasks     service.TaskService
	Clients   service.ClientService
	Dashboard service.DashboardService
	Transfer  service.ExportService

	// Advisor and Extractor always exist; without an LLM they fall back to
	// deterministic output.
	Advisor   intelligence.AdvisorService
	Extractor intelligence.TaskExtractService

	Invoices *invoice.Generator
	Issuer   invoice.Issuer

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// Now is the clock used for relative dates. Nil means time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "freeflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "freeflow",
		Short:         "Freelancer project, task and invoice manager",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProjectCmd(app),
		newTaskCmd(app),
		newClientCmd(app),
		newStatsCmd(app),
		newAdviseCmd(app),
		newDraftCmd(app),
		newInvoiceCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newParseCmd(app),
		newDashCmd(app),
	)

	return root
}
