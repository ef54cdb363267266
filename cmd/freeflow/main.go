package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/alexanderramin/freeflow/internal/cli"
	"github.com/alexanderramin/freeflow/internal/config"
	"github.com/alexanderramin/freeflow/internal/db"
	"github.com/alexanderramin/freeflow/internal/intelligence"
	"github.com/alexanderramin/freeflow/internal/invoice"
	"github.com/alexanderramin/freeflow/internal/llm"
	"github.com/alexanderramin/freeflow/internal/logging"
	"github.com/alexanderramin/freeflow/internal/repository"
	"github.com/alexanderramin/freeflow/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// FREEFLOW_CONFIG names an explicit config file; otherwise freeflow.yaml
	// is searched in . and ~/.freeflow.
	cfg, err := config.Load(os.Getenv("FREEFLOW_CONFIG"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	logger.Debug("database opened", zap.String("path", cfg.DB.Path))

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	clientRepo := repository.NewSQLiteClientRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewLogUseCaseObserver(logger)

	app := &cli.App{
		Projects:  service.NewProjectService(projectRepo, uow, time.Now, observer),
		Tasks:     service.NewTaskService(uow, time.Now, observer),
		Clients:   service.NewClientService(clientRepo, uow, observer),
		Dashboard: service.NewDashboardService(projectRepo),
		Transfer:  service.NewExportService(repository.NewSQLiteStore(database, uow), uow, observer),
		Invoices:  invoice.NewGenerator(cfg.Invoice.OutputDir, cfg.Invoice.FontPath),
		Issuer:    invoice.Issuer{Name: cfg.Invoice.Issuer, Contact: cfg.Invoice.Contact},
	}

	// Detect interactive terminal for forms and the dashboard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Intelligence services fall back to deterministic output without a client.
	var llmClient llm.LLMClient
	var llmObserver llm.Observer = llm.NoopObserver{}
	if cfg.LLM.Enabled {
		if cfg.LLM.LogCalls {
			llmObserver = llm.NewLogObserver(logger.Named("llm"))
		}
		llmClient = llm.NewClient(cfg.LLM, llmObserver)
		logger.Debug("llm enabled",
			zap.String("provider", string(cfg.LLM.Provider)),
			zap.String("model", cfg.LLM.Model))
	}
	app.Advisor = intelligence.NewAdvisorService(llmClient, llmObserver, cfg.LLM.Language)
	app.Extractor = intelligence.NewTaskExtractService(llmClient, llmObserver)

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
