package cli

import (
	"context"
	"io"
	"os"
	"time"

	"spendlog/internal/config"
	"spendlog/internal/log"
	"spendlog/internal/services"
	"spendlog/internal/storage"
)

// App holds the loaded stores for one invocation.
type App struct {
	cfg      *config.Config
	logger   *log.Logger
	expenses *services.ExpenseStore
	budgets  *services.BudgetStore
	reports  *services.Reports
	stdout   io.Writer
	stderr   io.Writer
	now      func() time.Time
}

// Option configures an App.
type Option func(*App)

// WithOutput redirects command output and diagnostics.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) {
		a.stdout, a.stderr = stdout, stderr
	}
}

// WithClock sets the time source for default dates and expense ids.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

// NewApp loads both documents from docs.
func NewApp(ctx context.Context, cfg *config.Config, docs storage.DocumentStore, logger *log.Logger, opts ...Option) (*App, error) {
	if logger == nil {
		logger = log.Discard()
	}
	a := &App{
		cfg:    cfg,
		logger: logger.WithComponent(log.ComponentCLI),
		stdout: os.Stdout,
		stderr: os.Stderr,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	expenses, err := services.LoadExpenseStore(ctx, docs, logger, services.WithClock(a.now))
	if err != nil {
		return nil, err
	}
	budgets, err := services.LoadBudgetStore(ctx, docs, logger)
	if err != nil {
		return nil, err
	}

	a.expenses = expenses
	a.budgets = budgets
	a.reports = services.NewReports(expenses, cfg.ReportCacheSize, logger)
	return a, nil
}
