package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"spendlog/internal/core"
	"spendlog/internal/log"
	"spendlog/internal/render"
	"spendlog/internal/services"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// errUsage marks a malformed command line.
var errUsage = errors.New("usage")

const usageText = `Usage: spendlog <command> [flags]

Commands:
  add -name N -amount A [-category C] [-date YYYY-MM-DD]
  delete <id>
  list [-date YYYY-MM-DD] [-category C]
  report day [-date YYYY-MM-DD]
  report month [-month YYYY-MM]
  top [-month YYYY-MM] [-n N]
  budget show
  budget set key=value ...
  summary

Categories: food, transport, bills, entertainment, other
Budget keys: monthly, food, transport, bills, entertainment, other`

type command func(a *App, ctx context.Context, args []string) error

var commands = map[string]command{
	"add":     (*App).runAdd,
	"delete":  (*App).runDelete,
	"list":    (*App).runList,
	"report":  (*App).runReport,
	"top":     (*App).runTop,
	"budget":  (*App).runBudget,
	"summary": (*App).runSummary,
}

// Run executes one command and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(a.stderr, usageText)
		return ExitUsage
	}

	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		fmt.Fprintln(a.stdout, usageText)
		return ExitOK
	}
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(a.stderr, "unknown command %q\n\n%s\n", name, usageText)
		return ExitUsage
	}

	logger := a.logger.With(log.FieldCommand, name)
	ctx = log.WithContext(ctx, logger)
	logger.DebugContext(ctx, "Running command", "args", args[1:])

	err := cmd(a, ctx, args[1:])
	if err != nil {
		log.FromContext(ctx).DebugContext(ctx, "Command failed", log.FieldError, err.Error())
	}
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.Is(err, errUsage):
		fmt.Fprintf(a.stderr, "%v\n", err)
		return ExitUsage
	case errors.Is(err, services.ErrNotPersisted):
		fmt.Fprintf(a.stderr, "warning: %v\n", err)
		return ExitError
	default:
		fmt.Fprintf(a.stderr, "error: %v\n", err)
		return ExitError
	}
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

// parseFlags parses args and rejects stray positional arguments.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %s: %v", errUsage, fs.Name(), err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: %s: unexpected arguments %v", errUsage, fs.Name(), fs.Args())
	}
	return nil
}

func (a *App) runAdd(ctx context.Context, args []string) error {
	fs := a.flagSet("add")
	name := fs.String("name", "", "expense name")
	amount := fs.String("amount", "", "amount, e.g. 4.50")
	category := fs.String("category", "", "category (default food)")
	date := fs.String("date", "", "date as YYYY-MM-DD (default today)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	m, err := core.ParseAmount(*amount)
	if err != nil {
		return fmt.Errorf("amount %q: %w", *amount, err)
	}
	c, err := core.ParseCategory(*category)
	if err != nil {
		return fmt.Errorf("category %q: %w", *category, err)
	}
	d := *date
	if d == "" {
		d = core.Today(a.now())
	}
	if d, err = core.ParseDate(d); err != nil {
		return fmt.Errorf("date %q: %w", *date, err)
	}

	e, err := a.expenses.Add(ctx, core.Draft{Name: *name, Amount: m, Category: c, Date: d})
	if err != nil && !errors.Is(err, services.ErrNotPersisted) {
		return err
	}
	fmt.Fprintf(a.stdout, "Added expense %d: %s %s (%s) on %s\n",
		e.ID, e.Name, e.Amount, e.Category.Label(), render.ShortDate(e.Date))
	return err
}

func (a *App) runDelete(ctx context.Context, args []string) error {
	fs := a.flagSet("delete")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: delete: %v", errUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: delete takes exactly one expense id", errUsage)
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid expense id %q", errUsage, fs.Arg(0))
	}

	removed, err := a.expenses.Delete(ctx, id)
	if !removed {
		return fmt.Errorf("no expense with id %d", id)
	}
	fmt.Fprintf(a.stdout, "Deleted expense %d\n", id)
	return err
}

func (a *App) runList(_ context.Context, args []string) error {
	fs := a.flagSet("list")
	date := fs.String("date", "", "only expenses on YYYY-MM-DD")
	category := fs.String("category", "", "only expenses in this category")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	var criteria core.Criteria
	if *date != "" {
		d, err := core.ParseDate(*date)
		if err != nil {
			return fmt.Errorf("date %q: %w", *date, err)
		}
		criteria.Date = d
	}
	if *category != "" {
		c, err := core.ParseCategory(*category)
		if err != nil {
			return fmt.Errorf("category %q: %w", *category, err)
		}
		criteria.Category = c
	}

	fmt.Fprintln(a.stdout, render.ExpenseList(a.expenses.List(), criteria))
	return nil
}

func (a *App) runReport(_ context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: report needs a period: day or month", errUsage)
	}

	switch args[0] {
	case "day":
		fs := a.flagSet("report day")
		date := fs.String("date", core.Today(a.now()), "date as YYYY-MM-DD")
		if err := parseFlags(fs, args[1:]); err != nil {
			return err
		}
		d, err := core.ParseDate(*date)
		if err != nil {
			return fmt.Errorf("date %q: %w", *date, err)
		}
		fmt.Fprintln(a.stdout, render.DayReport(a.reports.Day(d)))
	case "month":
		fs := a.flagSet("report month")
		month := fs.String("month", core.CurrentMonth(a.now()), "month as YYYY-MM")
		if err := parseFlags(fs, args[1:]); err != nil {
			return err
		}
		ym, err := core.ParseYearMonth(*month)
		if err != nil {
			return fmt.Errorf("month %q: %w", *month, err)
		}
		fmt.Fprintln(a.stdout, render.MonthReport(a.reports.Month(ym), a.reports.Top(ym, a.cfg.TopN)))
	default:
		return fmt.Errorf("%w: unknown report period %q", errUsage, args[0])
	}
	return nil
}

func (a *App) runTop(_ context.Context, args []string) error {
	fs := a.flagSet("top")
	month := fs.String("month", core.CurrentMonth(a.now()), "month as YYYY-MM")
	n := fs.Int("n", a.cfg.TopN, "number of expenses to chart")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *n < 1 {
		return fmt.Errorf("%w: top: -n must be at least 1", errUsage)
	}
	ym, err := core.ParseYearMonth(*month)
	if err != nil {
		return fmt.Errorf("month %q: %w", *month, err)
	}

	top := a.reports.Top(ym, *n)
	total := a.reports.Month(ym).Total
	fmt.Fprintln(a.stdout, render.TopChart(ym, top, total, *n, a.cfg.HistogramWidth))
	return nil
}

func (a *App) runBudget(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: budget needs show or set", errUsage)
	}

	switch args[0] {
	case "show":
		if len(args) > 1 {
			return fmt.Errorf("%w: budget show takes no arguments", errUsage)
		}
		fmt.Fprintln(a.stdout, render.BudgetSummary(a.budgets.Get()))
		return nil
	case "set":
		return a.setBudget(ctx, args[1:])
	default:
		return fmt.Errorf("%w: unknown budget action %q", errUsage, args[0])
	}
}

// setBudget stages each key=value on a copy of the current budget and
// replaces the stored budget once every pair is valid.
func (a *App) setBudget(ctx context.Context, pairs []string) error {
	if len(pairs) == 0 {
		return fmt.Errorf("%w: budget set needs at least one key=value", errUsage)
	}

	staged := a.budgets.Get()
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("%w: expected key=value, got %q", errUsage, pair)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		amount, err := core.ParseAmount(value)
		if err != nil {
			return fmt.Errorf("%s %q: %w", key, value, err)
		}
		if staged, err = staged.With(key, amount); err != nil {
			return err
		}
	}

	err := a.budgets.ReplaceAll(ctx, staged)
	if err != nil && !errors.Is(err, services.ErrNotPersisted) {
		return err
	}
	fmt.Fprintln(a.stdout, render.BudgetSummary(a.budgets.Get()))
	return err
}

func (a *App) runSummary(_ context.Context, args []string) error {
	fs := a.flagSet("summary")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, render.Overview(a.reports.Overview(a.now())))
	return nil
}
