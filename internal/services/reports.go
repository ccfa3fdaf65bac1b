package services

import (
	"fmt"
	"slices"
	"time"

	"spendlog/internal/cache"
	"spendlog/internal/core"
	"spendlog/internal/log"
)

// Reports memoizes aggregates over an ExpenseStore. Entries are keyed by the
// store revision so a change to the collection never serves a stale result.
// Every call returns its own copy of the cached result.
type Reports struct {
	expenses *ExpenseStore
	cache    cache.Cache[any]
	logger   *log.Logger
}

// NewReports creates a report service holding at most cacheSize results.
func NewReports(expenses *ExpenseStore, cacheSize int, logger *log.Logger) *Reports {
	if logger == nil {
		logger = log.Discard()
	}
	return &Reports{
		expenses: expenses,
		cache:    cache.NewLRUCache[any](cacheSize),
		logger:   logger.WithComponent(log.ComponentReports),
	}
}

// Overview returns today's and the current month's totals.
func (r *Reports) Overview(now time.Time) core.Overview {
	return cached(r, "overview", core.Today(now), func(all []core.Expense) core.Overview {
		return core.NewOverview(all, now)
	}, func(o core.Overview) core.Overview { return o })
}

// Day returns the report for an ISO date.
func (r *Reports) Day(date string) core.DayReport {
	return cached(r, "day", date, func(all []core.Expense) core.DayReport {
		return core.NewDayReport(all, date)
	}, func(d core.DayReport) core.DayReport {
		d.Expenses = slices.Clone(d.Expenses)
		d.ByCategory = slices.Clone(d.ByCategory)
		return d
	})
}

// Month returns the report for a YYYY-MM month.
func (r *Reports) Month(yearMonth string) core.MonthReport {
	return cached(r, "month", yearMonth, func(all []core.Expense) core.MonthReport {
		return core.NewMonthReport(all, yearMonth)
	}, func(m core.MonthReport) core.MonthReport {
		m.Expenses = slices.Clone(m.Expenses)
		m.ByCategory = slices.Clone(m.ByCategory)
		return m
	})
}

// Top returns the n largest expenses of a month.
func (r *Reports) Top(yearMonth string, n int) []core.Expense {
	arg := fmt.Sprintf("%s|%d", yearMonth, n)
	return cached(r, "top", arg, func(all []core.Expense) []core.Expense {
		return core.TopN(all, yearMonth, n)
	}, func(top []core.Expense) []core.Expense { return slices.Clone(top) })
}

// cached serves a hit without copying the collection; a miss snapshots it
// and stores the result under the snapshot's revision.
func cached[T any](r *Reports, kind, arg string, compute func([]core.Expense) T, clone func(T) T) T {
	if v, ok := r.cache.Get(cacheKey(r.expenses.Revision(), kind, arg)); ok {
		if typed, ok := v.(T); ok {
			return clone(typed)
		}
	}

	all, rev := r.expenses.Snapshot()
	result := compute(all)
	r.cache.Set(cacheKey(rev, kind, arg), result)
	r.logger.Debug("Computed report", "kind", kind, "arg", arg, log.FieldRevision, rev)
	return clone(result)
}

func cacheKey(rev uint64, kind, arg string) string {
	return fmt.Sprintf("%d|%s|%s", rev, kind, arg)
}
