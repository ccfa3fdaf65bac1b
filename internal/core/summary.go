package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryAmount represents an amount aggregated by category.
type CategoryAmount struct {
	Category Category
	Amount   Money
}

// DayReport summarises one calendar date.
type DayReport struct {
	Date       string
	Expenses   []Expense
	Total      Money
	ByCategory []CategoryAmount
}

// MonthReport summarises one yearMonth.
type MonthReport struct {
	Month        string
	Expenses     []Expense
	Total        Money
	ByCategory   []CategoryAmount
	DailyAverage Money
}

// Overview holds the two headline totals.
type Overview struct {
	Today        string
	Month        string
	TodayTotal   Money
	MonthlyTotal Money
}

// Count returns the number of expenses in the report.
func (r DayReport) Count() int { return len(r.Expenses) }

// Count returns the number of expenses in the report.
func (r MonthReport) Count() int { return len(r.Expenses) }

// Share returns the percentage of the month total spent in c.
func (r MonthReport) Share(c CategoryAmount) decimal.Decimal {
	return c.Amount.Percent(r.Total)
}

// NewDayReport builds the daily report for date.
func NewDayReport(expenses []Expense, date string) DayReport {
	day := ForDate(expenses, date)
	return DayReport{
		Date:       date,
		Expenses:   day,
		Total:      Sum(day),
		ByCategory: OrderedCategoryTotals(day),
	}
}

// NewMonthReport builds the monthly report for yearMonth. DailyAverage
// spreads the total over every day of the month, rounded to cents.
func NewMonthReport(expenses []Expense, yearMonth string) MonthReport {
	month := ForMonth(expenses, yearMonth)
	r := MonthReport{
		Month:      yearMonth,
		Expenses:   month,
		Total:      Sum(month),
		ByCategory: OrderedCategoryTotals(month),
	}
	if days := DaysInMonth(yearMonth); days > 0 {
		avg := r.Total.Decimal().Div(decimal.NewFromInt(int64(days)))
		r.DailyAverage, _ = FromDecimal(avg)
	}
	return r
}

// NewOverview computes today's total and the current month's total.
func NewOverview(expenses []Expense, now time.Time) Overview {
	today, month := Today(now), CurrentMonth(now)
	return Overview{
		Today:        today,
		Month:        month,
		TodayTotal:   TotalForDate(expenses, today),
		MonthlyTotal: TotalForMonth(expenses, month),
	}
}
