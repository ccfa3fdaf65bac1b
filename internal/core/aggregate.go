package core

import (
	"slices"
	"strings"
)

// DefaultTopN is the size of the top-expenses chart.
const DefaultTopN = 5

// Criteria narrows Filter. Empty fields match everything.
type Criteria struct {
	Date     string
	Category Category
}

// IsZero reports whether no constraint is set.
func (c Criteria) IsZero() bool {
	return c.Date == "" && c.Category == ""
}

// Sum adds up the amounts of expenses.
func Sum(expenses []Expense) Money {
	var total Money
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// ForDate returns the expenses dated exactly date, in input order.
func ForDate(expenses []Expense, date string) []Expense {
	out := make([]Expense, 0)
	for _, e := range expenses {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// ForMonth returns the expenses whose date starts with yearMonth, in input order.
func ForMonth(expenses []Expense, yearMonth string) []Expense {
	out := make([]Expense, 0)
	for _, e := range expenses {
		if strings.HasPrefix(e.Date, yearMonth) {
			out = append(out, e)
		}
	}
	return out
}

// TotalForDate sums the amounts of expenses dated exactly date.
func TotalForDate(expenses []Expense, date string) Money {
	return Sum(ForDate(expenses, date))
}

// TotalForMonth sums the amounts of expenses whose date starts with yearMonth.
func TotalForMonth(expenses []Expense, yearMonth string) Money {
	return Sum(ForMonth(expenses, yearMonth))
}

// Filter returns the expenses matching every non-empty constraint, most
// recent date first. Equal dates keep their input order.
func Filter(expenses []Expense, c Criteria) []Expense {
	out := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if c.Date != "" && e.Date != c.Date {
			continue
		}
		if c.Category != "" && e.Category != c.Category {
			continue
		}
		out = append(out, e)
	}
	// ISO dates order lexically.
	slices.SortStableFunc(out, func(a, b Expense) int {
		return strings.Compare(b.Date, a.Date)
	})
	return out
}

// CategoryTotals sums amounts per stored category value. Categories absent
// from the input are absent from the result.
func CategoryTotals(expenses []Expense) map[Category]Money {
	totals := make(map[Category]Money)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// OrderedCategoryTotals returns the same sums as CategoryTotals in the order
// each category first appears.
func OrderedCategoryTotals(expenses []Expense) []CategoryAmount {
	idx := make(map[Category]int)
	out := make([]CategoryAmount, 0)
	for _, e := range expenses {
		i, ok := idx[e.Category]
		if !ok {
			i = len(out)
			idx[e.Category] = i
			out = append(out, CategoryAmount{Category: e.Category})
		}
		out[i].Amount = out[i].Amount.Add(e.Amount)
	}
	return out
}

// TopN returns up to n expenses of yearMonth by amount, largest first.
// Equal amounts keep their input order.
func TopN(expenses []Expense, yearMonth string, n int) []Expense {
	if n <= 0 {
		return []Expense{}
	}
	month := ForMonth(expenses, yearMonth)
	slices.SortStableFunc(month, func(a, b Expense) int {
		switch {
		case a.Amount.Cents > b.Amount.Cents:
			return -1
		case a.Amount.Cents < b.Amount.Cents:
			return 1
		}
		return 0
	})
	if len(month) > n {
		month = month[:n]
	}
	return month
}
