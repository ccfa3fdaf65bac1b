package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"spendlog/internal/core"
)

// ExpenseList renders the expenses matching c, most recent first, followed
// by a count and total.
func ExpenseList(expenses []core.Expense, c core.Criteria) string {
	rows := core.Filter(expenses, c)
	if len(rows) == 0 {
		if c.IsZero() {
			return emptyStyle.Render("No expenses yet. Add your first expense!")
		}
		return emptyStyle.Render("No expenses match your filters.")
	}

	idW, nameW, badgeW, dateW, amountW := 0, 0, 0, 0, 0
	for _, e := range rows {
		idW = max(idW, len(strconv.FormatInt(e.ID, 10)))
		nameW = max(nameW, lipgloss.Width(truncate(e.Name, maxLabelWidth)))
		badgeW = max(badgeW, lipgloss.Width(badge(e.Category)))
		dateW = max(dateW, len(ShortDate(e.Date)))
		amountW = max(amountW, lipgloss.Width(e.Amount.String()))
	}

	var b strings.Builder
	for _, e := range rows {
		b.WriteString(strings.Join([]string{
			mutedStyle.Render(padLeft(strconv.FormatInt(e.ID, 10), idW)),
			padRight(truncate(e.Name, maxLabelWidth), nameW),
			padRight(badge(e.Category), badgeW),
			padRight(ShortDate(e.Date), dateW),
			amountStyle.Render(padLeft(e.Amount.String(), amountW)),
		}, "  "))
		b.WriteString("\n")
	}

	summary := "Showing " + plural(len(rows), "expense")
	if c.Date != "" {
		summary += " for " + ShortDate(c.Date)
	}
	if c.Category != "" {
		summary += " in " + c.Category.Label()
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(summary))
	b.WriteString("\n")
	b.WriteString(totalStyle.Render("Total: " + core.Sum(rows).String()))
	return b.String()
}

// DayReport renders the report for one date.
func DayReport(r core.DayReport) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Report for " + LongDate(r.Date)))
	b.WriteString("\n")
	if r.Count() == 0 {
		b.WriteString(emptyStyle.Render("No expenses for this date."))
		return b.String()
	}

	writeTotals(&b, r.Total, r.Count())
	b.WriteString("\n")
	writeCategories(&b, r.ByCategory, nil)
	b.WriteString("\n\n")
	b.WriteString(headingStyle.Render("Expenses:"))
	for _, e := range r.Expenses {
		fmt.Fprintf(&b, "\n%s %s %s", e.Name, badge(e.Category), amountStyle.Render(e.Amount.String()))
	}
	return b.String()
}

// MonthReport renders the report for one month with its top expenses.
func MonthReport(r core.MonthReport, top []core.Expense) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Report for " + MonthName(r.Month)))
	b.WriteString("\n")
	if r.Count() == 0 {
		b.WriteString(emptyStyle.Render("No expenses for this month."))
		return b.String()
	}

	writeTotals(&b, r.Total, r.Count())
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Daily average: " + r.DailyAverage.String()))
	b.WriteString("\n\n")
	writeCategories(&b, r.ByCategory, func(c core.CategoryAmount) string {
		return r.Share(c).StringFixed(1) + "%"
	})

	if len(top) > 0 {
		b.WriteString("\n\n")
		b.WriteString(headingStyle.Render(fmt.Sprintf("Top %d Expenses:", len(top))))
		for i, e := range top {
			fmt.Fprintf(&b, "\n%s %s %s %s",
				mutedStyle.Render(fmt.Sprintf("#%d", i+1)),
				e.Name, badge(e.Category),
				amountStyle.Render(e.Amount.String()))
		}
	}
	return b.String()
}

func writeTotals(b *strings.Builder, total core.Money, count int) {
	b.WriteString(totalStyle.Render("Total: " + total.String()))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(plural(count, "expense")))
}

func writeCategories(b *strings.Builder, rows []core.CategoryAmount, extra func(core.CategoryAmount) string) {
	b.WriteString(headingStyle.Render("By Category:"))
	badgeW := 0
	for _, c := range rows {
		badgeW = max(badgeW, lipgloss.Width(badge(c.Category)))
	}
	for _, c := range rows {
		line := padRight(badge(c.Category), badgeW) + "  " + amountStyle.Render(c.Amount.String())
		if extra != nil {
			line += "  " + mutedStyle.Render(extra(c))
		}
		b.WriteString("\n")
		b.WriteString(line)
	}
}

// Overview renders the two headline totals side by side.
func Overview(o core.Overview) string {
	today := boxStyle.Render(headingStyle.Render("Today's Total") + "\n" + totalStyle.Render(o.TodayTotal.String()))
	month := boxStyle.Render(headingStyle.Render("Monthly Total") + "\n" +
		lipgloss.NewStyle().Foreground(colorGreen).Bold(true).Render(o.MonthlyTotal.String()))
	return lipgloss.JoinHorizontal(lipgloss.Top, today, " ", month)
}

// BudgetSummary renders every ceiling with its label and description.
func BudgetSummary(b core.Budget) string {
	labelW, amountW := 0, 0
	for _, k := range core.BudgetKeys {
		m, _ := b.Get(k.Key)
		labelW = max(labelW, len(k.Label))
		amountW = max(amountW, lipgloss.Width(m.String()))
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Budgets"))
	for _, k := range core.BudgetKeys {
		m, _ := b.Get(k.Key)
		fmt.Fprintf(&sb, "\n%s  %s  %s",
			padRight(k.Label, labelW),
			amountStyle.Render(padLeft(m.String(), amountW)),
			mutedStyle.Render(k.Description+" ("+k.Key+")"))
	}
	return sb.String()
}
