package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"spendlog/internal/core"
)

const (
	barGlyph      = "█"
	maxLabelWidth = 24
	minBarWidth   = 10
)

// Bar is one row of a histogram.
type Bar struct {
	Label string
	Value core.Money
}

// ExpenseBars turns expenses into bars labelled by name.
func ExpenseBars(expenses []core.Expense) []Bar {
	bars := make([]Bar, len(expenses))
	for i, e := range expenses {
		bars[i] = Bar{Label: e.Name, Value: e.Amount}
	}
	return bars
}

// Histogram draws horizontal bars scaled so the largest value spans width
// cells. Colors cycle through the bar palette in input order.
func Histogram(title string, bars []Bar, width int) string {
	if width < minBarWidth {
		width = minBarWidth
	}

	var b strings.Builder
	if title != "" {
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n")
	}
	if len(bars) == 0 {
		b.WriteString(emptyStyle.Render("Nothing to chart."))
		return b.String()
	}

	var maxCents int64
	labelW := 0
	for _, bar := range bars {
		maxCents = max(maxCents, bar.Value.Cents)
		labelW = max(labelW, lipgloss.Width(truncate(bar.Label, maxLabelWidth)))
	}

	for i, bar := range bars {
		color := barColors[i%len(barColors)]
		cells := barCells(bar.Value.Cents, maxCents, width)
		line := fmt.Sprintf("%s │%s %s",
			padRight(truncate(bar.Label, maxLabelWidth), labelW),
			lipgloss.NewStyle().Foreground(color).Render(strings.Repeat(barGlyph, cells)),
			bar.Value,
		)
		b.WriteString(line)
		if i < len(bars)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// barCells scales value against maxValue. Any positive value gets at least
// one cell.
func barCells(value, maxValue int64, width int) int {
	if value <= 0 || maxValue <= 0 {
		return 0
	}
	cells := int(math.Round(float64(value) / float64(maxValue) * float64(width)))
	return max(cells, 1)
}

// TopChart renders the top expenses of a month: header, total, histogram
// and a ranked detail list.
func TopChart(yearMonth string, top []core.Expense, monthTotal core.Money, n, width int) string {
	month := MonthName(yearMonth)
	title := fmt.Sprintf("Top %d Expenses - %s", n, month)
	if len(top) == 0 {
		return titleStyle.Render(title) + "\n" + emptyStyle.Render("No expenses for "+month+".")
	}

	var b strings.Builder
	b.WriteString(Histogram(title, ExpenseBars(top), width))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Showing top %d expenses for %s", n, month)))
	b.WriteString("\n")
	b.WriteString(totalStyle.Render("Total: " + monthTotal.String()))
	b.WriteString("\n\n")
	b.WriteString(headingStyle.Render("Expense Details:"))
	for i, e := range top {
		fmt.Fprintf(&b, "\n#%d %s %s %s", i+1, e.Name, mutedStyle.Render(e.Date), amountStyle.Render(e.Amount.String()))
	}
	return b.String()
}
