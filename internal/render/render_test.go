package render

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"spendlog/internal/core"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func sample() []core.Expense {
	return []core.Expense{
		{ID: 1, Name: "Coffee", Amount: core.Money{Cents: 450}, Category: core.Food, Date: "2024-03-01"},
		{ID: 2, Name: "Rent", Amount: core.Money{Cents: 50000}, Category: core.Bills, Date: "2024-03-01"},
		{ID: 3, Name: "Cinema", Amount: core.Money{Cents: 1560}, Category: core.Entertainment, Date: "2024-03-02"},
		{ID: 4, Name: "Gift", Amount: core.Money{Cents: 1200}, Category: "gifts", Date: "2024-02-10"},
	}
}

func assertContains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(got, w) {
			t.Fatalf("output missing %q:\n%s", w, got)
		}
	}
}

func TestDateFormats(t *testing.T) {
	tests := []struct {
		fn   func(string) string
		in   string
		want string
	}{
		{ShortDate, "2024-03-01", "Fri, Mar 1, 2024"},
		{LongDate, "2024-03-01", "Friday, March 1, 2024"},
		{MonthName, "2024-03", "March 2024"},
		{ShortDate, "garbage", "garbage"},
	}
	for _, tt := range tests {
		if got := tt.fn(tt.in); got != tt.want {
			t.Errorf("format(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExpenseList(t *testing.T) {
	t.Run("empty collection", func(t *testing.T) {
		assertContains(t, ExpenseList(nil, core.Criteria{}), "No expenses yet. Add your first expense!")
	})

	t.Run("no match", func(t *testing.T) {
		got := ExpenseList(sample(), core.Criteria{Category: core.Transport})
		assertContains(t, got, "No expenses match your filters.")
	})

	t.Run("filtered", func(t *testing.T) {
		got := ExpenseList(sample(), core.Criteria{Date: "2024-03-01", Category: core.Bills})
		assertContains(t, got, "Rent", "[Bills]", "Fri, Mar 1, 2024", "€500.00",
			"Showing 1 expense for Fri, Mar 1, 2024 in Bills", "Total: €500.00")
		if strings.Contains(got, "Coffee") {
			t.Fatalf("filter leaked other rows:\n%s", got)
		}
	})

	t.Run("all rows newest first", func(t *testing.T) {
		got := ExpenseList(sample(), core.Criteria{})
		assertContains(t, got, "Showing 4 expenses", "Total: €532.10", "[Gifts]")
		if strings.Index(got, "Cinema") > strings.Index(got, "Coffee") {
			t.Fatalf("expected most recent date first:\n%s", got)
		}
		if strings.Index(got, "Coffee") > strings.Index(got, "Rent") {
			t.Fatalf("expected input order within a date:\n%s", got)
		}
	})
}

func TestDayReport(t *testing.T) {
	got := DayReport(core.NewDayReport(sample(), "2024-03-01"))
	assertContains(t, got, "Report for Friday, March 1, 2024", "Total: €504.50", "2 expenses",
		"By Category:", "[Food]", "€4.50", "[Bills]", "€500.00")

	empty := DayReport(core.NewDayReport(sample(), "2024-01-01"))
	assertContains(t, empty, "No expenses for this date.")
}

func TestMonthReport(t *testing.T) {
	all := sample()
	got := MonthReport(core.NewMonthReport(all, "2024-03"), core.TopN(all, "2024-03", 5))
	assertContains(t, got, "Report for March 2024", "Total: €520.10", "3 expenses",
		"Daily average: €16.78", "96.1%", "Top 3 Expenses:", "#1 Rent")

	empty := MonthReport(core.NewMonthReport(all, "2023-01"), nil)
	assertContains(t, empty, "No expenses for this month.")
}

func TestOverview(t *testing.T) {
	got := Overview(core.Overview{TodayTotal: core.Money{Cents: 450}, MonthlyTotal: core.Money{Cents: 52010}})
	assertContains(t, got, "Today's Total", "€4.50", "Monthly Total", "€520.10")
}

func TestBudgetSummary(t *testing.T) {
	got := BudgetSummary(core.Budget{Monthly: core.Money{Cents: 150000}})
	assertContains(t, got, "Monthly Budget", "€1500.00", "Other Budget", "€0.00",
		"Budget for utilities, rent, etc.")
}

func TestHistogram(t *testing.T) {
	bars := []Bar{
		{Label: "Rent", Value: core.Money{Cents: 50000}},
		{Label: "Cinema", Value: core.Money{Cents: 25000}},
		{Label: "Gum", Value: core.Money{Cents: 1}},
	}
	got := Histogram("Top", bars, 20)
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected title plus 3 rows, got %d:\n%s", len(lines), got)
	}
	if n := strings.Count(lines[1], barGlyph); n != 20 {
		t.Fatalf("largest bar = %d cells, want 20", n)
	}
	if n := strings.Count(lines[2], barGlyph); n != 10 {
		t.Fatalf("half bar = %d cells, want 10", n)
	}
	if n := strings.Count(lines[3], barGlyph); n != 1 {
		t.Fatalf("tiny bar = %d cells, want 1", n)
	}
	assertContains(t, lines[1], "Rent", "€500.00")

	assertContains(t, Histogram("", nil, 40), "Nothing to chart.")
}

func TestBarCells(t *testing.T) {
	tests := []struct {
		value, max int64
		width      int
		want       int
	}{
		{0, 100, 40, 0},
		{100, 0, 40, 0},
		{100, 100, 40, 40},
		{50, 100, 40, 20},
		{1, 1000000, 40, 1},
	}
	for _, tt := range tests {
		if got := barCells(tt.value, tt.max, tt.width); got != tt.want {
			t.Errorf("barCells(%d, %d, %d) = %d, want %d", tt.value, tt.max, tt.width, got, tt.want)
		}
	}
}

func TestTopChart(t *testing.T) {
	all := sample()
	top := core.TopN(all, "2024-03", 5)
	got := TopChart("2024-03", top, core.TotalForMonth(all, "2024-03"), 5, 30)
	assertContains(t, got, "Top 5 Expenses - March 2024", "Showing top 5 expenses for March 2024",
		"Total: €520.10", "Expense Details:", "#1 Rent 2024-03-01")

	assertContains(t, TopChart("2023-05", nil, core.Money{}, 5, 30), "No expenses for May 2023.")
}
