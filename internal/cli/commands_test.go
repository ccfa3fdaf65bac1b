package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"spendlog/internal/config"
	"spendlog/internal/storage"
	"spendlog/internal/storage/memory"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

var testNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type harness struct {
	docs   storage.DocumentStore
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func testConfig() *config.Config {
	return &config.Config{
		DataBackend:     config.BackendMemory,
		LogLevel:        "info",
		LogFormat:       "text",
		TopN:            5,
		ReportCacheSize: 8,
		HistogramWidth:  20,
	}
}

func newHarness() *harness {
	return &harness{docs: memory.New()}
}

// run loads a fresh App over the harness store, as each process invocation does.
func (h *harness) run(t *testing.T, args ...string) int {
	t.Helper()
	h.stdout.Reset()
	h.stderr.Reset()
	app, err := NewApp(context.Background(), testConfig(), h.docs, nil,
		WithOutput(&h.stdout, &h.stderr),
		WithClock(func() time.Time { return testNow }))
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return app.Run(context.Background(), args)
}

func (h *harness) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	if code := h.run(t, args...); code != ExitOK {
		t.Fatalf("%v: exit %d, stderr: %s", args, code, h.stderr.String())
	}
	return h.stdout.String()
}

func assertContains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(got, w) {
			t.Fatalf("output missing %q:\n%s", w, got)
		}
	}
}

func TestRun_Usage(t *testing.T) {
	h := newHarness()
	tests := []struct {
		args []string
		want int
	}{
		{nil, ExitUsage},
		{[]string{"frobnicate"}, ExitUsage},
		{[]string{"help"}, ExitOK},
		{[]string{"delete"}, ExitUsage},
		{[]string{"delete", "abc"}, ExitUsage},
		{[]string{"report"}, ExitUsage},
		{[]string{"report", "year"}, ExitUsage},
		{[]string{"list", "-bogus"}, ExitUsage},
		{[]string{"list", "extra"}, ExitUsage},
		{[]string{"top", "-n", "0"}, ExitUsage},
		{[]string{"budget"}, ExitUsage},
		{[]string{"budget", "set"}, ExitUsage},
		{[]string{"budget", "set", "monthly"}, ExitUsage},
	}
	for _, tt := range tests {
		if got := h.run(t, tt.args...); got != tt.want {
			t.Errorf("%v: exit %d, want %d (stderr: %s)", tt.args, got, tt.want, h.stderr.String())
		}
	}
}

func TestRun_AddListDelete(t *testing.T) {
	h := newHarness()

	out := h.mustRun(t, "add", "-name", "Coffee", "-amount", "4,50")
	assertContains(t, out, "Added expense", "Coffee €4.50 (Food) on Fri, Mar 1, 2024")

	h.mustRun(t, "add", "-name", "Rent", "-amount", "500", "-category", "bills")
	h.mustRun(t, "add", "-name", "Cinema", "-amount", "15.6", "-category", "entertainment", "-date", "2024-03-02")

	out = h.mustRun(t, "list")
	assertContains(t, out, "Showing 3 expenses", "Total: €520.10")

	out = h.mustRun(t, "list", "-category", "bills")
	assertContains(t, out, "Rent", "Showing 1 expense in Bills")

	out = h.mustRun(t, "list", "-date", "2024-01-01")
	assertContains(t, out, "No expenses match your filters.")

	// The first add takes the clock value as its id.
	coffeeID := strconv.FormatInt(testNow.UnixMilli(), 10)
	out = h.mustRun(t, "delete", coffeeID)
	assertContains(t, out, "Deleted expense "+coffeeID)

	out = h.mustRun(t, "list")
	assertContains(t, out, "Showing 2 expenses")
	if strings.Contains(out, "Coffee") {
		t.Fatalf("deleted expense still listed:\n%s", out)
	}

	if code := h.run(t, "delete", coffeeID); code != ExitError {
		t.Fatalf("deleting twice: exit %d, want %d", code, ExitError)
	}
}

func TestRun_AddValidation(t *testing.T) {
	h := newHarness()
	for _, args := range [][]string{
		{"add", "-amount", "3"},
		{"add", "-name", "x", "-amount", "abc"},
		{"add", "-name", "x", "-amount", "-3"},
		{"add", "-name", "x", "-amount", "3", "-category", "travel"},
		{"add", "-name", "x", "-amount", "3", "-date", "01/03/2024"},
	} {
		if code := h.run(t, args...); code != ExitError {
			t.Fatalf("%v: exit %d, want %d", args, code, ExitError)
		}
		if !strings.HasPrefix(h.stderr.String(), "error:") {
			t.Fatalf("%v: stderr = %q", args, h.stderr.String())
		}
	}

	if _, err := h.docs.Get(context.Background(), storage.KeyExpenses); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("rejected adds wrote a document: %v", err)
	}
}

func TestRun_Reports(t *testing.T) {
	h := newHarness()
	h.mustRun(t, "add", "-name", "Coffee", "-amount", "4.5")
	h.mustRun(t, "add", "-name", "Rent", "-amount", "500", "-category", "bills")
	h.mustRun(t, "add", "-name", "Cinema", "-amount", "15.60", "-category", "entertainment", "-date", "2024-03-02")

	out := h.mustRun(t, "report", "day")
	assertContains(t, out, "Report for Friday, March 1, 2024", "Total: €504.50", "2 expenses")

	out = h.mustRun(t, "report", "month", "-month", "2024-03")
	assertContains(t, out, "Report for March 2024", "Total: €520.10", "Daily average: €16.78", "96.1%")

	out = h.mustRun(t, "top", "-n", "2")
	assertContains(t, out, "Top 2 Expenses - March 2024", "#1 Rent", "#2 Cinema")

	out = h.mustRun(t, "summary")
	assertContains(t, out, "Today's Total", "€504.50", "Monthly Total", "€520.10")

	if code := h.run(t, "report", "month", "-month", "2024-13"); code != ExitError {
		t.Fatalf("bad month: exit %d", code)
	}
}

func TestRun_Budget(t *testing.T) {
	h := newHarness()

	out := h.mustRun(t, "budget", "show")
	assertContains(t, out, "Monthly Budget", "€0.00")

	out = h.mustRun(t, "budget", "set", "monthly=1500", "food=300.5")
	assertContains(t, out, "€1500.00", "€300.50")

	h.mustRun(t, "budget", "set", "bills=800")
	out = h.mustRun(t, "budget", "show")
	assertContains(t, out, "€1500.00", "€300.50", "€800.00")

	if code := h.run(t, "budget", "set", "rent=100"); code != ExitError {
		t.Fatalf("unknown key: exit %d", code)
	}
	if code := h.run(t, "budget", "set", "food=-1"); code != ExitError {
		t.Fatalf("negative amount: exit %d", code)
	}
}

func TestRun_PersistenceFailureWarns(t *testing.T) {
	h := &harness{docs: failingDocs{memory.New()}}

	if code := h.run(t, "add", "-name", "Coffee", "-amount", "4.50"); code != ExitError {
		t.Fatalf("exit %d, want %d", code, ExitError)
	}
	assertContains(t, h.stdout.String(), "Added expense")
	assertContains(t, h.stderr.String(), "warning:", "change not persisted")
}

type failingDocs struct {
	*memory.Store
}

func (failingDocs) Put(context.Context, string, []byte) error {
	return errors.New("read-only filesystem")
}
