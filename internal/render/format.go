package render

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"spendlog/internal/core"
)

const (
	shortDateLayout = "Mon, Jan 2, 2006"
	longDateLayout  = "Monday, January 2, 2006"
	monthLayout     = "January 2006"
)

// ShortDate formats an ISO date as "Fri, Mar 1, 2024". Unparseable input is
// returned unchanged.
func ShortDate(date string) string {
	return reformat(date, core.DateLayout, shortDateLayout)
}

// LongDate formats an ISO date as "Friday, March 1, 2024".
func LongDate(date string) string {
	return reformat(date, core.DateLayout, longDateLayout)
}

// MonthName formats a YYYY-MM month as "March 2024".
func MonthName(yearMonth string) string {
	return reformat(yearMonth, core.MonthLayout, monthLayout)
}

func reformat(s, from, to string) string {
	t, err := time.Parse(from, s)
	if err != nil {
		return s
	}
	return t.Format(to)
}

// categoryName capitalizes the stored value, keeping unknown values visible.
func categoryName(c core.Category) string {
	s := c.String()
	if s == "" {
		return core.Other.Label()
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// badge renders a category tag colored by its normalized category.
func badge(c core.Category) string {
	color := categoryColors[c.Normalized().String()]
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render("[" + categoryName(c) + "]")
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// truncate shortens s to at most width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func padLeft(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}
