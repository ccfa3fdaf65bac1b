package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Food          Category = "food"
	Transport     Category = "transport"
	Bills         Category = "bills"
	Entertainment Category = "entertainment"
	Other         Category = "other"
)

const (
	// DateLayout is the ISO calendar date form used in storage and filters.
	DateLayout = "2006-01-02"
	// MonthLayout is the yearMonth prefix form.
	MonthLayout = "2006-01"
)

type (
	// Category is the closed classification tag of an expense. Values read
	// from storage are kept verbatim even when they fall outside the set.
	Category string

	// Expense is one logged spending event. Immutable once created.
	Expense struct {
		ID       int64    `json:"id"`
		Name     string   `json:"name"`
		Amount   Money    `json:"amount"`
		Category Category `json:"category"`
		Date     string   `json:"date"` // YYYY-MM-DD
	}

	// Draft is the user input for a new expense before an ID is assigned.
	Draft struct {
		Name     string
		Amount   Money
		Category Category
		Date     string
	}
)

var (
	ErrEmptyName       = errors.New("empty name")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidMonth    = errors.New("invalid month")
)

// Categories lists the enumeration in display order.
var Categories = []Category{Food, Transport, Bills, Entertainment, Other}

var categoryLabels = map[Category]string{
	Food:          "Food",
	Transport:     "Transport",
	Bills:         "Bills",
	Entertainment: "Entertainment",
	Other:         "Other",
}

// ParseCategory validates user input against the enumeration.
// Empty input yields the form default, food.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Food, nil
	}
	c := Category(s)
	if !c.Valid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// Valid reports whether c is one of the five known values.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Normalized maps unknown values to Other for label and color lookups.
func (c Category) Normalized() Category {
	if c.Valid() {
		return c
	}
	return Other
}

// Label returns the display name ("Food", "Bills", ...).
func (c Category) Label() string {
	return categoryLabels[c.Normalized()]
}

func (c Category) String() string {
	return string(c)
}

// Validate applies the add-form rules: a non-empty name and a non-negative amount.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}
	if err := d.Amount.Validate(); err != nil {
		return err
	}
	return nil
}

// ParseDate checks an ISO calendar date and returns it unchanged.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", ErrInvalidDate
	}
	return s, nil
}

// ParseYearMonth checks a YYYY-MM month selector and returns it unchanged.
func ParseYearMonth(s string) (string, error) {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(MonthLayout, s); err != nil {
		return "", ErrInvalidMonth
	}
	return s, nil
}

// Today returns now as an ISO date.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// CurrentMonth returns now as a yearMonth prefix.
func CurrentMonth(now time.Time) string {
	return now.Format(MonthLayout)
}

// DaysInMonth returns the number of calendar days of a YYYY-MM month, or 0 if
// the selector is malformed.
func DaysInMonth(yearMonth string) int {
	t, err := time.Parse(MonthLayout, yearMonth)
	if err != nil {
		return 0
	}
	return t.AddDate(0, 1, -1).Day()
}
