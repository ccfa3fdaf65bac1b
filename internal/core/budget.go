package core

import (
	"errors"
	"fmt"
)

// BudgetMonthly is the overall monthly ceiling key; the other keys are the
// category values.
const BudgetMonthly = "monthly"

var ErrUnknownBudgetKey = errors.New("unknown budget key")

// Budget holds the six spending ceilings. Stored and displayed, never
// compared against actual spend.
type Budget struct {
	Monthly       Money `json:"monthly"`
	Food          Money `json:"food"`
	Transport     Money `json:"transport"`
	Bills         Money `json:"bills"`
	Entertainment Money `json:"entertainment"`
	Other         Money `json:"other"`
}

// BudgetKey describes one editable ceiling.
type BudgetKey struct {
	Key         string
	Label       string
	Description string
}

// BudgetKeys lists the ceilings in editor order.
var BudgetKeys = []BudgetKey{
	{BudgetMonthly, "Monthly Budget", "Total budget for the entire month"},
	{string(Food), "Food Budget", "Budget for groceries, restaurants, etc."},
	{string(Transport), "Transport Budget", "Budget for gas, public transport, etc."},
	{string(Bills), "Bills Budget", "Budget for utilities, rent, etc."},
	{string(Entertainment), "Entertainment Budget", "Budget for movies, games, etc."},
	{string(Other), "Other Budget", "Budget for miscellaneous expenses"},
}

// Get returns the ceiling stored under key.
func (b Budget) Get(key string) (Money, error) {
	p, err := b.field(key)
	if err != nil {
		return Money{}, err
	}
	return *p, nil
}

// With returns a copy of b with key set to amount. Used to stage editor
// changes before a full replace.
func (b Budget) With(key string, amount Money) (Budget, error) {
	if err := amount.Validate(); err != nil {
		return b, err
	}
	p, err := b.field(key)
	if err != nil {
		return b, err
	}
	*p = amount
	return b, nil
}

// Validate rejects negative ceilings.
func (b Budget) Validate() error {
	for _, k := range BudgetKeys {
		m, _ := b.Get(k.Key)
		if err := m.Validate(); err != nil {
			return fmt.Errorf("%s: %w", k.Key, err)
		}
	}
	return nil
}

// field returns a pointer into the receiver copy.
func (b *Budget) field(key string) (*Money, error) {
	switch key {
	case BudgetMonthly:
		return &b.Monthly, nil
	case string(Food):
		return &b.Food, nil
	case string(Transport):
		return &b.Transport, nil
	case string(Bills):
		return &b.Bills, nil
	case string(Entertainment):
		return &b.Entertainment, nil
	case string(Other):
		return &b.Other, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBudgetKey, key)
}
