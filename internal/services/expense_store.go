package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"spendlog/internal/core"
	"spendlog/internal/log"
	"spendlog/internal/storage"
)

var errNullRecord = errors.New("null record")

// Option configures an ExpenseStore.
type Option func(*ExpenseStore)

// WithClock overrides the time source used for ids and default dates.
func WithClock(now func() time.Time) Option {
	return func(s *ExpenseStore) {
		if now != nil {
			s.now = now
		}
	}
}

// ExpenseStore owns the expense collection and persists it as one document.
type ExpenseStore struct {
	mu       sync.RWMutex
	docs     storage.DocumentWriter
	logger   *log.Logger
	now      func() time.Time
	expenses []core.Expense
	lastID   int64
	revision uint64
}

// LoadExpenseStore reads the expenses document. A missing document yields an
// empty store; an unreadable one is logged and also yields an empty store.
// Records that fail to decode are logged and skipped.
func LoadExpenseStore(ctx context.Context, docs storage.DocumentStore, logger *log.Logger, opts ...Option) (*ExpenseStore, error) {
	if logger == nil {
		logger = log.Discard()
	}
	s := &ExpenseStore{
		docs:     docs,
		logger:   logger.WithComponent(log.ComponentExpense),
		now:      time.Now,
		expenses: make([]core.Expense, 0),
	}
	for _, opt := range opts {
		opt(s)
	}

	body, err := docs.Get(ctx, storage.KeyExpenses)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("load expenses: %w", err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err != nil {
		s.logger.LogWarning(ctx, "Expenses document is malformed, starting empty", err,
			log.OpLoad, log.ErrorTypeCorrupt,
			log.NewFields().WithKey(storage.KeyExpenses))
		return s, nil
	}
	for i, raw := range records {
		var e core.Expense
		err := json.Unmarshal(raw, &e)
		if err == nil && string(bytes.TrimSpace(raw)) == "null" {
			err = errNullRecord
		}
		if err != nil {
			s.logger.LogWarning(ctx, "Skipping malformed expense record", err,
				log.OpLoad, log.ErrorTypeCorrupt,
				log.NewFields().WithKey(storage.KeyExpenses).WithIndex(i))
			continue
		}
		s.expenses = append(s.expenses, e)
	}
	for _, e := range s.expenses {
		s.lastID = max(s.lastID, e.ID)
	}

	s.logger.DebugContext(ctx, "Loaded expenses", log.FieldCount, len(s.expenses))
	return s, nil
}

// Add validates the draft, appends a new expense and saves the collection.
// An empty category defaults to food and an empty date to today.
//
// A validation error leaves the store untouched. An error wrapping
// ErrNotPersisted means the expense was added in memory but not saved.
func (s *ExpenseStore) Add(ctx context.Context, d core.Draft) (core.Expense, error) {
	e, err := s.prepare(d)
	if err != nil {
		return core.Expense{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.nextID()
	s.expenses = append(s.expenses, e)
	s.revision++

	fields := log.NewFields().WithExpense(e.ID, e.Name, e.Amount.Cents, e.Category.String(), e.Date)
	if err := s.save(ctx); err != nil {
		s.logger.LogWarning(ctx, "Expense added but not saved", err, log.OpCreate, log.ErrorTypeStorage, fields)
		return e, err
	}

	s.logger.InfoContext(ctx, "Expense added", fields.ToSlice()...)
	return e, nil
}

// Delete removes the expense with id. It reports false, and does not save,
// when no such expense exists.
func (s *ExpenseStore) Delete(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.expenses, func(e core.Expense) bool { return e.ID == id })
	if i < 0 {
		return false, nil
	}
	s.expenses = slices.Delete(s.expenses, i, i+1)
	s.revision++

	if err := s.save(ctx); err != nil {
		s.logger.LogWarning(ctx, "Expense deleted but not saved", err, log.OpDelete, log.ErrorTypeStorage,
			log.NewFields().WithKey(storage.KeyExpenses))
		return true, err
	}

	s.logger.InfoContext(ctx, "Expense deleted", log.FieldExpenseID, id)
	return true, nil
}

// List returns a copy of the collection in insertion order.
func (s *ExpenseStore) List() []core.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.expenses)
}

// Revision increments on every change to the collection.
func (s *ExpenseStore) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Snapshot returns the collection together with its revision.
func (s *ExpenseStore) Snapshot() ([]core.Expense, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.expenses), s.revision
}

func (s *ExpenseStore) prepare(d core.Draft) (core.Expense, error) {
	if err := d.Validate(); err != nil {
		return core.Expense{}, err
	}

	category := d.Category
	if category == "" {
		category = core.Food
	}
	if !category.Valid() {
		return core.Expense{}, core.ErrInvalidCategory
	}

	date := d.Date
	if date == "" {
		date = core.Today(s.now())
	}
	date, err := core.ParseDate(date)
	if err != nil {
		return core.Expense{}, err
	}

	return core.Expense{
		Name:     strings.TrimSpace(d.Name),
		Amount:   d.Amount,
		Category: category,
		Date:     date,
	}, nil
}

// nextID uses the clock in milliseconds and steps past the last issued id
// when the clock has not advanced. Caller holds mu.
func (s *ExpenseStore) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// save writes the whole collection. Caller holds mu.
func (s *ExpenseStore) save(ctx context.Context) error {
	body, err := json.Marshal(s.expenses)
	if err != nil {
		return fmt.Errorf("%w: encode expenses: %w", ErrNotPersisted, err)
	}
	if err := s.docs.Put(ctx, storage.KeyExpenses, body); err != nil {
		return fmt.Errorf("%w: %w", ErrNotPersisted, err)
	}
	return nil
}
