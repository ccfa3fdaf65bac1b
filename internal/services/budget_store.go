package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"spendlog/internal/core"
	"spendlog/internal/log"
	"spendlog/internal/storage"
)

// BudgetStore owns the six budget ceilings.
type BudgetStore struct {
	mu     sync.RWMutex
	docs   storage.DocumentWriter
	logger *log.Logger
	budget core.Budget
}

// LoadBudgetStore reads the budgets document. Missing or malformed documents
// yield all-zero ceilings; a malformed value zeroes only its own ceiling.
func LoadBudgetStore(ctx context.Context, docs storage.DocumentStore, logger *log.Logger) (*BudgetStore, error) {
	if logger == nil {
		logger = log.Discard()
	}
	s := &BudgetStore{
		docs:   docs,
		logger: logger.WithComponent(log.ComponentBudget),
	}

	body, err := docs.Get(ctx, storage.KeyBudgets)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("load budgets: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		s.logger.LogWarning(ctx, "Budgets document is malformed, using zero budgets", err,
			log.OpLoad, log.ErrorTypeCorrupt,
			log.NewFields().WithKey(storage.KeyBudgets))
		return s, nil
	}
	for _, k := range core.BudgetKeys {
		raw, ok := fields[k.Key]
		if !ok {
			continue
		}
		var m core.Money
		if err := json.Unmarshal(raw, &m); err != nil {
			s.logger.LogWarning(ctx, "Skipping malformed budget value", err,
				log.OpLoad, log.ErrorTypeCorrupt,
				log.NewFields().WithKey(storage.KeyBudgets).WithBudgetKey(k.Key))
			continue
		}
		s.budget, _ = s.budget.With(k.Key, m)
	}
	return s, nil
}

// Get returns the current ceilings.
func (s *BudgetStore) Get() core.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.budget
}

// ReplaceAll overwrites every ceiling with b and saves. Invalid budgets are
// rejected without touching the store; an error wrapping ErrNotPersisted
// means the new ceilings are in memory but not saved.
func (s *BudgetStore) ReplaceAll(ctx context.Context, b core.Budget) error {
	if err := b.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.budget = b

	body, err := json.Marshal(s.budget)
	if err == nil {
		err = s.docs.Put(ctx, storage.KeyBudgets, body)
	}
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrNotPersisted, err)
		s.logger.LogWarning(ctx, "Budgets replaced but not saved", err, log.OpReplace, log.ErrorTypeStorage,
			log.NewFields().WithKey(storage.KeyBudgets))
		return err
	}

	s.logger.InfoContext(ctx, "Budgets replaced", log.FieldKey, storage.KeyBudgets)
	return nil
}
