package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"spendlog/internal/core"
	"spendlog/internal/storage"
	"spendlog/internal/storage/memory"
)

var errBackendDown = errors.New("backend down")

// flakyDocs wraps a memory store and fails writes while failPut is set.
type flakyDocs struct {
	*memory.Store
	failPut bool
	failGet bool
	puts    int
}

func newFlakyDocs() *flakyDocs {
	return &flakyDocs{Store: memory.New()}
}

func (f *flakyDocs) Get(ctx context.Context, key string) ([]byte, error) {
	if f.failGet {
		return nil, errBackendDown
	}
	return f.Store.Get(ctx, key)
}

func (f *flakyDocs) Put(ctx context.Context, key string, body []byte) error {
	f.puts++
	if f.failPut {
		return errBackendDown
	}
	return f.Store.Put(ctx, key, body)
}

var _ storage.DocumentStore = (*flakyDocs)(nil)

// fixedClock always returns the same instant.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func mustAmount(t *testing.T, s string) core.Money {
	t.Helper()
	m, err := core.ParseAmount(s)
	if err != nil {
		t.Fatalf("parse amount %q: %v", s, err)
	}
	return m
}

func mustLoadExpenses(t *testing.T, docs storage.DocumentStore, opts ...Option) *ExpenseStore {
	t.Helper()
	s, err := LoadExpenseStore(context.Background(), docs, nil, opts...)
	if err != nil {
		t.Fatalf("load expenses: %v", err)
	}
	return s
}
