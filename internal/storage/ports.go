// Package storage defines the document persistence port. Each logical store
// is saved as one whole JSON document under a fixed key and rewritten in full
// on every change.
package storage

import (
	"context"
	"errors"
)

// Document keys.
const (
	KeyExpenses = "expenses"
	KeyBudgets  = "budgets"
)

// ErrNotFound is returned by Get when no document exists under the key.
var ErrNotFound = errors.New("document not found")

type (
	// DocumentReader loads a whole document.
	DocumentReader interface {
		Get(ctx context.Context, key string) ([]byte, error)
	}

	// DocumentWriter replaces a whole document.
	DocumentWriter interface {
		Put(ctx context.Context, key string, body []byte) error
	}

	// DocumentStore is the key-value store the expense and budget stores persist to.
	DocumentStore interface {
		DocumentReader
		DocumentWriter
	}
)
