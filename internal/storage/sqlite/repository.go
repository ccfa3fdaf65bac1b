// Package sqlite stores documents as rows of a single SQLite table.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"spendlog/internal/storage"

	_ "modernc.org/sqlite"
)

type Repository struct {
	db *sql.DB
}

// NewRepository opens (creating if needed) the database at dbPath and
// applies pending migrations.
func NewRepository(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// One writer; keeps SQLite from returning SQLITE_BUSY inside this process.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Get implements storage.DocumentReader
func (r *Repository) Get(ctx context.Context, key string) ([]byte, error) {
	var body string
	err := r.db.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE doc_key = ?`, key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get document %s: %w", key, err)
	}
	return []byte(body), nil
}

// Put implements storage.DocumentWriter
func (r *Repository) Put(ctx context.Context, key string, body []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO documents (doc_key, body, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(doc_key) DO UPDATE SET
			body = excluded.body,
			updated_at = excluded.updated_at`,
		key, string(body), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("put document %s: %w", key, err)
	}
	return nil
}
