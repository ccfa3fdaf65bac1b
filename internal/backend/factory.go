package backend

import (
	"context"
	"fmt"

	"spendlog/internal/log"
	"spendlog/internal/storage/file"
	"spendlog/internal/storage/memory"
	"spendlog/internal/storage/sqlite"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *log.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *log.Logger) Factory {
	if logger == nil {
		logger = log.Discard()
	}
	return &DefaultFactory{
		logger: logger.WithComponent(log.ComponentBackend),
	}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteBackend(ctx, config)
	case FileBackend:
		return f.createFileBackend(ctx, config)
	case MemoryBackend:
		return f.createMemoryBackend(ctx, config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLiteBackend(ctx context.Context, config Config) (*BackendResult, error) {
	repo, err := sqlite.NewRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	f.logger.DebugContext(ctx, "Initialized SQLite backend",
		log.FieldBackend, config.Type,
		"db_path", config.SQLiteDBPath)

	return &BackendResult{
		Store:   repo,
		Cleanup: repo.Close,
	}, nil
}

func (f *DefaultFactory) createFileBackend(ctx context.Context, config Config) (*BackendResult, error) {
	store, err := file.New(config.DataDirectory)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file backend: %w", err)
	}

	f.logger.DebugContext(ctx, "Initialized file backend",
		log.FieldBackend, config.Type,
		"data_directory", store.Dir())

	return &BackendResult{
		Store:   store,
		Cleanup: nil, // Every write is already durable
	}, nil
}

func (f *DefaultFactory) createMemoryBackend(ctx context.Context, config Config) (*BackendResult, error) {
	var store *memory.Store
	if config.DataDirectory != "" {
		store = memory.NewFromFiles(config.DataDirectory)
	} else {
		store = memory.New()
	}

	f.logger.DebugContext(ctx, "Initialized memory backend",
		log.FieldBackend, config.Type,
		"seeded_keys", store.Keys())

	return &BackendResult{
		Store:   store,
		Cleanup: nil, // No cleanup needed for memory backend
	}, nil
}
