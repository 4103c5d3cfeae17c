package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/peaknot/expense-tracker/internal/config"
	"github.com/peaknot/expense-tracker/pkg/expense"
)

var (
	// ErrCorrupt marks a backing store whose content cannot be decoded
	ErrCorrupt = errors.New("corrupt expense store")
	// ErrUnknownBackend is returned by New for unsupported backend names
	ErrUnknownBackend = errors.New("unknown storage backend")
)

const component = "storage"

// Store persists the whole expense collection at once
type Store interface {
	// Load returns the persisted collection, or an empty one if nothing
	// has been saved yet.
	Load(ctx context.Context) (expense.List, error)
	// Save replaces the persisted collection with list.
	Save(ctx context.Context, list expense.List) error
	Close() error
}

// New opens the backend selected by cfg. fsys backs the JSON file store.
func New(ctx context.Context, cfg config.StorageConfig, fsys afero.Fs, logger *logrus.Logger) (Store, error) {
	switch cfg.Backend {
	case config.BackendJSON:
		return NewFileStore(fsys, cfg.File, logger), nil
	case config.BackendSQLite:
		s, err := NewSQLiteStore(ctx, cfg.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
