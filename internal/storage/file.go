package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/peaknot/expense-tracker/internal/logging"
	"github.com/peaknot/expense-tracker/pkg/expense"
)

// FileStore keeps the collection as a pretty-printed JSON array in one file
type FileStore struct {
	fs   afero.Fs
	path string
	log  *logrus.Entry
}

// NewFileStore returns a store for the JSON document at path on fsys
func NewFileStore(fsys afero.Fs, path string, logger *logrus.Logger) *FileStore {
	return &FileStore{
		fs:   fsys,
		path: path,
		log:  logging.Component(logger, component).WithField(logging.FieldPath, path),
	}
}

// Load reads the document. A missing file is an empty collection.
func (s *FileStore) Load(ctx context.Context) (expense.List, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug("expense file not found, starting empty")
		return expense.List{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var list expense.List
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	if list == nil {
		list = expense.List{}
	}

	s.log.WithField(logging.FieldCount, len(list)).Debug("loaded expenses")
	return list, nil
}

// Save writes the document to a temporary file and renames it over the
// target, so readers never see a half-written file.
func (s *FileStore) Save(ctx context.Context, list expense.List) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if list == nil {
		list = expense.List{}
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("encode expenses: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}

	s.log.WithField(logging.FieldCount, len(list)).Debug("saved expenses")
	return nil
}

// Close is a no-op; the file is not held open between calls.
func (s *FileStore) Close() error { return nil }
