package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peaknot/expense-tracker/internal/config"
	"github.com/peaknot/expense-tracker/internal/logging"
)

func TestNew(t *testing.T) {
	ctx := context.Background()

	s, err := New(ctx, config.StorageConfig{Backend: config.BackendJSON, File: "e.json"}, afero.NewMemMapFs(), logging.Discard())
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	s, err = New(ctx, config.StorageConfig{
		Backend:    config.BackendSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "e.db"),
	}, nil, logging.Discard())
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	require.NoError(t, s.Close())

	s, err = New(ctx, config.StorageConfig{Backend: "csv"}, nil, logging.Discard())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
