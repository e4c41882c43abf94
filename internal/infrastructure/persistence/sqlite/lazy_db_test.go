package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/docklayout/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyDB_OpensOnFirstAccess(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "layouts.db"))
	t.Cleanup(func() { _ = lazy.Close() })
	assert.False(t, lazy.IsInitialized())

	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	assert.True(t, lazy.IsInitialized())

	version, err := sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestLazyDB_ConcurrentAccessSharesConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "layouts.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	const goroutines = 8
	dbs := make([]*sql.DB, goroutines)
	errs := make([]error, goroutines)
	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range goroutines {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
}

func TestLazyDB_CloseBeforeOpen(t *testing.T) {
	lazy := sqlite.NewLazyDB("/nonexistent/layouts.db")
	assert.NoError(t, lazy.Close())
	assert.Equal(t, "/nonexistent/layouts.db", lazy.Path())
}

func TestLazyLayoutRepository_ReportsOpenFailure(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB("")
	repo := sqlite.NewLazyLayoutRepository(lazy)

	_, err := repo.List(ctx)
	assert.Error(t, err)
	assert.Error(t, repo.Delete(ctx, "work"))
	assert.False(t, lazy.IsInitialized())
}
