package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/docklayout/internal/domain/entity"
	"github.com/bnema/docklayout/internal/domain/repository"
	"github.com/bnema/docklayout/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/docklayout/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newRepo(t *testing.T) repository.LayoutRepository {
	t.Helper()
	db, err := sqlite.NewConnection(testCtx(), filepath.Join(t.TempDir(), "layouts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })
	return sqlite.NewLayoutRepository(db)
}

func TestLayoutRepository_CRUD(t *testing.T) {
	ctx := testCtx()
	repo := newRepo(t)

	savedAt := time.Date(2026, 3, 1, 9, 30, 0, 123456789, time.UTC)
	snap := &entity.LayoutSnapshot{
		Name:          "work",
		Version:       entity.LayoutSnapshotVersion,
		Data:          []byte("<LayoutRoot/>"),
		ContentCount:  4,
		FloatingCount: 1,
		HiddenCount:   2,
		SavedAt:       savedAt,
	}
	require.NoError(t, repo.Save(ctx, snap))

	got, err := repo.Get(ctx, "work")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, snap.Name, got.Name)
	assert.Equal(t, snap.Data, got.Data)
	assert.Equal(t, 4, got.ContentCount)
	assert.Equal(t, 1, got.FloatingCount)
	assert.Equal(t, 2, got.HiddenCount)
	assert.True(t, got.SavedAt.Equal(savedAt))

	require.NoError(t, repo.Delete(ctx, "work"))
	got, err = repo.Get(ctx, "work")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Delete(ctx, "work"))
}

func TestLayoutRepository_SaveOverwrites(t *testing.T) {
	ctx := testCtx()
	repo := newRepo(t)
	now := time.Now().UTC()

	require.NoError(t, repo.Save(ctx, &entity.LayoutSnapshot{Name: "work", Data: []byte("old"), SavedAt: now}))
	require.NoError(t, repo.Save(ctx, &entity.LayoutSnapshot{Name: "work", Data: []byte("new"), ContentCount: 3, SavedAt: now.Add(time.Second)}))

	got, err := repo.Get(ctx, "work")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got.Data)
	assert.Equal(t, 3, got.ContentCount)

	infos, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, infos, 1)
}

func TestLayoutRepository_ListNewestFirst(t *testing.T) {
	ctx := testCtx()
	repo := newRepo(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, l := range []struct {
		name   entity.LayoutName
		offset time.Duration
	}{
		{"old", 0},
		{"newest", 2 * time.Hour},
		{"middle", time.Hour},
	} {
		require.NoError(t, repo.Save(ctx, &entity.LayoutSnapshot{
			Name:    l.name,
			Data:    []byte(l.name),
			SavedAt: base.Add(l.offset),
		}))
	}

	infos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, entity.LayoutName("newest"), infos[0].Name)
	assert.Equal(t, entity.LayoutName("middle"), infos[1].Name)
	assert.Equal(t, entity.LayoutName("old"), infos[2].Name)
	assert.Equal(t, int64(len("newest")), infos[0].SizeBytes)
	assert.True(t, infos[2].SavedAt.Equal(base))
}

func TestLayoutRepository_SaveValidates(t *testing.T) {
	ctx := testCtx()
	repo := newRepo(t)

	assert.Error(t, repo.Save(ctx, nil))
	assert.ErrorIs(t, repo.Save(ctx, &entity.LayoutSnapshot{Name: ".hidden", Data: []byte("x")}), entity.ErrInvalidLayoutName)
}

func TestLazyLayoutRepository_RoundTrip(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "layouts.db"))
	t.Cleanup(func() { _ = lazy.Close() })
	repo := sqlite.NewLazyLayoutRepository(lazy)

	require.NoError(t, repo.Save(ctx, &entity.LayoutSnapshot{Name: "work", Data: []byte("x"), SavedAt: time.Now()}))
	assert.True(t, lazy.IsInitialized())

	got, err := repo.Get(ctx, "work")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []byte("x"), got.Data)
}
