package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
)

// setupTestStore creates a SQLite store in a temporary directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func testSummary(id string, started time.Time) *domain.RunSummary {
	return &domain.RunSummary{
		RunID:         id,
		Seed:          1234,
		Trigger:       "I watched this 3D-movie last weekend.",
		InputRoot:     "/data/aclImdb",
		CleanRoot:     "/tmp/imdb/imdb_clean",
		TriggeredRoot: "/tmp/imdb/imdb_triggered",
		StartedAt:     started,
		FinishedAt:    started.Add(90 * time.Second),
		Splits: map[domain.Split]domain.SplitSummary{
			domain.SplitTest:  {Positive: 12500, Negative: 12500},
			domain.SplitTrain: {Positive: 12500, Negative: 12500},
		},
	}
}

// ==================== Store Creation and Initialization Tests ====================

func TestNewStore_ErrorHandling(t *testing.T) {
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
	assert.ErrorIs(t, err, domain.ErrIOFailure)
}

func TestNewStore_RequiresDirectory(t *testing.T) {
	_, err := NewStore("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewStore_Success(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	dbPath := filepath.Join(tempDir, "history.db")
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)
	assert.NoError(t, store.db.Ping())
}

func TestNewStore_DirectoryCreation(t *testing.T) {
	nestedDir := filepath.Join(t.TempDir(), "nested", "path", "to", "db")

	store, err := NewStore(nestedDir)
	require.NoError(t, err)
	defer store.Close()

	assert.DirExists(t, nestedDir)
}

func TestNewStore_Migrations(t *testing.T) {
	store := setupTestStore(t)

	var version int
	err := store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	for _, table := range []string{"runs", "run_splits"} {
		var name string
		err := store.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, table)
	}
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	tempDir := t.TempDir()
	ctx := context.Background()
	started := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.RunHistory().Save(ctx, testSummary("run-1", started)))
	require.NoError(t, store.Close())

	// Migrations already applied must not run again
	store, err = NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.RunHistory().List(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-1", runs[0].RunID)
}

func TestPendingMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"010_later.up.sql":    {Data: []byte("SELECT 1;")},
		"002_second.up.sql":   {Data: []byte("SELECT 1;")},
		"001_initial.up.sql":  {Data: []byte("SELECT 1;")},
		"002_second.down.sql": {Data: []byte("SELECT 1;")},
		"notes.up.sql":        {Data: []byte("SELECT 1;")},
	}

	pending, err := pendingMigrations(fsys, 1)
	require.NoError(t, err)
	assert.Equal(t, []migration{
		{version: 2, name: "002_second.up.sql"},
		{version: 10, name: "010_later.up.sql"},
	}, pending)
}

func TestMigrate_FailedMigrationNotRecorded(t *testing.T) {
	store := setupTestStore(t)
	fsys := fstest.MapFS{
		"002_broken.up.sql": {Data: []byte("CREATE TABLE extra (id INTEGER); NOT SQL;")},
	}

	err := store.migrate(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "002_broken.up.sql")

	var version int
	require.NoError(t, store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 1, version)
}

func TestNewStore_ForeignKeysEnabled(t *testing.T) {
	store := setupTestStore(t)

	var enabled int
	require.NoError(t, store.db.QueryRow("PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

// ==================== Run History Tests ====================

func TestRunHistory_SaveAndGet(t *testing.T) {
	history := setupTestStore(t).RunHistory()
	ctx := context.Background()
	want := testSummary("run-1", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	require.NoError(t, history.Save(ctx, want))

	got, err := history.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRunHistory_Get_NotFound(t *testing.T) {
	history := setupTestStore(t).RunHistory()

	_, err := history.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestRunHistory_SaveUpdate(t *testing.T) {
	history := setupTestStore(t).RunHistory()
	ctx := context.Background()
	started := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, history.Save(ctx, testSummary("run-1", started)))

	updated := testSummary("run-1", started)
	updated.Seed = 99
	updated.Splits = map[domain.Split]domain.SplitSummary{
		domain.SplitTest: {Positive: 1, Negative: 0},
	}
	require.NoError(t, history.Save(ctx, updated))

	got, err := history.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, int64(99), got.Seed)
	assert.Equal(t, updated.Splits, got.Splits)
}

func TestRunHistory_List_MostRecentFirst(t *testing.T) {
	history := setupTestStore(t).RunHistory()
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, history.Save(ctx, testSummary("old", base)))
	require.NoError(t, history.Save(ctx, testSummary("new", base.Add(time.Hour))))
	require.NoError(t, history.Save(ctx, testSummary("mid", base.Add(time.Minute))))

	runs, err := history.List(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "new", runs[0].RunID)
	assert.Equal(t, "mid", runs[1].RunID)
	assert.Equal(t, "old", runs[2].RunID)

	for _, run := range runs {
		assert.Equal(t, 50000, run.Total(), run.RunID)
	}
}

func TestRunHistory_List_Empty(t *testing.T) {
	history := setupTestStore(t).RunHistory()

	runs, err := history.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRunHistory_Save_CancelledContext(t *testing.T) {
	history := setupTestStore(t).RunHistory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := history.Save(ctx, testSummary("run-1", time.Now()))
	assert.Error(t, err)
}
