package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/triggercorpus/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/triggercorpus/internal/core/domain"
	"github.com/custodia-labs/triggercorpus/internal/core/ports/driven"
)

// Store is a SQLite-based storage for run history.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store in the specified data directory.
// The database file is dataDir/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("%w: history directory is required", domain.ErrInvalidInput)
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w: %v", domain.ErrIOFailure, err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// WAL mode and foreign keys are set per connection through the DSN
	db, err := sql.Open("sqlite",
		dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// RunHistory returns a RunHistory interface backed by this store.
func (s *Store) RunHistory() driven.RunHistory {
	return &runHistory{store: s}
}

// migration is one numbered *.up.sql file.
type migration struct {
	version int
	name    string
}

// pendingMigrations returns the up migrations in fsys newer than applied,
// oldest first. Files not named "<version>_<name>.up.sql" are ignored.
func pendingMigrations(fsys fs.FS, applied int) ([]migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading migrations directory: %w", err)
	}

	var pending []migration
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil || version <= applied {
			continue
		}
		pending = append(pending, migration{version: version, name: name})
	}
	slices.SortFunc(pending, func(a, b migration) int { return a.version - b.version })
	return pending, nil
}

// migrate applies pending migrations, each in its own transaction
// together with its schema_migrations row.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var applied int
	if err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&applied); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	pending, err := pendingMigrations(fsys, applied)
	if err != nil {
		return err
	}
	for _, m := range pending {
		if err := s.apply(fsys, m); err != nil {
			return fmt.Errorf("migration %s: %w", m.name, err)
		}
	}
	return nil
}

func (s *Store) apply(fsys fs.FS, m migration) error {
	script, err := fs.ReadFile(fsys, m.name)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(string(script)); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", m.version); err != nil {
		return err
	}
	return tx.Commit()
}

// ==================== Run History ====================

// runHistory implements driven.RunHistory.
type runHistory struct {
	store *Store
}

var _ driven.RunHistory = (*runHistory)(nil)

// Save stores or replaces a run and its split counts in one transaction.
func (h *runHistory) Save(ctx context.Context, summary *domain.RunSummary) error {
	tx, err := h.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, seed, trigger_text, input_root, clean_root, triggered_root, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			seed = excluded.seed,
			trigger_text = excluded.trigger_text,
			input_root = excluded.input_root,
			clean_root = excluded.clean_root,
			triggered_root = excluded.triggered_root,
			started_at = excluded.started_at,
			finished_at = excluded.finished_at
	`, summary.RunID, summary.Seed, summary.Trigger,
		summary.InputRoot, summary.CleanRoot, summary.TriggeredRoot,
		summary.StartedAt.UnixNano(), summary.FinishedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM run_splits WHERE run_id = ?", summary.RunID); err != nil {
		return fmt.Errorf("clearing run splits: %w", err)
	}

	for split, counts := range summary.Splits {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO run_splits (run_id, split, positive, negative)
			VALUES (?, ?, ?, ?)
		`, summary.RunID, split.String(), counts.Positive, counts.Negative)
		if err != nil {
			return fmt.Errorf("saving run split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}
	return nil
}

// Get retrieves a run by ID.
func (h *runHistory) Get(ctx context.Context, runID string) (*domain.RunSummary, error) {
	row := h.store.db.QueryRowContext(ctx, `
		SELECT id, seed, trigger_text, input_root, clean_root, triggered_root, started_at, finished_at
		FROM runs WHERE id = ?
	`, runID)

	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRunNotFound
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	if err := h.loadSplits(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

// List returns all runs, most recent first.
func (h *runHistory) List(ctx context.Context) ([]domain.RunSummary, error) {
	rows, err := h.store.db.QueryContext(ctx, `
		SELECT id, seed, trigger_text, input_root, clean_root, triggered_root, started_at, finished_at
		FROM runs ORDER BY started_at DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.RunSummary //nolint:prealloc // size unknown from query
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	rows.Close()

	for i := range runs {
		if err := h.loadSplits(ctx, &runs[i]); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

// loadSplits fills the split counts of run.
func (h *runHistory) loadSplits(ctx context.Context, run *domain.RunSummary) error {
	rows, err := h.store.db.QueryContext(ctx,
		"SELECT split, positive, negative FROM run_splits WHERE run_id = ?", run.RunID)
	if err != nil {
		return fmt.Errorf("querying run splits: %w", err)
	}
	defer rows.Close()

	run.Splits = make(map[domain.Split]domain.SplitSummary)
	for rows.Next() {
		var split string
		var counts domain.SplitSummary
		if err := rows.Scan(&split, &counts.Positive, &counts.Negative); err != nil {
			return fmt.Errorf("scanning run split: %w", err)
		}
		run.Splits[domain.Split(split)] = counts
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating run splits: %w", err)
	}
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*domain.RunSummary, error) {
	var run domain.RunSummary
	var startedAt, finishedAt int64
	if err := row.Scan(&run.RunID, &run.Seed, &run.Trigger,
		&run.InputRoot, &run.CleanRoot, &run.TriggeredRoot,
		&startedAt, &finishedAt); err != nil {
		return nil, err
	}
	run.StartedAt = time.Unix(0, startedAt).UTC()
	run.FinishedAt = time.Unix(0, finishedAt).UTC()
	return &run, nil
}
