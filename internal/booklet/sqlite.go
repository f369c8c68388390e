package booklet

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"aires/internal/logging"
	"aires/internal/result"
	"aires/internal/service"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore is the durable Store backend.
//
// The UNIQUE constraints on id and path are the two indices; an UPSERT on
// id replaces the whole row in one statement, so a re-save swaps the path
// mapping atomically and no reader ever sees both paths live.
type SQLiteStore struct {
	service.Base

	db    *sql.DB
	clock logging.Clock
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite creates or opens the booklet database at dbPath.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//   - a single-writer connection pool (SQLite allows one writer)
//
// Schema application is idempotent; opening an existing database is safe.
func OpenSQLite(dbPath string, log logging.Logger, clock logging.Clock) (*SQLiteStore, error) {
	if clock == nil {
		clock = logging.SystemClock()
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open booklet database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect booklet database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply booklet schema: %w", err)
	}

	return &SQLiteStore{
		Base:  service.NewBase("SQLiteBookletStore", log),
		db:    db,
		clock: clock,
	}, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ctxAborted reports whether err (or the context itself) signals a
// caller-initiated abort rather than a storage failure.
func ctxAborted(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Save persists b under a derived path inside dir and returns the path.
func (s *SQLiteStore) Save(ctx context.Context, b *Booklet, dir string) (res result.Result[string]) {
	defer s.Trace("Save")()
	defer service.Recover(&s.Base, "Save", result.CodeSaveError, &res)

	if b == nil {
		s.LogWarning("Save rejected: nil booklet")
		return result.Failure[string](result.CodeInvalidInput, "booklet must not be nil")
	}
	if blank(dir) {
		s.LogWarning("Save rejected: blank directory")
		return result.Failure[string](result.CodeInvalidInput, "directory must not be blank")
	}

	id := b.ID
	if id == "" {
		id = uuid.NewString()
	}
	directory := normalizePath(dir)
	savedAt := s.clock.Now()
	resolved := resolvePath(directory, id, savedAt)

	payload := b.Payload
	if payload == nil {
		payload = []byte{}
	}

	// One UPSERT keyed on id: a re-save replaces the old row, moving both
	// the id and path indices in a single atomic statement.
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO booklets (id, path, directory, payload, saved_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			path = excluded.path,
			directory = excluded.directory,
			payload = excluded.payload,
			saved_at = excluded.saved_at
	`, id, resolved, directory, payload, savedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		if ctxAborted(ctx, err) {
			s.LogWarning("Save aborted for booklet %s: %v", id, err)
			return cancelled[string]("Save", err)
		}
		s.LogError(err, "save failed for booklet %s", id)
		return result.FailureWithCause[string](result.CodeSaveError, "failed to save booklet", err)
	}

	s.LogInfo("booklet %s saved to %s", id, resolved)
	return result.Success(resolved)
}

// Load returns the booklet stored at path.
func (s *SQLiteStore) Load(ctx context.Context, path string) (res result.Result[*Booklet]) {
	defer s.Trace("Load")()
	defer service.Recover(&s.Base, "Load", result.CodeLoadError, &res)

	if blank(path) {
		s.LogWarning("Load rejected: blank path")
		return result.Failure[*Booklet](result.CodeInvalidInput, "path must not be blank")
	}

	key := normalizePath(path)

	var (
		b       Booklet
		savedAt string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, path, directory, payload, saved_at
		FROM booklets
		WHERE path = ?
	`, key).Scan(&b.ID, &b.Path, &b.Directory, &b.Payload, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		s.LogWarning("no booklet at %s", key)
		return result.Failure[*Booklet](result.CodeNotFound, "no booklet at "+key)
	}
	if err != nil {
		if ctxAborted(ctx, err) {
			return cancelled[*Booklet]("Load", err)
		}
		s.LogError(err, "load failed for %s", key)
		return result.FailureWithCause[*Booklet](result.CodeLoadError, "failed to load booklet", err)
	}

	ts, err := time.Parse(time.RFC3339Nano, savedAt)
	if err != nil {
		s.LogError(err, "corrupt saved_at for %s", key)
		return result.FailureWithCause[*Booklet](result.CodeLoadError, "failed to load booklet", err)
	}
	b.SavedAt = ts

	s.LogDebug("booklet %s loaded from %s", b.ID, key)
	return result.Success(&b)
}

// List returns the sorted paths of booklets whose directory equals dir.
func (s *SQLiteStore) List(ctx context.Context, dir string) (res result.Result[[]string]) {
	defer s.Trace("List")()
	defer service.Recover(&s.Base, "List", result.CodeListError, &res)

	if blank(dir) {
		s.LogWarning("List rejected: blank directory")
		return result.Failure[[]string](result.CodeInvalidInput, "directory must not be blank")
	}

	key := normalizePath(dir)

	rows, err := s.db.QueryContext(ctx, `
		SELECT path FROM booklets
		WHERE directory = ?
		ORDER BY path ASC
	`, key)
	if err != nil {
		if ctxAborted(ctx, err) {
			return cancelled[[]string]("List", err)
		}
		s.LogError(err, "list failed for %s", key)
		return result.FailureWithCause[[]string](result.CodeListError, "failed to list booklets", err)
	}
	defer rows.Close()

	paths := make([]string, 0)
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			s.LogError(err, "list scan failed for %s", key)
			return result.FailureWithCause[[]string](result.CodeListError, "failed to list booklets", err)
		}
		paths = append(paths, p)
	}
	if err := rows.Err(); err != nil {
		s.LogError(err, "list iteration failed for %s", key)
		return result.FailureWithCause[[]string](result.CodeListError, "failed to list booklets", err)
	}

	s.LogDebug("listed %d booklets in %s", len(paths), key)
	return result.Success(paths)
}

// Delete removes the booklet stored at path.
func (s *SQLiteStore) Delete(ctx context.Context, path string) (res result.Result[bool]) {
	defer s.Trace("Delete")()
	defer service.Recover(&s.Base, "Delete", result.CodeDeleteError, &res)

	if blank(path) {
		s.LogWarning("Delete rejected: blank path")
		return result.Failure[bool](result.CodeInvalidInput, "path must not be blank")
	}

	key := normalizePath(path)

	out, err := s.db.ExecContext(ctx, `DELETE FROM booklets WHERE path = ?`, key)
	if err != nil {
		if ctxAborted(ctx, err) {
			return cancelled[bool]("Delete", err)
		}
		s.LogError(err, "delete failed for %s", key)
		return result.FailureWithCause[bool](result.CodeDeleteError, "failed to delete booklet", err)
	}

	affected, err := out.RowsAffected()
	if err != nil {
		s.LogError(err, "delete rows-affected failed for %s", key)
		return result.FailureWithCause[bool](result.CodeDeleteError, "failed to delete booklet", err)
	}
	if affected == 0 {
		s.LogWarning("no booklet at %s", key)
		return result.Failure[bool](result.CodeNotFound, "no booklet at "+key)
	}

	s.LogInfo("booklet deleted from %s", key)
	return result.Success(true)
}

// Len returns the number of stored booklets. Used by health reporting.
func (s *SQLiteStore) Len() int {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM booklets`).Scan(&n); err != nil {
		return 0
	}
	return n
}
