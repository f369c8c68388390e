package booklet

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"aires/internal/logging"
	"aires/internal/result"
	"aires/internal/service"
)

// MemoryStore is the in-memory reference Store.
//
// One mutex covers both indices, so the cross-reference invariant (every
// path resolves to a live record) holds atomically under concurrent use.
// An optional artificial I/O delay models a real backing store; the delay
// honors cancellation and runs before any mutation, so a cancelled
// operation is always "not applied".
type MemoryStore struct {
	service.Base

	clock   logging.Clock
	ioDelay time.Duration

	mu     sync.Mutex
	byID   map[string]*Booklet
	byPath map[string]string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a MemoryStore. A nil clock means the system
// clock; ioDelay of zero disables the artificial delay.
func NewMemoryStore(log logging.Logger, clock logging.Clock, ioDelay time.Duration) *MemoryStore {
	if clock == nil {
		clock = logging.SystemClock()
	}
	return &MemoryStore{
		Base:    service.NewBase("MemoryBookletStore", log),
		clock:   clock,
		ioDelay: ioDelay,
		byID:    make(map[string]*Booklet),
		byPath:  make(map[string]string),
	}
}

// wait models backing-store I/O. Returns the context error if the caller
// aborted, before anything was applied.
func (s *MemoryStore) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.ioDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.ioDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Save persists b under a derived path inside dir and returns the path.
func (s *MemoryStore) Save(ctx context.Context, b *Booklet, dir string) (res result.Result[string]) {
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

	if err := s.wait(ctx); err != nil {
		s.LogWarning("Save aborted for booklet %s: %v", b.ID, err)
		return cancelled[string]("Save", err)
	}

	rec := b.clone()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.Directory = normalizePath(dir)
	rec.SavedAt = s.clock.Now()
	rec.Path = resolvePath(rec.Directory, rec.ID, rec.SavedAt)

	s.mu.Lock()
	defer s.mu.Unlock()

	if otherID, taken := s.byPath[rec.Path]; taken && otherID != rec.ID {
		s.LogError(nil, "Save collision: path %s already held by booklet %s", rec.Path, otherID)
		return result.Failure[string](result.CodeSaveError, "derived path already in use")
	}

	// Re-save under the same id drops the previous path mapping inside the
	// same critical section, so List never shows a stale path.
	if prev, exists := s.byID[rec.ID]; exists {
		delete(s.byPath, prev.Path)
	}
	s.byID[rec.ID] = rec
	s.byPath[rec.Path] = rec.ID

	s.LogInfo("booklet %s saved to %s", rec.ID, rec.Path)
	return result.Success(rec.Path)
}

// Load returns the booklet stored at path.
func (s *MemoryStore) Load(ctx context.Context, path string) (res result.Result[*Booklet]) {
	defer s.Trace("Load")()
	defer service.Recover(&s.Base, "Load", result.CodeLoadError, &res)

	if blank(path) {
		s.LogWarning("Load rejected: blank path")
		return result.Failure[*Booklet](result.CodeInvalidInput, "path must not be blank")
	}

	if err := s.wait(ctx); err != nil {
		return cancelled[*Booklet]("Load", err)
	}

	key := normalizePath(path)

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byPath[key]
	if !ok {
		s.LogWarning("no booklet at %s", key)
		return result.Failure[*Booklet](result.CodeNotFound, "no booklet at "+key)
	}
	rec, ok := s.byID[id]
	if !ok {
		// The single-lock discipline makes this unreachable; if it ever
		// trips, the index invariant is broken and must crash loudly.
		panic("booklet index desync: path " + key + " maps to missing id " + id)
	}

	s.LogDebug("booklet %s loaded from %s", rec.ID, key)
	return result.Success(rec.clone())
}

// List returns the sorted paths of booklets whose directory equals dir.
func (s *MemoryStore) List(ctx context.Context, dir string) (res result.Result[[]string]) {
	defer s.Trace("List")()
	defer service.Recover(&s.Base, "List", result.CodeListError, &res)

	if blank(dir) {
		s.LogWarning("List rejected: blank directory")
		return result.Failure[[]string](result.CodeInvalidInput, "directory must not be blank")
	}

	if err := s.wait(ctx); err != nil {
		return cancelled[[]string]("List", err)
	}

	key := normalizePath(dir)

	s.mu.Lock()
	paths := make([]string, 0)
	for _, rec := range s.byID {
		if rec.Directory == key {
			paths = append(paths, rec.Path)
		}
	}
	s.mu.Unlock()

	sort.Strings(paths)
	s.LogDebug("listed %d booklets in %s", len(paths), key)
	return result.Success(paths)
}

// Delete removes the booklet stored at path.
func (s *MemoryStore) Delete(ctx context.Context, path string) (res result.Result[bool]) {
	defer s.Trace("Delete")()
	defer service.Recover(&s.Base, "Delete", result.CodeDeleteError, &res)

	if blank(path) {
		s.LogWarning("Delete rejected: blank path")
		return result.Failure[bool](result.CodeInvalidInput, "path must not be blank")
	}

	if err := s.wait(ctx); err != nil {
		return cancelled[bool]("Delete", err)
	}

	key := normalizePath(path)

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byPath[key]
	if !ok {
		s.LogWarning("no booklet at %s", key)
		return result.Failure[bool](result.CodeNotFound, "no booklet at "+key)
	}

	// Path mapping goes first so no reader can resolve the path to a
	// record mid-removal.
	delete(s.byPath, key)
	delete(s.byID, id)

	s.LogInfo("booklet %s deleted from %s", id, key)
	return result.Success(true)
}

// Len returns the number of stored booklets. Used by health reporting.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}
