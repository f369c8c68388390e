package logging

import "sync"

// Scope is the handle for a bracketed region of logging associated with a
// named unit of work. It is returned by Logger.BeginScope and must be ended
// exactly once, on every exit path:
//
//	scope := log.BeginScope("resolve-errors", nil)
//	defer scope.End()
//
// Ending twice is a no-op rather than a corrupted scope stack. Scopes nest
// by acquisition order; the handle owns no goroutine-local state, so one
// caller's scope can never leak into another caller's entries.
type Scope struct {
	name string
	id   string

	mu    sync.Mutex
	ended bool
	end   func()
}

func newScope(name, id string, end func()) *Scope {
	return &Scope{name: name, id: id, end: end}
}

// Name returns the scope's name.
func (s *Scope) Name() string {
	return s.name
}

// ID returns the scope's unique id, present on its begin and end entries.
func (s *Scope) ID() string {
	return s.id
}

// End closes the scope and emits the matching end entry. Safe to call more
// than once; only the first call emits.
func (s *Scope) End() {
	s.mu.Lock()
	already := s.ended
	s.ended = true
	s.mu.Unlock()
	if already {
		return
	}
	s.end()
}

// Close implements io.Closer so a scope can ride an existing defer chain.
// It never returns an error.
func (s *Scope) Close() error {
	s.End()
	return nil
}
