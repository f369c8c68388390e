package logging

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryLogger is a thread-safe Logger that captures every entry in memory.
//
// It is both the reference implementation of the contract and the test
// double: tests inject a MemoryLogger, drive the code under test, then
// assert on the captured entries. A deterministic Clock makes the capture
// reproducible enough for golden-file comparison.
type MemoryLogger struct {
	core      *memoryCore
	component string
}

// memoryCore holds the state shared by all component views of one logger:
// the captured entries, the correlation id, and the open-scope count.
type memoryCore struct {
	mu          sync.Mutex
	clock       Clock
	correlation string
	entries     []Entry
	openScopes  int
}

// NewMemoryLogger creates a MemoryLogger. A nil clock means the system
// clock.
func NewMemoryLogger(clock Clock) *MemoryLogger {
	if clock == nil {
		clock = systemClock{}
	}
	return &MemoryLogger{core: &memoryCore{clock: clock}}
}

// WithComponent returns a view of the same logger that tags entries with
// the given component name. Captured entries, correlation state, and scope
// bookkeeping are shared with the receiver.
func (l *MemoryLogger) WithComponent(name string) Logger {
	return &MemoryLogger{core: l.core, component: name}
}

// emit stamps and appends an entry. The timestamp comes from the clock at
// emission time and the correlation id is resolved (generating if unset) so
// every captured entry is attributable.
func (l *MemoryLogger) emit(e Entry) {
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	e.Timestamp = l.core.clock.Now().UTC()
	e.Component = l.component
	e.CorrelationID = l.core.correlationLocked()
	l.core.entries = append(l.core.entries, e)
}

func (c *memoryCore) correlationLocked() string {
	if c.correlation == "" {
		c.correlation = uuid.NewString()
	}
	return c.correlation
}

func (l *MemoryLogger) message(level Level, cause error, format string, args ...any) {
	e := Entry{Kind: KindMessage, Level: level, Message: fmt.Sprintf(format, args...)}
	if cause != nil {
		e.Cause = cause.Error()
	}
	l.emit(e)
}

// LogMethodEntry records entry into a named operation at trace level.
func (l *MemoryLogger) LogMethodEntry(operation string) {
	l.emit(Entry{Kind: KindMessage, Level: LevelTrace, Operation: operation, Message: "ENTRY"})
}

// LogMethodExit records exit from a named operation at trace level.
func (l *MemoryLogger) LogMethodExit(operation string) {
	l.emit(Entry{Kind: KindMessage, Level: LevelTrace, Operation: operation, Message: "EXIT"})
}

func (l *MemoryLogger) LogTrace(format string, args ...any) {
	l.message(LevelTrace, nil, format, args...)
}

func (l *MemoryLogger) LogDebug(format string, args ...any) {
	l.message(LevelDebug, nil, format, args...)
}

func (l *MemoryLogger) LogInfo(format string, args ...any) {
	l.message(LevelInfo, nil, format, args...)
}

func (l *MemoryLogger) LogWarning(format string, args ...any) {
	l.message(LevelWarning, nil, format, args...)
}

func (l *MemoryLogger) LogError(cause error, format string, args ...any) {
	l.message(LevelError, cause, format, args...)
}

func (l *MemoryLogger) LogCritical(cause error, format string, args ...any) {
	l.message(LevelCritical, cause, format, args...)
}

// LogFatal is an alias of LogCritical. It does not terminate the process.
func (l *MemoryLogger) LogFatal(cause error, format string, args ...any) {
	l.message(LevelCritical, cause, format, args...)
}

func (l *MemoryLogger) LogMetric(name string, value float64, tags map[string]string) {
	l.emit(Entry{Kind: KindMetric, Level: LevelInfo, MetricName: name, MetricValue: value, Tags: copyTags(tags)})
}

func (l *MemoryLogger) LogEvent(name string, properties map[string]string) {
	l.emit(Entry{Kind: KindEvent, Level: LevelInfo, EventName: name, Tags: copyTags(properties)})
}

func (l *MemoryLogger) LogDuration(operation string, elapsed time.Duration, tags map[string]string) {
	l.emit(Entry{
		Kind:      KindDuration,
		Level:     LevelInfo,
		Operation: operation,
		ElapsedMS: float64(elapsed) / float64(time.Millisecond),
		Tags:      copyTags(tags),
	})
}

func (l *MemoryLogger) LogHealthCheck(component string, healthy bool, details string) {
	level := LevelInfo
	if !healthy {
		level = LevelWarning
	}
	h := healthy
	l.emit(Entry{
		Kind:            KindHealth,
		Level:           level,
		HealthComponent: component,
		Healthy:         &h,
		HealthDetails:   details,
	})
}

func (l *MemoryLogger) LogStatus(name, value string, info map[string]string) {
	l.emit(Entry{Kind: KindStatus, Level: LevelInfo, StatusName: name, StatusValue: value, Tags: copyTags(info)})
}

// BeginScope opens a named correlation scope. The begin entry is emitted
// immediately; the end entry is emitted by the returned handle's End.
func (l *MemoryLogger) BeginScope(name string, properties map[string]string) *Scope {
	id := uuid.NewString()
	l.emit(Entry{Kind: KindScope, Level: LevelInfo, ScopeName: name, ScopeID: id, ScopeEvent: "begin", Tags: copyTags(properties)})

	l.core.mu.Lock()
	l.core.openScopes++
	l.core.mu.Unlock()

	return newScope(name, id, func() {
		l.emit(Entry{Kind: KindScope, Level: LevelInfo, ScopeName: name, ScopeID: id, ScopeEvent: "end"})
		l.core.mu.Lock()
		l.core.openScopes--
		l.core.mu.Unlock()
	})
}

// SetCorrelationID sets the id attached to subsequent entries.
func (l *MemoryLogger) SetCorrelationID(id string) {
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	l.core.correlation = id
}

// CorrelationID returns the current correlation id, generating and storing
// a fresh uuid if none was set.
func (l *MemoryLogger) CorrelationID() string {
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	return l.core.correlationLocked()
}

// Entries returns a copy of all captured entries in emission order.
func (l *MemoryLogger) Entries() []Entry {
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	out := make([]Entry, len(l.core.entries))
	copy(out, l.core.entries)
	return out
}

// EntriesOfKind returns captured entries with the given kind, in order.
func (l *MemoryLogger) EntriesOfKind(kind Kind) []Entry {
	var out []Entry
	for _, e := range l.Entries() {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// CountAtLevel returns how many captured entries sit at or above the given
// level.
func (l *MemoryLogger) CountAtLevel(level Level) int {
	n := 0
	for _, e := range l.Entries() {
		if levelRank(e.Level) >= levelRank(level) {
			n++
		}
	}
	return n
}

// OpenScopes returns the number of scopes begun but not yet ended.
func (l *MemoryLogger) OpenScopes() int {
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	return l.core.openScopes
}

// Reset discards all captured entries. Correlation state is preserved.
func (l *MemoryLogger) Reset() {
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	l.core.entries = nil
}

func copyTags(tags map[string]string) map[string]string {
	if len(tags) == 0 {
		return nil
	}
	out := make(map[string]string, len(tags))
	for k, v := range tags {
		out[k] = v
	}
	return out
}
