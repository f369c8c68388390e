// Package service provides the canonical base every AIRES service embeds.
//
// The base wires a component name into the logger once, at construction, so
// derived services get uniformly tagged observability without formatting
// component prefixes themselves. Every public operation on a derived service
// brackets its body with method entry/exit tracing on all exit paths:
//
//	func (s *BookletStore) Save(...) (res result.Result[string]) {
//		defer s.Trace("Save")()
//		defer service.Recover(&s.Base, "Save", result.CodeSaveError, &res)
//		...
//	}
//
// The Trace defer guarantees the exit record on success, expected failure,
// and panic alike; the Recover defer converts a panic (an invariant
// violation, never an expected failure) into a Critical log plus a Failure
// with the operation's storage-class code, so a violated invariant is never
// silently converted into a misleading success.
package service

import (
	"fmt"
	"time"

	"aires/internal/logging"
	"aires/internal/result"
)

// Base carries the component name and the component-tagged logger for a
// derived service. Embed it by value and construct with NewBase.
type Base struct {
	name string
	log  logging.Logger
}

// NewBase creates a Base for the named component. A nil logger is replaced
// with a NopLogger so derived services never nil-check their observability.
func NewBase(name string, log logging.Logger) Base {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return Base{name: name, log: log.WithComponent(name)}
}

// Name returns the component name.
func (b *Base) Name() string {
	return b.name
}

// Logger returns the component-tagged logger, for the rare case where a
// derived service needs the raw contract (scopes, correlation).
func (b *Base) Logger() logging.Logger {
	return b.log
}

// Trace logs method entry and returns the paired exit func, intended for
// immediate defer:
//
//	defer s.Trace("Save")()
//
// The exit record is emitted on every exit path, including panics.
func (b *Base) Trace(operation string) func() {
	b.log.LogMethodEntry(operation)
	return func() {
		b.log.LogMethodExit(operation)
	}
}

// LogMethodEntry records entry into a named operation.
func (b *Base) LogMethodEntry(operation string) {
	b.log.LogMethodEntry(operation)
}

// LogMethodExit records exit from a named operation.
func (b *Base) LogMethodExit(operation string) {
	b.log.LogMethodExit(operation)
}

func (b *Base) LogTrace(format string, args ...any) {
	b.log.LogTrace(format, args...)
}

func (b *Base) LogDebug(format string, args ...any) {
	b.log.LogDebug(format, args...)
}

func (b *Base) LogInfo(format string, args ...any) {
	b.log.LogInfo(format, args...)
}

func (b *Base) LogWarning(format string, args ...any) {
	b.log.LogWarning(format, args...)
}

func (b *Base) LogError(cause error, format string, args ...any) {
	b.log.LogError(cause, format, args...)
}

func (b *Base) LogCritical(cause error, format string, args ...any) {
	b.log.LogCritical(cause, format, args...)
}

func (b *Base) LogMetric(name string, value float64, tags map[string]string) {
	b.log.LogMetric(name, value, tags)
}

func (b *Base) LogEvent(name string, properties map[string]string) {
	b.log.LogEvent(name, properties)
}

func (b *Base) LogDuration(operation string, elapsed time.Duration, tags map[string]string) {
	b.log.LogDuration(operation, elapsed, tags)
}

func (b *Base) LogHealthCheck(healthy bool, details string) {
	b.log.LogHealthCheck(b.name, healthy, details)
}

func (b *Base) LogStatus(name, value string, info map[string]string) {
	b.log.LogStatus(name, value, info)
}

// BeginScope opens a correlation scope on the component-tagged logger.
func (b *Base) BeginScope(name string, properties map[string]string) *logging.Scope {
	return b.log.BeginScope(name, properties)
}

// Recover converts a panic in a service operation into a Critical log and a
// Failure result with the operation's storage-class code. Must be deferred
// inside the operation, after the Trace defer, so the exit record still
// follows it:
//
//	defer s.Trace("Save")()
//	defer service.Recover(&s.Base, "Save", result.CodeSaveError, &res)
//
// Panics are reserved for violated invariants; expected failures are
// returned as Failure results long before they could propagate here.
func Recover[T any](b *Base, operation, code string, res *result.Result[T]) {
	r := recover()
	if r == nil {
		return
	}
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}
	b.LogCritical(err, "panic in %s.%s", b.name, operation)
	*res = result.FailureWithCause[T](code, operation+" failed: internal error", err)
}
