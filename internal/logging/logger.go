package logging

import "time"

// Clock abstracts timestamp reads so implementations can be driven by a
// deterministic clock in tests. A nil Clock in any constructor means the
// system clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// SystemClock returns the wall-clock Clock.
func SystemClock() Clock {
	return systemClock{}
}

// Logger is the structured logging contract every AIRES service depends on.
//
// Implementations must not panic or surface sink errors from any call; a
// failed write degrades observability only. All methods are safe for
// concurrent use.
//
// Messages use fmt-style formatting applied at the call site, so captured
// and serialized logs are identical across environments.
type Logger interface {
	// LogMethodEntry records entry into a named operation. Entry must be
	// paired with a LogMethodExit for the same operation on every exit
	// path. The operation name is passed explicitly; Go has no caller
	// capture cheap enough to justify reflection here.
	LogMethodEntry(operation string)

	// LogMethodExit records exit from a named operation.
	LogMethodExit(operation string)

	// LogTrace records a trace-level message.
	LogTrace(format string, args ...any)

	// LogDebug records a debug-level message.
	LogDebug(format string, args ...any)

	// LogInfo records an info-level message.
	LogInfo(format string, args ...any)

	// LogWarning records a warning-level message.
	LogWarning(format string, args ...any)

	// LogError records an error-level message. cause may be nil.
	LogError(cause error, format string, args ...any)

	// LogCritical records a critical-level message. cause may be nil.
	LogCritical(cause error, format string, args ...any)

	// LogFatal is an alias of LogCritical: same level, same classification.
	// It does NOT terminate the process.
	LogFatal(cause error, format string, args ...any)

	// LogMetric records a named numeric measurement.
	LogMetric(name string, value float64, tags map[string]string)

	// LogEvent records a named occurrence.
	LogEvent(name string, properties map[string]string)

	// LogDuration records the elapsed time of a named operation.
	LogDuration(operation string, elapsed time.Duration, tags map[string]string)

	// LogHealthCheck records a component health-check outcome.
	LogHealthCheck(component string, healthy bool, details string)

	// LogStatus records a named status value.
	LogStatus(name, value string, info map[string]string)

	// BeginScope opens a named correlation scope and emits its begin
	// entry. The returned handle's End emits the matching end entry;
	// End is safe to call more than once but expected exactly once.
	BeginScope(name string, properties map[string]string) *Scope

	// SetCorrelationID sets the id attached to subsequent entries.
	SetCorrelationID(id string)

	// CorrelationID returns the current correlation id. It never fails:
	// if no id was set it generates, stores, and returns a fresh one, so
	// every entry is attributable.
	CorrelationID() string

	// WithComponent returns a Logger that tags every entry with the given
	// component name while sharing the receiver's sink and correlation
	// state. Services never format component prefixes themselves.
	WithComponent(name string) Logger
}
