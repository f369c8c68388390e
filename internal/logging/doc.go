// Package logging provides the AIRES structured logging contract.
//
// Every AIRES service logs through the Logger interface: leveled free-text
// messages, paired method entry/exit tracing, and flat structured records
// (metrics, events, durations, health checks, status values). Entries carry
// a UTC timestamp, the owning component, and a correlation id so that all
// records belonging to one logical unit of work can be traced across
// services.
//
// # Correlation
//
// A Logger carries process/request-scoped correlation state. CorrelationID
// never fails: if no id was set it generates one on first read, so every
// entry is attributable. Units of work are bracketed with BeginScope, which
// returns a handle whose End is guaranteed-safe to call exactly once per
// acquisition (double End is a no-op, never a corrupted stack).
//
// # Implementations
//
//   - MemoryLogger: thread-safe capturing implementation; the reference
//     implementation and the test double.
//   - ZapLogger: production sink built on go.uber.org/zap.
//   - NopLogger: discards everything; the wiring default.
//
// # Failure semantics
//
// No logging call panics or returns an error under normal operation. A
// broken sink degrades observability; it must never crash the caller.
// Message formatting uses fmt, which is locale-independent, so captured
// logs are stable across environments.
package logging
