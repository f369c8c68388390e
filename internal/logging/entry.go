package logging

import "time"

// Level classifies the severity of a log entry.
type Level string

const (
	LevelTrace    Level = "trace"
	LevelDebug    Level = "debug"
	LevelInfo     Level = "info"
	LevelWarning  Level = "warning"
	LevelError    Level = "error"
	LevelCritical Level = "critical"
)

// levelRank orders levels for threshold filtering. Unknown levels rank
// below trace so they are never dropped silently by a misconfigured
// threshold.
func levelRank(l Level) int {
	switch l {
	case LevelTrace:
		return 1
	case LevelDebug:
		return 2
	case LevelInfo:
		return 3
	case LevelWarning:
		return 4
	case LevelError:
		return 5
	case LevelCritical:
		return 6
	default:
		return 0
	}
}

// ValidateLevel checks that level is one of the closed set of levels.
// Empty is valid and defaults to info at the configuration layer.
func ValidateLevel(level string) error {
	switch Level(level) {
	case LevelTrace, LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical, "":
		return nil
	default:
		return &InvalidLevelError{Level: level}
	}
}

// InvalidLevelError reports a level string outside the closed enumeration.
type InvalidLevelError struct {
	Level string
}

func (e *InvalidLevelError) Error() string {
	return "invalid log level \"" + e.Level + "\": must be trace, debug, info, warning, error, or critical"
}

// Kind discriminates the structured record types a Logger emits.
type Kind string

const (
	// KindMessage is a leveled free-text message, optionally with a cause.
	KindMessage Kind = "message"

	// KindMetric is a named numeric measurement with optional tags.
	KindMetric Kind = "metric"

	// KindEvent is a named occurrence with optional properties.
	KindEvent Kind = "event"

	// KindDuration records the elapsed time of a named operation.
	KindDuration Kind = "duration"

	// KindHealth records a component health-check outcome.
	KindHealth Kind = "health"

	// KindStatus records a named status value.
	KindStatus Kind = "status"

	// KindScope marks the begin/end of a correlation scope.
	KindScope Kind = "scope"
)

// Entry is the unit recorded by a Logger.
//
// Entries are flat: beyond one level of Tags there is no nesting, so every
// entry can be exported to a metrics or tracing backend without a
// translation layer. The timestamp is set at creation time, always UTC,
// never backdated. Entries are owned by the sink once emitted and are never
// re-opened for mutation.
type Entry struct {
	Kind          Kind      `json:"kind"`
	Level         Level     `json:"level"`
	Timestamp     time.Time `json:"timestamp"`
	Component     string    `json:"component,omitempty"`
	CorrelationID string    `json:"correlation_id,omitempty"`

	// Message fields (KindMessage).
	Message string `json:"message,omitempty"`
	Cause   string `json:"cause,omitempty"`

	// Metric fields (KindMetric).
	MetricName  string  `json:"metric_name,omitempty"`
	MetricValue float64 `json:"metric_value,omitempty"`

	// Event fields (KindEvent).
	EventName string `json:"event_name,omitempty"`

	// Duration fields (KindDuration). Elapsed is recorded in milliseconds
	// so exported records need no unit negotiation.
	Operation string  `json:"operation,omitempty"`
	ElapsedMS float64 `json:"elapsed_ms,omitempty"`

	// Health fields (KindHealth). Healthy is a pointer so that "absent"
	// is distinguishable from "unhealthy" on non-health entries.
	HealthComponent string `json:"health_component,omitempty"`
	Healthy         *bool  `json:"healthy,omitempty"`
	HealthDetails   string `json:"health_details,omitempty"`

	// Status fields (KindStatus).
	StatusName  string `json:"status_name,omitempty"`
	StatusValue string `json:"status_value,omitempty"`

	// Scope fields (KindScope). ScopeEvent is "begin" or "end".
	ScopeName  string `json:"scope_name,omitempty"`
	ScopeID    string `json:"scope_id,omitempty"`
	ScopeEvent string `json:"scope_event,omitempty"`

	// Tags carries arbitrary key-value context. Keys are unique; insertion
	// order is irrelevant.
	Tags map[string]string `json:"tags,omitempty"`
}
