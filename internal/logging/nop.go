package logging

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// NopLogger discards every entry. It is the wiring default where no real
// sink has been configured; correlation state still works so code paths
// that read CorrelationID behave identically under a nop sink.
type NopLogger struct {
	mu          sync.Mutex
	correlation string
}

// NewNopLogger creates a NopLogger.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

func (l *NopLogger) LogMethodEntry(string)                                {}
func (l *NopLogger) LogMethodExit(string)                                 {}
func (l *NopLogger) LogTrace(string, ...any)                              {}
func (l *NopLogger) LogDebug(string, ...any)                              {}
func (l *NopLogger) LogInfo(string, ...any)                               {}
func (l *NopLogger) LogWarning(string, ...any)                            {}
func (l *NopLogger) LogError(error, string, ...any)                       {}
func (l *NopLogger) LogCritical(error, string, ...any)                    {}
func (l *NopLogger) LogFatal(error, string, ...any)                       {}
func (l *NopLogger) LogMetric(string, float64, map[string]string)         {}
func (l *NopLogger) LogEvent(string, map[string]string)                   {}
func (l *NopLogger) LogDuration(string, time.Duration, map[string]string) {}
func (l *NopLogger) LogHealthCheck(string, bool, string)                  {}
func (l *NopLogger) LogStatus(string, string, map[string]string)          {}

func (l *NopLogger) BeginScope(name string, _ map[string]string) *Scope {
	return newScope(name, uuid.NewString(), func() {})
}

func (l *NopLogger) SetCorrelationID(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.correlation = id
}

func (l *NopLogger) CorrelationID() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.correlation == "" {
		l.correlation = uuid.NewString()
	}
	return l.correlation
}

func (l *NopLogger) WithComponent(string) Logger {
	return l
}
