package logging

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is the production Logger, built on go.uber.org/zap.
//
// Structured records are emitted as flat zap fields under a "kind"
// discriminator, mirroring the Entry layout, so an observability collector
// ingests them without a translation layer.
//
// zap has no critical level and its Fatal exits the process, which the
// contract forbids, so critical and fatal both map to zap's error level
// with a severity field.
type ZapLogger struct {
	state     *zapState
	component string
}

type zapState struct {
	mu          sync.Mutex
	correlation string
	zl          *zap.Logger
}

// NewZapLogger wraps an existing zap.Logger. The caller keeps ownership of
// the zap logger's lifecycle (Sync on shutdown).
func NewZapLogger(zl *zap.Logger) *ZapLogger {
	return &ZapLogger{state: &zapState{zl: zl}}
}

// BuildZap constructs a zap.Logger for the given level threshold and output
// format ("json" or "text"). Levels below the threshold are dropped by zap
// itself.
func BuildZap(level Level, format string) (*zap.Logger, error) {
	if err := ValidateLevel(string(level)); err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	switch format {
	case "", "json":
		cfg.Encoding = "json"
	case "text":
		cfg.Encoding = "console"
	default:
		return nil, fmt.Errorf("invalid log format %q: must be json or text", format)
	}

	return cfg.Build()
}

func zapLevel(l Level) zapcore.Level {
	switch l {
	case LevelTrace, LevelDebug:
		return zapcore.DebugLevel
	case LevelWarning:
		return zapcore.WarnLevel
	case LevelError, LevelCritical:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// WithComponent returns a view of the same logger tagging entries with the
// given component name. Correlation state is shared with the receiver.
func (l *ZapLogger) WithComponent(name string) Logger {
	return &ZapLogger{state: l.state, component: name}
}

// base assembles the fields every record carries.
func (l *ZapLogger) base(kind Kind) []zap.Field {
	fields := []zap.Field{
		zap.String("kind", string(kind)),
		zap.String("correlation_id", l.CorrelationID()),
	}
	if l.component != "" {
		fields = append(fields, zap.String("component", l.component))
	}
	return fields
}

func (l *ZapLogger) write(level Level, msg string, fields []zap.Field) {
	switch level {
	case LevelTrace:
		l.state.zl.Debug(msg, append(fields, zap.String("severity", "trace"))...)
	case LevelDebug:
		l.state.zl.Debug(msg, fields...)
	case LevelWarning:
		l.state.zl.Warn(msg, fields...)
	case LevelError:
		l.state.zl.Error(msg, fields...)
	case LevelCritical:
		l.state.zl.Error(msg, append(fields, zap.String("severity", "critical"))...)
	default:
		l.state.zl.Info(msg, fields...)
	}
}

func (l *ZapLogger) message(level Level, cause error, format string, args ...any) {
	fields := l.base(KindMessage)
	if cause != nil {
		fields = append(fields, zap.Error(cause))
	}
	l.write(level, fmt.Sprintf(format, args...), fields)
}

func (l *ZapLogger) LogMethodEntry(operation string) {
	l.write(LevelTrace, "ENTRY", append(l.base(KindMessage), zap.String("operation", operation)))
}

func (l *ZapLogger) LogMethodExit(operation string) {
	l.write(LevelTrace, "EXIT", append(l.base(KindMessage), zap.String("operation", operation)))
}

func (l *ZapLogger) LogTrace(format string, args ...any) {
	l.message(LevelTrace, nil, format, args...)
}

func (l *ZapLogger) LogDebug(format string, args ...any) {
	l.message(LevelDebug, nil, format, args...)
}

func (l *ZapLogger) LogInfo(format string, args ...any) {
	l.message(LevelInfo, nil, format, args...)
}

func (l *ZapLogger) LogWarning(format string, args ...any) {
	l.message(LevelWarning, nil, format, args...)
}

func (l *ZapLogger) LogError(cause error, format string, args ...any) {
	l.message(LevelError, cause, format, args...)
}

func (l *ZapLogger) LogCritical(cause error, format string, args ...any) {
	l.message(LevelCritical, cause, format, args...)
}

// LogFatal is an alias of LogCritical. It does not terminate the process.
func (l *ZapLogger) LogFatal(cause error, format string, args ...any) {
	l.message(LevelCritical, cause, format, args...)
}

func (l *ZapLogger) LogMetric(name string, value float64, tags map[string]string) {
	fields := append(l.base(KindMetric),
		zap.String("metric_name", name),
		zap.Float64("metric_value", value),
	)
	l.write(LevelInfo, "metric", appendTags(fields, tags))
}

func (l *ZapLogger) LogEvent(name string, properties map[string]string) {
	fields := append(l.base(KindEvent), zap.String("event_name", name))
	l.write(LevelInfo, "event", appendTags(fields, properties))
}

func (l *ZapLogger) LogDuration(operation string, elapsed time.Duration, tags map[string]string) {
	fields := append(l.base(KindDuration),
		zap.String("operation", operation),
		zap.Float64("elapsed_ms", float64(elapsed)/float64(time.Millisecond)),
	)
	l.write(LevelInfo, "duration", appendTags(fields, tags))
}

func (l *ZapLogger) LogHealthCheck(component string, healthy bool, details string) {
	level := LevelInfo
	if !healthy {
		level = LevelWarning
	}
	fields := append(l.base(KindHealth),
		zap.String("health_component", component),
		zap.Bool("healthy", healthy),
	)
	if details != "" {
		fields = append(fields, zap.String("health_details", details))
	}
	l.write(level, "health_check", fields)
}

func (l *ZapLogger) LogStatus(name, value string, info map[string]string) {
	fields := append(l.base(KindStatus),
		zap.String("status_name", name),
		zap.String("status_value", value),
	)
	l.write(LevelInfo, "status", appendTags(fields, info))
}

func (l *ZapLogger) BeginScope(name string, properties map[string]string) *Scope {
	id := uuid.NewString()
	begin := append(l.base(KindScope),
		zap.String("scope_name", name),
		zap.String("scope_id", id),
		zap.String("scope_event", "begin"),
	)
	l.write(LevelInfo, "begin scope", appendTags(begin, properties))

	return newScope(name, id, func() {
		end := append(l.base(KindScope),
			zap.String("scope_name", name),
			zap.String("scope_id", id),
			zap.String("scope_event", "end"),
		)
		l.write(LevelInfo, "end scope", end)
	})
}

func (l *ZapLogger) SetCorrelationID(id string) {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()
	l.state.correlation = id
}

func (l *ZapLogger) CorrelationID() string {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()
	if l.state.correlation == "" {
		l.state.correlation = uuid.NewString()
	}
	return l.state.correlation
}

func appendTags(fields []zap.Field, tags map[string]string) []zap.Field {
	for k, v := range tags {
		fields = append(fields, zap.String("tag_"+k, v))
	}
	return fields
}
