package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedZap() (*ZapLogger, *observer.ObservedLogs) {
	core, observed := observer.New(zapcore.DebugLevel)
	return NewZapLogger(zap.New(core)), observed
}

func TestZapLogger_MessageLevels(t *testing.T) {
	log, observed := newObservedZap()
	log.SetCorrelationID("corr-zap")

	log.LogDebug("d")
	log.LogInfo("i")
	log.LogWarning("w")
	log.LogError(nil, "e")

	entries := observed.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)

	for _, e := range entries {
		assert.Equal(t, "corr-zap", e.ContextMap()["correlation_id"])
		assert.Equal(t, "message", e.ContextMap()["kind"])
	}
}

func TestZapLogger_CriticalAndFatalMapToErrorWithSeverity(t *testing.T) {
	log, observed := newObservedZap()

	log.LogCritical(errors.New("boom"), "critical failure")
	log.LogFatal(nil, "fatal failure")

	entries := observed.All()
	require.Len(t, entries, 2, "LogFatal must not terminate the process")
	for _, e := range entries {
		assert.Equal(t, zapcore.ErrorLevel, e.Level)
		assert.Equal(t, "critical", e.ContextMap()["severity"])
	}
}

func TestZapLogger_ComponentTagging(t *testing.T) {
	log, observed := newObservedZap()
	store := log.WithComponent("BookletStore")

	store.LogInfo("tagged")
	log.LogInfo("untagged")

	entries := observed.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "BookletStore", entries[0].ContextMap()["component"])
	_, hasComponent := entries[1].ContextMap()["component"]
	assert.False(t, hasComponent)
}

func TestZapLogger_CorrelationSharedAcrossComponents(t *testing.T) {
	log, observed := newObservedZap()
	store := log.WithComponent("BookletStore")

	store.SetCorrelationID("corr-shared")
	log.LogInfo("root")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "corr-shared", entries[0].ContextMap()["correlation_id"])
}

func TestZapLogger_StructuredRecords(t *testing.T) {
	log, observed := newObservedZap()

	log.LogMetric("queue_depth", 7, map[string]string{"stage": "deepseek"})
	log.LogDuration("Save", 40*time.Millisecond, nil)
	log.LogHealthCheck("store", false, "unreachable")
	log.LogStatus("pipeline", "draining", nil)
	log.LogEvent("booklet_generated", nil)

	entries := observed.All()
	require.Len(t, entries, 5)

	metric := entries[0].ContextMap()
	assert.Equal(t, "metric", metric["kind"])
	assert.Equal(t, "queue_depth", metric["metric_name"])
	assert.Equal(t, 7.0, metric["metric_value"])
	assert.Equal(t, "deepseek", metric["tag_stage"])

	duration := entries[1].ContextMap()
	assert.Equal(t, "Save", duration["operation"])
	assert.Equal(t, 40.0, duration["elapsed_ms"])

	health := entries[2]
	assert.Equal(t, zapcore.WarnLevel, health.Level)
	assert.Equal(t, false, health.ContextMap()["healthy"])

	status := entries[3].ContextMap()
	assert.Equal(t, "pipeline", status["status_name"])
	assert.Equal(t, "draining", status["status_value"])

	event := entries[4].ContextMap()
	assert.Equal(t, "booklet_generated", event["event_name"])
}

func TestZapLogger_ScopeBeginEnd(t *testing.T) {
	log, observed := newObservedZap()

	scope := log.BeginScope("unit", map[string]string{"k": "v"})
	scope.End()
	scope.End()

	entries := observed.All()
	require.Len(t, entries, 2, "double End must not emit twice")
	assert.Equal(t, "begin", entries[0].ContextMap()["scope_event"])
	assert.Equal(t, "v", entries[0].ContextMap()["tag_k"])
	assert.Equal(t, "end", entries[1].ContextMap()["scope_event"])
	assert.Equal(t, entries[0].ContextMap()["scope_id"], entries[1].ContextMap()["scope_id"])
}

func TestZapLogger_MethodEntryExit(t *testing.T) {
	log, observed := newObservedZap()

	log.LogMethodEntry("Load")
	log.LogMethodExit("Load")

	entries := observed.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "ENTRY", entries[0].Message)
	assert.Equal(t, "EXIT", entries[1].Message)
	assert.Equal(t, "Load", entries[0].ContextMap()["operation"])
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level, "trace rides zap's debug level")
}

func TestBuildZap(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		format  string
		wantErr bool
	}{
		{"json info", LevelInfo, "json", false},
		{"text debug", LevelDebug, "text", false},
		{"default format", LevelWarning, "", false},
		{"bad format", LevelInfo, "xml", true},
		{"bad level", Level("loud"), "json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zl, err := BuildZap(tt.level, tt.format)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, zl)
			_ = zl.Sync()
		})
	}
}

func TestNopLogger_CorrelationStillWorks(t *testing.T) {
	log := NewNopLogger()

	assert.NotEmpty(t, log.CorrelationID())
	log.SetCorrelationID("corr-nop")
	assert.Equal(t, "corr-nop", log.CorrelationID())

	scope := log.WithComponent("x").BeginScope("unit", nil)
	scope.End()
	scope.End()
}
