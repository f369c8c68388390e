package logging

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"aires/internal/testutil"
)

// TestGolden_LoggerCapture drives a fixed logging scenario through a
// MemoryLogger and compares the serialized capture against a golden file.
// The golden file is the source of truth for the entry layout consumed by
// log collectors.
//
// To regenerate:
//
//	go test ./internal/logging -run TestGolden_LoggerCapture -update
//
// Scope ids are uuids and therefore scrubbed to stable placeholders before
// comparison; everything else (fixed clock, fixed correlation id) is
// deterministic as produced.
func TestGolden_LoggerCapture(t *testing.T) {
	clock := testutil.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	log := NewMemoryLogger(clock)
	log.SetCorrelationID("corr-golden-0001")
	store := log.WithComponent("BookletStore")

	scope := store.BeginScope("persist-booklet", map[string]string{"directory": "/out"})
	clock.Advance(time.Second)
	store.LogMethodEntry("Save")
	clock.Advance(time.Second)
	store.LogInfo("booklet %s saved to %s", "b-1", "/out/booklet_b-1_1.json")
	clock.Advance(time.Second)
	store.LogMetric("booklets_saved", 1, map[string]string{"backend": "memory"})
	clock.Advance(time.Second)
	store.LogDuration("Save", 125*time.Millisecond, nil)
	clock.Advance(time.Second)
	store.LogHealthCheck("booklet-store", true, "2 booklets")
	clock.Advance(time.Second)
	store.LogStatus("pipeline", "idle", nil)
	clock.Advance(time.Second)
	store.LogError(errors.New("disk full"), "save failed for %s", "/out/full.json")
	clock.Advance(time.Second)
	store.LogMethodExit("Save")
	clock.Advance(time.Second)
	scope.End()

	entries := scrubScopeIDs(log.Entries())
	data, err := json.MarshalIndent(entries, "", "  ")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "logger_capture", append(data, '\n'))
}

// scrubScopeIDs replaces uuid scope ids with stable placeholders, numbered
// by order of first appearance.
func scrubScopeIDs(entries []Entry) []Entry {
	seen := map[string]string{}
	for i := range entries {
		if entries[i].ScopeID == "" {
			continue
		}
		stable, ok := seen[entries[i].ScopeID]
		if !ok {
			stable = fmt.Sprintf("scope-%d", len(seen)+1)
			seen[entries[i].ScopeID] = stable
		}
		entries[i].ScopeID = stable
	}
	return entries
}
