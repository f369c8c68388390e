package booklet

import (
	"fmt"
	"path"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"aires/internal/result"
)

// Booklet is one stored artifact. The payload is opaque to the store; the
// pipeline that generated it owns its format.
//
// Records are not mutated in place: an "update" is a new Save, which
// re-derives the path. ID and Path are both unique across the store.
type Booklet struct {
	// ID is the booklet's stable unique identifier (a uuid string).
	// Save assigns one if empty.
	ID string `json:"id"`

	// Directory is the partition key List groups by.
	Directory string `json:"directory"`

	// Path is the resolved storage path, unique across the store.
	// Assigned by Save.
	Path string `json:"path"`

	// Payload is the artifact body, opaque to the store.
	Payload []byte `json:"payload"`

	// SavedAt is the UTC save timestamp. Assigned by Save.
	SavedAt time.Time `json:"saved_at"`
}

// clone returns an independent copy so store internals never alias caller
// memory.
func (b *Booklet) clone() *Booklet {
	out := *b
	if b.Payload != nil {
		out.Payload = make([]byte, len(b.Payload))
		copy(out.Payload, b.Payload)
	}
	return &out
}

// normalizePath NFC-normalizes and cleans a storage path or directory so
// visually identical keys cannot alias distinct entries. Storage paths are
// slash-separated keys, not OS paths.
func normalizePath(p string) string {
	return path.Clean(norm.NFC.String(p))
}

// resolvePath derives the storage path for a booklet saved into dir at ts.
// Distinct ids or distinct save instants yield distinct paths.
func resolvePath(dir, id string, ts time.Time) string {
	return normalizePath(fmt.Sprintf("%s/booklet_%s_%d.json", dir, id, ts.UnixNano()))
}

// blank reports whether s is empty or whitespace-only.
func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// cancelled builds the Failure for a caller-initiated abort. Cancellation
// is surfaced under its own code, never miscategorized as a storage
// failure.
func cancelled[T any](operation string, cause error) result.Result[T] {
	return result.FailureWithCause[T](result.CodeCancelled, operation+" cancelled by caller", cause)
}
