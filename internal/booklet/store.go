package booklet

import (
	"context"

	"aires/internal/result"
)

// Store is the booklet persistence contract consumed by the AIRES pipeline.
//
// All operations are safe for concurrent use on one store instance and
// honor the caller's context: cancellation during a pending operation
// leaves the store either untouched or fully applied, never in between,
// and surfaces as a CANCELLED failure.
type Store interface {
	// Save persists the booklet under a path derived from its id and the
	// save timestamp inside dir, and returns the resolved path.
	// INVALID_INPUT for a nil booklet or blank dir. Re-saving an existing
	// id atomically replaces its previous path mapping.
	Save(ctx context.Context, b *Booklet, dir string) result.Result[string]

	// Load returns the booklet stored at path. NOT_FOUND if absent.
	Load(ctx context.Context, path string) result.Result[*Booklet]

	// List returns the paths of all booklets whose directory equals dir,
	// sorted lexicographically ascending. A directory with no booklets
	// lists successfully as empty.
	List(ctx context.Context, dir string) result.Result[[]string]

	// Delete removes the booklet stored at path. NOT_FOUND if absent;
	// a second Delete of the same path is therefore a NOT_FOUND failure
	// with no further state change.
	Delete(ctx context.Context, path string) result.Result[bool]
}
