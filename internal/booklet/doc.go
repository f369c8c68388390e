// Package booklet provides AIRES research-booklet persistence.
//
// A booklet is the opaque artifact the AI pipeline produces for one
// compiler-error batch. The store keeps two indices over the same record
// set - id to record and path to id - and keeps them mutually consistent:
// no caller ever observes a path that resolves to a missing record, even
// under concurrent Save and Delete.
//
// # Operations
//
// Save, Load, List, and Delete all return result.Result values and are
// instrumented with method entry/exit tracing via the canonical service
// base. Expected failures (nil booklet, blank path, missing record,
// cancellation) come back as Failure results with stable codes; panics are
// reserved for invariant violations and converted to Critical-logged
// failures at the operation boundary.
//
// # Path derivation
//
// Save resolves a storage path from the booklet id and a timestamp:
//
//	<dir>/booklet_<id>_<unixnano>.json
//
// so repeated saves of the same booklet produce distinct paths. Re-saving
// an id replaces its previous path mapping atomically; one path per id is
// the invariant, stale paths never leak into List.
//
// Paths are NFC-normalized before use as index keys so visually identical
// paths cannot alias distinct entries.
//
// # Backends
//
//   - MemoryStore: mutex-guarded in-memory reference implementation with an
//     optional artificial I/O delay that honors cancellation.
//   - SQLiteStore: durable backend; WAL mode, single-writer pool, schema
//     applied on open.
package booklet
