// Package result provides the universal return contract for AIRES service
// operations.
//
// Every boundary-crossing operation returns a Result[T] rather than signaling
// expected failures (missing input, not found, storage trouble) through
// panics or bare errors. Callers branch on IsSuccess before touching the
// value; error codes are stable strings that callers dispatch on without
// parsing messages.
package result

// Error codes returned by AIRES services. These strings are part of the
// consumer contract - new call sites add new codes rather than reusing an
// unrelated one.
const (
	// CodeInvalidInput indicates a caller precondition was violated.
	// Never retried; surfaced immediately.
	CodeInvalidInput = "INVALID_INPUT"

	// CodeNotFound indicates an expected absence. An error for Load/Delete,
	// not for List (an empty directory lists successfully as empty).
	CodeNotFound = "NOT_FOUND"

	// CodeSaveError indicates a storage-layer failure during Save.
	CodeSaveError = "SAVE_ERROR"

	// CodeLoadError indicates a storage-layer failure during Load.
	CodeLoadError = "LOAD_ERROR"

	// CodeListError indicates a storage-layer failure during List.
	CodeListError = "LIST_ERROR"

	// CodeDeleteError indicates a storage-layer failure during Delete.
	CodeDeleteError = "DELETE_ERROR"

	// CodeCancelled indicates a caller-initiated abort via context
	// cancellation or deadline. Never retried automatically and never
	// miscategorized as a storage failure.
	CodeCancelled = "CANCELLED"
)

// Result is a discriminated success/failure value.
//
// Exactly one of {value, error pair} is populated: a success Result carries a
// value and empty error fields; a failure Result carries a code and message
// (and optionally a cause) and its value is the zero value of T. Reading the
// value of a failure is a programmer error - it is a documented precondition,
// not a runtime-checked one.
//
// Results are constructed once by the operation that determines the outcome
// and are immutable afterwards.
type Result[T any] struct {
	ok      bool
	value   T
	code    string
	message string
	cause   error
}

// Success constructs a successful Result carrying value.
func Success[T any](value T) Result[T] {
	return Result[T]{ok: true, value: value}
}

// Failure constructs a failed Result with a stable error code and a
// human-readable message. The message carries no stack traces or
// implementation detail; that belongs in the cause, if any.
func Failure[T any](code, message string) Result[T] {
	return Result[T]{code: code, message: message}
}

// FailureWithCause constructs a failed Result that records the underlying
// error alongside the code and message.
func FailureWithCause[T any](code, message string, cause error) Result[T] {
	return Result[T]{code: code, message: message, cause: cause}
}

// IsSuccess reports whether the Result carries a value.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether the Result carries an error pair.
func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Value returns the carried value. Valid only when IsSuccess is true;
// for a failure it returns the zero value of T.
func (r Result[T]) Value() T {
	return r.value
}

// Code returns the error code, or "" for a success.
func (r Result[T]) Code() string {
	return r.code
}

// Message returns the human-readable error message, or "" for a success.
func (r Result[T]) Message() string {
	return r.message
}

// Cause returns the underlying error, if one was recorded. Nil for
// successes and for failures constructed without a cause.
func (r Result[T]) Cause() error {
	return r.cause
}

// IsCode reports whether the Result is a failure with the given code.
func (r Result[T]) IsCode(code string) bool {
	return !r.ok && r.code == code
}

// String renders the Result for diagnostics. Not part of the consumer
// contract - callers dispatch on Code, never on this text.
func (r Result[T]) String() string {
	if r.ok {
		return "Success"
	}
	if r.message == "" {
		return "Failure(" + r.code + ")"
	}
	return "Failure(" + r.code + ": " + r.message + ")"
}
