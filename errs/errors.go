// Package errs defines the sentinel errors shared across the natives packages.
//
// Every failure in this subsystem occurs during or before runtime bootstrap,
// so callers typically treat all of these as unrecoverable configuration or
// sequencing faults. The sentinels exist so tests and embedders can identify
// the violated invariant with errors.Is before deciding to abort.
package errs

import "errors"

var (
	// ErrTruncatedBlob indicates the blob ended before a length field or its
	// payload could be read in full. It also covers length fields whose value
	// cannot be represented, which only a corrupt or mis-encoded blob produces.
	ErrTruncatedBlob = errors.New("truncated blob")

	// ErrTrailingBytes indicates bytes remain after the expected number of
	// stores were decoded: encoder/decoder format version skew.
	ErrTrailingBytes = errors.New("trailing bytes after last store")

	// ErrEmptyBlob indicates the loader was handed a nil or zero-length blob.
	ErrEmptyBlob = errors.New("empty blob")

	// ErrNotInitialized indicates a registry slot was read before it was
	// populated. This is a startup-sequencing bug in the embedder.
	ErrNotInitialized = errors.New("category not initialized")

	// ErrAlreadyInitialized indicates a second Set on an occupied registry
	// slot. Slots are set exactly once per process.
	ErrAlreadyInitialized = errors.New("category already initialized")

	// ErrNilSource indicates an attempt to install a nil source into a
	// registry slot.
	ErrNilSource = errors.New("nil script source")

	// ErrInvalidCategory indicates a category value outside the known set.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrUnknownScript indicates an IndexOf lookup for a name no script in
	// the store carries. Callers look up compiled-in identifiers, so absence
	// means the blob content does not match the build.
	ErrUnknownScript = errors.New("unknown script name")

	// ErrUnsupportedOperation indicates an operation that only the
	// compile-time-embedded store variant implements was invoked on a
	// blob-backed store.
	ErrUnsupportedOperation = errors.New("operation not supported by blob-backed store")

	// ErrDebuggerAfterLibrary indicates a debugger script was added to a
	// builder store that already holds library scripts. Debugger scripts form
	// the store's prefix and must be added first.
	ErrDebuggerAfterLibrary = errors.New("debugger script added after library script")

	// ErrNoStoreStarted indicates a builder script was added, or Finish was
	// called, before StartStore opened a store.
	ErrNoStoreStarted = errors.New("no store started")
)
