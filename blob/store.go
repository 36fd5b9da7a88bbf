package blob

import (
	"bytes"
	"fmt"

	"github.com/arloliu/natives/errs"
	"github.com/arloliu/natives/internal/hash"
)

// Store is an ordered, read-only collection of named scripts decoded from a
// blob.
//
// The first DebuggerCount entries are debugger scripts; the remainder are
// library scripts. Entry order is decode order and is a stable identity:
// callers address scripts by index.
//
// Name and source slices are zero-copy views into the decoded blob. The blob
// must stay valid and unmodified for the lifetime of the Store.
//
// A Store is immutable after decode and safe for concurrent use.
type Store struct {
	names         [][]byte
	sources       [][]byte
	debuggerCount int

	// byName maps hash.ID(name) to the first index carrying that hash.
	// IndexOf verifies bytes on a hit and falls back to a linear scan on a
	// collision, keeping lookup semantics byte-exact first-match.
	byName map[uint64]int
}

// DecodeStore materializes one Store from the cursor in a single pass.
//
// Wire layout, in cursor byte order:
//
//	debuggerCount:int
//	debuggerCount × (name:blob source:blob)
//	libraryCount:int
//	libraryCount × (name:blob source:blob)
//
// Any underlying read failure propagates as errs.ErrTruncatedBlob with
// context identifying the field that could not be read.
func DecodeStore(cursor *Cursor) (*Store, error) {
	store := &Store{}

	debuggerCount, err := cursor.ReadInt()
	if err != nil {
		return nil, fmt.Errorf("debugger count: %w", err)
	}
	if err := store.readPairs(cursor, debuggerCount); err != nil {
		return nil, fmt.Errorf("debugger scripts: %w", err)
	}

	libraryCount, err := cursor.ReadInt()
	if err != nil {
		return nil, fmt.Errorf("library count: %w", err)
	}
	if err := store.readPairs(cursor, libraryCount); err != nil {
		return nil, fmt.Errorf("library scripts: %w", err)
	}

	store.debuggerCount = debuggerCount
	store.buildNameIndex()

	return store, nil
}

// readPairs appends count (name, source) pairs from the cursor.
// The count is untrusted until its pairs decode, so nothing is preallocated
// from it; a lying count fails on the first missing pair instead of
// allocating.
func (s *Store) readPairs(cursor *Cursor, count int) error {
	for i := 0; i < count; i++ {
		name, err := cursor.ReadBlob()
		if err != nil {
			return fmt.Errorf("pair %d name: %w", i, err)
		}

		source, err := cursor.ReadBlob()
		if err != nil {
			return fmt.Errorf("pair %d source: %w", i, err)
		}

		s.names = append(s.names, name)
		s.sources = append(s.sources, source)
	}

	return nil
}

// buildNameIndex indexes the first occurrence of every name hash.
func (s *Store) buildNameIndex() {
	s.byName = make(map[uint64]int, len(s.names))
	for i, name := range s.names {
		id := hash.ID(name)
		if _, ok := s.byName[id]; !ok {
			s.byName[id] = i
		}
	}
}

// Count returns the total number of scripts, debugger plus library.
func (s *Store) Count() int {
	return len(s.names)
}

// DebuggerCount returns the number of debugger scripts at the front of the
// store.
func (s *Store) DebuggerCount() int {
	return s.debuggerCount
}

// ScriptName returns the name of the script at index.
//
// The index must be in [0, Count()); anything else is a programming error and
// panics. The returned slice is a view into the blob and must not be
// modified.
func (s *Store) ScriptName(index int) []byte {
	return s.names[index]
}

// ScriptSource returns the source of the script at index.
//
// The index must be in [0, Count()); anything else is a programming error and
// panics. The returned slice is a view into the blob and must not be
// modified.
func (s *Store) ScriptSource(index int) []byte {
	return s.sources[index]
}

// IndexOf returns the smallest index whose script name equals name
// byte-for-byte.
//
// Returns errs.ErrUnknownScript if no script carries the name. Callers look
// up compiled-in identifiers, so an unknown name means the blob does not
// match the build.
func (s *Store) IndexOf(name []byte) (int, error) {
	if i, ok := s.byName[hash.ID(name)]; ok && bytes.Equal(s.names[i], name) {
		return i, nil
	}

	// Hash miss or collision: the linear scan is authoritative.
	for i, candidate := range s.names {
		if bytes.Equal(candidate, name) {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrUnknownScript, name)
}

// RawScriptsSize reports the size of the concatenated raw source buffer.
//
// A blob-backed store keeps no such buffer; this always returns
// errs.ErrUnsupportedOperation. The operation exists on the shared source
// interface for the compile-time-embedded store variant.
func (s *Store) RawScriptsSize() (int, error) {
	return 0, fmt.Errorf("%w: RawScriptsSize", errs.ErrUnsupportedOperation)
}

// RawScriptsSource returns the concatenated raw source buffer.
//
// A blob-backed store keeps no such buffer; this always returns
// errs.ErrUnsupportedOperation. The operation exists on the shared source
// interface for the compile-time-embedded store variant.
func (s *Store) RawScriptsSource() ([]byte, error) {
	return nil, fmt.Errorf("%w: RawScriptsSource", errs.ErrUnsupportedOperation)
}

// SetRawSource replaces the raw source buffer.
//
// Blob-backed stores are populated only by decoding; this always returns
// errs.ErrUnsupportedOperation. A caller reaching it picked the wrong
// initialization path for this build.
func (s *Store) SetRawSource([]byte) error {
	return fmt.Errorf("%w: SetRawSource (blob-backed stores are populated by the loader)",
		errs.ErrUnsupportedOperation)
}
