// Package natives loads a runtime's bundled built-in scripts from a single
// binary blob and serves per-category lookups for the rest of the process.
//
// The embedder hands the loader one blob at startup, produced out-of-process
// by the script bundler. The loader decodes it into read-only per-category
// stores; thereafter every part of the runtime resolves built-in scripts
// through the same category-keyed surface, without passing store references
// around.
//
// # Basic Usage
//
//	import "github.com/arloliu/natives"
//
//	// Once, during startup, before any lookups:
//	if err := natives.SetFromBlob(blobBytes); err != nil {
//	    // unrecoverable configuration fault
//	}
//
//	// Anywhere afterwards:
//	core := natives.For(natives.Core)
//	index, _ := core.IndexOf([]byte("runtime"))
//	source, _ := core.ScriptSource(index)
//
// Embedders that host multiple isolated runtimes, and tests, can use explicit
// registries via NewRegistry instead of the package-level default.
//
// # Lifetime
//
// Decoding is zero-copy: every script name and source is a view into the
// blob. The blob must stay valid and unmodified for as long as any decoded
// store is in use, normally the process lifetime.
//
// # Concurrency
//
// The subsystem performs no locking. Initialization (SetFromBlob and
// Registry.Set) must complete before concurrent reads begin; after that
// barrier everything is immutable and reads from any number of goroutines are
// safe.
package natives

import (
	"fmt"

	"github.com/arloliu/natives/blob"
)

// Category identifies one logical group of built-in scripts.
type Category uint8

const (
	// Core holds the always-available built-in libraries.
	// Decoded from the first store in the blob.
	Core Category = iota
	// Experimental holds built-ins gated behind runtime flags.
	// Decoded from the second store in the blob.
	Experimental
	// Shell holds the developer shell's own scripts. Populated by the shell
	// through Registry.Set, not by the blob loader.
	Shell
	// Testing holds test-harness scripts. Populated by the harness through
	// Registry.Set, not by the blob loader.
	Testing
)

// categoryCount is the number of registry slots.
const categoryCount = 4

// String returns the category name.
func (c Category) String() string {
	switch c {
	case Core:
		return "Core"
	case Experimental:
		return "Experimental"
	case Shell:
		return "Shell"
	case Testing:
		return "Testing"
	default:
		return "Unknown"
	}
}

// Source is the abstract query surface over one category's scripts.
//
// Two implementations back it: the blob-decoded blob.Store in this module,
// and a compressed, compile-time-embedded store that ships with the embedder.
// The raw-source operations (RawScriptsSize, RawScriptsSource, SetRawSource)
// are meaningful only for the embedded variant; the blob-backed store answers
// them with errs.ErrUnsupportedOperation so a caller on the wrong variant
// learns it from the error kind instead of silently getting empty data.
type Source interface {
	// Count returns the total number of scripts.
	Count() int
	// DebuggerCount returns the number of debugger scripts at the front of
	// the store.
	DebuggerCount() int
	// ScriptName returns the name of the script at index.
	// Out-of-range indices are a programming error and panic.
	ScriptName(index int) []byte
	// ScriptSource returns the source of the script at index.
	// Out-of-range indices are a programming error and panic.
	ScriptSource(index int) []byte
	// IndexOf returns the smallest index whose name matches byte-for-byte,
	// or errs.ErrUnknownScript.
	IndexOf(name []byte) (int, error)
	// RawScriptsSize reports the size of the concatenated raw source buffer.
	RawScriptsSize() (int, error)
	// RawScriptsSource returns the concatenated raw source buffer.
	RawScriptsSource() ([]byte, error)
	// SetRawSource replaces the raw source buffer.
	SetRawSource(raw []byte) error
}

var _ Source = (*blob.Store)(nil)

// defaultRegistry backs the package-level API for embedders that want a
// process-wide call surface.
var defaultRegistry = NewRegistry()

// Default returns the process-wide default registry, for embedders that
// prefer passing an explicit handle to components.
func Default() *Registry {
	return defaultRegistry
}

// SetFromBlob decodes data and installs its stores into the default registry.
// See Registry.SetFromBlob for the contract.
func SetFromBlob(data []byte, opts ...blob.DecodeOption) error {
	return defaultRegistry.SetFromBlob(data, opts...)
}

// MustSetFromBlob is SetFromBlob for boot paths where a bad blob is an
// unrecoverable configuration fault. It panics on any load error.
func MustSetFromBlob(data []byte, opts ...blob.DecodeOption) {
	if err := defaultRegistry.SetFromBlob(data, opts...); err != nil {
		panic(fmt.Sprintf("natives: %v", err))
	}
}

// For returns the Collection for category, backed by the default registry.
func For(category Category) Collection {
	return defaultRegistry.Collection(category)
}
