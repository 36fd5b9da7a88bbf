// Package blob implements the natives wire format: the Cursor that walks an
// immutable byte buffer, the Store decoder that reconstructs named script
// collections from it, and the Builder that emits the same format for tests
// and fixtures.
//
// # Wire Format
//
// A loadable blob is two stores back to back, each laid out as:
//
//	debuggerCount:uint32
//	debuggerCount × (nameLen:uint32 name sourceLen:uint32 source)
//	libraryCount:uint32
//	libraryCount × (nameLen:uint32 name sourceLen:uint32 source)
//
// All integers share one byte order, little-endian by default; name and
// source are raw byte sequences with no terminator. The format has no header,
// magic, or padding, so the encoder and decoder must agree on the byte order
// out-of-band.
//
// # Zero-Copy Decoding
//
// Decoding never copies script data: every name and source a Store serves is
// a subslice of the blob handed to the cursor. The blob must therefore stay
// valid and unmodified for as long as any Store decoded from it is in use.
//
// # Decoding Workflow
//
//	cursor, err := blob.NewCursor(data)
//	if err != nil { ... }
//	store, err := blob.DecodeStore(cursor)
//	if err != nil { ... }
//	index, err := store.IndexOf([]byte("runtime"))
//
// Most embedders do not use this package directly; the natives package's
// loader decodes both stores and installs them into a registry.
package blob
