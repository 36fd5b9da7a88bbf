// Package endian provides byte order utilities for the natives wire format.
//
// Every integer field in the wire format is byte-order sensitive and must
// match the external encoder exactly. This package combines the ByteOrder and
// AppendByteOrder interfaces from encoding/binary into a single EndianEngine
// interface so the decode cursor and the builder share one byte-order handle.
//
// The returned engines are immutable and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for byte order operations.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian from the
// standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the default byte
// order for natives blobs.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine, for embedders whose
// encoder emits big-endian length fields.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
