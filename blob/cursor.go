package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/natives/endian"
	"github.com/arloliu/natives/errs"
)

// intWidth is the encoded width in bytes of every integer field in the wire
// format: debugger/library counts and name/source lengths.
const intWidth = 4

// Cursor is a sequential, forward-only reader over an immutable byte buffer.
//
// It supports exactly the primitives the wire format needs: fixed-width
// integers and length-prefixed byte spans. There is no backtracking and no
// random access; every read advances the position monotonically.
//
// Spans returned by ReadBlob are views into the wrapped buffer, not copies.
// The buffer must stay valid and unmodified for as long as any span decoded
// from it is in use.
//
// Note: The Cursor is NOT thread-safe. Each cursor should be used by a single
// goroutine at a time.
type Cursor struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
}

// NewCursor creates a Cursor over data.
//
// Length fields are read little-endian unless WithBigEndian is given; the
// byte order must match the encoder that produced the blob.
func NewCursor(data []byte, opts ...DecodeOption) (*Cursor, error) {
	cfg := newDecodeConfig()
	if err := applyDecodeOptions(cfg, opts...); err != nil {
		return nil, err
	}

	return &Cursor{data: data, engine: cfg.engine}, nil
}

// ReadInt consumes one fixed-width unsigned integer at the current position
// and advances past it.
//
// Returns errs.ErrTruncatedBlob if fewer than intWidth bytes remain, or if
// the decoded value cannot be represented as a non-negative int32 (which only
// a corrupt or byte-order-mismatched blob produces).
func (c *Cursor) ReadInt() (int, error) {
	if len(c.data)-c.pos < intWidth {
		return 0, fmt.Errorf("%w: need %d bytes for int at offset %d, have %d",
			errs.ErrTruncatedBlob, intWidth, c.pos, len(c.data)-c.pos)
	}

	value := c.engine.Uint32(c.data[c.pos : c.pos+intWidth])
	if value > math.MaxInt32 {
		return 0, fmt.Errorf("%w: integer %d at offset %d out of range",
			errs.ErrTruncatedBlob, value, c.pos)
	}

	c.pos += intWidth

	return int(value), nil
}

// ReadBlob consumes a length-prefixed byte span: one integer giving the span
// length, then that many payload bytes. It advances past both.
//
// The returned slice is a zero-copy view into the wrapped buffer with its
// capacity clipped to the span, so appends by the caller cannot bleed into
// adjacent data.
//
// Returns errs.ErrTruncatedBlob if the buffer ends before the length field or
// the payload.
func (c *Cursor) ReadBlob() ([]byte, error) {
	length, err := c.ReadInt()
	if err != nil {
		return nil, err
	}

	if len(c.data)-c.pos < length {
		return nil, fmt.Errorf("%w: need %d payload bytes at offset %d, have %d",
			errs.ErrTruncatedBlob, length, c.pos, len(c.data)-c.pos)
	}

	span := c.data[c.pos : c.pos+length : c.pos+length]
	c.pos += length

	return span, nil
}

// HasMore reports whether unread bytes remain.
func (c *Cursor) HasMore() bool {
	return c.pos < len(c.data)
}

// Position returns the number of bytes consumed so far.
func (c *Cursor) Position() int {
	return c.pos
}
