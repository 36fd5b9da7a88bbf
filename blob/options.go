package blob

import (
	"github.com/arloliu/natives/endian"
	"github.com/arloliu/natives/internal/options"
)

// decodeConfig holds decode-time settings shared by the cursor and the store
// decoder.
type decodeConfig struct {
	engine endian.EndianEngine
}

func newDecodeConfig() *decodeConfig {
	return &decodeConfig{engine: endian.GetLittleEndianEngine()}
}

func applyDecodeOptions(cfg *decodeConfig, opts ...DecodeOption) error {
	return options.Apply(cfg, opts...)
}

// DecodeOption is a functional option for configuring blob decoding.
type DecodeOption = options.Option[*decodeConfig]

// WithLittleEndian reads length fields little-endian. This is the default.
func WithLittleEndian() DecodeOption {
	return options.NoError(func(cfg *decodeConfig) {
		cfg.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian reads length fields big-endian, for blobs produced by a
// big-endian encoder. The byte order is an out-of-band agreement with the
// encoder; a mismatch surfaces as errs.ErrTruncatedBlob or
// errs.ErrTrailingBytes during load.
func WithBigEndian() DecodeOption {
	return options.NoError(func(cfg *decodeConfig) {
		cfg.engine = endian.GetBigEndianEngine()
	})
}

// BuilderOption is a functional option for configuring the Builder.
type BuilderOption = options.Option[*Builder]

// WithBuilderLittleEndian emits length fields little-endian. This is the
// default.
func WithBuilderLittleEndian() BuilderOption {
	return options.NoError(func(b *Builder) {
		b.engine = endian.GetLittleEndianEngine()
	})
}

// WithBuilderBigEndian emits length fields big-endian.
func WithBuilderBigEndian() BuilderOption {
	return options.NoError(func(b *Builder) {
		b.engine = endian.GetBigEndianEngine()
	})
}
