// Package compress provides the compression codecs used by the nfold blob
// format for array payload and mask sections.
package compress

import (
	"fmt"
)

// Type identifies a compression algorithm in the blob header.
type Type uint8

const (
	// TypeNone stores sections uncompressed.
	TypeNone Type = 0x1
	// TypeZstd uses Zstandard: best ratio, slower than the others.
	TypeZstd Type = 0x2
	// TypeS2 uses S2 (Snappy-compatible): fastest, moderate ratio.
	TypeS2 Type = 0x3
	// TypeLZ4 uses LZ4 block compression: fast with a reasonable ratio.
	TypeLZ4 Type = 0x4
)

// String returns the codec name.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeZstd:
		return "zstd"
	case TypeS2:
		return "s2"
	case TypeLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// IsValid reports whether t is a known codec.
func (t Type) IsValid() bool {
	switch t {
	case TypeNone, TypeZstd, TypeS2, TypeLZ4:
		return true
	default:
		return false
	}
}

// Compressor compresses a section payload.
//
// The returned slice is newly allocated and owned by the caller; the input
// is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor. It validates the input format and
// returns an error for corrupted or mismatched data.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCodec(),
	TypeZstd: NewZstdCodec(),
	TypeS2:   NewS2Codec(),
	TypeLZ4:  NewLZ4Codec(),
}

// GetCodec returns the built-in Codec for the given type.
func GetCodec(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}
