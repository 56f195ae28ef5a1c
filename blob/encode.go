package blob

import (
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/nfold/compress"
	"github.com/arloliu/nfold/endian"
	"github.com/arloliu/nfold/errs"
	"github.com/arloliu/nfold/internal/options"
	"github.com/arloliu/nfold/internal/pool"
	"github.com/arloliu/nfold/ndarray"
)

// EncodeArray serializes an unmasked array. See Encode.
func EncodeArray[T Element](a *ndarray.Array[T], opts ...Option) ([]byte, error) {
	return Encode(ndarray.Unmasked(a), opts...)
}

// Encode serializes a (possibly masked) array into a self-contained blob.
// The element data is written in logical row-major order, so views are
// materialized as stored; aliasing is not preserved across a round trip.
func Encode[T Element](m *ndarray.Masked[T], opts ...Option) ([]byte, error) {
	cfg := newEncodeConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	dtype, err := dtypeOf[T]()
	if err != nil {
		return nil, err
	}

	shape := m.Data.Shape()
	for _, dim := range shape {
		if uint64(dim) > math.MaxUint32 {
			return nil, fmt.Errorf("%w: dimension %d exceeds uint32", errs.ErrInvalidShape, dim)
		}
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	// Scratch buffer for the uncompressed sections; the compressed copies
	// below are what ends up in the blob.
	scratch := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(scratch)

	engine := endian.GetLittleEndianEngine()

	scratch.Grow(m.Data.Len() * dtype.Size())
	scratch.B = appendElements(scratch.B, engine, m.Data.Ravel())
	payload, err := codec.Compress(scratch.B)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	header := NewHeader(dtype, cfg.compression, m.Data.Rank())
	header.DataLen = uint64(scratch.Len())
	header.PayloadSize = uint32(len(payload))
	if !cfg.checksum {
		header.Flag &^= flagHasChecksum
	}

	var maskSection []byte
	if m.HasMask() {
		maskBytes := make([]byte, 0, m.Mask.Len())
		for _, invalid := range m.Mask.Ravel() {
			b := byte(0)
			if invalid {
				b = 1
			}
			maskBytes = append(maskBytes, b)
		}

		if maskSection, err = codec.Compress(maskBytes); err != nil {
			return nil, fmt.Errorf("failed to compress mask: %w", err)
		}

		header.Flag |= flagHasMask
		header.MaskLen = uint64(len(maskBytes))
		header.MaskSize = uint32(len(maskSection))
	}

	total := HeaderSize + 4*len(shape) + len(payload) + len(maskSection)
	if cfg.checksum {
		total += ChecksumSize
	}

	out := make([]byte, 0, total)
	out = header.AppendTo(out)
	for _, dim := range shape {
		out = engine.AppendUint32(out, uint32(dim))
	}
	out = append(out, payload...)
	out = append(out, maskSection...)

	if cfg.checksum {
		out = engine.AppendUint64(out, xxhash.Sum64(out))
	}

	return out, nil
}

// appendElements writes vals little-endian onto buf.
func appendElements[T Element](buf []byte, engine endian.EndianEngine, vals []T) []byte {
	switch v := any(vals).(type) {
	case []float64:
		for _, x := range v {
			buf = engine.AppendUint64(buf, math.Float64bits(x))
		}
	case []float32:
		for _, x := range v {
			buf = engine.AppendUint32(buf, math.Float32bits(x))
		}
	case []int64:
		for _, x := range v {
			buf = engine.AppendUint64(buf, uint64(x))
		}
	case []int32:
		for _, x := range v {
			buf = engine.AppendUint32(buf, uint32(x))
		}
	case []uint8:
		buf = append(buf, v...)
	}

	return buf
}
