package blob

import (
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/nfold/compress"
	"github.com/arloliu/nfold/endian"
	"github.com/arloliu/nfold/errs"
	"github.com/arloliu/nfold/ndarray"
)

// Decode deserializes a blob produced by Encode. The requested element type
// must match the blob's dtype tag.
func Decode[T Element](data []byte) (*ndarray.Masked[T], error) {
	var header Header
	if err := header.Parse(data); err != nil {
		return nil, err
	}

	want, err := dtypeOf[T]()
	if err != nil {
		return nil, err
	}
	if header.DType != want {
		return nil, fmt.Errorf("%w: blob holds %s, requested %s",
			errs.ErrInvalidDType, header.DType, want)
	}

	shapeEnd := HeaderSize + 4*int(header.Rank)
	payloadEnd := shapeEnd + int(header.PayloadSize)
	maskEnd := payloadEnd + int(header.MaskSize)
	total := maskEnd
	if header.HasChecksum() {
		total += ChecksumSize
	}
	if len(data) < total {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrPayloadTruncated, total, len(data))
	}

	engine := endian.GetLittleEndianEngine()

	if header.HasChecksum() {
		stored := engine.Uint64(data[maskEnd : maskEnd+ChecksumSize])
		if sum := xxhash.Sum64(data[:maskEnd]); sum != stored {
			return nil, fmt.Errorf("%w: computed 0x%016x, stored 0x%016x",
				errs.ErrChecksumMismatch, sum, stored)
		}
	}

	shape := make([]int, header.Rank)
	count := 1
	for i := range shape {
		shape[i] = int(engine.Uint32(data[HeaderSize+4*i : HeaderSize+4*i+4]))
		count *= shape[i]
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(data[shapeEnd:payloadEnd])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}
	if uint64(len(payload)) != header.DataLen || len(payload) != count*want.Size() {
		return nil, fmt.Errorf("%w: payload %d bytes, expected %d for %d elements",
			errs.ErrPayloadTruncated, len(payload), count*want.Size(), count)
	}

	arr, err := ndarray.FromSlice(decodeElements[T](payload, count, engine), shape...)
	if err != nil {
		return nil, err
	}

	result := ndarray.Unmasked(arr)
	if header.HasMask() {
		maskBytes, derr := codec.Decompress(data[payloadEnd:maskEnd])
		if derr != nil {
			return nil, fmt.Errorf("failed to decompress mask: %w", derr)
		}
		if uint64(len(maskBytes)) != header.MaskLen || len(maskBytes) != count {
			return nil, fmt.Errorf("%w: mask %d bytes, expected %d",
				errs.ErrPayloadTruncated, len(maskBytes), count)
		}

		flags := make([]bool, count)
		for i, b := range maskBytes {
			flags[i] = b != 0
		}
		if result.Mask, err = ndarray.FromSlice(flags, shape...); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// decodeElements reads count little-endian elements from data.
func decodeElements[T Element](data []byte, count int, engine endian.EndianEngine) []T {
	out := make([]T, count)
	switch o := any(out).(type) {
	case []float64:
		for i := range o {
			o[i] = math.Float64frombits(engine.Uint64(data[8*i : 8*i+8]))
		}
	case []float32:
		for i := range o {
			o[i] = math.Float32frombits(engine.Uint32(data[4*i : 4*i+4]))
		}
	case []int64:
		for i := range o {
			o[i] = int64(engine.Uint64(data[8*i : 8*i+8]))
		}
	case []int32:
		for i := range o {
			o[i] = int32(engine.Uint32(data[4*i : 4*i+4]))
		}
	case []uint8:
		copy(o, data)
	}

	return out
}
