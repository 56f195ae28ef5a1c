package blob

import (
	"fmt"

	"github.com/arloliu/nfold/compress"
	"github.com/arloliu/nfold/endian"
	"github.com/arloliu/nfold/errs"
)

// MagicNumber identifies an nfold array blob.
const MagicNumber uint16 = 0xFA1D

// HeaderSize is the fixed size of the blob header in bytes.
const HeaderSize = 32

// ChecksumSize is the size of the trailing xxhash64 checksum in bytes.
const ChecksumSize = 8

// Header flag bits.
const (
	flagLittleEndian uint8 = 1 << 0
	flagHasMask      uint8 = 1 << 1
	flagHasChecksum  uint8 = 1 << 2
)

// Header is the fixed-size blob header.
type Header struct {
	Flag        uint8
	DType       DType
	Compression compress.Type
	Rank        uint8
	DataLen     uint64 // uncompressed payload bytes
	MaskLen     uint64 // uncompressed mask bytes, 0 when absent
	PayloadSize uint32 // compressed payload bytes
	MaskSize    uint32 // compressed mask bytes
}

// NewHeader creates a header for the given dtype, compression and rank,
// with the little-endian and checksum flags set.
func NewHeader(dtype DType, comp compress.Type, rank int) *Header {
	return &Header{
		Flag:        flagLittleEndian | flagHasChecksum,
		DType:       dtype,
		Compression: comp,
		Rank:        uint8(rank),
	}
}

// HasMask reports whether the blob carries a mask section.
func (h *Header) HasMask() bool {
	return h.Flag&flagHasMask != 0
}

// HasChecksum reports whether the blob ends with a checksum.
func (h *Header) HasChecksum() bool {
	return h.Flag&flagHasChecksum != 0
}

// AppendTo appends the serialized header to buf and returns the extended
// slice.
func (h *Header) AppendTo(buf []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	buf = engine.AppendUint16(buf, MagicNumber)
	buf = append(buf, h.Flag, uint8(h.DType), uint8(h.Compression), h.Rank, 0, 0)
	buf = engine.AppendUint64(buf, h.DataLen)
	buf = engine.AppendUint64(buf, h.MaskLen)
	buf = engine.AppendUint32(buf, h.PayloadSize)
	buf = engine.AppendUint32(buf, h.MaskSize)

	return buf
}

// Parse reads and validates a serialized header.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: need %d bytes, got %d", errs.ErrInvalidHeaderSize, HeaderSize, len(data))
	}

	engine := endian.GetLittleEndianEngine()

	if magic := engine.Uint16(data[0:2]); magic != MagicNumber {
		return fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagicNumber, magic)
	}

	h.Flag = data[2]
	h.DType = DType(data[3])
	h.Compression = compress.Type(data[4])
	h.Rank = data[5]
	h.DataLen = engine.Uint64(data[8:16])
	h.MaskLen = engine.Uint64(data[16:24])
	h.PayloadSize = engine.Uint32(data[24:28])
	h.MaskSize = engine.Uint32(data[28:32])

	if !h.DType.IsValid() {
		return fmt.Errorf("%w: tag 0x%02X", errs.ErrInvalidDType, uint8(h.DType))
	}
	if !h.Compression.IsValid() {
		return fmt.Errorf("unsupported compression type: %s", h.Compression)
	}

	return nil
}
