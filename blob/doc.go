// Package blob implements a compact binary container for persisting a
// (possibly masked) ndarray.
//
// Layout, always little-endian:
//
//	header (32 bytes): magic, flags, dtype, compression, rank,
//	                   uncompressed payload/mask lengths,
//	                   compressed payload/mask lengths
//	shape:             rank x uint32
//	payload:           element data, row-major, compressed
//	mask:              one byte per element (0/1), compressed, optional
//	checksum:          xxhash64 of all preceding bytes, optional
//
// The payload and mask sections are compressed independently with the codec
// named in the header (none, zstd, s2 or lz4). The trailing checksum covers
// everything before it, so truncation and corruption are both detected
// before any array is materialized.
package blob
