package compress

// ZstdCodec compresses with Zstandard. It trades speed for the best ratio
// of the available codecs, which suits archival of large arrays.
//
// Two implementations exist: a pure-Go one (default) and a cgo one backed
// by libzstd, selected with the "zstdcgo" build tag.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstandard codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
