package blob

import (
	"fmt"

	"github.com/arloliu/nfold/compress"
	"github.com/arloliu/nfold/internal/options"
)

// Option configures Encode.
type Option = options.Option[*encodeConfig]

type encodeConfig struct {
	compression compress.Type
	checksum    bool
}

func newEncodeConfig() *encodeConfig {
	return &encodeConfig{
		compression: compress.TypeNone,
		checksum:    true,
	}
}

// WithCompression selects the codec for the payload and mask sections.
// Default compress.TypeNone.
func WithCompression(t compress.Type) Option {
	return options.New(func(c *encodeConfig) error {
		if !t.IsValid() {
			return fmt.Errorf("unsupported compression type: %s", t)
		}
		c.compression = t

		return nil
	})
}

// WithoutChecksum omits the trailing xxhash64 checksum. Intended for
// ephemeral in-process blobs where integrity is guaranteed elsewhere.
func WithoutChecksum() Option {
	return options.NoError(func(c *encodeConfig) {
		c.checksum = false
	})
}
