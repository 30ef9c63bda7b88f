package colblock

import (
	"fmt"

	"github.com/weftdata/weft/errs"
	"github.com/weftdata/weft/format"
	"github.com/weftdata/weft/internal/options"
)

// BlockConfig holds the encoder configuration for a column block.
type BlockConfig struct {
	encoding    format.EncodingType
	compression format.CompressionType
}

// Option is a functional option for configuring block encoding.
type Option = options.Option[*BlockConfig]

func defaultConfig() BlockConfig {
	return BlockConfig{
		encoding:    format.EncodingRLE,
		compression: format.CompressionNone,
	}
}

// WithEncoding sets the columnar encoding scheme for the block.
//
// Only run-length and dictionary encoding are valid block schemes; any
// other value fails at apply time with errs.ErrInvalidEncodingType.
func WithEncoding(encoding format.EncodingType) Option {
	return options.New(func(cfg *BlockConfig) error {
		switch encoding {
		case format.EncodingRLE, format.EncodingDict:
			cfg.encoding = encoding
			return nil
		default:
			return fmt.Errorf("%w: %s", errs.ErrInvalidEncodingType, encoding)
		}
	})
}

// WithCompression sets the codec applied to both block sections.
// The default is no compression.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(cfg *BlockConfig) error {
		if !compression.IsValid() {
			return fmt.Errorf("%w: 0x%X", errs.ErrInvalidCompressionType, uint8(compression))
		}
		cfg.compression = compression

		return nil
	})
}
