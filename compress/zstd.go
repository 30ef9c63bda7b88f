package compress

// ZstdCompressor compresses column sections with Zstandard.
//
// Zstd trades speed for ratio, making it the right pick when blocks are
// written once and read rarely:
//   - Cold storage and archival of encoded columns
//   - Network transmission where bandwidth is limited
//
// Two implementations exist behind build tags: with cgo enabled the
// valyala/gozstd bindings are used; without cgo the pure Go
// klauspost/compress/zstd implementation is used. Both produce standard
// Zstd frames and interoperate freely.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
