// Package compress provides compression and decompression codecs for
// encoded column sections.
//
// Column blocks store data in two stages:
//
//  1. **Encoding**: Exploits patterns in the data (run-length, dictionary)
//  2. **Compression**: Further reduces the serialized sections with
//     general-purpose algorithms
//
// This package implements the second stage. Each column block carries two
// sections (values/dictionary and lengths/indices) and both pass through
// the same codec, chosen per block:
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// CreateCodec maps a format.CompressionType to its implementation:
//
//	codec, err := compress.CreateCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(section)
//
// # Supported Algorithms
//
// **NoOp** (format.CompressionNone) passes data through untouched. Use when
// the encoded sections are already dense (dictionary indices over a tiny
// dictionary, long-run RLE) or when CPU matters more than storage.
//
// **Zstandard** (format.CompressionZstd) gives the best ratio at moderate
// speed. Best for cold storage and network transport of string-heavy
// columns. Two implementations sit behind build tags: cgo builds use the
// valyala/gozstd bindings, pure Go builds use klauspost/compress/zstd.
// Both emit standard Zstd frames.
//
// **S2** (format.CompressionS2) is the Snappy-compatible format tuned for
// throughput. Best default for numeric sections on the ingest path.
//
// **LZ4** (format.CompressionLZ4) decompresses fastest. Best for
// query-heavy workloads where blocks are decoded far more often than they
// are encoded. Uses the block format, so decompression sizes buffers
// adaptively.
//
// # Algorithm Selection Guide
//
// | Workload Type       | Recommended | Reason                         |
// |---------------------|-------------|--------------------------------|
// | Storage-constrained | Zstd        | Best compression ratio         |
// | Ingest-heavy        | S2          | Balanced speed and compression |
// | Query-heavy         | LZ4         | Fastest decompression          |
// | CPU-constrained     | None        | No compression overhead        |
//
// String dictionaries compress well under Zstd (3-5x is common); uint32
// index and length sections are already small and often do fine with S2 or
// no compression at all.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use. The LZ4 and pure
// Go Zstd paths share internal sync.Pool instances; each call gets its own
// pooled compressor state.
//
// # Error Handling
//
// Compression errors are rare. Decompression errors indicate corrupted
// input or a codec mismatch and are returned verbatim from the underlying
// library, wrapped with context where the library's error lacks it. Callers
// decode blocks through the colblock package, which verifies the block
// checksum before decompressing, so codec-level errors there point at bugs
// rather than bit rot.
package compress
