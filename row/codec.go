package row

import (
	"fmt"
	"math"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/weftdata/weft/errs"
	"github.com/weftdata/weft/frame"
	"github.com/weftdata/weft/internal/options"
	"github.com/weftdata/weft/internal/pool"
)

// DecoderConfig holds the decode-side configuration.
type DecoderConfig struct {
	headerSize int
}

// DecodeOption represents a functional option for configuring Decode.
// This is a type alias for the generic Option interface specialized for DecoderConfig.
type DecodeOption = options.Option[*DecoderConfig]

// WithLegacyHeader makes Decode accept the deprecated 6-byte compact header
// instead of the canonical 14-byte header. Encode is unaffected; new frames
// are always written with the canonical header.
func WithLegacyHeader() DecodeOption {
	return options.NoError(func(cfg *DecoderConfig) {
		cfg.headerSize = frame.LegacyHeaderSize
	})
}

// Encode serializes a tuple of values into a framed record.
//
// Every time.Time value is replaced by the [DatetimeMarker, epoch_seconds]
// pair before payload encoding, so producers and consumers agree on a single
// point-in-time representation independent of the payload encoder's native
// time support. All other values are passed to the MessagePack encoder as-is.
//
// Parameters:
//   - values: The tuple to serialize, in field order
//
// Returns:
//   - []byte: The framed record (14-byte header + MessagePack payload)
//   - error: errs.ErrPayloadTooLarge if the payload exceeds frame.MaxPayloadSize,
//     or the payload encoder's error for unsupported Go types
func Encode(values []any) ([]byte, error) {
	scratch, cleanup := pool.GetAnySlice(len(values))
	defer cleanup()

	for i, v := range values {
		if t, ok := v.(time.Time); ok {
			scratch[i] = []any{DatetimeMarker, t.Unix()}
		} else {
			scratch[i] = v
		}
	}

	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	// Reserve the header region; the length is known only after the payload
	// is written.
	buf.ExtendOrGrow(frame.HeaderSize)

	enc := msgpack.NewEncoder(buf)
	if err := enc.Encode(scratch); err != nil {
		return nil, fmt.Errorf("encode row payload: %w", err)
	}

	payloadLen := buf.Len() - frame.HeaderSize
	if payloadLen > frame.MaxPayloadSize {
		return nil, fmt.Errorf("%w: payload %d bytes, maximum %d", errs.ErrPayloadTooLarge, payloadLen, frame.MaxPayloadSize)
	}

	var header [frame.HeaderSize]byte
	frame.NewHeader(payloadLen).AppendTo(header[:0])
	copy(buf.Slice(0, frame.HeaderSize), header[:])

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// Decode parses a framed record back into a Row.
//
// The header is validated before the payload is read: inputs shorter than the
// header, a kind tag other than frame.KindRecord, or a declared payload length
// that does not match the actual payload all fail with errs.ErrMalformedFrame.
//
// On success the payload is decoded as a MessagePack array and post-processed:
// any top-level 2-element array whose first element is DatetimeMarker becomes
// a time.Time (local zone, second precision), and numeric widths are
// normalized to int64/uint64/float64.
//
// Parameters:
//   - data: The complete framed record
//   - opts: Optional configuration (see WithLegacyHeader)
//
// Returns:
//   - Row: The decoded tuple
//   - error: errs.ErrMalformedFrame on header violations,
//     errs.ErrMalformedPayload when the payload is not a MessagePack array
func Decode(data []byte, opts ...DecodeOption) (Row, error) {
	cfg := &DecoderConfig{headerSize: frame.HeaderSize}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	var (
		header frame.Header
		err    error
	)
	if cfg.headerSize == frame.LegacyHeaderSize {
		header, err = frame.ParseLegacyHeader(data)
	} else {
		header, err = frame.ParseHeader(data)
	}
	if err != nil {
		return nil, err
	}

	if err := header.Validate(len(data), cfg.headerSize); err != nil {
		return nil, err
	}

	var values []any
	if err := msgpack.Unmarshal(data[cfg.headerSize:], &values); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMalformedPayload, err)
	}

	for i, v := range values {
		values[i] = decodeField(v)
	}

	return Row(values), nil
}

// decodeField applies the datetime substitution and numeric normalization to
// a single top-level payload element.
func decodeField(v any) any {
	if pair, ok := v.([]any); ok && len(pair) == 2 {
		if marker, ok := pair[0].(string); ok && marker == DatetimeMarker {
			if sec, ok := epochSeconds(pair[1]); ok {
				return time.Unix(sec, 0)
			}
		}
	}

	return normalizeScalar(v)
}

// normalizeScalar widens MessagePack's size-optimized numeric types to the
// Row value set. Non-numeric values pass through unchanged.
func normalizeScalar(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case uint:
		return widenUint(uint64(n))
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return widenUint(n)
	case float32:
		return float64(n)
	default:
		return v
	}
}

// widenUint keeps values above math.MaxInt64 as uint64 so no magnitude is lost.
func widenUint(n uint64) any {
	if n > math.MaxInt64 {
		return n
	}

	return int64(n)
}

// epochSeconds interprets a decoded payload value as POSIX epoch seconds.
// Producers encode the seconds with whatever integer or float width is most
// compact, so every numeric shape is accepted. Float seconds truncate toward
// zero.
func epochSeconds(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		return int64(n), true
	case float32:
		return int64(n), true
	default:
		return 0, false
	}
}
