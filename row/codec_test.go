package row

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/weftdata/weft/errs"
	"github.com/weftdata/weft/frame"
)

// buildFrame wraps a raw payload with a header of the given size, bypassing
// Encode so tests can exercise decode-side validation directly.
func buildFrame(t *testing.T, headerSize int, payload []byte) []byte {
	t.Helper()

	header := frame.NewHeader(len(payload)).Bytes()
	if headerSize == frame.LegacyHeaderSize {
		header = header[:frame.LegacyHeaderSize]
	}

	return append(header, payload...)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	values := []any{int64(42), "hello", true, nil, 3.25, []byte{0xDE, 0xAD}}

	data, err := Encode(values)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, Row(values), decoded)
}

func TestEncodeDecode_EmptyRow(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, 0, decoded.Arity())
}

func TestEncode_HeaderFields(t *testing.T) {
	data, err := Encode([]any{int64(1)})
	require.NoError(t, err)

	header, err := frame.ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, uint8(frame.KindRecord), header.Kind)
	require.Equal(t, len(data)-frame.HeaderSize, int(header.Length))
}

func TestDecode_TooShort(t *testing.T) {
	// One byte less than the canonical header can never be a valid record.
	_, err := Decode(make([]byte, frame.HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrMalformedFrame)
}

func TestDecode_WrongKindTag(t *testing.T) {
	data, err := Encode([]any{int64(1)})
	require.NoError(t, err)
	data[0] = 0x20

	_, err = Decode(data)
	require.ErrorIs(t, err, errs.ErrMalformedFrame)
	require.ErrorContains(t, err, "kind tag")
}

func TestDecode_LengthMismatch(t *testing.T) {
	data, err := Encode([]any{int64(1), "x"})
	require.NoError(t, err)

	t.Run("corrupted length field", func(t *testing.T) {
		corrupted := append([]byte(nil), data...)
		corrupted[5]++ // declared length no longer matches the payload

		_, err := Decode(corrupted)
		require.ErrorIs(t, err, errs.ErrMalformedFrame)
		require.ErrorContains(t, err, "declared payload length")
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := Decode(data[:len(data)-1])
		require.ErrorIs(t, err, errs.ErrMalformedFrame)
	})

	t.Run("trailing garbage", func(t *testing.T) {
		_, err := Decode(append(append([]byte(nil), data...), 0x00))
		require.ErrorIs(t, err, errs.ErrMalformedFrame)
	})
}

func TestDecode_MalformedPayload(t *testing.T) {
	// Structurally valid frame whose payload is a map, not an array.
	payload, err := msgpack.Marshal(map[string]any{"a": 1})
	require.NoError(t, err)

	_, err = Decode(buildFrame(t, frame.HeaderSize, payload))
	require.ErrorIs(t, err, errs.ErrMalformedPayload)
}

func TestEncodeDecode_Datetime(t *testing.T) {
	moment := time.Date(2024, 6, 15, 12, 30, 45, 0, time.Local)

	data, err := Encode([]any{"event", moment})
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, "event", decoded[0])

	got, ok := decoded[1].(time.Time)
	require.True(t, ok, "tagged pair should decode to time.Time, got %T", decoded[1])
	require.True(t, got.Equal(moment), "want %v, got %v", moment, got)
}

func TestDecode_DatetimePairShapes(t *testing.T) {
	tests := []struct {
		name    string
		payload []any
		check   func(t *testing.T, got any)
	}{
		{
			name:    "float seconds truncate",
			payload: []any{[]any{DatetimeMarker, 1700000000.9}},
			check: func(t *testing.T, got any) {
				ts, ok := got.(time.Time)
				require.True(t, ok)
				require.Equal(t, int64(1700000000), ts.Unix())
			},
		},
		{
			name:    "marker alone passes through",
			payload: []any{[]any{DatetimeMarker}},
			check: func(t *testing.T, got any) {
				require.IsType(t, []any{}, got)
			},
		},
		{
			name:    "non-numeric seconds pass through",
			payload: []any{[]any{DatetimeMarker, "soon"}},
			check: func(t *testing.T, got any) {
				require.IsType(t, []any{}, got)
			},
		},
		{
			name:    "other two-element pairs pass through",
			payload: []any{[]any{"__other__", int64(1)}},
			check: func(t *testing.T, got any) {
				require.IsType(t, []any{}, got)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := msgpack.Marshal(tt.payload)
			require.NoError(t, err)

			decoded, err := Decode(buildFrame(t, frame.HeaderSize, raw))
			require.NoError(t, err)
			require.Len(t, decoded, 1)
			tt.check(t, decoded[0])
		})
	}
}

func TestDecode_LegacyHeader(t *testing.T) {
	payload, err := msgpack.Marshal([]any{"legacy", int64(1)})
	require.NoError(t, err)
	legacy := buildFrame(t, frame.LegacyHeaderSize, payload)

	decoded, err := Decode(legacy, WithLegacyHeader())
	require.NoError(t, err)
	require.Equal(t, Row{"legacy", int64(1)}, decoded)

	// The same bytes fail canonical decoding: the length invariant cannot
	// hold for both header sizes.
	_, err = Decode(legacy)
	require.ErrorIs(t, err, errs.ErrMalformedFrame)
}

func TestDecode_NumericNormalization(t *testing.T) {
	payload, err := msgpack.Marshal([]any{int8(5), uint16(7), float32(1.5), uint64(1) << 63})
	require.NoError(t, err)

	decoded, err := Decode(buildFrame(t, frame.HeaderSize, payload))
	require.NoError(t, err)
	require.Equal(t, Row{int64(5), int64(7), 1.5, uint64(1) << 63}, decoded)
}

func TestEncode_PayloadTooLarge(t *testing.T) {
	huge := strings.Repeat("x", frame.MaxPayloadSize+1)

	_, err := Encode([]any{huge})
	require.ErrorIs(t, err, errs.ErrPayloadTooLarge)
}

func BenchmarkEncode(b *testing.B) {
	values := []any{int64(12345), "metric.name", 98.6, true, time.Now()}
	b.ResetTimer()
	for b.Loop() {
		if _, err := Encode(values); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	data, err := Encode([]any{int64(12345), "metric.name", 98.6, true, time.Now()})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for b.Loop() {
		if _, err := Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}
