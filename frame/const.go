package frame

const (
	// Bit masks for byte 0
	KindMask     = 0xF0 // Mask for the record-kind tag (high nibble)
	ReservedMask = 0x0F // Mask for the reserved bits (low nibble, ignored on decode)

	// Record kinds (high nibble of byte 0)
	KindRecord = 0x1 // KindRecord identifies a framed tuple record.
)

// offsets and sizes in the frame
const (
	HeaderSize       = 14 // fixed canonical header size in bytes
	LegacyHeaderSize = 6  // deprecated compact header size in bytes
	LengthOffset     = 2  // byte offset where the payload length field starts (both variants)
	LengthSize       = 4  // payload length field size in bytes (uint32, big-endian)

	// MaxPayloadSize is the upper bound on a single record's payload.
	// Enforced when frames are built; decoding validates only the length
	// invariant so oversized historical frames remain readable.
	MaxPayloadSize = 8 << 20 // 8MiB
)
