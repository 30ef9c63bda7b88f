// Package frame defines the binary record frame layout used by the row codec.
//
// A frame is a self-describing byte span: a fixed header followed by a
// length-validated payload. The header pins down the record kind and the exact
// payload size, so a decoder can reject truncated or mistagged input before
// touching the payload bytes.
//
// # Canonical Header (14 bytes)
//
//	Bytes  | Field    | Type   | Description
//	-------|----------|--------|------------------------------------------
//	0      | Kind     | nibble | Record-kind tag (high nibble, must be 0x1);
//	       |          |        | low nibble reserved
//	1      | Reserved | byte   | Written as zero, ignored on parse
//	2-5    | Length   | uint32 | Payload byte count, big-endian
//	6-13   | Reserved | bytes  | Written as zero, ignored on parse
//
// # Legacy Header (6 bytes)
//
// Older producers framed records with a compact 6-byte header: identical
// through byte 5, without the trailing reserved bytes. ParseLegacyHeader
// accepts it for backward-compatible decoding; nothing in this module writes
// it. Confirm which size a producing system actually puts on the wire before
// enabling legacy decoding.
//
// # Validation
//
// Three checks gate every decode, each failing with errs.ErrMalformedFrame:
//
//  1. The input must be at least as long as the header.
//  2. The kind tag must be KindRecord (0x1).
//  3. The declared payload length must equal the frame length minus the
//     header size.
//
// The 8 MiB MaxPayloadSize bound is enforced where frames are built; see the
// row package.
package frame
