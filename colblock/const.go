package colblock

// MagicNumber identifies a column block. It occupies the first two bytes of
// every block, little-endian.
const MagicNumber uint16 = 0xEC51

// Version is the current block format version. Decoders reject any other
// value.
const Version uint8 = 1

// HeaderSize is the fixed size of the block header in bytes. The two
// compressed sections follow immediately after.
const HeaderSize = 32

// Header field byte offsets.
const (
	magicOffset       = 0
	versionOffset     = 2
	typeOffset        = 3
	encodingOffset    = 4
	compressionOffset = 5
	rowCountOffset    = 8
	entryCountOffset  = 12
	sectionAOffset    = 16
	sectionBOffset    = 20
	checksumOffset    = 24
)
