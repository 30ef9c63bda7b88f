package format

type (
	PhysicalType    uint8
	EncodingType    uint8
	CompressionType uint8
)

const (
	TypeInvalid PhysicalType = 0x0 // TypeInvalid represents an unknown physical type.
	TypeInt8    PhysicalType = 0x1 // TypeInt8 represents 8-bit signed integers.
	TypeInt16   PhysicalType = 0x2 // TypeInt16 represents 16-bit signed integers.
	TypeInt32   PhysicalType = 0x3 // TypeInt32 represents 32-bit signed integers.
	TypeInt64   PhysicalType = 0x4 // TypeInt64 represents 64-bit signed integers.
	TypeFloat32 PhysicalType = 0x5 // TypeFloat32 represents IEEE-754 single-precision floats.
	TypeFloat64 PhysicalType = 0x6 // TypeFloat64 represents IEEE-754 double-precision floats.
	TypeBool    PhysicalType = 0x7 // TypeBool represents bit-packed booleans.
	TypeString  PhysicalType = 0x8 // TypeString represents variable-width UTF-8 text.
	TypeBinary  PhysicalType = 0x9 // TypeBinary represents variable-width raw bytes.

	EncodingRaw  EncodingType = 0x1 // EncodingRaw represents raw values with no columnar encoding.
	EncodingRLE  EncodingType = 0x2 // EncodingRLE represents run-length encoding.
	EncodingDict EncodingType = 0x3 // EncodingDict represents dictionary encoding.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (p PhysicalType) String() string {
	switch p {
	case TypeInt8:
		return "Int8"
	case TypeInt16:
		return "Int16"
	case TypeInt32:
		return "Int32"
	case TypeInt64:
		return "Int64"
	case TypeFloat32:
		return "Float32"
	case TypeFloat64:
		return "Float64"
	case TypeBool:
		return "Bool"
	case TypeString:
		return "String"
	case TypeBinary:
		return "Binary"
	default:
		return "Unknown"
	}
}

// Size returns the fixed element width in bytes, or 0 for bit-packed and
// variable-width types.
func (p PhysicalType) Size() int {
	switch p {
	case TypeInt8:
		return 1
	case TypeInt16:
		return 2
	case TypeInt32:
		return 4
	case TypeInt64, TypeFloat64:
		return 8
	case TypeFloat32:
		return 4
	default:
		return 0
	}
}

// IsVariableWidth reports whether elements require an offsets buffer.
func (p PhysicalType) IsVariableWidth() bool {
	return p == TypeString || p == TypeBinary
}

// IsValid reports whether p is one of the supported physical types.
func (p PhysicalType) IsValid() bool {
	return p >= TypeInt8 && p <= TypeBinary
}

func (e EncodingType) String() string {
	switch e {
	case EncodingRaw:
		return "Raw"
	case EncodingRLE:
		return "RLE"
	case EncodingDict:
		return "Dictionary"
	default:
		return "Unknown"
	}
}

// IsValid reports whether e is one of the supported encoding schemes.
func (e EncodingType) IsValid() bool {
	return e >= EncodingRaw && e <= EncodingDict
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the supported compression schemes.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}
