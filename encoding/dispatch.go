package encoding

import (
	"fmt"

	"github.com/weftdata/weft/errs"
	"github.com/weftdata/weft/format"
)

// The dispatching entry points below route a column held as `any` to the
// generic specialization for its element type. The allow-list is closed: the
// eight physical types of the format package and nothing else. Dispatch
// resolves once per call, never per element.

// PhysicalTypeOf maps a column slice to its physical type tag, or
// errs.ErrUnsupportedType when the element type is outside the allow-list.
func PhysicalTypeOf(data any) (format.PhysicalType, error) {
	switch data.(type) {
	case []int8:
		return format.TypeInt8, nil
	case []int16:
		return format.TypeInt16, nil
	case []int32:
		return format.TypeInt32, nil
	case []int64:
		return format.TypeInt64, nil
	case []float32:
		return format.TypeFloat32, nil
	case []float64:
		return format.TypeFloat64, nil
	case []string:
		return format.TypeString, nil
	case [][]byte:
		return format.TypeBinary, nil
	default:
		return format.TypeInvalid, unsupported("type dispatch", data)
	}
}

// RLEEncodeAny run-length encodes a column of any supported element type.
//
// Returns:
//   - any: Run values, same slice type as the input
//   - []uint32: Run lengths
//   - error: errs.ErrUnsupportedType naming the offending Go type
func RLEEncodeAny(data any) (any, []uint32, error) {
	switch d := data.(type) {
	case []int8:
		v, l := RLEEncode(d)
		return v, l, nil
	case []int16:
		v, l := RLEEncode(d)
		return v, l, nil
	case []int32:
		v, l := RLEEncode(d)
		return v, l, nil
	case []int64:
		v, l := RLEEncode(d)
		return v, l, nil
	case []float32:
		v, l := RLEEncode(d)
		return v, l, nil
	case []float64:
		v, l := RLEEncode(d)
		return v, l, nil
	case []string:
		v, l := RLEEncode(d)
		return v, l, nil
	case [][]byte:
		v, l := RLEEncodeBytes(d)
		return v, l, nil
	default:
		return nil, nil, unsupported("rle encode", data)
	}
}

// RLEDecodeAny expands run-length form for a column of any supported element
// type. The values slice carries the element type; lengths pair with it
// positionally.
func RLEDecodeAny(values any, lengths []uint32) (any, error) {
	switch v := values.(type) {
	case []int8:
		return RLEDecode(v, lengths)
	case []int16:
		return RLEDecode(v, lengths)
	case []int32:
		return RLEDecode(v, lengths)
	case []int64:
		return RLEDecode(v, lengths)
	case []float32:
		return RLEDecode(v, lengths)
	case []float64:
		return RLEDecode(v, lengths)
	case []string:
		return RLEDecode(v, lengths)
	case [][]byte:
		return RLEDecode(v, lengths)
	default:
		return nil, unsupported("rle decode", values)
	}
}

// DictEncodeAny dictionary encodes a column of any supported element type.
//
// Returns:
//   - any: The dictionary, same slice type as the input
//   - []uint32: Dictionary index per input element
//   - error: errs.ErrUnsupportedType naming the offending Go type
func DictEncodeAny(data any) (any, []uint32, error) {
	switch d := data.(type) {
	case []int8:
		v, i := DictEncode(d)
		return v, i, nil
	case []int16:
		v, i := DictEncode(d)
		return v, i, nil
	case []int32:
		v, i := DictEncode(d)
		return v, i, nil
	case []int64:
		v, i := DictEncode(d)
		return v, i, nil
	case []float32:
		v, i := DictEncode(d)
		return v, i, nil
	case []float64:
		v, i := DictEncode(d)
		return v, i, nil
	case []string:
		v, i := DictEncode(d)
		return v, i, nil
	case [][]byte:
		v, i := DictEncodeBytes(d)
		return v, i, nil
	default:
		return nil, nil, unsupported("dict encode", data)
	}
}

// DictDecodeAny expands dictionary form for a column of any supported element
// type. The dict slice carries the element type; indices pair with it
// positionally.
func DictDecodeAny(dict any, indices []uint32) (any, error) {
	switch d := dict.(type) {
	case []int8:
		return DictDecode(d, indices)
	case []int16:
		return DictDecode(d, indices)
	case []int32:
		return DictDecode(d, indices)
	case []int64:
		return DictDecode(d, indices)
	case []float32:
		return DictDecode(d, indices)
	case []float64:
		return DictDecode(d, indices)
	case []string:
		return DictDecode(d, indices)
	case [][]byte:
		return DictDecode(d, indices)
	default:
		return nil, unsupported("dict decode", dict)
	}
}

func unsupported(op string, data any) error {
	return fmt.Errorf("%w: %s: %T is not a supported column element type", errs.ErrUnsupportedType, op, data)
}
