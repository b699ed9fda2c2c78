package decoder

import (
	"math"
	"unicode/utf8"

	"github.com/janjongboom/qcbor-go/ieee754"
)

// NextType reports the CBOR type of the next item in b without
// consuming anything. It looks only at the initial byte: it returns
// InvalidType if b is empty or if a major-type-7 byte is not
// false/true/null/undefined or a float width. A reserved or
// indefinite-length additional-info value under the other major types
// is not detected here.
func NextType(b []byte) Type {
	if len(b) == 0 {
		return InvalidType
	}
	major := getMajorType(b[0])
	addInfo := getAddInfo(b[0])
	switch major {
	case majorUint:
		return UintType
	case majorNegInt:
		return IntType
	case majorBytes:
		return BinType
	case majorText:
		return StrType
	case majorArray:
		return ArrayType
	case majorMap:
		return MapType
	case majorTag:
		return TagType
	case majorSimple:
		switch addInfo {
		case simpleTrue, simpleFalse:
			return BoolType
		case simpleNull:
			return NilType
		case simpleUndefined:
			return UndefinedType
		case simpleFloat16:
			return Float16Type
		case simpleFloat32:
			return Float32Type
		case simpleFloat64:
			return Float64Type
		}
	}
	return InvalidType
}

// ReadUint64Bytes reads a CBOR positive integer.
func ReadUint64Bytes(b []byte) (v uint64, rest []byte, err error) {
	_, argument, rest, err := readHeaderExpect(b, majorUint)
	if err != nil {
		return 0, b, err
	}
	return argument, rest, nil
}

// ReadInt64Bytes reads a CBOR integer, positive or negative, as an
// int64. It fails with IntOverflow if the encoded magnitude does not
// fit in an int64 — CBOR's negative-int argument can represent down
// to -2^64, below int64's minimum of -2^63.
func ReadInt64Bytes(b []byte) (v int64, rest []byte, err error) {
	if len(b) < 1 {
		return 0, b, ErrShortBytes
	}
	major, _, argument, rest, err := readHeader(b)
	if err != nil {
		return 0, b, err
	}
	switch major {
	case majorUint:
		if argument > math.MaxInt64 {
			return 0, b, IntOverflow{Value: int64(argument), FailedBitsize: 64}
		}
		return int64(argument), rest, nil
	case majorNegInt:
		if argument > math.MaxInt64 {
			return 0, b, IntOverflow{FailedBitsize: 64}
		}
		return -int64(argument) - 1, rest, nil
	default:
		return 0, b, TypeError{Method: IntType, Encoded: typeForMajor(major)}
	}
}

// ReadArrayHeaderBytes reads a definite-length array header and
// returns its element count.
func ReadArrayHeaderBytes(b []byte) (sz uint32, rest []byte, err error) {
	_, argument, rest, err := readHeaderExpect(b, majorArray)
	if err != nil {
		return 0, b, err
	}
	if argument > math.MaxUint32 {
		return 0, b, UintOverflow{Value: argument, FailedBitsize: 32}
	}
	return uint32(argument), rest, nil
}

// ReadMapHeaderBytes reads a definite-length map header and returns
// its pair count (not its raw item count).
func ReadMapHeaderBytes(b []byte) (sz uint32, rest []byte, err error) {
	_, argument, rest, err := readHeaderExpect(b, majorMap)
	if err != nil {
		return 0, b, err
	}
	if argument > math.MaxUint32 {
		return 0, b, UintOverflow{Value: argument, FailedBitsize: 32}
	}
	return uint32(argument), rest, nil
}

// ReadTagBytes reads a semantic tag number. The tagged item itself
// starts at rest — callers read it with the next appropriate
// ReadXxxBytes call.
func ReadTagBytes(b []byte) (tag uint64, rest []byte, err error) {
	_, argument, rest, err := readHeaderExpect(b, majorTag)
	if err != nil {
		return 0, b, err
	}
	return argument, rest, nil
}

// ReadBoolBytes reads a CBOR true/false simple value.
func ReadBoolBytes(b []byte) (v bool, rest []byte, err error) {
	if len(b) < 1 {
		return false, b, ErrShortBytes
	}
	switch b[0] {
	case byte(majorSimple<<5) | simpleTrue:
		return true, b[1:], nil
	case byte(majorSimple<<5) | simpleFalse:
		return false, b[1:], nil
	default:
		return false, b, TypeError{Method: BoolType, Encoded: NextType(b)}
	}
}

// ReadNilBytes consumes a CBOR null simple value.
func ReadNilBytes(b []byte) (rest []byte, err error) {
	if len(b) < 1 {
		return b, ErrShortBytes
	}
	if b[0] != byte(majorSimple<<5)|simpleNull {
		return b, ErrNotNil
	}
	return b[1:], nil
}

// ReadFloat64Bytes reads a float64.
func ReadFloat64Bytes(b []byte) (f float64, rest []byte, err error) {
	if len(b) < 9 || b[0] != byte(majorSimple<<5)|simpleFloat64 {
		return 0, b, TypeError{Method: Float64Type, Encoded: NextType(b)}
	}
	return math.Float64frombits(be.Uint64(b[1:])), b[9:], nil
}

// ReadFloat32Bytes reads a float32.
func ReadFloat32Bytes(b []byte) (f float32, rest []byte, err error) {
	if len(b) < 5 || b[0] != byte(majorSimple<<5)|simpleFloat32 {
		return 0, b, TypeError{Method: Float32Type, Encoded: NextType(b)}
	}
	return math.Float32frombits(be.Uint32(b[1:])), b[5:], nil
}

// ReadFloat16Bytes reads a float16 (IEEE 754 binary16), widened to a
// float32 since Go has no native half-precision type.
func ReadFloat16Bytes(b []byte) (f float32, rest []byte, err error) {
	if len(b) < 3 || b[0] != byte(majorSimple<<5)|simpleFloat16 {
		return 0, b, TypeError{Method: Float16Type, Encoded: NextType(b)}
	}
	return ieee754.ExpandHalf(be.Uint16(b[1:])), b[3:], nil
}

// ReadBytesBytes reads a byte string. scratch, if it has spare
// capacity, is reused to hold the result instead of allocating; pass
// nil to always allocate a fresh slice.
func ReadBytesBytes(b []byte, scratch []byte) (v []byte, rest []byte, err error) {
	_, argument, rest, err := readHeaderExpect(b, majorBytes)
	if err != nil {
		return nil, b, err
	}
	if uint64(len(rest)) < argument {
		return nil, b, ErrShortBytes
	}
	payload := rest[:argument]
	out := append(scratch[:0], payload...)
	return out, rest[argument:], nil
}

// ReadStringBytes reads a text string. When ValidateUTF8 is true (the
// default) it rejects a payload that is not valid UTF-8.
func ReadStringBytes(b []byte) (s string, rest []byte, err error) {
	_, argument, rest, err := readHeaderExpect(b, majorText)
	if err != nil {
		return "", b, err
	}
	if uint64(len(rest)) < argument {
		return "", b, ErrShortBytes
	}
	payload := rest[:argument]
	if ValidateUTF8 && !utf8.Valid(payload) {
		return "", b, ErrInvalidUTF8
	}
	return string(payload), rest[argument:], nil
}

// ReadFloatBytes reads a CBOR float of any of the three widths and
// widens it to float64. Generated struct decoders use this instead of
// picking a width-specific reader, because the wire width a float
// field ends up at was chosen by the encoder's canonical reducer, not
// by the field's declared Go type.
func ReadFloatBytes(b []byte) (f float64, rest []byte, err error) {
	switch NextType(b) {
	case Float16Type:
		f32, o, err := ReadFloat16Bytes(b)
		return float64(f32), o, err
	case Float32Type:
		f32, o, err := ReadFloat32Bytes(b)
		return float64(f32), o, err
	case Float64Type:
		return ReadFloat64Bytes(b)
	default:
		return 0, b, TypeError{Method: Float64Type, Encoded: NextType(b)}
	}
}

// maxSkipDepth bounds the pending-count work list Skip keeps instead
// of recursing. It is well above the core encoder's MaxNesting (15),
// so Skip can always walk back anything this package's sibling Encoder
// produced, with headroom for tags (each takes one level) and for
// input from other encoders this package did not write.
const maxSkipDepth = 64

// Skip advances past one complete CBOR item, however deeply nested,
// without recursing: it keeps an explicit stack of "items still owed"
// counts, incrementing it on each container header it reads and
// decrementing the top whenever an item completes, popping finished
// frames as they reach zero.
func Skip(b []byte) (rest []byte, err error) {
	var pending [maxSkipDepth]uint64
	depth := 0
	// pending[0] starts at 1: one item (this call's own) remains to be
	// skipped at the sentinel outermost level.
	pending[0] = 1

	for depth >= 0 {
		if pending[depth] == 0 {
			depth--
			continue
		}
		pending[depth]--

		if len(b) < 1 {
			return b, ErrShortBytes
		}
		major, _, argument, rest2, err := readHeader(b)
		if err != nil {
			return b, err
		}
		b = rest2

		switch major {
		case majorBytes, majorText:
			if uint64(len(b)) < argument {
				return b, ErrShortBytes
			}
			b = b[argument:]
		case majorArray:
			if err := pushPending(&pending, &depth, argument); err != nil {
				return b, err
			}
		case majorMap:
			if err := pushPending(&pending, &depth, argument*2); err != nil {
				return b, err
			}
		case majorTag:
			// A tag prefixes exactly one more item; treat it as a
			// one-child container so that item is still owed.
			if err := pushPending(&pending, &depth, 1); err != nil {
				return b, err
			}
		}
	}
	return b, nil
}

func pushPending(pending *[maxSkipDepth]uint64, depth *int, count uint64) error {
	if count == 0 {
		return nil
	}
	if *depth+1 >= maxSkipDepth {
		return ErrMaxDepthExceeded
	}
	*depth++
	pending[*depth] = count
	return nil
}
