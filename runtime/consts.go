// Package runtime implements a CBOR (RFC 7049) encoder for constrained
// environments: no dynamic allocation, bounded per-call stack, and a
// caller-owned output buffer. The encoder never grows its buffer and
// never recurses; nesting depth is bounded by MaxNesting.
//
// The encoder always emits the minimum-length form of an argument and
// only definite-length arrays, maps and strings. Indefinite-length
// items, canonicalized key ordering and big-float/decimal-fraction
// types are out of scope; see the sibling semantic package for the
// tag-prefixed encodings layered on top of this package's primitives.
package runtime

// CBOR major types (top 3 bits of the initial byte).
const (
	majorUint   = 0 // unsigned integer
	majorNegInt = 1 // negative integer
	majorBytes  = 2 // byte string
	majorText   = 3 // text string (UTF-8)
	majorArray  = 4 // array
	majorMap    = 5 // map
	majorTag    = 6 // semantic tag
	majorSimple = 7 // simple values, bool, null, floats
)

// Additional-info values in the low 5 bits of the initial byte.
const (
	addInfoDirect = 23 // largest value encoded directly in the initial byte
	addInfoUint8  = 24
	addInfoUint16 = 25
	addInfoUint32 = 26
	addInfoUint64 = 27
)

// Simple values under major type 7 that the encoder emits directly.
// The float-width simple values (25-27) are not named here: a
// caller-supplied ArgumentWidth already picks the byte count for
// AddSimpleOrFloat, so there is no separate constant to encode it a
// second time.
const (
	simpleFalse = 20
	simpleTrue  = 21
	simpleNull  = 22
)

// MaxNesting bounds the number of arrays/maps/bstr-wraps that can be
// open at once. It sizes NestingStack's frame array so an Encoder's
// footprint stays a small, fixed constant rather than growing with
// how deeply the caller nests containers.
const MaxNesting = 15

// MaxItemsInArray bounds a single array's item count (and a map's
// combined key+value count). CBOR itself allows larger counts; this
// keeps NestingFrame's child-count field a uint16 and turns a runaway
// caller loop into ErrArrayTooLong instead of silent wraparound.
const MaxItemsInArray = 65535

// makeInitialByte composes a CBOR initial byte from a major type and
// an additional-info value.
func makeInitialByte(major, addInfo uint8) byte {
	return byte(major<<5) | addInfo
}

// ArgumentWidth selects how many extra bytes follow the initial byte
// to hold a header's argument. HeaderCoder always picks the narrowest
// width that fits the value unless the caller passes a wider minimum
// (used for floats, whose width is a property of the value's type,
// not its bit pattern: a zero-valued float64 must still take 8 bytes).
type ArgumentWidth uint8

const (
	W0 ArgumentWidth = iota // value fits in the initial byte (0-23)
	W1                      // one extra byte
	W2                      // two extra bytes
	W4                      // four extra bytes
	W8                      // eight extra bytes
)
