package decoder

// CBOR major types (top 3 bits of the initial byte).
const (
	majorUint   = 0
	majorNegInt = 1
	majorBytes  = 2
	majorText   = 3
	majorArray  = 4
	majorMap    = 5
	majorTag    = 6
	majorSimple = 7
)

// Additional-info values in the low 5 bits of the initial byte.
const (
	addInfoDirect     = 23
	addInfoUint8      = 24
	addInfoUint16     = 25
	addInfoUint32     = 26
	addInfoUint64     = 27
	addInfoIndefinite = 31
)

// Simple values under major type 7.
const (
	simpleFalse     = 20
	simpleTrue      = 21
	simpleNull      = 22
	simpleUndefined = 23
	simpleFloat16   = 25
	simpleFloat32   = 26
	simpleFloat64   = 27
)

func getMajorType(b byte) uint8 { return (b >> 5) & 0x07 }
func getAddInfo(b byte) uint8   { return b & 0x1f }

// Type names the CBOR data types NextType distinguishes between. It
// collapses "positive integer" and "negative integer" into a single
// IntType/UintType pair, since callers generally want "is this
// signed-representable" rather than the wire-level major type split.
type Type byte

const (
	InvalidType Type = iota

	UintType
	IntType
	BinType
	StrType
	ArrayType
	MapType
	TagType
	BoolType
	NilType
	UndefinedType
	Float16Type
	Float32Type
	Float64Type
)

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case UintType:
		return "uint"
	case IntType:
		return "int"
	case BinType:
		return "bin"
	case StrType:
		return "str"
	case ArrayType:
		return "array"
	case MapType:
		return "map"
	case TagType:
		return "tag"
	case BoolType:
		return "bool"
	case NilType:
		return "nil"
	case UndefinedType:
		return "undefined"
	case Float16Type, Float32Type, Float64Type:
		return "float"
	default:
		return "<invalid>"
	}
}

// Unmarshaler is implemented by types cborgen generates an
// UnmarshalCBOR method for: read one complete item (here, always a
// map) from b and return the bytes left after it.
type Unmarshaler interface {
	UnmarshalCBOR(b []byte) ([]byte, error)
}

// ValidateUTF8 controls whether ReadStringBytes validates the UTF-8
// content of a text string. Enabled by default; callers on a hot
// path that already trusts its input can turn it off.
var ValidateUTF8 = true
