package decoder

import "encoding/binary"

var be = binary.BigEndian

// readHeader reads the initial byte plus whatever extra argument
// bytes it calls for and returns the decoded major type, additional
// info and argument value, plus the bytes left after the header. It
// rejects the indefinite-length additional-info value (31) with
// ErrIndefiniteNotSupported rather than returning an argument for it,
// since nothing downstream of this call can do anything useful with
// an indefinite length.
func readHeader(b []byte) (major, addInfo uint8, argument uint64, rest []byte, err error) {
	if len(b) < 1 {
		return 0, 0, 0, b, ErrShortBytes
	}
	major = getMajorType(b[0])
	addInfo = getAddInfo(b[0])

	switch {
	case addInfo <= addInfoDirect:
		return major, addInfo, uint64(addInfo), b[1:], nil
	case addInfo == addInfoUint8:
		if len(b) < 2 {
			return 0, 0, 0, b, ErrShortBytes
		}
		return major, addInfo, uint64(b[1]), b[2:], nil
	case addInfo == addInfoUint16:
		if len(b) < 3 {
			return 0, 0, 0, b, ErrShortBytes
		}
		return major, addInfo, uint64(be.Uint16(b[1:])), b[3:], nil
	case addInfo == addInfoUint32:
		if len(b) < 5 {
			return 0, 0, 0, b, ErrShortBytes
		}
		return major, addInfo, uint64(be.Uint32(b[1:])), b[5:], nil
	case addInfo == addInfoUint64:
		if len(b) < 9 {
			return 0, 0, 0, b, ErrShortBytes
		}
		return major, addInfo, be.Uint64(b[1:]), b[9:], nil
	case addInfo == addInfoIndefinite:
		return 0, 0, 0, b, ErrIndefiniteNotSupported
	default:
		return 0, 0, 0, b, InvalidPrefixError{Major: major, AddInfo: addInfo}
	}
}

// readHeaderExpect is readHeader with an expected-major-type check,
// the common case every typed ReadXxxBytes function wants.
func readHeaderExpect(b []byte, wantMajor uint8) (addInfo uint8, argument uint64, rest []byte, err error) {
	major, addInfo, argument, rest, err := readHeader(b)
	if err != nil {
		return 0, 0, b, err
	}
	if major != wantMajor {
		return 0, 0, b, badMajor(wantMajor, major)
	}
	return addInfo, argument, rest, nil
}

// badMajor reports a TypeError naming the Type a caller expected
// versus the Type actually found, resolving both sides through
// typeForMajor so the message reads in terms of CBOR data types
// rather than raw major-type numbers.
func badMajor(wantMajor, gotMajor uint8) error {
	return TypeError{Method: typeForMajor(wantMajor), Encoded: typeForMajor(gotMajor)}
}

func typeForMajor(major uint8) Type {
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
		return BoolType
	default:
		return InvalidType
	}
}
