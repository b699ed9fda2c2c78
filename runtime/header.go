package runtime

// emitHeader composes and writes a CBOR initial byte plus whatever
// extra argument bytes it needs at position at in out, inserting
// (sliding later bytes right) rather than always appending — Encoder
// passes at == out.EndPosition() for a normal append and an earlier
// offset when back-patching a container header.
//
// minWidth forces a wider encoding than the argument strictly needs;
// every caller except the float path passes W0, in which case the
// narrowest width that fits wins. Floats pass the reducer's chosen
// width so a zero-valued float still serializes at its real width
// (a half-precision zero must still take 2 bytes, not 0).
func emitHeader(out *OutputBuffer, major uint8, minWidth ArgumentWidth, argument uint64, at uint32) {
	switch {
	case argument <= addInfoDirect && minWidth == W0:
		out.InsertBytes([]byte{makeInitialByte(major, uint8(argument))}, at)

	case argument <= 0xFF && minWidth <= W1:
		out.InsertBytes([]byte{
			makeInitialByte(major, addInfoUint8),
			uint8(argument),
		}, at)

	case argument <= 0xFFFF && minWidth <= W2:
		out.InsertBytes([]byte{
			makeInitialByte(major, addInfoUint16),
			uint8(argument >> 8),
			uint8(argument),
		}, at)

	case argument <= 0xFFFFFFFF && minWidth <= W4:
		out.InsertBytes([]byte{
			makeInitialByte(major, addInfoUint32),
			uint8(argument >> 24),
			uint8(argument >> 16),
			uint8(argument >> 8),
			uint8(argument),
		}, at)

	default:
		out.InsertBytes([]byte{
			makeInitialByte(major, addInfoUint64),
			uint8(argument >> 56),
			uint8(argument >> 48),
			uint8(argument >> 40),
			uint8(argument >> 32),
			uint8(argument >> 24),
			uint8(argument >> 16),
			uint8(argument >> 8),
			uint8(argument),
		}, at)
	}
}
