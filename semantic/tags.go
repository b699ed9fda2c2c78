// Package semantic layers the tagged-type encodings from RFC 7049
// section 2.4 on top of runtime.Encoder's primitives. Every helper
// here is itself just AddTag followed by one AddXxx call (AddRegexp
// with a nil pattern appends only a null), so it inherits the encoder's
// no-allocation, sticky-error behavior for free instead of
// introducing a second way to report failure.
package semantic

import (
	"math/big"
	"regexp"
	"time"

	"github.com/janjongboom/qcbor-go/runtime"
)

// Semantic tag numbers from RFC 7049 section 2.4 and the IANA CBOR
// tags registry.
const (
	tagDateTimeString = 0
	tagEpochDateTime  = 1
	tagPosBignum      = 2
	tagNegBignum      = 3
	tagCBOR           = 24
	tagBase64URL      = 21
	tagBase64         = 22
	tagBase16         = 23
	tagURI            = 32
	tagRegexp         = 35
	tagUUID           = 37
)

// AddTime appends a tag(1) epoch timestamp: an integer if t has no
// sub-second component, otherwise a float64.
func AddTime(e *runtime.Encoder, t time.Time) {
	e.AddTag(tagEpochDateTime)
	sec := t.Unix()
	nsec := t.Nanosecond()
	if nsec == 0 {
		e.AddInt(sec)
		return
	}
	f := float64(sec) + float64(nsec)/1e9
	e.AddFloat64(f)
}

// AddRFC3339Time appends a tag(0) RFC3339 datetime string.
func AddRFC3339Time(e *runtime.Encoder, t time.Time) {
	e.AddTag(tagDateTimeString)
	e.AddBytes(runtime.TextStringMajor, []byte(t.Format(time.RFC3339Nano)))
}

// AddPositiveBignum appends z as a tag(2) positive bignum: a big
// integer whose sign is known from the tag, stored as the big-endian
// byte string of its absolute value. AddPositiveBignum assumes z.Sign()
// >= 0; callers that do not already know the sign should branch
// between this and AddNegativeBignum themselves, the way the
// teacher's AppendBigInt does.
func AddPositiveBignum(e *runtime.Encoder, z *big.Int) {
	e.AddTag(tagPosBignum)
	e.AddBytes(runtime.ByteStringMajor, z.Bytes())
}

// AddNegativeBignum appends z (z.Sign() < 0) as a tag(3) negative
// bignum. CBOR's negative bignum stores -1-z, the same one's-complement
// convention the core encoder uses for small negative integers, so a
// negative bignum and a negative fixnum always agree on what "value
// n" means on the wire.
func AddNegativeBignum(e *runtime.Encoder, z *big.Int) {
	e.AddTag(tagNegBignum)
	tmp := new(big.Int).Neg(z)
	tmp.Sub(tmp, big.NewInt(1))
	e.AddBytes(runtime.ByteStringMajor, tmp.Bytes())
}

// AddBase64URL appends data as a tag(21) byte string the reader
// should interpret as base64url-encodable binary.
func AddBase64URL(e *runtime.Encoder, data []byte) {
	e.AddTag(tagBase64URL)
	e.AddBytes(runtime.ByteStringMajor, data)
}

// AddBase64 appends data as a tag(22) byte string the reader should
// interpret as base64-encodable binary.
func AddBase64(e *runtime.Encoder, data []byte) {
	e.AddTag(tagBase64)
	e.AddBytes(runtime.ByteStringMajor, data)
}

// AddBase16 appends data as a tag(23) byte string the reader should
// interpret as base16 (hex)-encodable binary.
func AddBase16(e *runtime.Encoder, data []byte) {
	e.AddTag(tagBase16)
	e.AddBytes(runtime.ByteStringMajor, data)
}

// AddUUID appends id as a tag(37) 16-byte UUID (RFC 4122).
func AddUUID(e *runtime.Encoder, id [16]byte) {
	e.AddTag(tagUUID)
	e.AddBytes(runtime.ByteStringMajor, id[:])
}

// AddEmbeddedCBOR appends payload as a tag(24) byte string holding an
// already-encoded CBOR item: payload is framed as ordinary byte-string
// content, not re-parsed or re-encoded, since it is already a complete
// CBOR item in its own right.
func AddEmbeddedCBOR(e *runtime.Encoder, payload []byte) {
	e.AddTag(tagCBOR)
	e.AddBytes(runtime.ByteStringMajor, payload)
}

// AddRegexp appends re's pattern as a tag(35) regular expression text
// string. A nil re appends CBOR null instead, following the usual
// nil-safety convention for pointer-typed Append helpers.
func AddRegexp(e *runtime.Encoder, re *regexp.Regexp) {
	if re == nil {
		e.AddNil()
		return
	}
	e.AddTag(tagRegexp)
	e.AddBytes(runtime.TextStringMajor, []byte(re.String()))
}

// AddURI appends uri as a tag(32) URI text string.
func AddURI(e *runtime.Encoder, uri string) {
	e.AddTag(tagURI)
	e.AddBytes(runtime.TextStringMajor, []byte(uri))
}
