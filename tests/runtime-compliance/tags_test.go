package tests

import (
	"math/big"
	"regexp"
	"testing"
	"time"

	"github.com/janjongboom/qcbor-go/decoder"
	"github.com/janjongboom/qcbor-go/runtime"
	"github.com/janjongboom/qcbor-go/semantic"
)

func encodeTagged(t *testing.T, add func(enc *runtime.Encoder)) []byte {
	t.Helper()
	var buf [256]byte
	enc := runtime.NewEncoder(buf[:])
	add(enc)
	b, err := enc.Finish()
	if err != nil {
		t.Fatalf("Finish error: %v", err)
	}
	return b
}

func TestAddTimeIntegerSeconds(t *testing.T) {
	ti := time.Unix(1700000000, 0).UTC()
	b := encodeTagged(t, func(enc *runtime.Encoder) { semantic.AddTime(enc, ti) })

	tag, rest, err := decoder.ReadTagBytes(b)
	if err != nil {
		t.Fatalf("ReadTagBytes error: %v", err)
	}
	if tag != 1 {
		t.Fatalf("got tag %d, want 1 (epoch date/time)", tag)
	}
	v, rest, err := decoder.ReadInt64Bytes(rest)
	if err != nil {
		t.Fatalf("ReadInt64Bytes error: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("leftover bytes: %d", len(rest))
	}
	if v != 1700000000 {
		t.Fatalf("got %d, want 1700000000", v)
	}
}

func TestAddTimeFractionalSeconds(t *testing.T) {
	tf := time.Unix(1700000001, 500_000_000).UTC()
	b := encodeTagged(t, func(enc *runtime.Encoder) { semantic.AddTime(enc, tf) })

	tag, rest, err := decoder.ReadTagBytes(b)
	if err != nil {
		t.Fatalf("ReadTagBytes error: %v", err)
	}
	if tag != 1 {
		t.Fatalf("got tag %d, want 1", tag)
	}
	v, rest, err := decoder.ReadFloatBytes(rest)
	if err != nil {
		t.Fatalf("ReadFloatBytes error: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("leftover bytes: %d", len(rest))
	}
	if got := v - 1700000001.5; got > 1e-6 || got < -1e-6 {
		t.Fatalf("got %v, want ~1700000001.5", v)
	}
}

func TestAddRFC3339Time(t *testing.T) {
	ti := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	b := encodeTagged(t, func(enc *runtime.Encoder) { semantic.AddRFC3339Time(enc, ti) })

	tag, rest, err := decoder.ReadTagBytes(b)
	if err != nil {
		t.Fatalf("ReadTagBytes error: %v", err)
	}
	if tag != 0 {
		t.Fatalf("got tag %d, want 0 (standard date/time string)", tag)
	}
	s, rest, err := decoder.ReadStringBytes(rest)
	if err != nil {
		t.Fatalf("ReadStringBytes error: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("leftover bytes: %d", len(rest))
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t.Fatalf("time.Parse(%q): %v", s, err)
	}
	if !parsed.Equal(ti) {
		t.Fatalf("got %v, want %v", parsed, ti)
	}
}

func TestAddPositiveAndNegativeBignum(t *testing.T) {
	pos := new(big.Int).SetUint64(1<<63 + 12345)
	b := encodeTagged(t, func(enc *runtime.Encoder) { semantic.AddPositiveBignum(enc, pos) })
	tag, rest, err := decoder.ReadTagBytes(b)
	if err != nil || tag != 2 {
		t.Fatalf("positive bignum tag: got (%d, %v), want (2, nil)", tag, err)
	}
	raw, rest, err := decoder.ReadBytesBytes(rest, nil)
	if err != nil || len(rest) != 0 {
		t.Fatalf("positive bignum payload: err=%v rest=%d", err, len(rest))
	}
	if got := new(big.Int).SetBytes(raw); got.Cmp(pos) != 0 {
		t.Fatalf("got %v, want %v", got, pos)
	}

	neg := new(big.Int).SetUint64(1<<63 + 54321)
	neg.Neg(neg)
	b = encodeTagged(t, func(enc *runtime.Encoder) { semantic.AddNegativeBignum(enc, neg) })
	tag, rest, err = decoder.ReadTagBytes(b)
	if err != nil || tag != 3 {
		t.Fatalf("negative bignum tag: got (%d, %v), want (3, nil)", tag, err)
	}
	raw, rest, err = decoder.ReadBytesBytes(rest, nil)
	if err != nil || len(rest) != 0 {
		t.Fatalf("negative bignum payload: err=%v rest=%d", err, len(rest))
	}
	// CBOR's negative bignum encodes -1-n; recover the original value.
	got := new(big.Int).SetBytes(raw)
	got.Add(got, big.NewInt(1))
	got.Neg(got)
	if got.Cmp(neg) != 0 {
		t.Fatalf("got %v, want %v", got, neg)
	}
}

func TestAddBase64AndBase16(t *testing.T) {
	data := []byte("some binary payload")

	b := encodeTagged(t, func(enc *runtime.Encoder) { semantic.AddBase64URL(enc, data) })
	tag, rest, err := decoder.ReadTagBytes(b)
	if err != nil || tag != 21 {
		t.Fatalf("base64url tag: got (%d, %v), want (21, nil)", tag, err)
	}
	got, rest, err := decoder.ReadBytesBytes(rest, nil)
	if err != nil || len(rest) != 0 || string(got) != string(data) {
		t.Fatalf("base64url payload mismatch: got %q err=%v rest=%d", got, err, len(rest))
	}

	b = encodeTagged(t, func(enc *runtime.Encoder) { semantic.AddBase16(enc, data) })
	tag, rest, err = decoder.ReadTagBytes(b)
	if err != nil || tag != 23 {
		t.Fatalf("base16 tag: got (%d, %v), want (23, nil)", tag, err)
	}
	got, rest, err = decoder.ReadBytesBytes(rest, nil)
	if err != nil || len(rest) != 0 || string(got) != string(data) {
		t.Fatalf("base16 payload mismatch: got %q err=%v rest=%d", got, err, len(rest))
	}
}

func TestAddUUID(t *testing.T) {
	var id [16]byte
	for i := range id {
		id[i] = byte(i)
	}
	b := encodeTagged(t, func(enc *runtime.Encoder) { semantic.AddUUID(enc, id) })
	tag, rest, err := decoder.ReadTagBytes(b)
	if err != nil || tag != 37 {
		t.Fatalf("uuid tag: got (%d, %v), want (37, nil)", tag, err)
	}
	got, rest, err := decoder.ReadBytesBytes(rest, nil)
	if err != nil || len(rest) != 0 || len(got) != 16 {
		t.Fatalf("uuid payload: got %x err=%v rest=%d", got, err, len(rest))
	}
	for i := range id {
		if got[i] != id[i] {
			t.Fatalf("uuid byte %d mismatch: got %x want %x", i, got[i], id[i])
		}
	}
}

func TestAddEmbeddedCBOR(t *testing.T) {
	var innerBuf [16]byte
	inner := runtime.NewEncoder(innerBuf[:])
	inner.AddUint(42)
	payload, err := inner.Finish()
	if err != nil {
		t.Fatalf("inner Finish error: %v", err)
	}

	b := encodeTagged(t, func(enc *runtime.Encoder) { semantic.AddEmbeddedCBOR(enc, payload) })
	tag, rest, err := decoder.ReadTagBytes(b)
	if err != nil || tag != 24 {
		t.Fatalf("embedded cbor tag: got (%d, %v), want (24, nil)", tag, err)
	}
	got, rest, err := decoder.ReadBytesBytes(rest, nil)
	if err != nil || len(rest) != 0 {
		t.Fatalf("embedded cbor payload: err=%v rest=%d", err, len(rest))
	}
	v, innerRest, err := decoder.ReadUint64Bytes(got)
	if err != nil || len(innerRest) != 0 || v != 42 {
		t.Fatalf("decoded embedded payload mismatch: v=%d err=%v rest=%d", v, err, len(innerRest))
	}
}

func TestAddRegexp(t *testing.T) {
	pat := "^a+b?$"
	re := regexp.MustCompile(pat)
	b := encodeTagged(t, func(enc *runtime.Encoder) { semantic.AddRegexp(enc, re) })
	tag, rest, err := decoder.ReadTagBytes(b)
	if err != nil || tag != 35 {
		t.Fatalf("regexp tag: got (%d, %v), want (35, nil)", tag, err)
	}
	s, rest, err := decoder.ReadStringBytes(rest)
	if err != nil || len(rest) != 0 || s != pat {
		t.Fatalf("regexp payload mismatch: got %q err=%v rest=%d", s, err, len(rest))
	}
}

func TestAddRegexpNil(t *testing.T) {
	b := encodeTagged(t, func(enc *runtime.Encoder) { semantic.AddRegexp(enc, nil) })
	if _, err := decoder.ReadNilBytes(b); err != nil {
		t.Fatalf("expected nil encoding for a nil *Regexp, got error: %v", err)
	}
}
