package structs

import (
	"testing"

	"github.com/janjongboom/qcbor-go/decoder"
	"github.com/janjongboom/qcbor-go/runtime"
)

func TestPersonRoundTrip(t *testing.T) {
	orig := &Person{
		Name: "Alice",
		Age:  42,
		Data: []byte{1, 2, 3},
	}

	b, err := runtime.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var dst Person
	rest, err := dst.UnmarshalCBOR(b)
	if err != nil {
		t.Fatalf("UnmarshalCBOR error: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("leftover bytes: %d", len(rest))
	}
	if dst.Name != orig.Name || dst.Age != orig.Age || string(dst.Data) != string(orig.Data) {
		t.Fatalf("mismatch: got %+v, want %+v", dst, orig)
	}
}

func TestPersonUnknownKeyIsSkipped(t *testing.T) {
	// Hand-build a map with one extra key before the known fields so
	// UnmarshalCBOR's default case (decoder.Skip) is exercised.
	var buf [256]byte
	enc := runtime.NewEncoder(buf[:])
	enc.OpenMap()
	enc.AddBytes(runtime.TextStringMajor, []byte("future"))
	enc.OpenArray()
	enc.AddUint(1)
	enc.AddUint(2)
	enc.CloseArray()
	enc.AddBytes(runtime.TextStringMajor, []byte("name"))
	enc.AddBytes(runtime.TextStringMajor, []byte("Bob"))
	enc.AddBytes(runtime.TextStringMajor, []byte("age"))
	enc.AddInt(7)
	enc.AddBytes(runtime.TextStringMajor, []byte("data"))
	enc.AddBytes(runtime.ByteStringMajor, []byte{9})
	enc.CloseMap()
	b, err := enc.Finish()
	if err != nil {
		t.Fatalf("Finish error: %v", err)
	}

	var dst Person
	rest, err := dst.UnmarshalCBOR(b)
	if err != nil {
		t.Fatalf("UnmarshalCBOR error: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("leftover bytes: %d", len(rest))
	}
	if dst.Name != "Bob" || dst.Age != 7 || string(dst.Data) != "\x09" {
		t.Fatalf("mismatch after skip: got %+v", dst)
	}
}

func TestPersonMapHeaderCount(t *testing.T) {
	p := &Person{Name: "Carol", Age: 0, Data: []byte{}}

	b, err := runtime.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	sz, _, err := decoder.ReadMapHeaderBytes(b)
	if err != nil {
		t.Fatalf("ReadMapHeaderBytes error: %v", err)
	}
	if sz != 3 {
		t.Fatalf("expected 3 keys (cborgen does not support omitempty), got %d", sz)
	}
}
