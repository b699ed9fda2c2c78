package structs

import (
	"testing"

	"github.com/janjongboom/qcbor-go/runtime"
)

func TestContainersRoundTrip(t *testing.T) {
	base := Scalars{
		S:    "base",
		B:    true,
		I:    1,
		I8:   -8,
		I16:  -16,
		I32:  -32,
		I64:  -64,
		U:    10,
		U8:   11,
		U16:  12,
		U32:  13,
		U64:  14,
		F32:  1.5,
		F64:  2.5,
		Data: []byte{1, 2, 3},
	}
	ptr := Scalars{
		S:    "ptr",
		B:    false,
		I:    2,
		I8:   8,
		I16:  16,
		I32:  32,
		I64:  64,
		U:    20,
		U8:   21,
		U16:  22,
		U32:  23,
		U64:  24,
		F32:  3.5,
		F64:  4.5,
		Data: []byte{4, 5, 6},
	}
	orig := &Containers{Items: []Scalars{base, ptr}}

	b, err := runtime.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var dst Containers
	rest, err := dst.UnmarshalCBOR(b)
	if err != nil {
		t.Fatalf("UnmarshalCBOR error: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("leftover bytes: %d", len(rest))
	}
	if len(dst.Items) != len(orig.Items) {
		t.Fatalf("length mismatch: got %d want %d", len(dst.Items), len(orig.Items))
	}
	if dst.Items[0].S != orig.Items[0].S || dst.Items[1].I != orig.Items[1].I {
		t.Fatalf("Items mismatch: got %+v want %+v", dst.Items, orig.Items)
	}
}

func TestContainersEmpty(t *testing.T) {
	orig := &Containers{}

	b, err := runtime.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var dst Containers
	rest, err := dst.UnmarshalCBOR(b)
	if err != nil {
		t.Fatalf("UnmarshalCBOR error: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("leftover bytes: %d", len(rest))
	}
	if len(dst.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(dst.Items))
	}
}
