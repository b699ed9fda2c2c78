package ieee754

import (
	"math"
	"testing"
)

func TestShortestWidthSelection(t *testing.T) {
	cases := []struct {
		name string
		f    float64
		want Width
	}{
		{"zero", 0, Half},
		{"negative_zero", math.Copysign(0, -1), Half},
		{"one", 1.0, Half},
		{"one_half", 1.5, Half},
		{"needs_single", math.MaxFloat32, Single},
		{"one_third", 1.0 / 3.0, Double},
		{"smallest_double_only", math.SmallestNonzeroFloat64, Double},
		{"inf", math.Inf(1), Half},
		{"neg_inf", math.Inf(-1), Half},
	}
	for _, c := range cases {
		w, _ := Shortest(c.f)
		if w != c.want {
			t.Errorf("%s: Shortest(%v) width = %v, want %v", c.name, c.f, w, c.want)
		}
	}
}

func TestShortestNaNCanonicalized(t *testing.T) {
	w1, bits1 := Shortest(math.NaN())
	w2, bits2 := Shortest(math.Float64frombits(0x7ff8000000000001)) // a different NaN payload
	if w1 != Half || w2 != Half {
		t.Fatalf("NaN should canonicalize to Half, got %v and %v", w1, w2)
	}
	if bits1 != bits2 {
		t.Fatalf("two different NaN payloads produced different canonical bits: %x vs %x", bits1, bits2)
	}
}

func TestShortestRoundTripsExactly(t *testing.T) {
	values := []float64{0, 1, -1, 1.5, -1.5, 65504, 65505, 100000, 1.0 / 3.0, 3.4028235e+38, 1e300, -1e300}
	for _, f := range values {
		w, bits := Shortest(f)
		var got float64
		switch w {
		case Half:
			got = float64(halfBitsToFloat32(uint16(bits)))
		case Single:
			got = float64(math.Float32frombits(uint32(bits)))
		case Double:
			got = math.Float64frombits(bits)
		}
		if got != f && !(math.IsNaN(got) && math.IsNaN(f)) {
			t.Errorf("Shortest(%v) width %v round-tripped to %v", f, w, got)
		}
	}
}

func TestShortestFromFloat32NeverPicksDouble(t *testing.T) {
	values := []float32{0, 1, -1, 1.5, 3.4028235e+38, float32(1.0 / 3.0)}
	for _, f := range values {
		w, bits := ShortestFromFloat32(f)
		if w == Double {
			t.Fatalf("ShortestFromFloat32(%v) picked Double", f)
		}
		var got float32
		switch w {
		case Half:
			got = halfBitsToFloat32(uint16(bits))
		case Single:
			got = math.Float32frombits(uint32(bits))
		}
		if got != f {
			t.Errorf("ShortestFromFloat32(%v) width %v round-tripped to %v", f, w, got)
		}
	}
}

func TestShortestFromFloat32NaNCanonicalized(t *testing.T) {
	w, bits := ShortestFromFloat32(float32(math.NaN()))
	if w != Half || uint16(bits) != halfNaN {
		t.Fatalf("ShortestFromFloat32(NaN) = %v, %x, want Half, %x", w, bits, halfNaN)
	}
}

func TestExpandHalfInverse(t *testing.T) {
	for _, f := range []float32{0, 1, -1, 1.5, -1.5, 65504} {
		h := float32ToHalfBits(f)
		got := ExpandHalf(h)
		if got != f {
			t.Errorf("ExpandHalf(float32ToHalfBits(%v)) = %v", f, got)
		}
	}
}

func TestExpandHalfSubnormal(t *testing.T) {
	// Smallest positive half subnormal: exponent 0, mantissa 1.
	h := uint16(1)
	got := ExpandHalf(h)
	want := float32(math.Pow(2, -24))
	if got != want {
		t.Fatalf("ExpandHalf(subnormal) = %v, want %v", got, want)
	}
}

func TestExpandHalfInfAndNaN(t *testing.T) {
	posInf := ExpandHalf(0x7C00)
	if !math.IsInf(float64(posInf), 1) {
		t.Fatalf("ExpandHalf(+Inf bits) = %v, want +Inf", posInf)
	}
	negInf := ExpandHalf(0xFC00)
	if !math.IsInf(float64(negInf), -1) {
		t.Fatalf("ExpandHalf(-Inf bits) = %v, want -Inf", negInf)
	}
	nan := ExpandHalf(halfNaN)
	if nan == nan {
		t.Fatalf("ExpandHalf(NaN bits) did not produce NaN")
	}
}
