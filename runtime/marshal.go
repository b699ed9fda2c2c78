package runtime

// Marshaler is implemented by types that know how to write themselves
// into an Encoder. It mirrors the familiar MarshalMsg-style interface
// but takes the live Encoder rather than returning an appended slice,
// since this package's Encoder never owns or grows its own storage.
type Marshaler interface {
	MarshalCBOR(enc *Encoder)
}

// Marshal runs v's MarshalCBOR against a freshly allocated 64-byte
// buffer and, each time Finish reports BufferTooSmall, runs it again
// against a new buffer of twice the size; it returns a copy of the
// encoded bytes on success and any other Finish error as is. The loop
// ends only on success or on an error other than BufferTooSmall.
// Every pass allocates: constrained callers that already know their
// item's worst-case size should call MarshalInto (or MarshalCBOR
// directly) against a stack buffer instead.
//
// Marshal exists for host-side tooling (tests, cborgen-generated
// round-trip checks, the cborcheck CLI) where an allocating
// convenience wrapper is acceptable; it is not meant for use on the
// constrained target the rest of this package is written for.
func Marshal(v Marshaler) ([]byte, error) {
	size := 64
	for {
		buf := make([]byte, size)
		enc := NewEncoder(buf)
		v.MarshalCBOR(enc)
		out, err := enc.Finish()
		if err == nil {
			result := make([]byte, len(out))
			copy(result, out)
			return result, nil
		}
		if err != BufferTooSmall {
			return nil, err
		}
		size *= 2
	}
}

// MarshalInto runs v's MarshalCBOR against buf directly and returns
// Finish's result without any retry or allocation. This is the
// constrained-target entry point: the caller owns buf's lifetime and
// sizing, and a BufferTooSmall error means the caller must supply a
// bigger buffer and try again, not that this function will find one
// for them.
func MarshalInto(v Marshaler, buf []byte) ([]byte, error) {
	enc := NewEncoder(buf)
	v.MarshalCBOR(enc)
	return enc.Finish()
}
