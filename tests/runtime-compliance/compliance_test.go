package tests

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/janjongboom/qcbor-go/decoder"
	"github.com/janjongboom/qcbor-go/runtime"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

// TestIndefiniteLengthRejected checks that both the header reader and
// Skip treat additional-info 31 as a well-formedness error rather
// than as the start of an indefinite-length item; this decoder only
// understands definite-length CBOR.
func TestIndefiniteLengthRejected(t *testing.T) {
	cases := []string{
		"9fff", // empty indefinite array
		"bfff", // empty indefinite map
		"5fff", // empty indefinite byte string
		"7fff", // empty indefinite text string
	}
	for _, h := range cases {
		h := h
		t.Run(h, func(t *testing.T) {
			msg := mustHex(t, h)
			if _, err := decoder.Skip(msg); !errors.Is(err, decoder.ErrIndefiniteNotSupported) {
				t.Fatalf("Skip(%s): got %v, want ErrIndefiniteNotSupported", h, err)
			}
		})
	}
}

// TestReadWrongTypeIsTypeError checks that asking for one CBOR type
// against an item encoded as another returns a decoder.TypeError
// rather than silently misreading bytes.
func TestReadWrongTypeIsTypeError(t *testing.T) {
	msg := mustHex(t, "6161") // text string "a"
	if _, _, err := decoder.ReadUint64Bytes(msg); err == nil {
		t.Fatalf("expected error reading a text string as uint64")
	} else if _, ok := err.(decoder.TypeError); !ok {
		t.Fatalf("expected decoder.TypeError, got %T: %v", err, err)
	}
}

// TestEncoderStickyErrorLatchesFirst checks that Finish surfaces the
// first error the Encoder latched. Running out of buffer space is
// tracked by OutputBuffer's overflow flag, not latched as the
// Encoder's sticky error, so the later mismatched close is the first
// latched error and it wins over BufferTooSmall at Finish.
func TestEncoderStickyErrorLatchesFirst(t *testing.T) {
	var buf [4]byte // too small for what follows
	enc := runtime.NewEncoder(buf[:])
	enc.AddBytes(runtime.TextStringMajor, []byte("this does not fit"))
	enc.AddUint(1) // writes nothing; the buffer has already overflowed
	enc.OpenArray()
	enc.CloseMap() // mismatched close; latches CloseMismatch

	if _, err := enc.Finish(); err != runtime.CloseMismatch {
		t.Fatalf("got %v, want CloseMismatch", err)
	}
}

// TestEncoderCloseMismatch checks that closing a container with the
// wrong major type is rejected rather than silently accepted.
func TestEncoderCloseMismatch(t *testing.T) {
	var buf [32]byte
	enc := runtime.NewEncoder(buf[:])
	enc.OpenArray()
	enc.CloseMap()
	if _, err := enc.Finish(); err != runtime.CloseMismatch {
		t.Fatalf("got %v, want CloseMismatch", err)
	}
}

// TestEncoderTooManyCloses checks that an unmatched Close is rejected.
func TestEncoderTooManyCloses(t *testing.T) {
	var buf [32]byte
	enc := runtime.NewEncoder(buf[:])
	enc.CloseArray()
	if _, err := enc.Finish(); err != runtime.TooManyCloses {
		t.Fatalf("got %v, want TooManyCloses", err)
	}
}

// TestEncoderArrayOrMapStillOpen checks that Finish rejects an
// encoding that leaves a container open.
func TestEncoderArrayOrMapStillOpen(t *testing.T) {
	var buf [32]byte
	enc := runtime.NewEncoder(buf[:])
	enc.OpenArray()
	enc.AddUint(1)
	if _, err := enc.Finish(); err != runtime.ArrayOrMapStillOpen {
		t.Fatalf("got %v, want ArrayOrMapStillOpen", err)
	}
}

// TestEncoderNestingTooDeep checks that opening more than MaxNesting
// containers is rejected rather than overrunning the fixed frame
// stack.
func TestEncoderNestingTooDeep(t *testing.T) {
	var buf [1024]byte
	enc := runtime.NewEncoder(buf[:])
	for i := 0; i <= runtime.MaxNesting; i++ {
		enc.OpenArray()
	}
	if _, err := enc.Finish(); err != runtime.NestingTooDeep {
		t.Fatalf("got %v, want NestingTooDeep", err)
	}
}
