package runtime

import "github.com/janjongboom/qcbor-go/ieee754"

// Encoder is a stateful, sticky-error CBOR writer over a caller-owned
// buffer. It never allocates, never recurses and bounds its own stack
// usage to a small constant regardless of how the caller nests
// arrays, maps and byte-string wraps.
//
// An Encoder is Ready after Reset and Poisoned once any operation
// latches a non-Success EncodeError; every method is then a no-op
// until the next Reset. There is no way to clear an error short of
// starting over — this is deliberate: a caller that hit one error is
// not in a position to reason about whether a second one is real or
// a symptom of the first.
type Encoder struct {
	out     OutputBuffer
	nesting NestingStack
	err     EncodeError
}

// Reset binds buf as the output storage and clears any latched error,
// making the Encoder ready for a fresh encoding. Reusing an Encoder
// across calls to Reset avoids re-allocating the nesting stack.
//
// Reset poisons the Encoder immediately with BufferTooLarge if buf is
// larger than a uint32 can address; NestingFrame.StartOffset is a
// uint32 and cannot track positions beyond that.
func (e *Encoder) Reset(buf []byte) {
	e.out.Reset(buf)
	e.nesting.Reset()
	e.err = Success
	if uint64(len(buf)) > 0xFFFFFFFF {
		e.err = BufferTooLarge
	}
}

// NewEncoder returns an Encoder bound to buf, equivalent to calling
// Reset on a zero Encoder.
func NewEncoder(buf []byte) *Encoder {
	e := &Encoder{}
	e.Reset(buf)
	return e
}

// poisoned reports whether the Encoder should refuse further work.
func (e *Encoder) poisoned() bool { return e.err != Success }

// latch records err as the Encoder's sticky error if none is already
// set. The first error always wins.
func (e *Encoder) latch(err EncodeError) {
	if e.err == Success {
		e.err = err
	}
}

// AddUint appends a CBOR positive integer.
func (e *Encoder) AddUint(v uint64) {
	if e.poisoned() {
		return
	}
	emitHeader(&e.out, majorUint, W0, v, e.out.EndPosition())
	e.latch(e.nesting.Increment(1))
}

// AddInt appends a CBOR integer, choosing the positive or negative
// major type as needed. CBOR encodes a negative value n < 0 as major
// type NegativeInt with argument (-n)-1 — the one's-complement
// absolute value, not the two's-complement bit pattern — so -1 is the
// smallest possible negative-int encoding (argument 0) rather than
// int64's MinInt64 mapping to argument 0.
func (e *Encoder) AddInt(v int64) {
	if e.poisoned() {
		return
	}
	if v < 0 {
		emitHeader(&e.out, majorNegInt, W0, uint64(-v-1), e.out.EndPosition())
	} else {
		emitHeader(&e.out, majorUint, W0, uint64(v), e.out.EndPosition())
	}
	e.latch(e.nesting.Increment(1))
}

// BufferMajor selects which CBOR major type AddBytes frames payload
// with. RawPassThrough splices already-encoded CBOR into the stream
// verbatim, without emitting a length-prefixed header of its own —
// used to embed a pre-built item (e.g. from a nested Marshaler) at the
// current position.
type BufferMajor uint8

const (
	ByteStringMajor BufferMajor = majorBytes
	TextStringMajor BufferMajor = majorText
	RawPassThrough  BufferMajor = 0xff
)

// AddBytes appends payload, framed as a byte string or text string
// header followed by the raw bytes, or spliced in verbatim when major
// is RawPassThrough. It poisons the Encoder with BufferTooLarge if
// payload is too large for the header's argument to address.
func (e *Encoder) AddBytes(major BufferMajor, payload []byte) {
	if e.poisoned() {
		return
	}
	if uint64(len(payload)) >= 0xFFFFFFFF {
		e.latch(BufferTooLarge)
		return
	}
	if major != RawPassThrough {
		emitHeader(&e.out, uint8(major), W0, uint64(len(payload)), e.out.EndPosition())
	}
	e.out.AppendBytes(payload)
	e.latch(e.nesting.Increment(1))
}

// AddTag appends a semantic tag. A tag is a prefix on the single item
// that follows it, not an item of its own: unlike every other AddXxx
// method, AddTag does not increment the enclosing frame's child
// count. Callers must always follow a tag with exactly one item; this
// is not enforced, matching spec's documented caller responsibility.
func (e *Encoder) AddTag(tag uint64) {
	if e.poisoned() {
		return
	}
	emitHeader(&e.out, majorTag, W0, tag, e.out.EndPosition())
}

// AddSimpleOrFloat appends a major-type-7 item: a simple value or a
// float whose IEEE-754 bit pattern has already been chosen by an
// external reducer (see the sibling ieee754 package). width forces
// the argument to occupy at least that many bytes even if the bit
// pattern alone would fit narrower — required for floats, since a
// float's width is a property of its type, not its value.
func (e *Encoder) AddSimpleOrFloat(width ArgumentWidth, rawBits uint64) {
	if e.poisoned() {
		return
	}
	emitHeader(&e.out, majorSimple, width, rawBits, e.out.EndPosition())
	e.latch(e.nesting.Increment(1))
}

// AddFloat64 appends f at whichever of CBOR's three float widths is
// the narrowest that round-trips it exactly, via the sibling ieee754
// package's canonical reducer.
func (e *Encoder) AddFloat64(f float64) {
	if e.poisoned() {
		return
	}
	width, bits := ieee754.Shortest(f)
	e.AddSimpleOrFloat(argumentWidthFor(width), bits)
}

// AddFloat32 is AddFloat64 specialized for a value already known to
// be a float32; it can never need float64 width.
func (e *Encoder) AddFloat32(f float32) {
	if e.poisoned() {
		return
	}
	width, bits := ieee754.ShortestFromFloat32(f)
	e.AddSimpleOrFloat(argumentWidthFor(width), bits)
}

func argumentWidthFor(w ieee754.Width) ArgumentWidth {
	switch w {
	case ieee754.Half:
		return W2
	case ieee754.Single:
		return W4
	default:
		return W8
	}
}

// AddBool appends a CBOR true/false simple value.
func (e *Encoder) AddBool(v bool) {
	if e.poisoned() {
		return
	}
	b := uint8(simpleFalse)
	if v {
		b = simpleTrue
	}
	e.out.AppendByte(makeInitialByte(majorSimple, b))
	e.latch(e.nesting.Increment(1))
}

// AddNil appends a CBOR null simple value.
func (e *Encoder) AddNil() {
	if e.poisoned() {
		return
	}
	e.out.AppendByte(makeInitialByte(majorSimple, simpleNull))
	e.latch(e.nesting.Increment(1))
}

// OpenArray opens an array container. Every item AddXxx-ed (and every
// container opened) before the matching CloseArray becomes one
// element.
func (e *Encoder) OpenArray() { e.open(frameArray) }

// OpenMap opens a map container. Items appended before the matching
// CloseMap are key/value pairs in the order appended; the caller is
// responsible for appending an even number (see CloseMap).
func (e *Encoder) OpenMap() { e.open(frameMap) }

// OpenBstrWrap opens a byte string whose payload is itself a single,
// complete, valid CBOR item — the technique COSE uses to hash an
// enclosed structure without double-encoding it. Anything appended
// before the matching CloseBstrWrap becomes that payload.
func (e *Encoder) OpenBstrWrap() { e.open(frameBstr) }

func (e *Encoder) open(major containerMajor) {
	if e.poisoned() {
		return
	}
	// The container counts as one item in the frame that encloses it,
	// exactly like any other AddXxx call, before a new frame is pushed
	// for its own children.
	if err := e.nesting.Increment(1); err != Success {
		e.latch(err)
		return
	}
	e.latch(e.nesting.Push(major, e.out.EndPosition()))
}

// CloseArray closes the array opened by the matching OpenArray,
// back-patching its header with the number of items it accepted.
func (e *Encoder) CloseArray() { e.close(frameArray, nil) }

// CloseMap closes the map opened by the matching OpenMap. The header
// is back-patched with half the accepted item count (CBOR counts map
// pairs, not items). Closing with an odd item count is not rejected —
// it produces malformed CBOR, and catching it is left to the caller
// and to tests, not to the encoder (see package decoder and the
// semantic package's tests, which always append pairs).
func (e *Encoder) CloseMap() { e.close(frameMap, nil) }

// CloseBstrWrap closes the byte string opened by OpenBstrWrap,
// back-patching its header with the payload's byte length, and
// returns a view of the complete wrapped byte string (header +
// payload). The returned slice aliases the Encoder's buffer and is
// invalidated by any later call that writes to this Encoder — callers
// that need it past that point (e.g. to hash it for COSE) must use it
// immediately.
func (e *Encoder) CloseBstrWrap() []byte {
	var view []byte
	e.close(frameBstr, &view)
	return view
}

func (e *Encoder) close(major containerMajor, wrappedView *[]byte) {
	if e.poisoned() {
		return
	}
	if !e.nesting.IsNested() {
		e.latch(TooManyCloses)
		return
	}
	cur := e.nesting.Current()
	if cur.Major != major {
		e.latch(CloseMismatch)
		return
	}

	start := cur.StartOffset
	endBefore := e.out.EndPosition()
	payloadLen := endBefore - start

	var argument uint64
	if major == frameBstr {
		argument = uint64(payloadLen)
	} else {
		argument = uint64(e.nesting.CountForHeader())
	}

	emitHeader(&e.out, uint8(major), W0, argument, start)

	if wrappedView != nil {
		insertedLen := e.out.EndPosition() - endBefore
		*wrappedView = e.out.Snapshot()[start : start+insertedLen+payloadLen]
	}

	e.nesting.Pop()
}

// Finish validates that encoding completed cleanly and returns the
// encoded bytes. The returned slice aliases the Encoder's buffer and
// is invalidated by any later call that writes to this Encoder.
//
// Error precedence: a latched EncodeError wins over "still open",
// which wins over buffer-full. Buffer-full comes last because an
// overflow is tracked by OutputBuffer's own flag rather than latched
// as the Encoder's sticky error: operations after an overflow still
// run their checks, and a misuse error one of them latches is what
// Finish reports.
func (e *Encoder) Finish() ([]byte, error) {
	if e.poisoned() {
		return nil, e.err
	}
	if e.nesting.IsNested() {
		return nil, ArrayOrMapStillOpen
	}
	if e.out.Overflow() {
		return nil, BufferTooSmall
	}
	return e.out.Snapshot(), nil
}

// FinishSize is Finish but returns only the encoded length.
func (e *Encoder) FinishSize() (int, error) {
	b, err := e.Finish()
	if err != nil {
		return 0, err
	}
	return len(b), nil
}
