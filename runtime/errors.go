package runtime

// EncodeError is the flat, sticky error kind an Encoder latches on the
// first failing operation. Every EncoderAPI method is a no-op once
// the Encoder holds a non-Success EncodeError; only Reset clears it.
//
// Errors are tracked internally rather than returned from every call
// so call sites need exactly one check, at Finish. A caller that gets
// a non-Success error from Finish must discard the buffer's contents;
// partial output never looks like valid CBOR (it may simply be
// absent, or it may stop mid-item) and must not be shipped.
type EncodeError uint8

const (
	// Success is the zero value: no error has been latched.
	Success EncodeError = iota

	// BufferTooLarge is latched when the storage handed to Reset is
	// larger than math.MaxUint32 bytes, or a single AddBytes payload
	// is that large. NestingFrame.StartOffset is a uint32, so the
	// encoder cannot track positions beyond that range.
	BufferTooLarge

	// BufferTooSmall is latched when an append or insert would write
	// past the end of the caller's buffer. The buffer is never
	// written past its capacity; this error is discovered at Finish
	// by inspecting OutputBuffer's latched overflow flag, not at the
	// call site that first overflowed.
	BufferTooSmall

	// NestingTooDeep is latched by Open when MaxNesting containers are
	// already open.
	NestingTooDeep

	// ArrayTooLong is latched when a frame's child count would reach
	// MaxItemsInArray.
	ArrayTooLong

	// TooManyCloses is latched by Close when no container is open.
	TooManyCloses

	// CloseMismatch is latched by Close when the major type passed to
	// Close does not match the major type the matching Open recorded.
	CloseMismatch

	// ArrayOrMapStillOpen is latched (at Finish only, not earlier) when
	// one or more containers are still open.
	ArrayOrMapStillOpen

	// BadSimple marks a simple value outside the encodable range. The
	// core HeaderCoder never raises this itself — it is reserved for a
	// simple-value wrapper layered on top of AddSimpleOrFloat.
	BadSimple
)

// String names an EncodeError the way this package's other error
// types implement fmt.Stringer, so EncodeError reads well in test
// failures and log lines without callers needing a lookup table.
func (e EncodeError) String() string {
	switch e {
	case Success:
		return "success"
	case BufferTooLarge:
		return "cbor: buffer too large"
	case BufferTooSmall:
		return "cbor: buffer too small"
	case NestingTooDeep:
		return "cbor: array/map nesting too deep"
	case ArrayTooLong:
		return "cbor: array or map too long"
	case TooManyCloses:
		return "cbor: too many closes"
	case CloseMismatch:
		return "cbor: close major type does not match open major type"
	case ArrayOrMapStillOpen:
		return "cbor: array or map still open at finish"
	case BadSimple:
		return "cbor: simple value out of range"
	default:
		return "cbor: unknown error"
	}
}

// Error satisfies the error interface so an EncodeError can be
// returned directly from Finish/FinishSize without being wrapped.
func (e EncodeError) Error() string { return e.String() }
