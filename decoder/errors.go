// Package decoder reads back exactly the subset of CBOR the runtime
// package's Encoder can produce: definite-length arrays, maps and
// strings, the four integer argument widths, tags, and the three
// float widths plus booleans, null and undefined. It rejects
// indefinite-length items outright rather than attempting to stream
// them, mirroring the encoder's own restriction.
package decoder

import (
	"errors"
	"fmt"
	"strconv"
)

const resumableDefault = false

var (
	// ErrShortBytes is returned when the
	// slice being decoded is too short to
	// contain the contents of the message
	ErrShortBytes error = errShort{}

	// ErrMaxDepthExceeded is returned when Skip's pending-count work
	// list would grow past maxSkipDepth. Only adversarial or corrupt
	// input should ever reach this; well-formed CBOR this decoder is
	// meant to read back nests far shallower.
	ErrMaxDepthExceeded error = errors.New("cbor: max skip depth exceeded")

	// ErrNotNil is returned when expecting nil
	ErrNotNil error = errors.New("cbor: not nil")

	// ErrInvalidUTF8 is returned when a text string contains invalid UTF-8
	ErrInvalidUTF8 error = errors.New("cbor: invalid UTF-8 in text string")

	// ErrIndefiniteNotSupported is returned when an indefinite-length
	// array, map, string or byte string is encountered. This decoder
	// only reads what the runtime package's Encoder can produce, and
	// the encoder never emits indefinite-length items.
	ErrIndefiniteNotSupported error = errors.New("cbor: indefinite-length items are not supported")
)

// Error is the interface satisfied
// by all of the errors that originate
// from this package.
type Error interface {
	error

	// Resumable returns whether
	// or not the error means that
	// the stream of data is malformed
	// and the information is unrecoverable.
	Resumable() bool
}

// contextError allows Error instances to be enhanced with additional
// context about their origin.
type contextError interface {
	Error

	// withContext must not modify the error instance - it must clone and
	// return a new error with the context added.
	withContext(ctx string) error
}

// Cause returns the underlying cause of an error that has been wrapped
// with additional context.
func Cause(e error) error {
	out := e
	if e, ok := e.(errWrapped); ok && e.cause != nil {
		out = e.cause
	}
	return out
}

// Resumable returns whether or not the error means that the stream of data is
// malformed and the information is unrecoverable.
func Resumable(e error) bool {
	if e, ok := e.(Error); ok {
		return e.Resumable()
	}
	return resumableDefault
}

// WrapError wraps an error with additional context that allows the part of the
// serialized type that caused the problem to be identified. Underlying errors
// can be retrieved using Cause()
//
// The input error is not modified - a new error should be returned.
//
// ErrShortBytes is not wrapped with any context due to backward compatibility
// issues with the public API.
func WrapError(err error, ctx ...any) error {
	switch e := err.(type) {
	case errShort:
		return e
	case contextError:
		return e.withContext(ctxString(ctx))
	default:
		return errWrapped{cause: err, ctx: ctxString(ctx)}
	}
}

// ctxString joins the variadic context fragments WrapError accepts
// with "/" into the single string every error type's ctx field stores.
func ctxString(ctx []any) string {
	out := ""
	for i, c := range ctx {
		if i > 0 {
			out += "/"
		}
		out += fmt.Sprint(c)
	}
	return out
}

func addCtx(ctx, add string) string {
	if ctx != "" {
		return add + "/" + ctx
	} else {
		return add
	}
}

// errWrapped allows arbitrary errors passed to WrapError to be enhanced with
// context and unwrapped with Cause()
type errWrapped struct {
	cause error
	ctx   string
}

func (e errWrapped) Error() string {
	if e.ctx != "" {
		return e.cause.Error() + " at " + e.ctx
	} else {
		return e.cause.Error()
	}
}

func (e errWrapped) Resumable() bool {
	if e, ok := e.cause.(Error); ok {
		return e.Resumable()
	}
	return resumableDefault
}

// Unwrap returns the cause.
func (e errWrapped) Unwrap() error { return e.cause }

type errShort struct{}

func (e errShort) Error() string   { return "cbor: too few bytes left to read object" }
func (e errShort) Resumable() bool { return false }

// IntOverflow is returned when a call
// would downcast an integer to a type
// with too few bits to hold its value.
type IntOverflow struct {
	Value         int64 // the value of the integer
	FailedBitsize int   // the bit size that the int64 could not fit into
	ctx           string
}

// Error implements the error interface
func (i IntOverflow) Error() string {
	str := "cbor: " + strconv.FormatInt(i.Value, 10) + " overflows int" + strconv.Itoa(i.FailedBitsize)
	if i.ctx != "" {
		str += " at " + i.ctx
	}
	return str
}

// Resumable is always 'true' for overflows
func (i IntOverflow) Resumable() bool { return true }

func (i IntOverflow) withContext(ctx string) error { i.ctx = addCtx(i.ctx, ctx); return i }

// UintOverflow is returned when a call
// would downcast an unsigned integer to a type
// with too few bits to hold its value
type UintOverflow struct {
	Value         uint64 // value of the uint
	FailedBitsize int    // the bit size that couldn't fit the value
	ctx           string
}

// Error implements the error interface
func (u UintOverflow) Error() string {
	str := "cbor: " + strconv.FormatUint(u.Value, 10) + " overflows uint" + strconv.Itoa(u.FailedBitsize)
	if u.ctx != "" {
		str += " at " + u.ctx
	}
	return str
}

// Resumable is always 'true' for overflows
func (u UintOverflow) Resumable() bool { return true }

func (u UintOverflow) withContext(ctx string) error { u.ctx = addCtx(u.ctx, ctx); return u }

// A TypeError is returned when a particular decoding method is
// unsuitable for decoding a particular CBOR value — e.g. calling
// ReadUint64Bytes on an item whose major type is a byte string.
type TypeError struct {
	Method  Type // Type expected by the method called
	Encoded Type // Type actually present in the stream

	ctx string
}

// Error implements the error interface
func (t TypeError) Error() string {
	out := "cbor: attempted to decode type " + strconv.Quote(t.Encoded.String()) + " with method for " + strconv.Quote(t.Method.String())
	if t.ctx != "" {
		out += " at " + t.ctx
	}
	return out
}

// Resumable returns 'true' for TypeErrors
func (t TypeError) Resumable() bool { return true }

func (t TypeError) withContext(ctx string) error { t.ctx = addCtx(t.ctx, ctx); return t }

// InvalidPrefixError is returned when an initial byte's additional-info
// field holds one of the reserved values 28-30. The indefinite-length
// value 31 is reported as ErrIndefiniteNotSupported instead.
type InvalidPrefixError struct {
	Major   uint8
	AddInfo uint8
}

// Error implements the error interface
func (i InvalidPrefixError) Error() string {
	return "cbor: invalid prefix for major type " + strconv.Itoa(int(i.Major)) + ", additional info " + strconv.Itoa(int(i.AddInfo))
}

// Resumable returns 'false' for InvalidPrefixErrors
func (i InvalidPrefixError) Resumable() bool { return false }
