package runtime

// containerMajor restricts NestingFrame.Major to the three major
// types that ever open a frame: Array, Map, and byte-string-wrap
// (bstr-wrap reuses the open/close machinery to emit a byte string
// whose payload is itself a valid, complete CBOR item — the
// technique COSE uses to hash an enclosed structure).
type containerMajor uint8

const (
	frameArray containerMajor = majorArray
	frameMap   containerMajor = majorMap
	frameBstr  containerMajor = majorBytes
)

// NestingFrame records one open container: where its payload starts,
// how many child items it has accepted so far, and what kind it is.
type NestingFrame struct {
	Major       containerMajor
	StartOffset uint32
	ChildCount  uint16
}

// NestingStack is a bounded stack of NestingFrame with a sentinel
// bottom frame that represents "not inside any container" as an
// implicit, never-emitted array. Modeling the top level this way
// lets every AddXxx call increment "the current frame" uniformly,
// whether or not the caller has actually opened anything; there is
// no separate top-level branch to keep in sync with the nested one.
type NestingStack struct {
	frames  [MaxNesting + 1]NestingFrame
	current int // index into frames; 0 is the sentinel bottom frame
}

// Reset returns the stack to its initial state: only the sentinel
// bottom frame, type Array, zero children.
func (n *NestingStack) Reset() {
	n.current = 0
	n.frames[0] = NestingFrame{Major: frameArray}
}

// IsNested reports whether any real container is open.
func (n *NestingStack) IsNested() bool { return n.current > 0 }

// Current returns the top-of-stack frame (the sentinel if nothing is
// open).
func (n *NestingStack) Current() *NestingFrame { return &n.frames[n.current] }

// Push opens a new frame of the given major type starting at
// startOffset. It fails with NestingTooDeep if MaxNesting frames are
// already open.
func (n *NestingStack) Push(major containerMajor, startOffset uint32) EncodeError {
	if n.current == MaxNesting {
		return NestingTooDeep
	}
	n.current++
	n.frames[n.current] = NestingFrame{Major: major, StartOffset: startOffset}
	return Success
}

// Pop closes the top-of-stack frame. The caller must have already
// checked IsNested; Pop never drops below the sentinel.
func (n *NestingStack) Pop() {
	if n.current > 0 {
		n.current--
	}
}

// Increment adds by to the current frame's child count. It fails with
// ArrayTooLong if the count would reach MaxItemsInArray — this
// applies uniformly to the sentinel frame (counting top-level items)
// and to real frames (counting array elements or map key+value
// items).
func (n *NestingStack) Increment(by uint16) EncodeError {
	f := &n.frames[n.current]
	if uint32(f.ChildCount)+uint32(by) >= MaxItemsInArray {
		return ArrayTooLong
	}
	f.ChildCount += by
	return Success
}

// CountForHeader returns the number CBOR wants written into the
// current frame's container header: the raw child count for an
// array, half that (key+value pairs) for a map. It is meaningless for
// a bstr-wrap frame, whose header argument is a byte length instead —
// callers use EndPosition - StartOffset for that case.
func (n *NestingStack) CountForHeader() uint32 {
	f := n.Current()
	if f.Major == frameMap {
		return uint32(f.ChildCount) / 2
	}
	return uint32(f.ChildCount)
}
