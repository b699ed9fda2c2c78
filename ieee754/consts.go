// Package ieee754 reduces a float64 or float32 to the narrowest of
// CBOR's three floating-point widths (half, single, double) that
// round-trips the value exactly, following RFC 7049's canonical
// float-encoding rule. It knows nothing about CBOR's wire format
// itself; callers hand the returned bit pattern and width to an
// encoder's AddSimpleOrFloat.
package ieee754

import "math"

const (
	float16ExpBits  = 5
	float16MantBits = 10

	float32ExpBits  = 8
	float32MantBits = 23

	float16SignShift        = float16ExpBits + float16MantBits
	float16ExpShift         = float16MantBits
	float16ExpMask   uint16 = math.MaxUint16 >> (16 - float16ExpBits)
	float16MantMask  uint16 = math.MaxUint16 >> (16 - float16MantBits)
	float16ExpBias          = int(float16ExpMask >> 1)

	float32SignShift        = float32ExpBits + float32MantBits
	float32ExpShift         = float32MantBits
	float32ExpMask   uint32 = math.MaxUint8
	float32MantMask  uint32 = math.MaxUint32 >> (32 - float32MantBits)
	float32ExpBias          = int(float32ExpMask >> 1)
	float32HiddenBit uint32 = float32MantMask + 1

	float32ToFloat16MantShift  = float32MantBits - float16MantBits
	float32ToFloat16RoundShift = float32ToFloat16MantShift - 1
)
