package byteorder

// IEEE 754 signaling NaN canonicalization.
//
// A signaling NaN has all exponent bits set, a nonzero mantissa, and the
// mantissa's most significant bit (the quiet bit) clear. Signaling NaNs can
// trap on some hardware, so every float read through this package forces the
// quiet bit on before reinterpreting the bits. Writes stay byte-exact; the
// canonicalization is a read-side safety net only.

const (
	f32ExpMask  uint32 = 0x7F800000
	f32MantMask uint32 = 0x007FFFFF
	f32QuietBit uint32 = 0x00400000

	f64ExpMask  uint64 = 0x7FF0000000000000
	f64MantMask uint64 = 0x000FFFFFFFFFFFFF
	f64QuietBit uint64 = 0x0008000000000000
)

// canonicalNaN32 returns bits with the quiet bit forced on if bits encodes a
// signaling NaN, and bits unchanged otherwise.
func canonicalNaN32(bits uint32) uint32 {
	if bits&f32ExpMask == f32ExpMask && bits&f32MantMask != 0 && bits&f32QuietBit == 0 {
		bits |= f32QuietBit
	}

	return bits
}

// canonicalNaN64 is the float64 counterpart of canonicalNaN32.
func canonicalNaN64(bits uint64) uint64 {
	if bits&f64ExpMask == f64ExpMask && bits&f64MantMask != 0 && bits&f64QuietBit == 0 {
		bits |= f64QuietBit
	}

	return bits
}
