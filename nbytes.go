package byteorder

// Helpers shared by the variable-width integer operations of both orderings.
//
// Sign extension and compaction are done with shift pairs rather than
// comparisons so that the behavior at the nbytes boundary (the sign bit of
// the highest used byte) is exact two's-complement width conversion.

const (
	errNBytesRange    = "byteorder: nbytes out of range [1, 8]"
	errNBytesRange128 = "byteorder: nbytes out of range [1, 16]"
	errDoesNotFit     = "byteorder: value does not fit in nbytes bytes"
)

func checkNBytes(nbytes int) {
	if nbytes < 1 || nbytes > 8 {
		panic(errNBytesRange)
	}
}

func checkNBytes128(nbytes int) {
	if nbytes < 1 || nbytes > 16 {
		panic(errNBytesRange128)
	}
}

// packSize returns the minimum number of bytes (1-8) needed to represent v
// without truncation.
func packSize(v uint64) int {
	switch {
	case v < 1<<8:
		return 1
	case v < 1<<16:
		return 2
	case v < 1<<24:
		return 3
	case v < 1<<32:
		return 4
	case v < 1<<40:
		return 5
	case v < 1<<48:
		return 6
	case v < 1<<56:
		return 7
	default:
		return 8
	}
}

// packSize128 returns the minimum number of bytes (1-16) needed to represent
// the 128-bit value v without truncation.
func packSize128(v Uint128) int {
	if v.Hi == 0 {
		return packSize(v.Lo)
	}

	return 8 + packSize(v.Hi)
}

// extendSign propagates the sign bit of the nbytes-th byte of v across the
// unused high bytes, yielding the two's-complement int64 value.
func extendSign(v uint64, nbytes int) int64 {
	shift := uint(64 - nbytes*8)
	return int64(v<<shift) >> shift
}

// unextendSign masks v down to its nbytes-byte two's-complement
// representation, the inverse of extendSign.
func unextendSign(v int64, nbytes int) uint64 {
	shift := uint(64 - nbytes*8)
	return uint64(v<<shift) >> shift
}

func extendSign128(v Uint128, nbytes int) Int128 {
	if nbytes > 8 {
		shift := uint(128 - nbytes*8)
		return Int128{Hi: int64(v.Hi<<shift) >> shift, Lo: v.Lo}
	}

	lo := extendSign(v.Lo, nbytes)

	return Int128{Hi: lo >> 63, Lo: uint64(lo)}
}

func unextendSign128(v Int128, nbytes int) Uint128 {
	if nbytes > 8 {
		shift := uint(128 - nbytes*8)
		return Uint128{Hi: uint64(v.Hi<<shift) >> shift, Lo: v.Lo}
	}

	return Uint128{Lo: unextendSign(int64(v.Lo), nbytes)}
}
