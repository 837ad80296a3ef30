package byteorder

import "math"

// bigEndian implements ByteOrder with the most significant byte first.
// The zero value is ready to use; see the package-level BigEndian variable.
type bigEndian struct{}

// Uint16 decodes b[0:2] as a big-endian unsigned 16-bit integer.
// Panics if len(b) < 2.
func (bigEndian) Uint16(b []byte) uint16 {
	_ = b[1] // bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])
}

// Uint32 decodes b[0:4] as a big-endian unsigned 32-bit integer.
// Panics if len(b) < 4.
func (bigEndian) Uint32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// Uint64 decodes b[0:8] as a big-endian unsigned 64-bit integer.
// Panics if len(b) < 8.
func (bigEndian) Uint64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
}

// Uint128 decodes b[0:16] as a big-endian unsigned 128-bit integer.
// Panics if len(b) < 16.
func (e bigEndian) Uint128(b []byte) Uint128 {
	_ = b[15]
	return Uint128{Hi: e.Uint64(b[0:8]), Lo: e.Uint64(b[8:16])}
}

// PutUint16 encodes v into b[0:2] most significant byte first.
// Panics if len(b) < 2.
func (bigEndian) PutUint16(b []byte, v uint16) {
	_ = b[1]
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

// PutUint32 encodes v into b[0:4] most significant byte first.
// Panics if len(b) < 4.
func (bigEndian) PutUint32(b []byte, v uint32) {
	_ = b[3]
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

// PutUint64 encodes v into b[0:8] most significant byte first.
// Panics if len(b) < 8.
func (bigEndian) PutUint64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v >> 56)
	b[1] = byte(v >> 48)
	b[2] = byte(v >> 40)
	b[3] = byte(v >> 32)
	b[4] = byte(v >> 24)
	b[5] = byte(v >> 16)
	b[6] = byte(v >> 8)
	b[7] = byte(v)
}

// PutUint128 encodes v into b[0:16] most significant byte first.
// Panics if len(b) < 16.
func (e bigEndian) PutUint128(b []byte, v Uint128) {
	_ = b[15]
	e.PutUint64(b[0:8], v.Hi)
	e.PutUint64(b[8:16], v.Lo)
}

// Int16 decodes b[0:2] as a big-endian signed 16-bit integer.
func (e bigEndian) Int16(b []byte) int16 { return int16(e.Uint16(b)) }

// Int32 decodes b[0:4] as a big-endian signed 32-bit integer.
func (e bigEndian) Int32(b []byte) int32 { return int32(e.Uint32(b)) }

// Int64 decodes b[0:8] as a big-endian signed 64-bit integer.
func (e bigEndian) Int64(b []byte) int64 { return int64(e.Uint64(b)) }

// Int128 decodes b[0:16] as a big-endian signed 128-bit integer.
func (e bigEndian) Int128(b []byte) Int128 { return e.Uint128(b).Int128() }

// PutInt16 encodes v into b[0:2] most significant byte first.
func (e bigEndian) PutInt16(b []byte, v int16) { e.PutUint16(b, uint16(v)) }

// PutInt32 encodes v into b[0:4] most significant byte first.
func (e bigEndian) PutInt32(b []byte, v int32) { e.PutUint32(b, uint32(v)) }

// PutInt64 encodes v into b[0:8] most significant byte first.
func (e bigEndian) PutInt64(b []byte, v int64) { e.PutUint64(b, uint64(v)) }

// PutInt128 encodes v into b[0:16] most significant byte first.
func (e bigEndian) PutInt128(b []byte, v Int128) { e.PutUint128(b, v.Uint128()) }

// Uint decodes the first nbytes bytes of b as a big-endian unsigned integer
// and zero-extends it to 64 bits. Only b[0:nbytes] is examined, regardless of
// the slice length.
//
// Panics if nbytes is outside [1, 8] or len(b) < nbytes.
func (bigEndian) Uint(b []byte, nbytes int) uint64 {
	checkNBytes(nbytes)
	_ = b[nbytes-1]

	var v uint64
	for i := 0; i < nbytes; i++ {
		v = v<<8 | uint64(b[i])
	}

	return v
}

// PutUint encodes the nbytes-byte big-endian representation of v into
// b[0:nbytes].
//
// Panics if nbytes is outside [1, 8], v does not fit in nbytes bytes, or
// len(b) < nbytes.
func (bigEndian) PutUint(b []byte, v uint64, nbytes int) {
	checkNBytes(nbytes)
	if packSize(v) > nbytes {
		panic(errDoesNotFit)
	}
	_ = b[nbytes-1]

	for i := nbytes - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}

// Int decodes the first nbytes bytes of b as a big-endian two's-complement
// signed integer and sign-extends it to 64 bits.
//
// Panics if nbytes is outside [1, 8] or len(b) < nbytes.
func (e bigEndian) Int(b []byte, nbytes int) int64 {
	return extendSign(e.Uint(b, nbytes), nbytes)
}

// PutInt encodes the nbytes-byte big-endian two's-complement representation
// of v into b[0:nbytes].
//
// Panics if nbytes is outside [1, 8], the masked representation of v does not
// fit in nbytes bytes, or len(b) < nbytes.
func (e bigEndian) PutInt(b []byte, v int64, nbytes int) {
	checkNBytes(nbytes)
	e.PutUint(b, unextendSign(v, nbytes), nbytes)
}

// Uint128N decodes the first nbytes bytes of b as a big-endian unsigned
// integer and zero-extends it to 128 bits.
//
// Panics if nbytes is outside [1, 16] or len(b) < nbytes.
func (e bigEndian) Uint128N(b []byte, nbytes int) Uint128 {
	checkNBytes128(nbytes)
	if nbytes <= 8 {
		return Uint128{Lo: e.Uint(b, nbytes)}
	}
	_ = b[nbytes-1]

	return Uint128{Hi: e.Uint(b, nbytes-8), Lo: e.Uint64(b[nbytes-8 : nbytes])}
}

// PutUint128N encodes the nbytes-byte big-endian representation of v into
// b[0:nbytes].
//
// Panics if nbytes is outside [1, 16], v does not fit in nbytes bytes, or
// len(b) < nbytes.
func (e bigEndian) PutUint128N(b []byte, v Uint128, nbytes int) {
	checkNBytes128(nbytes)
	if packSize128(v) > nbytes {
		panic(errDoesNotFit)
	}
	if nbytes <= 8 {
		e.PutUint(b, v.Lo, nbytes)
		return
	}
	_ = b[nbytes-1]
	e.PutUint(b, v.Hi, nbytes-8)
	e.PutUint64(b[nbytes-8:nbytes], v.Lo)
}

// Int128N decodes the first nbytes bytes of b as a big-endian
// two's-complement signed integer and sign-extends it to 128 bits.
func (e bigEndian) Int128N(b []byte, nbytes int) Int128 {
	return extendSign128(e.Uint128N(b, nbytes), nbytes)
}

// PutInt128N encodes the nbytes-byte big-endian two's-complement
// representation of v into b[0:nbytes].
func (e bigEndian) PutInt128N(b []byte, v Int128, nbytes int) {
	checkNBytes128(nbytes)
	e.PutUint128N(b, unextendSign128(v, nbytes), nbytes)
}

// Float32 decodes b[0:4] as a big-endian IEEE 754 single-precision float.
// Signaling NaN bit patterns are quieted before reinterpretation.
// Panics if len(b) < 4.
func (e bigEndian) Float32(b []byte) float32 {
	return math.Float32frombits(canonicalNaN32(e.Uint32(b)))
}

// Float64 decodes b[0:8] as a big-endian IEEE 754 double-precision float.
// Signaling NaN bit patterns are quieted before reinterpretation.
// Panics if len(b) < 8.
func (e bigEndian) Float64(b []byte) float64 {
	return math.Float64frombits(canonicalNaN64(e.Uint64(b)))
}

// PutFloat32 encodes the exact bit pattern of v into b[0:4] most significant
// byte first. NaN payloads are written unmodified. Panics if len(b) < 4.
func (e bigEndian) PutFloat32(b []byte, v float32) {
	e.PutUint32(b, math.Float32bits(v))
}

// PutFloat64 encodes the exact bit pattern of v into b[0:8] most significant
// byte first. NaN payloads are written unmodified. Panics if len(b) < 8.
func (e bigEndian) PutFloat64(b []byte, v float64) {
	e.PutUint64(b, math.Float64bits(v))
}

// Float decodes the first nbytes bytes of b as the most significant nbytes
// bytes of a big-endian IEEE 754 double, zero-filling the remaining low-order
// bytes. Narrow-precision wire formats use this to truncate trailing mantissa
// bytes. Signaling NaN bit patterns are quieted before reinterpretation.
//
// Panics if nbytes is outside [1, 8] or len(b) < nbytes.
func (e bigEndian) Float(b []byte, nbytes int) float64 {
	bits := e.Uint(b, nbytes) << (uint(8-nbytes) * 8)
	return math.Float64frombits(canonicalNaN64(bits))
}

// AppendUint16 appends the big-endian encoding of v to b.
func (bigEndian) AppendUint16(b []byte, v uint16) []byte {
	return append(b, byte(v>>8), byte(v))
}

// AppendUint32 appends the big-endian encoding of v to b.
func (bigEndian) AppendUint32(b []byte, v uint32) []byte {
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// AppendUint64 appends the big-endian encoding of v to b.
func (bigEndian) AppendUint64(b []byte, v uint64) []byte {
	return append(b,
		byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// AppendUint appends the nbytes-byte big-endian representation of v to b.
// Panics if nbytes is outside [1, 8] or v does not fit in nbytes bytes.
func (e bigEndian) AppendUint(b []byte, v uint64, nbytes int) []byte {
	var tmp [8]byte
	e.PutUint(tmp[:], v, nbytes)

	return append(b, tmp[:nbytes]...)
}

func (bigEndian) String() string { return "BigEndian" }
