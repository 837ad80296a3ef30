// Package byteorder converts fixed-width integers and IEEE 754 floating point
// numbers to and from raw byte sequences in big-endian or little-endian order,
// with variable-width (1-16 byte) packed integer support.
//
// It is the low-level primitive that binary file formats, wire protocols and
// archive formats build on, so that bit-shifting logic lives in exactly one
// place. Every operation is a pure function over caller-provided buffers:
// no allocation, no I/O, no shared state.
//
// # Basic Usage
//
// Select an ordering and call its read/write methods directly:
//
//	import "github.com/arloliu/byteorder"
//
//	buf := make([]byte, 4)
//	byteorder.BigEndian.PutUint32(buf, 0xDEADBEEF)
//	v := byteorder.BigEndian.Uint32(buf) // 0xDEADBEEF
//
// Variable-width integers use only the bytes a value actually needs:
//
//	buf := make([]byte, 3)
//	byteorder.LittleEndian.PutUint(buf, 0x8074FA, 3)
//	v := byteorder.LittleEndian.Uint(buf, 3) // 0x8074FA
//
// BigEndian, LittleEndian, NetworkEndian and NativeEndian are stateless
// zero-size values. Calling their methods directly compiles to static
// dispatch; hold a ByteOrder interface value only when the ordering must be
// chosen at runtime.
//
// # Error Handling
//
// Undersized buffers, an nbytes outside its valid range, and values that do
// not fit in the requested width are caller bugs, not runtime conditions:
// every such violation panics. Recoverable errors (short reads from an
// io.Reader, write failures) belong to the stream subpackage, which adapts
// arbitrary byte streams onto this codec.
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The ordering values are immutable and stateless.
package byteorder

// ByteOrder is the full operation set shared by BigEndian and LittleEndian.
//
// It mirrors encoding/binary's ByteOrder and AppendByteOrder and extends them
// with signed, variable-width, 128-bit and floating point operations. All
// methods read from or write to the first width bytes of the given slice,
// regardless of the slice's total length, and panic if the slice is shorter
// than the width they need.
type ByteOrder interface {
	Uint16(b []byte) uint16
	Uint32(b []byte) uint32
	Uint64(b []byte) uint64
	Uint128(b []byte) Uint128

	PutUint16(b []byte, v uint16)
	PutUint32(b []byte, v uint32)
	PutUint64(b []byte, v uint64)
	PutUint128(b []byte, v Uint128)

	Int16(b []byte) int16
	Int32(b []byte) int32
	Int64(b []byte) int64
	Int128(b []byte) Int128

	PutInt16(b []byte, v int16)
	PutInt32(b []byte, v int32)
	PutInt64(b []byte, v int64)
	PutInt128(b []byte, v Int128)

	// Variable-width integers. nbytes selects how many bytes of precision
	// are used; it must be in [1, 8] for the 64-bit operations and [1, 16]
	// for the 128-bit ones.
	Uint(b []byte, nbytes int) uint64
	PutUint(b []byte, v uint64, nbytes int)
	Int(b []byte, nbytes int) int64
	PutInt(b []byte, v int64, nbytes int)
	Uint128N(b []byte, nbytes int) Uint128
	PutUint128N(b []byte, v Uint128, nbytes int)
	Int128N(b []byte, nbytes int) Int128
	PutInt128N(b []byte, v Int128, nbytes int)

	Float32(b []byte) float32
	Float64(b []byte) float64
	PutFloat32(b []byte, v float32)
	PutFloat64(b []byte, v float64)

	// Float reads the first nbytes bytes of b as the most significant bytes
	// of a float64, zero-filling the rest. See the method docs on BigEndian
	// and LittleEndian for the exact semantics.
	Float(b []byte, nbytes int) float64

	AppendUint16(b []byte, v uint16) []byte
	AppendUint32(b []byte, v uint32) []byte
	AppendUint64(b []byte, v uint64) []byte
	AppendUint(b []byte, v uint64, nbytes int) []byte

	String() string
}

// BigEndian is the big-endian implementation of ByteOrder: byte 0 is the most
// significant byte of a value.
var BigEndian bigEndian

// LittleEndian is the little-endian implementation of ByteOrder: byte 0 is
// the least significant byte of a value.
var LittleEndian littleEndian

// NetworkEndian is the ordering used by most network wire formats.
// It is an alias for BigEndian.
var NetworkEndian = BigEndian

var (
	_ ByteOrder = bigEndian{}
	_ ByteOrder = littleEndian{}
)
