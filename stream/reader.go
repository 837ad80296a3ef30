package stream

import (
	"io"

	"github.com/arloliu/byteorder"
	"github.com/arloliu/byteorder/internal/pool"
)

// Reader decodes typed values from an underlying io.Reader using a fixed
// byte order.
//
// Every Read method consumes exactly the number of bytes its width requires.
// If the underlying reader is exhausted before a value starts, io.EOF is
// returned; if it is exhausted mid-value, io.ErrUnexpectedEOF. Errors from
// the underlying reader are returned unwrapped, so sentinel comparisons keep
// working.
type Reader struct {
	r     io.Reader
	order byteorder.ByteOrder
	buf   [16]byte
}

// NewReader creates a Reader that decodes values from r in the given byte
// order.
//
// Parameters:
//   - r: Source of raw bytes
//   - order: Byte order for multi-byte values (must match the writer's order)
//
// Returns:
//   - *Reader: A new reader; not safe for concurrent use
func NewReader(r io.Reader, order byteorder.ByteOrder) *Reader {
	return &Reader{r: r, order: order}
}

// Order returns the byte order this reader decodes with.
func (r *Reader) Order() byteorder.ByteOrder {
	return r.order
}

func (r *Reader) fill(n int) ([]byte, error) {
	if _, err := io.ReadFull(r.r, r.buf[:n]); err != nil {
		return nil, err
	}

	return r.buf[:n], nil
}

// ReadUint8 reads a single byte. No byte order conversion applies; it is
// included for completeness.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.fill(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadInt8 reads a single byte as a signed integer.
func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.fill(1)
	if err != nil {
		return 0, err
	}

	return int8(b[0]), nil
}

// ReadUint16 reads an unsigned 16-bit integer.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.fill(2)
	if err != nil {
		return 0, err
	}

	return r.order.Uint16(b), nil
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.fill(4)
	if err != nil {
		return 0, err
	}

	return r.order.Uint32(b), nil
}

// ReadUint64 reads an unsigned 64-bit integer.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.fill(8)
	if err != nil {
		return 0, err
	}

	return r.order.Uint64(b), nil
}

// ReadUint128 reads an unsigned 128-bit integer.
func (r *Reader) ReadUint128() (byteorder.Uint128, error) {
	b, err := r.fill(16)
	if err != nil {
		return byteorder.Uint128{}, err
	}

	return r.order.Uint128(b), nil
}

// ReadInt16 reads a signed 16-bit integer.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadInt32 reads a signed 32-bit integer.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadInt64 reads a signed 64-bit integer.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadInt128 reads a signed 128-bit integer.
func (r *Reader) ReadInt128() (byteorder.Int128, error) {
	v, err := r.ReadUint128()
	return v.Int128(), err
}

// ReadUint reads an unsigned integer packed into nbytes bytes and
// zero-extends it to 64 bits.
//
// Panics if nbytes is outside [1, 8]; an exhausted stream returns an error.
func (r *Reader) ReadUint(nbytes int) (uint64, error) {
	checkNBytes(nbytes)

	b, err := r.fill(nbytes)
	if err != nil {
		return 0, err
	}

	return r.order.Uint(b, nbytes), nil
}

// ReadInt reads a signed integer packed into nbytes bytes and sign-extends
// it to 64 bits.
//
// Panics if nbytes is outside [1, 8]; an exhausted stream returns an error.
func (r *Reader) ReadInt(nbytes int) (int64, error) {
	checkNBytes(nbytes)

	b, err := r.fill(nbytes)
	if err != nil {
		return 0, err
	}

	return r.order.Int(b, nbytes), nil
}

// ReadFloat32 reads an IEEE 754 single-precision float. Signaling NaN bit
// patterns are quieted, as in the core codec.
func (r *Reader) ReadFloat32() (float32, error) {
	b, err := r.fill(4)
	if err != nil {
		return 0, err
	}

	return r.order.Float32(b), nil
}

// ReadFloat64 reads an IEEE 754 double-precision float. Signaling NaN bit
// patterns are quieted, as in the core codec.
func (r *Reader) ReadFloat64() (float64, error) {
	b, err := r.fill(8)
	if err != nil {
		return 0, err
	}

	return r.order.Float64(b), nil
}

// ReadFloat reads a float64 truncated to its most significant nbytes bytes,
// zero-filling the rest, as byteorder's Float operation does.
//
// Panics if nbytes is outside [1, 8]; an exhausted stream returns an error.
func (r *Reader) ReadFloat(nbytes int) (float64, error) {
	checkNBytes(nbytes)

	b, err := r.fill(nbytes)
	if err != nil {
		return 0, err
	}

	return r.order.Float(b, nbytes), nil
}

// ReadUint64Slice fills dst with len(dst) unsigned 64-bit integers read in a
// single pass through a pooled scratch buffer. It reads exactly
// 8*len(dst) bytes; on error dst's contents are unspecified.
func (r *Reader) ReadUint64Slice(dst []uint64) error {
	if len(dst) == 0 {
		return nil
	}

	bb := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(bb)

	bb.ExtendOrGrow(len(dst) * 8)
	buf := bb.Bytes()

	if _, err := io.ReadFull(r.r, buf); err != nil {
		return err
	}

	for i := range dst {
		dst[i] = r.order.Uint64(buf[i*8 : i*8+8])
	}

	return nil
}

// ReadFloat64Slice fills dst with len(dst) float64 values read in a single
// pass through a pooled scratch buffer. Signaling NaN bit patterns are
// quieted. It reads exactly 8*len(dst) bytes; on error dst's contents are
// unspecified.
func (r *Reader) ReadFloat64Slice(dst []float64) error {
	if len(dst) == 0 {
		return nil
	}

	bb := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(bb)

	bb.ExtendOrGrow(len(dst) * 8)
	buf := bb.Bytes()

	if _, err := io.ReadFull(r.r, buf); err != nil {
		return err
	}

	for i := range dst {
		dst[i] = r.order.Float64(buf[i*8 : i*8+8])
	}

	return nil
}

func checkNBytes(nbytes int) {
	if nbytes < 1 || nbytes > 8 {
		panic("stream: nbytes out of range [1, 8]")
	}
}
