package stream

import (
	"io"

	"github.com/arloliu/byteorder"
	"github.com/arloliu/byteorder/internal/pool"
)

// Writer encodes typed values onto an underlying io.Writer using a fixed
// byte order.
//
// Every Write method emits exactly the number of bytes its width requires.
// Errors from the underlying writer are returned unwrapped.
type Writer struct {
	w     io.Writer
	order byteorder.ByteOrder
	buf   [16]byte
}

// NewWriter creates a Writer that encodes values onto w in the given byte
// order.
//
// Parameters:
//   - w: Destination for raw bytes
//   - order: Byte order for multi-byte values (must match the reader's order)
//
// Returns:
//   - *Writer: A new writer; not safe for concurrent use
func NewWriter(w io.Writer, order byteorder.ByteOrder) *Writer {
	return &Writer{w: w, order: order}
}

// Order returns the byte order this writer encodes with.
func (w *Writer) Order() byteorder.ByteOrder {
	return w.order
}

func (w *Writer) flush(n int) error {
	_, err := w.w.Write(w.buf[:n])
	return err
}

// WriteUint8 writes a single byte. No byte order conversion applies; it is
// included for completeness.
func (w *Writer) WriteUint8(v uint8) error {
	w.buf[0] = v
	return w.flush(1)
}

// WriteInt8 writes a single byte as a signed integer.
func (w *Writer) WriteInt8(v int8) error {
	w.buf[0] = byte(v)
	return w.flush(1)
}

// WriteUint16 writes an unsigned 16-bit integer.
func (w *Writer) WriteUint16(v uint16) error {
	w.order.PutUint16(w.buf[:2], v)
	return w.flush(2)
}

// WriteUint32 writes an unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) error {
	w.order.PutUint32(w.buf[:4], v)
	return w.flush(4)
}

// WriteUint64 writes an unsigned 64-bit integer.
func (w *Writer) WriteUint64(v uint64) error {
	w.order.PutUint64(w.buf[:8], v)
	return w.flush(8)
}

// WriteUint128 writes an unsigned 128-bit integer.
func (w *Writer) WriteUint128(v byteorder.Uint128) error {
	w.order.PutUint128(w.buf[:16], v)
	return w.flush(16)
}

// WriteInt16 writes a signed 16-bit integer.
func (w *Writer) WriteInt16(v int16) error { return w.WriteUint16(uint16(v)) }

// WriteInt32 writes a signed 32-bit integer.
func (w *Writer) WriteInt32(v int32) error { return w.WriteUint32(uint32(v)) }

// WriteInt64 writes a signed 64-bit integer.
func (w *Writer) WriteInt64(v int64) error { return w.WriteUint64(uint64(v)) }

// WriteInt128 writes a signed 128-bit integer.
func (w *Writer) WriteInt128(v byteorder.Int128) error {
	return w.WriteUint128(v.Uint128())
}

// WriteUint writes an unsigned integer packed into nbytes bytes.
//
// Panics if nbytes is outside [1, 8] or v does not fit in nbytes bytes; a
// failing underlying writer returns an error.
func (w *Writer) WriteUint(v uint64, nbytes int) error {
	checkNBytes(nbytes)
	w.order.PutUint(w.buf[:nbytes], v, nbytes)
	return w.flush(nbytes)
}

// WriteInt writes a signed integer packed into nbytes bytes of
// two's-complement representation.
//
// Panics if nbytes is outside [1, 8] or the masked representation of v does
// not fit; a failing underlying writer returns an error.
func (w *Writer) WriteInt(v int64, nbytes int) error {
	checkNBytes(nbytes)
	w.order.PutInt(w.buf[:nbytes], v, nbytes)
	return w.flush(nbytes)
}

// WriteFloat32 writes the exact bit pattern of an IEEE 754 single-precision
// float. NaN payloads are written unmodified.
func (w *Writer) WriteFloat32(v float32) error {
	w.order.PutFloat32(w.buf[:4], v)
	return w.flush(4)
}

// WriteFloat64 writes the exact bit pattern of an IEEE 754 double-precision
// float. NaN payloads are written unmodified.
func (w *Writer) WriteFloat64(v float64) error {
	w.order.PutFloat64(w.buf[:8], v)
	return w.flush(8)
}

// WriteUint64Slice writes all values in a single pass through a pooled
// scratch buffer, issuing one Write call on the underlying writer.
func (w *Writer) WriteUint64Slice(values []uint64) error {
	if len(values) == 0 {
		return nil
	}

	bb := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(bb)

	bb.ExtendOrGrow(len(values) * 8)
	for i, v := range values {
		w.order.PutUint64(bb.Slice(i*8, i*8+8), v)
	}

	_, err := w.w.Write(bb.Bytes())

	return err
}

// WriteFloat64Slice writes the exact bit patterns of all values in a single
// pass through a pooled scratch buffer, issuing one Write call on the
// underlying writer.
func (w *Writer) WriteFloat64Slice(values []float64) error {
	if len(values) == 0 {
		return nil
	}

	bb := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(bb)

	bb.ExtendOrGrow(len(values) * 8)
	for i, v := range values {
		w.order.PutFloat64(bb.Slice(i*8, i*8+8), v)
	}

	_, err := w.w.Write(bb.Bytes())

	return err
}
