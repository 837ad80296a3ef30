package stream

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/byteorder"
)

func TestWriter_WriteUint16_Sequential(t *testing.T) {
	var buf bytes.Buffer
	wtr := NewWriter(&buf, byteorder.BigEndian)

	require.NoError(t, wtr.WriteUint16(517))
	require.NoError(t, wtr.WriteUint16(768))

	require.Equal(t, []byte{2, 5, 3, 0}, buf.Bytes())
}

func TestWriter_LittleEndian_WriteUint16_Sequential(t *testing.T) {
	var buf bytes.Buffer
	wtr := NewWriter(&buf, byteorder.LittleEndian)

	require.NoError(t, wtr.WriteUint16(517))
	require.NoError(t, wtr.WriteUint16(768))

	require.Equal(t, []byte{5, 2, 0, 3}, buf.Bytes())
}

func TestWriter_WriteUint8_SingleByte(t *testing.T) {
	var buf bytes.Buffer
	wtr := NewWriter(&buf, byteorder.BigEndian)

	require.NoError(t, wtr.WriteUint8(2))
	require.NoError(t, wtr.WriteInt8(-5))

	require.Equal(t, []byte{0x02, 0xfb}, buf.Bytes())
}

func TestWriter_WriteUint_PacksNarrowWidth(t *testing.T) {
	var buf bytes.Buffer
	wtr := NewWriter(&buf, byteorder.BigEndian)

	require.NoError(t, wtr.WriteUint(8418554, 3))

	require.Equal(t, []byte{0x80, 0x74, 0xfa}, buf.Bytes())
}

func TestWriter_WriteInt_PacksNarrowWidth(t *testing.T) {
	var buf bytes.Buffer
	wtr := NewWriter(&buf, byteorder.BigEndian)

	require.NoError(t, wtr.WriteInt(-4063364, 3))

	require.Equal(t, []byte{0xc1, 0xff, 0x7c}, buf.Bytes())
}

func TestWriter_WriteUint_ValueTooLarge_Panics(t *testing.T) {
	wtr := NewWriter(&bytes.Buffer{}, byteorder.LittleEndian)

	require.Panics(t, func() { _ = wtr.WriteUint(0x100, 1) })
	require.Panics(t, func() { _ = wtr.WriteUint(1, 9) })
	require.Panics(t, func() { _ = wtr.WriteInt(1, 0) })
}

func TestWriter_WriteFloat64_ByteExact(t *testing.T) {
	var buf bytes.Buffer
	wtr := NewWriter(&buf, byteorder.BigEndian)

	require.NoError(t, wtr.WriteFloat64(math.Pi))

	require.Equal(t, []byte{0x40, 0x09, 0x21, 0xfb, 0x54, 0x44, 0x2d, 0x18}, buf.Bytes())
}

func TestWriter_WriteUint128_RoundTrip(t *testing.T) {
	v := byteorder.Uint128{Hi: 0x0102030405060708, Lo: 0x090A0B0C0D0E0F10}

	for _, order := range []byteorder.ByteOrder{byteorder.BigEndian, byteorder.LittleEndian} {
		t.Run(order.String(), func(t *testing.T) {
			var buf bytes.Buffer
			wtr := NewWriter(&buf, order)
			require.NoError(t, wtr.WriteUint128(v))
			require.Equal(t, 16, buf.Len())

			rdr := NewReader(&buf, order)
			got, err := rdr.ReadUint128()
			require.NoError(t, err)
			require.Equal(t, v, got)
		})
	}
}

func TestWriter_WriteInt128_RoundTrip(t *testing.T) {
	v := byteorder.Int128{Hi: -1, Lo: math.MaxUint64} // -1

	var buf bytes.Buffer
	wtr := NewWriter(&buf, byteorder.BigEndian)
	require.NoError(t, wtr.WriteInt128(v))

	rdr := NewReader(&buf, byteorder.BigEndian)
	got, err := rdr.ReadInt128()
	require.NoError(t, err)
	require.Equal(t, v, got)
}

// failingWriter fails every write, for error propagation tests.
type failingWriter struct{}

var errSink = errors.New("sink failed")

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errSink
}

func TestWriter_UnderlyingError_Propagated(t *testing.T) {
	wtr := NewWriter(failingWriter{}, byteorder.BigEndian)

	require.ErrorIs(t, wtr.WriteUint32(1), errSink)
	require.ErrorIs(t, wtr.WriteFloat64(1.5), errSink)
	require.ErrorIs(t, wtr.WriteUint64Slice([]uint64{1, 2}), errSink)
}

func TestWriter_WriteUint64Slice_EncodesInOrder(t *testing.T) {
	var buf bytes.Buffer
	wtr := NewWriter(&buf, byteorder.BigEndian)

	require.NoError(t, wtr.WriteUint64Slice([]uint64{1, 2}))

	want := make([]byte, 16)
	byteorder.BigEndian.PutUint64(want[0:8], 1)
	byteorder.BigEndian.PutUint64(want[8:16], 2)
	require.Equal(t, want, buf.Bytes())
}

func TestWriter_WriteUint64Slice_Empty(t *testing.T) {
	var buf bytes.Buffer
	wtr := NewWriter(&buf, byteorder.BigEndian)

	require.NoError(t, wtr.WriteUint64Slice(nil))
	require.Zero(t, buf.Len())
}

func TestWriter_WriteFloat64Slice_NaNPayloadPreserved(t *testing.T) {
	signaling := math.Float64frombits(0x7FF0000000000001)

	var buf bytes.Buffer
	wtr := NewWriter(&buf, byteorder.BigEndian)
	require.NoError(t, wtr.WriteFloat64Slice([]float64{signaling}))

	// Write side is byte exact; the signaling payload survives.
	require.Equal(t, uint64(0x7FF0000000000001), byteorder.BigEndian.Uint64(buf.Bytes()))
}

func TestWriter_Order(t *testing.T) {
	wtr := NewWriter(&bytes.Buffer{}, byteorder.LittleEndian)
	require.Equal(t, byteorder.LittleEndian, wtr.Order())
}
