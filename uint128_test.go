package byteorder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBigEndian_Uint128_KnownValue(t *testing.T) {
	buf := []byte{
		0x00, 0x03, 0x43, 0x95, 0x4d, 0x60, 0x86, 0x83,
		0x00, 0x03, 0x43, 0x95, 0x4d, 0x60, 0x86, 0x83,
	}

	got := BigEndian.Uint128(buf)

	require.Equal(t, uint64(918733457491587), got.Hi)
	require.Equal(t, uint64(918733457491587), got.Lo)
}

func TestBigEndian_Int128_MinValue(t *testing.T) {
	buf := make([]byte, 16)
	buf[0] = 0x80

	got := BigEndian.Int128(buf)

	require.Equal(t, int64(math.MinInt64), got.Hi)
	require.Equal(t, uint64(0), got.Lo)
}

func TestByteOrder_Uint128_RoundTrip(t *testing.T) {
	values := []Uint128{
		{},
		{Lo: 1},
		{Lo: math.MaxUint64},
		{Hi: 1},
		{Hi: 0x0102030405060708, Lo: 0x090A0B0C0D0E0F10},
		{Hi: math.MaxUint64, Lo: math.MaxUint64},
	}

	for _, order := range orders {
		t.Run(order.String(), func(t *testing.T) {
			buf := make([]byte, 16)

			for _, v := range values {
				order.PutUint128(buf, v)
				require.Equal(t, v, order.Uint128(buf))

				i := v.Int128()
				order.PutInt128(buf, i)
				require.Equal(t, i, order.Int128(buf))
			}
		})
	}
}

func TestByteOrder_Uint128_HalvesSwapAcrossOrderings(t *testing.T) {
	v := Uint128{Hi: 0x0102030405060708, Lo: 0x090A0B0C0D0E0F10}

	bigBuf := make([]byte, 16)
	littleBuf := make([]byte, 16)
	BigEndian.PutUint128(bigBuf, v)
	LittleEndian.PutUint128(littleBuf, v)

	// A little-endian encoding is the byte-reversed big-endian encoding.
	for i := range bigBuf {
		require.Equal(t, bigBuf[i], littleBuf[15-i])
	}
}

func TestByteOrder_Uint128N_RoundTrip_AllWidths(t *testing.T) {
	for _, order := range orders {
		t.Run(order.String(), func(t *testing.T) {
			for nbytes := 1; nbytes <= 16; nbytes++ {
				maxVal := Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}
				switch {
				case nbytes < 8:
					maxVal = Uint128{Lo: uint64(1)<<(8*nbytes) - 1}
				case nbytes == 8:
					maxVal = Uint128{Lo: math.MaxUint64}
				case nbytes < 16:
					maxVal = Uint128{Hi: uint64(1)<<(8*(nbytes-8)) - 1, Lo: math.MaxUint64}
				}

				for _, v := range []Uint128{{}, {Lo: 1}, {Lo: 0xFF}, maxVal} {
					if packSize128(v) > nbytes {
						continue
					}

					buf := make([]byte, nbytes)
					order.PutUint128N(buf, v, nbytes)
					require.Equal(t, v, order.Uint128N(buf, nbytes),
						"order=%s nbytes=%d value=%+v", order, nbytes, v)
				}
			}
		})
	}
}

func TestByteOrder_Int128N_RoundTrip_AllWidths(t *testing.T) {
	for _, order := range orders {
		t.Run(order.String(), func(t *testing.T) {
			for nbytes := 1; nbytes <= 16; nbytes++ {
				var minVal, maxVal Int128
				switch {
				case nbytes < 8:
					minVal = Int128{Hi: -1, Lo: uint64(int64(-1) << (8*nbytes - 1))}
					maxVal = Int128{Lo: uint64(int64(1)<<(8*nbytes-1) - 1)}
				case nbytes == 8:
					minVal = Int128{Hi: -1, Lo: 1 << 63}
					maxVal = Int128{Lo: math.MaxInt64}
				case nbytes < 16:
					minVal = Int128{Hi: int64(-1) << (8*(nbytes-8) - 1)}
					maxVal = Int128{Hi: int64(1)<<(8*(nbytes-8)-1) - 1, Lo: math.MaxUint64}
				default:
					minVal = Int128{Hi: math.MinInt64}
					maxVal = Int128{Hi: math.MaxInt64, Lo: math.MaxUint64}
				}

				negOne := Int128{Hi: -1, Lo: math.MaxUint64}

				for _, v := range []Int128{minVal, negOne, {}, {Lo: 1}, maxVal} {
					buf := make([]byte, nbytes)
					order.PutInt128N(buf, v, nbytes)
					require.Equal(t, v, order.Int128N(buf, nbytes),
						"order=%s nbytes=%d value=%+v", order, nbytes, v)
				}
			}
		})
	}
}

func TestByteOrder_Uint128N_MatchesUint_ForNarrowWidths(t *testing.T) {
	buf := []byte{0x80, 0x74, 0xfa, 0x01, 0x02}

	for _, order := range orders {
		for nbytes := 1; nbytes <= 5; nbytes++ {
			want := Uint128{Lo: order.Uint(buf, nbytes)}
			require.Equal(t, want, order.Uint128N(buf, nbytes))
		}
	}
}

func TestByteOrder_Uint128N_NBytesOutOfRange_Panics(t *testing.T) {
	buf := make([]byte, 32)

	for _, order := range orders {
		require.Panics(t, func() { order.Uint128N(buf, 0) })
		require.Panics(t, func() { order.Uint128N(buf, 17) })
		require.Panics(t, func() { order.PutUint128N(buf, Uint128{}, 17) })
	}
}

func TestByteOrder_PutUint128N_ValueTooLarge_Panics(t *testing.T) {
	buf := make([]byte, 16)

	for _, order := range orders {
		require.Panics(t, func() { order.PutUint128N(buf, Uint128{Lo: 0x100}, 1) })
		require.Panics(t, func() { order.PutUint128N(buf, Uint128{Hi: 1}, 8) })
	}
}

func TestUint128_Int128_BitReinterpretation(t *testing.T) {
	u := Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}
	i := u.Int128()

	require.Equal(t, int64(-1), i.Hi)
	require.Equal(t, uint64(math.MaxUint64), i.Lo)
	require.Equal(t, u, i.Uint128())
}
