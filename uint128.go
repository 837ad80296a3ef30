package byteorder

// Uint128 is an unsigned 128-bit integer split into two 64-bit halves.
// Hi holds the most significant 64 bits, Lo the least significant.
//
// Go has no native 128-bit integer type, so the 128-bit read and write
// operations traffic in this value type instead. It is comparable and can be
// used as a map key.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 is a signed two's-complement 128-bit integer split into two halves.
// Hi carries the sign.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Int128 reinterprets the bit pattern of u as a signed 128-bit integer.
func (u Uint128) Int128() Int128 {
	return Int128{Hi: int64(u.Hi), Lo: u.Lo}
}

// Uint128 reinterprets the bit pattern of i as an unsigned 128-bit integer.
func (i Int128) Uint128() Uint128 {
	return Uint128{Hi: uint64(i.Hi), Lo: i.Lo}
}
