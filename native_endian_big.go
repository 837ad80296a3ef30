//go:build armbe || arm64be || m68k || mips || mips64 || mips64p32 || ppc || ppc64 || s390 || s390x || shbe || sparc || sparc64

package byteorder

// NativeEndian is the byte order matching the target platform, resolved at
// build time. On this architecture it is BigEndian.
var NativeEndian = BigEndian
