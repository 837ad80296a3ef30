//go:build 386 || amd64 || amd64p32 || alpha || arm || arm64 || loong64 || mipsle || mips64le || mips64p32le || nios2 || ppc64le || riscv || riscv64 || sh || wasm

package byteorder

// NativeEndian is the byte order matching the target platform, resolved at
// build time. On this architecture it is LittleEndian.
var NativeEndian = LittleEndian
