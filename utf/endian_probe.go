//go:build !(386 || amd64 || amd64p32 || alpha || arm || arm64 || loong64 || mipsle || mips64le || mips64p32le || nios2 || ppc64le || riscv || riscv64 || sh || wasm) && !(armbe || arm64be || m68k || mips || mips64 || mips64p32 || ppc || ppc64 || s390 || s390x || shbe || sparc || sparc64)

package utf

// HostLittleEndian reports whether the host stores multi-byte units
// little-endian. Unknown architectures are probed once at init.
var HostLittleEndian = probeLittleEndian()
