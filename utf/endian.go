package utf

import (
	"math/bits"
	"unsafe"
)

// Swap16 reverses the byte order of a 16-bit unit.
func Swap16(u uint16) uint16 {
	return bits.ReverseBytes16(u)
}

// Swap32 reverses the byte order of a 32-bit unit.
func Swap32(u uint32) uint32 {
	return bits.ReverseBytes32(u)
}

// orderFor reports whether units stored little-endian (le) or big-endian need
// swapping on this host.
func orderFor(le bool) bool {
	return le != HostLittleEndian
}

func swapAll16(p []uint16) {
	for i, u := range p {
		p[i] = Swap16(u)
	}
}

func swapAll32(p []uint32) {
	for i, u := range p {
		p[i] = Swap32(u)
	}
}

// probeLittleEndian inspects the in-memory layout of a 16-bit value.
func probeLittleEndian() bool {
	x := uint16(1)
	return *(*byte)(unsafe.Pointer(&x)) == 1
}
