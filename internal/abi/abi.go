//go:build wasip1

// Package abi materializes linear-memory addresses for the message passing
// boundary calls. Addresses cross the boundary as 32-bit offsets into the
// guest's linear memory; the exchange buffer itself stays referenced by the
// owning Exchange, which keeps the Go GC from collecting it while the host
// holds its address for the duration of a boundary call.
package abi

import "unsafe"

// Pointer returns the linear-memory address of the first byte of region.
// An empty region has no address; zero is the protocol's null.
func Pointer(region []byte) uint32 {
	if len(region) == 0 {
		return 0
	}
	return uint32(uintptr(unsafe.Pointer(&region[0])))
}
