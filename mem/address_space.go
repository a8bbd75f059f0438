// Package mem implements the address-space abstraction the CPU executes
// against: a uniform byte-read/write contract and a composite dispatcher
// that forwards to whichever registered region claims a given address,
// falling back to a sink for anything unmapped.
package mem

// An AddressSpace answers reads and writes for some subset of the 16-bit
// Game Boy address bus. Accepts must be pure and side-effect free; GetByte
// and SetByte may have memory-mapped-device side effects in a fuller
// implementation, though none of the regions here do.
type AddressSpace interface {
	Accepts(addr uint16) bool
	GetByte(addr uint16) byte
	SetByte(addr uint16, value byte)
}
