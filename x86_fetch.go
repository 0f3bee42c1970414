// x86_fetch.go - non-advancing reads relative to EIP.
//
// Fetch never mutates EIP; handlers advance EIP explicitly once they know
// the full length of the encoded instruction.

package main

// getCode8 returns the unsigned byte at eip+off.
func (e *Emulator) getCode8(off uint32) uint8 {
	return e.memory[e.eip+off]
}

// getSignCode8 returns the byte at eip+off interpreted as two's-complement.
func (e *Emulator) getSignCode8(off uint32) int8 {
	return int8(e.getCode8(off))
}

// getCode32 returns the unsigned little-endian 32-bit value at eip+off.
func (e *Emulator) getCode32(off uint32) uint32 {
	return e.GetMemory32(e.eip + off)
}

// getSignCode32 returns the 32-bit value at eip+off interpreted as
// two's-complement.
func (e *Emulator) getSignCode32(off uint32) int32 {
	return int32(e.getCode32(off))
}
