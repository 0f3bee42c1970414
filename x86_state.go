// x86_state.go - register file, memory, and the Emulator aggregate.

package main

// Canonical 32-bit register indices.
const (
	RegEAX = 0
	RegECX = 1
	RegEDX = 2
	RegEBX = 3
	RegESP = 4
	RegEBP = 5
	RegESI = 6
	RegEDI = 7
)

// Emulator is the single aggregate mutated by every instruction handler.
// It has no internal concurrency: one instruction retires fully before the
// next begins, and it is owned exclusively by whichever goroutine is
// stepping it.
type Emulator struct {
	registers [8]uint32
	eflags    uint32
	eip       uint32
	memory    []byte

	// intIndex signals a pending software interrupt to the host loop.
	// -1 means no pending interrupt.
	intIndex int32

	// IOIn and IOOut are the host-supplied port I/O callbacks from
	// spec.md §6. Either may be left nil, in which case IN reads zero and
	// OUT is silently discarded.
	IOIn  func(port uint16) uint8
	IOOut func(port uint16, v uint8)
}

// NewEmulator allocates an Emulator with the given memory size, in bytes,
// and zero-initializes every register except EIP and ESP.
func NewEmulator(memSize int, entry, initialESP uint32) *Emulator {
	e := &Emulator{
		memory:   make([]byte, memSize),
		intIndex: -1,
	}
	e.eip = entry
	e.registers[RegESP] = initialESP
	return e
}

// Reset returns the Emulator to its post-construction state without
// reallocating memory.
func (e *Emulator) Reset(entry, initialESP uint32) {
	for i := range e.registers {
		e.registers[i] = 0
	}
	e.eflags = 0
	e.eip = entry
	e.registers[RegESP] = initialESP
	e.intIndex = -1
}

func (e *Emulator) EIP() uint32 { return e.eip }

func (e *Emulator) EFLAGS() uint32 { return e.eflags }

// PendingInterrupt reports the vector most recently written by opcode CD,
// or -1 if none is pending.
func (e *Emulator) PendingInterrupt() int32 { return e.intIndex }

// ClearInterrupt resets the pending-interrupt channel after the host has
// serviced it.
func (e *Emulator) ClearInterrupt() { e.intIndex = -1 }

// GetRegister32 returns the full 32-bit value of register index i (0..7).
func (e *Emulator) GetRegister32(i int) uint32 { return e.registers[i] }

// SetRegister32 overwrites the full 32-bit value of register index i.
func (e *Emulator) SetRegister32(i int, v uint32) { e.registers[i] = v }

// GetRegister8 reads an 8-bit register using the AL/CL/DL/BL/AH/CH/DH/BH
// encoding: i<4 is the low byte of register i; i>=4 is bits 8..15 of
// register i-4.
func (e *Emulator) GetRegister8(i int) uint8 {
	if i < 4 {
		return uint8(e.registers[i])
	}
	return uint8(e.registers[i-4] >> 8)
}

// SetRegister8 writes an 8-bit register, preserving the other 24 bits of
// the containing 32-bit register.
func (e *Emulator) SetRegister8(i int, v uint8) {
	if i < 4 {
		e.registers[i] = (e.registers[i] &^ 0xFF) | uint32(v)
		return
	}
	r := i - 4
	e.registers[r] = (e.registers[r] &^ 0xFF00) | (uint32(v) << 8)
}

// GetMemory8 reads one byte at addr.
func (e *Emulator) GetMemory8(addr uint32) uint8 {
	return e.memory[addr]
}

// SetMemory8 writes one byte at addr.
func (e *Emulator) SetMemory8(addr uint32, v uint8) {
	e.memory[addr] = v
}

// GetMemory32 reads a little-endian 32-bit value at addr.
func (e *Emulator) GetMemory32(addr uint32) uint32 {
	m := e.memory
	return uint32(m[addr]) | uint32(m[addr+1])<<8 | uint32(m[addr+2])<<16 | uint32(m[addr+3])<<24
}

// SetMemory32 writes v as little-endian bytes starting at addr.
func (e *Emulator) SetMemory32(addr uint32, v uint32) {
	m := e.memory
	m[addr] = byte(v)
	m[addr+1] = byte(v >> 8)
	m[addr+2] = byte(v >> 16)
	m[addr+3] = byte(v >> 24)
}

// Push32 decrements ESP by 4 and stores v at the new top of stack.
func (e *Emulator) Push32(v uint32) {
	e.registers[RegESP] -= 4
	e.SetMemory32(e.registers[RegESP], v)
}

// Pop32 loads the value at the current top of stack and increments ESP by 4.
func (e *Emulator) Pop32() uint32 {
	v := e.GetMemory32(e.registers[RegESP])
	e.registers[RegESP] += 4
	return v
}

// LoadImage copies data into memory starting at addr. The caller is
// responsible for ensuring data fits within the configured memory size.
func (e *Emulator) LoadImage(addr uint32, data []byte) {
	copy(e.memory[addr:], data)
}

// MemSize returns the size of the backing memory array in bytes.
func (e *Emulator) MemSize() int { return len(e.memory) }
