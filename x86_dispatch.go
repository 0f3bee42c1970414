// x86_dispatch.go - the 256-entry opcode dispatch table and the single-step
// entry point.
//
// Every slot starts out pointing at a sentinel handler that reports
// FaultUnimplementedOpcode; nothing is ever a bare nil function reference
// (spec.md §9 "Dispatch table").

package main

// opHandler executes one instruction. It is responsible for advancing EIP
// past its own encoding, applying its state effect, and updating EFLAGS
// where the opcode calls for it.
type opHandler func(e *Emulator, opcode byte) *Fault

var opcodeTable [256]opHandler

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = opUnimplemented
	}
	registerDataMovementOps()
	registerArithmeticOps()
	registerControlFlowOps()
	registerStackOps()
	registerMiscOps()
	registerGroupOps()
}

func opUnimplemented(e *Emulator, opcode byte) *Fault {
	return unimplementedOpcode(opcode, e.eip-1)
}

// Step fetches memory[eip], advances past the opcode byte, and invokes the
// registered handler. It returns a non-nil *Fault exactly when the engine
// cannot continue.
func (e *Emulator) Step() *Fault {
	opcode := e.getCode8(0)
	e.eip++
	return opcodeTable[opcode](e, opcode)
}
