// x86_ops_control.go - conditional/unconditional jumps, call/ret, leave,
// software interrupt.

package main

type jccCond func(e *Emulator) bool

func registerControlFlowOps() {
	jcc := map[byte]jccCond{
		0x70: func(e *Emulator) bool { return e.OF() },                  // JO
		0x71: func(e *Emulator) bool { return !e.OF() },                 // JNO
		0x72: func(e *Emulator) bool { return e.CF() },                  // JC
		0x73: func(e *Emulator) bool { return !e.CF() },                 // JNC
		0x74: func(e *Emulator) bool { return e.ZF() },                  // JZ
		0x75: func(e *Emulator) bool { return !e.ZF() },                 // JNZ
		0x78: func(e *Emulator) bool { return e.SF() },                  // JS
		0x79: func(e *Emulator) bool { return !e.SF() },                 // JNS
		0x7C: func(e *Emulator) bool { return e.SF() != e.OF() },        // JL
		0x7E: func(e *Emulator) bool { return e.ZF() || e.SF() != e.OF() }, // JLE
	}
	for opcode, cond := range jcc {
		c := cond
		opcodeTable[opcode] = func(e *Emulator, opcode byte) *Fault {
			disp := e.getSignCode8(0)
			if c(e) {
				e.eip = uint32(int32(e.eip) + int32(disp) + 1)
			} else {
				e.eip += 1
			}
			return nil
		}
	}

	opcodeTable[0xC3] = opRet
	opcodeTable[0xC9] = opLeave
	opcodeTable[0xCD] = opInt
	opcodeTable[0xE8] = opCallRel32
	opcodeTable[0xE9] = opJmpRel32
	opcodeTable[0xEB] = opJmpRel8
}

// RET - pop the return address into EIP.
func opRet(e *Emulator, opcode byte) *Fault {
	e.eip = e.Pop32()
	return nil
}

// LEAVE - ESP = EBP; EBP = pop32().
func opLeave(e *Emulator, opcode byte) *Fault {
	e.SetRegister32(RegESP, e.GetRegister32(RegEBP))
	e.SetRegister32(RegEBP, e.Pop32())
	return nil
}

// INT imm8 - signal a software interrupt to the host; the engine itself
// never services it.
func opInt(e *Emulator, opcode byte) *Fault {
	vector := e.getCode8(0)
	e.intIndex = int32(vector)
	e.eip += 1
	return nil
}

// CALL rel32 - push the return address, then branch relative to the
// instruction's end.
func opCallRel32(e *Emulator, opcode byte) *Fault {
	rel := e.getSignCode32(0)
	ret := e.eip + 4
	e.Push32(ret)
	e.eip = ret + uint32(rel)
	return nil
}

// JMP rel32
func opJmpRel32(e *Emulator, opcode byte) *Fault {
	rel := e.getSignCode32(0)
	e.eip = e.eip + 4 + uint32(rel)
	return nil
}

// JMP rel8
func opJmpRel8(e *Emulator, opcode byte) *Fault {
	rel := e.getSignCode8(0)
	e.eip = uint32(int32(e.eip) + int32(rel) + 1)
	return nil
}
