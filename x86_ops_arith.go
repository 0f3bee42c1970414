// x86_ops_arith.go - ADD, CMP, INC.

package main

func registerArithmeticOps() {
	opcodeTable[0x01] = opAddRM32R32
	opcodeTable[0x3B] = opCmpR32RM32
	opcodeTable[0x3C] = opCmpALImm8
	opcodeTable[0x3D] = opCmpEAXImm32

	for i := byte(0); i < 8; i++ {
		reg := i
		opcodeTable[0x40+i] = func(e *Emulator, opcode byte) *Fault {
			// This subset deliberately does not update EFLAGS for INC r32;
			// the source this engine is modeled on never touches them here.
			e.SetRegister32(int(reg), e.GetRegister32(int(reg))+1)
			return nil
		}
	}
}

// ADD r/m32, r32
func opAddRM32R32(e *Emulator, opcode byte) *Fault {
	m := e.decodeModRM()
	a := e.getRM32(m)
	b := e.getR32(m)
	e.setRM32(m, e.addWithFlags(a, b))
	return nil
}

// CMP r32, r/m32 - flags from r32 - rm32, no write.
func opCmpR32RM32(e *Emulator, opcode byte) *Fault {
	m := e.decodeModRM()
	a := e.getR32(m)
	b := e.getRM32(m)
	e.subWithFlags(a, b)
	return nil
}

// CMP AL, imm8
func opCmpALImm8(e *Emulator, opcode byte) *Fault {
	imm := e.getCode8(0)
	e.eip++
	a := uint32(e.GetRegister8(RegEAX))
	e.subWithFlags(a, uint32(imm))
	return nil
}

// CMP EAX, imm32
func opCmpEAXImm32(e *Emulator, opcode byte) *Fault {
	imm := e.getCode32(0)
	e.eip += 4
	e.subWithFlags(e.GetRegister32(RegEAX), imm)
	return nil
}
