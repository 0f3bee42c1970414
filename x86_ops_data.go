// x86_ops_data.go - MOV family, LEA, CWD/CDQ.

package main

func registerDataMovementOps() {
	opcodeTable[0x88] = opMovRM8R8
	opcodeTable[0x89] = opMovRM32R32
	opcodeTable[0x8A] = opMovR8RM8
	opcodeTable[0x8B] = opMovR32RM32
	opcodeTable[0x8D] = opLea
	opcodeTable[0x99] = opCwd
	opcodeTable[0xA1] = opMovEAXMoffs32
	opcodeTable[0xA3] = opMovMoffs32EAX

	for i := byte(0); i < 8; i++ {
		reg := i
		opcodeTable[0xB0+i] = func(e *Emulator, opcode byte) *Fault {
			imm := e.getCode8(0)
			e.eip++
			e.SetRegister8(int(reg), imm)
			return nil
		}
		opcodeTable[0xB8+i] = func(e *Emulator, opcode byte) *Fault {
			imm := e.getCode32(0)
			e.eip += 4
			e.SetRegister32(int(reg), imm)
			return nil
		}
	}

	opcodeTable[0xC7] = opMovRM32Imm32
}

// MOV r/m8, r8
func opMovRM8R8(e *Emulator, opcode byte) *Fault {
	m := e.decodeModRM()
	e.setRM8(m, e.getR8(m))
	return nil
}

// MOV r/m32, r32
func opMovRM32R32(e *Emulator, opcode byte) *Fault {
	m := e.decodeModRM()
	e.setRM32(m, e.getR32(m))
	return nil
}

// MOV r8, r/m8
func opMovR8RM8(e *Emulator, opcode byte) *Fault {
	m := e.decodeModRM()
	e.setR8(m, e.getRM8(m))
	return nil
}

// MOV r32, r/m32
func opMovR32RM32(e *Emulator, opcode byte) *Fault {
	m := e.decodeModRM()
	e.setR32(m, e.getRM32(m))
	return nil
}

// LEA r32, m - load the effective address itself, never touching memory.
func opLea(e *Emulator, opcode byte) *Fault {
	m := e.decodeModRM()
	e.setR32(m, e.effectiveAddress(m))
	return nil
}

// CWD/CDQ - sign-extend EAX's top bit through all of EDX.
func opCwd(e *Emulator, opcode byte) *Fault {
	if e.GetRegister32(RegEAX)&0x80000000 != 0 {
		e.SetRegister32(RegEDX, 0xFFFFFFFF)
	} else {
		e.SetRegister32(RegEDX, 0)
	}
	return nil
}

// MOV EAX, moffs32
func opMovEAXMoffs32(e *Emulator, opcode byte) *Fault {
	addr := e.getCode32(0)
	e.eip += 4
	e.SetRegister32(RegEAX, e.GetMemory32(addr))
	return nil
}

// MOV moffs32, EAX
func opMovMoffs32EAX(e *Emulator, opcode byte) *Fault {
	addr := e.getCode32(0)
	e.eip += 4
	e.SetMemory32(addr, e.GetRegister32(RegEAX))
	return nil
}

// MOV r/m32, imm32 - the immediate follows the ModR/M (and any disp).
func opMovRM32Imm32(e *Emulator, opcode byte) *Fault {
	m := e.decodeModRM()
	imm := e.getCode32(0)
	e.eip += 4
	e.setRM32(m, imm)
	return nil
}
