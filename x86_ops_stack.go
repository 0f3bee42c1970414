// x86_ops_stack.go - PUSH/POP register and immediate forms.

package main

func registerStackOps() {
	for i := byte(0); i < 8; i++ {
		reg := i
		opcodeTable[0x50+i] = func(e *Emulator, opcode byte) *Fault {
			e.Push32(e.GetRegister32(int(reg)))
			return nil
		}
		opcodeTable[0x58+i] = func(e *Emulator, opcode byte) *Fault {
			e.SetRegister32(int(reg), e.Pop32())
			return nil
		}
	}

	opcodeTable[0x68] = opPushImm32
	opcodeTable[0x6A] = opPushImm8
}

// PUSH imm32
func opPushImm32(e *Emulator, opcode byte) *Fault {
	imm := e.getCode32(0)
	e.eip += 4
	e.Push32(imm)
	return nil
}

// PUSH imm8 - zero-extended to 32 bits.
func opPushImm8(e *Emulator, opcode byte) *Fault {
	imm := e.getCode8(0)
	e.eip++
	e.Push32(uint32(imm))
	return nil
}
