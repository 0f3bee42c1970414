// x86_ops_group.go - opcode-group extensions dispatched on modrm.regOrOp
// after the ModR/M parse (spec.md §9: "a single layer of indirection
// suffices").

package main

func registerGroupOps() {
	opcodeTable[0x83] = opGroup83
	opcodeTable[0xF7] = opGroupF7
	opcodeTable[0xFF] = opGroupFF
}

// Group 1 extension on 0x83: r/m32, imm8 (sign-extended to 32 bits).
// /0 ADD, /5 SUB, /7 CMP.
func opGroup83(e *Emulator, opcode byte) *Fault {
	m := e.decodeModRM()
	imm := uint32(int32(e.getSignCode8(0)))
	e.eip++

	switch m.regOrOp {
	case 0: // ADD r/m32, imm8 - no flag update required by this subset.
		e.setRM32(m, e.getRM32(m)+imm)
	case 5: // SUB r/m32, imm8
		e.setRM32(m, e.subWithFlags(e.getRM32(m), imm))
	case 7: // CMP r/m32, imm8 - flags only, no write.
		e.subWithFlags(e.getRM32(m), imm)
	default:
		return unimplementedExtension(opcode, int(m.regOrOp), e.eip-2)
	}
	return nil
}

// Group 3 extension on 0xF7: only /7 IDIV r/m32 is supported.
func opGroupF7(e *Emulator, opcode byte) *Fault {
	m := e.decodeModRM()

	if m.regOrOp != 7 {
		return unimplementedExtension(opcode, int(m.regOrOp), e.eip-1)
	}

	divisor := uint64(e.getRM32(m))
	if divisor == 0 {
		return divideError(opcode, e.eip-1, "division by zero")
	}

	dividend := uint64(e.GetRegister32(RegEDX))<<32 | uint64(e.GetRegister32(RegEAX))
	quotient := dividend / divisor
	remainder := dividend % divisor

	if quotient > 0xFFFFFFFF {
		return divideError(opcode, e.eip-1, "quotient overflows 32 bits")
	}

	e.SetRegister32(RegEAX, uint32(quotient))
	e.SetRegister32(RegEDX, uint32(remainder))
	return nil
}

// Group 5 extension on 0xFF: only /0 INC r/m32 is supported, and per
// spec.md §9's preserved source quirk, it does not update EFLAGS.
func opGroupFF(e *Emulator, opcode byte) *Fault {
	m := e.decodeModRM()

	if m.regOrOp != 0 {
		return unimplementedExtension(opcode, int(m.regOrOp), e.eip-1)
	}

	e.setRM32(m, e.getRM32(m)+1)
	return nil
}

// opIretd is the optional interrupt-return hook described in spec.md §4.7.
// It is intentionally not registered in opcodeTable: the original source
// this engine is modeled on defines the equivalent routine but never wires
// it into its instruction table, and this subset's test programs never
// return from a serviced interrupt. A host wanting interrupt-return support
// can register it at 0xCF itself.
func opIretd(e *Emulator, opcode byte) *Fault {
	e.eip = e.Pop32()
	e.eflags = e.Pop32()
	return nil
}
