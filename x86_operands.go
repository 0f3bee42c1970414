// x86_operands.go - get/set accessors for r8, r32, r/m8, r/m32 operands.

package main

// getRM32 reads the r/m operand: a register if mod==3, else a memory
// dword at the ModR/M's effective address.
func (e *Emulator) getRM32(m modRM) uint32 {
	if m.mod == 3 {
		return e.GetRegister32(int(m.rm))
	}
	return e.GetMemory32(e.effectiveAddress(m))
}

// setRM32 writes the r/m operand, symmetric with getRM32.
func (e *Emulator) setRM32(m modRM, v uint32) {
	if m.mod == 3 {
		e.SetRegister32(int(m.rm), v)
		return
	}
	e.SetMemory32(e.effectiveAddress(m), v)
}

// getRM8 reads the r/m operand as a byte.
func (e *Emulator) getRM8(m modRM) uint8 {
	if m.mod == 3 {
		return e.GetRegister8(int(m.rm))
	}
	return e.GetMemory8(e.effectiveAddress(m))
}

// setRM8 writes the r/m operand as a byte.
func (e *Emulator) setRM8(m modRM, v uint8) {
	if m.mod == 3 {
		e.SetRegister8(int(m.rm), v)
		return
	}
	e.SetMemory8(e.effectiveAddress(m), v)
}

// getR32 reads the register named by modrm.reg.
func (e *Emulator) getR32(m modRM) uint32 { return e.GetRegister32(int(m.regOrOp)) }

// setR32 writes the register named by modrm.reg.
func (e *Emulator) setR32(m modRM, v uint32) { e.SetRegister32(int(m.regOrOp), v) }

// getR8 reads the 8-bit register named by modrm.reg.
func (e *Emulator) getR8(m modRM) uint8 { return e.GetRegister8(int(m.regOrOp)) }

// setR8 writes the 8-bit register named by modrm.reg.
func (e *Emulator) setR8(m modRM, v uint8) { e.SetRegister8(int(m.regOrOp), v) }
