// x86_ops_test.go - the concrete end-to-end scenarios from spec.md §8,
// all assuming entry eip = 0x7C00, ESP = 0x7C00.

package main

import "testing"

func loadAt(e *Emulator, addr uint32, bytes ...byte) {
	for i, b := range bytes {
		e.SetMemory8(addr+uint32(i), b)
	}
}

func TestScenarioAddMemEAX(t *testing.T) {
	e := newTestEmulator()
	loadAt(e, 0x7C00, 0x01, 0x45, 0xFC) // ADD [EBP-4], EAX
	e.SetMemory32(0x100, 2)
	e.SetRegister32(RegEBP, 0x104)
	e.SetRegister32(RegEAX, 5)

	if fault := e.Step(); fault != nil {
		t.Fatalf("unexpected fault: %v", fault)
	}

	if got := e.GetMemory32(0x100); got != 7 {
		t.Errorf("memory32(0x100) = %d, want 7", got)
	}
	if e.CF() || e.ZF() || e.SF() || e.OF() {
		t.Errorf("flags = CF=%v ZF=%v SF=%v OF=%v, want all clear", e.CF(), e.ZF(), e.SF(), e.OF())
	}
	if e.EIP() != 0x7C03 {
		t.Errorf("EIP = 0x%08X, want 0x7C03", e.EIP())
	}
}

func TestScenarioAddWrapToZero(t *testing.T) {
	e := newTestEmulator()
	loadAt(e, 0x7C00, 0x01, 0x45, 0xFC)
	e.SetMemory32(0x100, 0x1FFFFFFF)
	e.SetRegister32(RegEBP, 0x104)
	e.SetRegister32(RegEAX, 0xE0000001)

	if fault := e.Step(); fault != nil {
		t.Fatalf("unexpected fault: %v", fault)
	}

	if got := e.GetMemory32(0x100); got != 0 {
		t.Errorf("memory32(0x100) = 0x%X, want 0", got)
	}
	if !e.CF() || !e.ZF() || e.SF() || e.OF() {
		t.Errorf("flags = CF=%v ZF=%v SF=%v OF=%v, want CF=1 ZF=1 SF=0 OF=0", e.CF(), e.ZF(), e.SF(), e.OF())
	}
}

func TestScenarioCmpEAXMem(t *testing.T) {
	e := newTestEmulator()
	loadAt(e, 0x7C00, 0x3B, 0x45, 0x00) // CMP EAX, [EBP]
	e.SetRegister32(RegEAX, uint32(int32(-3)))
	e.SetRegister32(RegEBP, 0x200)
	e.SetMemory32(0x200, uint32(int32(-4)))

	if fault := e.Step(); fault != nil {
		t.Fatalf("unexpected fault: %v", fault)
	}

	if e.CF() || e.ZF() || e.SF() || e.OF() {
		t.Errorf("flags = CF=%v ZF=%v SF=%v OF=%v, want all clear", e.CF(), e.ZF(), e.SF(), e.OF())
	}
	if e.EIP() != 0x7C03 {
		t.Errorf("EIP = 0x%08X, want 0x7C03", e.EIP())
	}
	if e.GetRegister32(RegEAX) != uint32(int32(-3)) {
		t.Error("CMP must not modify its operands")
	}
}

func TestScenarioPushImm32(t *testing.T) {
	e := newTestEmulator()
	loadAt(e, 0x7C00, 0x68, 0x78, 0x56, 0x34, 0x12) // PUSH 0x12345678

	if fault := e.Step(); fault != nil {
		t.Fatalf("unexpected fault: %v", fault)
	}

	if got := e.GetMemory32(0x7BFC); got != 0x12345678 {
		t.Errorf("memory32(0x7BFC) = 0x%X, want 0x12345678", got)
	}
	if e.GetRegister32(RegESP) != 0x7BFC {
		t.Errorf("ESP = 0x%X, want 0x7BFC", e.GetRegister32(RegESP))
	}
	if e.EIP() != 0x7C05 {
		t.Errorf("EIP = 0x%X, want 0x7C05", e.EIP())
	}
}

func TestScenarioCallRel32(t *testing.T) {
	e := newTestEmulator()
	loadAt(e, 0x7C00, 0xE8, 0x0C, 0x00, 0x00, 0x00) // CALL rel32 +12
	e.SetRegister32(RegESP, 0x0600)

	if fault := e.Step(); fault != nil {
		t.Fatalf("unexpected fault: %v", fault)
	}

	if got := e.GetMemory32(0x05FC); got != 0x7C05 {
		t.Errorf("memory32(0x5FC) = 0x%X, want 0x7C05", got)
	}
	if e.GetRegister32(RegESP) != 0x05FC {
		t.Errorf("ESP = 0x%X, want 0x5FC", e.GetRegister32(RegESP))
	}
	if e.EIP() != 0x7C11 {
		t.Errorf("EIP = 0x%X, want 0x7C11", e.EIP())
	}
}

func TestScenarioIdivMem(t *testing.T) {
	e := newTestEmulator()
	loadAt(e, 0x7C00, 0xF7, 0x7D, 0xFC) // IDIV dword [EBP-4]
	e.SetRegister32(RegEBP, 0x104)
	e.SetMemory32(0x100, 128)
	e.SetRegister32(RegEDX, 1)
	e.SetRegister32(RegEAX, 0x23456789)

	if fault := e.Step(); fault != nil {
		t.Fatalf("unexpected fault: %v", fault)
	}

	if e.GetRegister32(RegEAX) != 38177487 {
		t.Errorf("EAX = %d, want 38177487", e.GetRegister32(RegEAX))
	}
	if e.GetRegister32(RegEDX) != 9 {
		t.Errorf("EDX = %d, want 9", e.GetRegister32(RegEDX))
	}
	if e.EIP() != 0x7C03 {
		t.Errorf("EIP = 0x%X, want 0x7C03", e.EIP())
	}
}

func TestIdivByZeroIsFatal(t *testing.T) {
	e := newTestEmulator()
	loadAt(e, 0x7C00, 0xF7, 0x7D, 0xFC)
	e.SetRegister32(RegEBP, 0x104)
	e.SetMemory32(0x100, 0)

	fault := e.Step()
	if fault == nil {
		t.Fatal("expected a divide-error fault")
	}
	if fault.Kind != FaultDivideError {
		t.Errorf("fault kind = %v, want FaultDivideError", fault.Kind)
	}
}

func TestIdivQuotientOverflowIsFatal(t *testing.T) {
	e := newTestEmulator()
	loadAt(e, 0x7C00, 0xF7, 0x7D, 0xFC)
	e.SetRegister32(RegEBP, 0x104)
	e.SetMemory32(0x100, 1)
	e.SetRegister32(RegEDX, 1) // dividend = 1<<32, divisor 1 -> quotient overflows 32 bits
	e.SetRegister32(RegEAX, 0)

	fault := e.Step()
	if fault == nil || fault.Kind != FaultDivideError {
		t.Fatalf("expected a divide-error fault, got %v", fault)
	}
}

func TestUnimplementedOpcodeIsFatal(t *testing.T) {
	e := newTestEmulator()
	loadAt(e, 0x7C00, 0xF4) // HLT - not in the supported opcode set
	fault := e.Step()
	if fault == nil || fault.Kind != FaultUnimplementedOpcode {
		t.Fatalf("expected an unimplemented-opcode fault, got %v", fault)
	}
}

func TestGroup83AddNoFlagUpdate(t *testing.T) {
	e := newTestEmulator()
	loadAt(e, 0x7C00, 0x83, 0xC0, 0x05) // ADD EAX, 5
	e.SetRegister32(RegEAX, 10)
	e.eflags = FlagOF // sentinel that must survive: ADD /0 doesn't update flags here

	if fault := e.Step(); fault != nil {
		t.Fatalf("unexpected fault: %v", fault)
	}
	if e.GetRegister32(RegEAX) != 15 {
		t.Errorf("EAX = %d, want 15", e.GetRegister32(RegEAX))
	}
	if e.eflags != FlagOF {
		t.Error("ADD r/m32, imm8 (/0) must not touch EFLAGS in this subset")
	}
}

func TestGroup83SubUpdatesFlags(t *testing.T) {
	e := newTestEmulator()
	loadAt(e, 0x7C00, 0x83, 0xE8, 0x05) // SUB EAX, 5
	e.SetRegister32(RegEAX, 5)

	if fault := e.Step(); fault != nil {
		t.Fatalf("unexpected fault: %v", fault)
	}
	if e.GetRegister32(RegEAX) != 0 {
		t.Errorf("EAX = %d, want 0", e.GetRegister32(RegEAX))
	}
	if !e.ZF() {
		t.Error("ZF should be set")
	}
}

func TestGroupFFIncRM32NoFlagUpdate(t *testing.T) {
	e := newTestEmulator()
	loadAt(e, 0x7C00, 0xFF, 0xC0) // INC EAX via the FF /0 encoding
	e.SetRegister32(RegEAX, 0xFFFFFFFF)
	e.eflags = FlagCF

	if fault := e.Step(); fault != nil {
		t.Fatalf("unexpected fault: %v", fault)
	}
	if e.GetRegister32(RegEAX) != 0 {
		t.Errorf("EAX = 0x%X, want 0", e.GetRegister32(RegEAX))
	}
	if e.eflags != FlagCF {
		t.Error("INC r/m32 (FF /0) must not touch EFLAGS in this subset")
	}
}

func TestIOPorts(t *testing.T) {
	e := newTestEmulator()
	var out []byte
	e.IOOut = func(port uint16, v uint8) {
		if port != 0x03F8 {
			t.Errorf("unexpected port 0x%04X", port)
		}
		out = append(out, v)
	}
	e.IOIn = func(port uint16) uint8 { return 0x42 }

	loadAt(e, 0x7C00, 0xEE) // OUT DX, AL
	e.SetRegister32(RegEDX, 0x03F8)
	e.SetRegister8(RegEAX, 'x')
	if fault := e.Step(); fault != nil {
		t.Fatalf("unexpected fault: %v", fault)
	}
	if len(out) != 1 || out[0] != 'x' {
		t.Errorf("OUT did not reach the callback: %v", out)
	}

	loadAt(e, e.EIP(), 0xEC) // IN AL, DX
	if fault := e.Step(); fault != nil {
		t.Fatalf("unexpected fault: %v", fault)
	}
	if e.GetRegister8(RegEAX) != 0x42 {
		t.Errorf("AL after IN = 0x%02X, want 0x42", e.GetRegister8(RegEAX))
	}
}
