package main

import "testing"

func TestAddFlagsBasic(t *testing.T) {
	e := newTestEmulator()
	result := e.addWithFlags(2, 5)
	if result != 7 {
		t.Fatalf("result = %d, want 7", result)
	}
	if e.CF() || e.ZF() || e.SF() || e.OF() {
		t.Errorf("flags = CF=%v ZF=%v SF=%v OF=%v, want all clear", e.CF(), e.ZF(), e.SF(), e.OF())
	}
}

func TestAddFlagsWrapToZero(t *testing.T) {
	e := newTestEmulator()
	result := e.addWithFlags(0x1FFFFFFF, 0xE0000001)
	if result != 0 {
		t.Fatalf("result = 0x%08X, want 0", result)
	}
	if !e.CF() {
		t.Error("CF should be set on carry out of bit 31")
	}
	if !e.ZF() {
		t.Error("ZF should be set when the result is zero")
	}
	if e.SF() {
		t.Error("SF should be clear")
	}
	if e.OF() {
		t.Error("OF should be clear")
	}
}

func TestSubFlagsEqualOperands(t *testing.T) {
	e := newTestEmulator()
	e.subWithFlags(42, 42)
	if !e.ZF() {
		t.Error("ZF should be set when operands are equal")
	}
	if e.OF() {
		t.Error("OF should be clear when operands are equal")
	}
}

func TestSubFlagsSignedUnderflowBoundary(t *testing.T) {
	e := newTestEmulator()
	// a = 0x80000000 (minimum signed 32-bit), b = 1: signed a - b overflows.
	e.subWithFlags(0x80000000, 1)
	if !e.OF() {
		t.Error("OF should be set at the signed-underflow boundary")
	}
}

func TestIncWrapAtMax(t *testing.T) {
	e := newTestEmulator()
	e.SetRegister32(RegEAX, 0xFFFFFFFF)
	// INC in this subset never touches EFLAGS (spec.md §9 open question a).
	e.eflags = FlagCF // sentinel value that must survive untouched
	if fault := opcodeTable[0x40](e, 0x40); fault != nil {
		t.Fatalf("unexpected fault: %v", fault)
	}
	if got := e.GetRegister32(RegEAX); got != 0 {
		t.Errorf("EAX after INC wrap = 0x%08X, want 0", got)
	}
	if e.eflags != FlagCF {
		t.Errorf("EFLAGS changed by INC r32, want untouched: got 0x%X", e.eflags)
	}
}
