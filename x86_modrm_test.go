package main

import "testing"

func TestDecodeModRMRegDirect(t *testing.T) {
	e := newTestEmulator()
	// mod=3, reg=1 (ECX), rm=0 (EAX): 0xC8
	e.SetMemory32(e.EIP(), 0) // clear, then place the byte explicitly
	e.SetMemory8(e.EIP(), 0xC8)
	m := e.decodeModRM()
	if m.mod != 3 || m.regOrOp != 1 || m.rm != 0 {
		t.Fatalf("got mod=%d reg=%d rm=%d, want mod=3 reg=1 rm=0", m.mod, m.regOrOp, m.rm)
	}
	if e.EIP() != 0x7C01 {
		t.Errorf("EIP after decode = 0x%08X, want 0x7C01", e.EIP())
	}
}

func TestDecodeModRMDisp8(t *testing.T) {
	e := newTestEmulator()
	base := e.EIP()
	// mod=1, reg=0, rm=5 (EBP): byte 0x45, disp8 = -4 (0xFC)
	e.SetMemory8(base, 0x45)
	e.SetMemory8(base+1, 0xFC)
	e.SetRegister32(RegEBP, 0x104)
	m := e.decodeModRM()
	if !m.haveDisp || m.disp != -4 {
		t.Fatalf("disp = %d, want -4", m.disp)
	}
	if addr := e.effectiveAddress(m); addr != 0x100 {
		t.Errorf("effective address = 0x%X, want 0x100", addr)
	}
	if e.EIP() != base+2 {
		t.Errorf("EIP advanced to 0x%X, want 0x%X", e.EIP(), base+2)
	}
}

func TestDecodeModRMDisp32Direct(t *testing.T) {
	e := newTestEmulator()
	base := e.EIP()
	// mod=0, rm=5: direct disp32, no base register.
	e.SetMemory8(base, 0x05)
	e.SetMemory32(base+1, 0x00002000)
	m := e.decodeModRM()
	if addr := e.effectiveAddress(m); addr != 0x2000 {
		t.Errorf("effective address = 0x%X, want 0x2000", addr)
	}
	if e.EIP() != base+5 {
		t.Errorf("EIP advanced to 0x%X, want 0x%X", e.EIP(), base+5)
	}
}

func TestDecodeModRMSIBBaseOnly(t *testing.T) {
	e := newTestEmulator()
	base := e.EIP()
	// mod=1, reg=0, rm=4 (SIB follows): byte 0x44, SIB selecting base=EBX(3), disp8=8
	e.SetMemory8(base, 0x44)
	e.SetMemory8(base+1, 0x03) // SIB: scale/index ignored per the base-only rule
	e.SetMemory8(base+2, 0x08)
	e.SetRegister32(RegEBX, 0x500)
	m := e.decodeModRM()
	if !m.haveSIB {
		t.Fatal("expected SIB byte to be consumed")
	}
	if addr := e.effectiveAddress(m); addr != 0x508 {
		t.Errorf("effective address = 0x%X, want 0x508", addr)
	}
	if e.EIP() != base+3 {
		t.Errorf("EIP advanced to 0x%X, want 0x%X", e.EIP(), base+3)
	}
}

func TestEffectiveAddressPanicsOnModRegister(t *testing.T) {
	e := newTestEmulator()
	defer func() {
		if recover() == nil {
			t.Error("expected a panic calling effectiveAddress with mod==3")
		}
	}()
	e.effectiveAddress(modRM{mod: 3, rm: 0})
}
