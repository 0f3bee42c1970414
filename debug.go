// debug.go - register/flags trace dump for the --trace CLI flag, trimmed
// from debug_cpu_x86.go's RegisterInfo reporting down to this subset's
// registers and flags (no segment registers, no breakpoint/watchpoint
// machinery - this emulator has a flat address space and no monitor UI).

package main

import "fmt"

var registerNames = [8]string{"EAX", "ECX", "EDX", "EBX", "ESP", "EBP", "ESI", "EDI"}

// RegisterValue is one named register/value pair, in canonical x86 order.
type RegisterValue struct {
	Name  string
	Value uint32
}

// RegisterDump returns the current register file as name/value pairs.
func RegisterDump(e *Emulator) []RegisterValue {
	out := make([]RegisterValue, 8)
	for i, name := range registerNames {
		out[i] = RegisterValue{name, e.GetRegister32(i)}
	}
	return out
}

// TraceLine formats a one-line instruction trace: EIP before the step,
// opcode byte, and the defined EFLAGS bits.
func TraceLine(eip uint32, opcode byte, e *Emulator) string {
	return fmt.Sprintf("eip=0x%08X opcode=0x%02X eax=0x%08X ecx=0x%08X edx=0x%08X ebx=0x%08X esp=0x%08X ebp=0x%08X esi=0x%08X edi=0x%08X %s",
		eip, opcode,
		e.GetRegister32(RegEAX), e.GetRegister32(RegECX), e.GetRegister32(RegEDX), e.GetRegister32(RegEBX),
		e.GetRegister32(RegESP), e.GetRegister32(RegEBP), e.GetRegister32(RegESI), e.GetRegister32(RegEDI),
		FlagsString(e))
}

// FlagsString renders the four defined EFLAGS bits as a compact string,
// in C/Z/S/O order, dash for clear, letter for set - e.g. CF and OF set
// renders as "C--O".
func FlagsString(e *Emulator) string {
	bit := func(set bool, c byte) byte {
		if set {
			return c
		}
		return '-'
	}
	return string([]byte{
		bit(e.CF(), 'C'),
		bit(e.ZF(), 'Z'),
		bit(e.SF(), 'S'),
		bit(e.OF(), 'O'),
	})
}
