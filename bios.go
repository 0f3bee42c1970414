// bios.go - the host loop's interrupt servicer, spec.md §6: "the host
// loop, on observing int_index >= 0, services the interrupt (by
// convention, INT 0x10 / INT 0x21 style BIOS/DOS services consuming AH and
// other registers), then resets int_index = -1 before resuming."
//
// original_source/pre/instruction.c's swi() only ever writes int_index; it
// never services anything itself, confirming this is entirely host-side
// policy. DOS/BIOS semantics below are the conventional minimum needed to
// run early-boot style programs that print and exit.

package main

import "fmt"

const (
	intBIOSVideo = 0x10
	intDOS       = 0x21

	biosAHTeletype = 0x0E

	dosAHDisplayOutput = 0x02
	dosAHPrintString   = 0x09
	dosAHTerminate     = 0x4C
)

// BIOS services the subset of INT 0x10/0x21 vectors a guest program might
// invoke, writing any character output through the supplied UART. It
// returns true when the guest requested termination.
type BIOS struct {
	uart *UARTPort
}

// NewBIOS returns an interrupt servicer that writes character output to
// the given UART's data register.
func NewBIOS(uart *UARTPort) *BIOS {
	return &BIOS{uart: uart}
}

// Service handles the pending interrupt vector on e, consuming AH and
// other registers per the convention in spec.md §6. It reports whether the
// guest asked to terminate and any unhandled-vector diagnostic (which is
// informational, not fatal - spec.md §7 treats pending interrupts as "not
// an error").
func (b *BIOS) Service(e *Emulator, vector int32) (terminate bool, exitCode uint8, diagnostic string) {
	ah := uint8(e.GetRegister32(RegEAX) >> 8)

	switch vector {
	case intDOS:
		switch ah {
		case dosAHTerminate:
			return true, e.GetRegister8(0 /* AL */), ""
		case dosAHDisplayOutput:
			dl := uint8(e.GetRegister32(RegEDX))
			b.write(dl)
			return false, 0, ""
		case dosAHPrintString:
			addr := e.GetRegister32(RegEDX)
			b.writeDollarString(e, addr)
			return false, 0, ""
		default:
			return false, 0, fmt.Sprintf("unhandled INT 0x21 AH=0x%02X", ah)
		}
	case intBIOSVideo:
		switch ah {
		case biosAHTeletype:
			al := uint8(e.GetRegister32(RegEAX))
			b.write(al)
			return false, 0, ""
		default:
			return false, 0, fmt.Sprintf("unhandled INT 0x10 AH=0x%02X", ah)
		}
	default:
		return false, 0, fmt.Sprintf("unhandled interrupt vector 0x%02X", vector)
	}
}

func (b *BIOS) write(c byte) {
	if b.uart != nil {
		dataPort{b.uart}.Out(c)
	}
}

// writeDollarString writes bytes starting at addr until a '$' terminator,
// the classic DOS INT 0x21 AH=0x09 convention.
func (b *BIOS) writeDollarString(e *Emulator, addr uint32) {
	for i := uint32(0); ; i++ {
		c := e.GetMemory8(addr + i)
		if c == '$' {
			return
		}
		b.write(c)
	}
}
