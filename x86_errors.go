// x86_errors.go - fatal engine conditions, reported to the host rather than
// recovered locally.

package main

import "fmt"

// FaultKind distinguishes the two fatal conditions the engine itself can
// raise. Pending interrupts are not a fault; they are a cooperative signal
// serviced by the host loop (see bios.go).
type FaultKind int

const (
	FaultUnimplementedOpcode FaultKind = iota
	FaultDivideError
)

func (k FaultKind) String() string {
	switch k {
	case FaultUnimplementedOpcode:
		return "unimplemented opcode"
	case FaultDivideError:
		return "divide error"
	default:
		return "unknown fault"
	}
}

// Fault is returned by Step when the engine cannot continue. It carries
// enough context for the host to print a structured diagnostic: the
// faulting opcode, the opcode-extension field when relevant, and EIP at
// the point of fault.
type Fault struct {
	Kind    FaultKind
	Opcode  byte
	Ext     int // opcode-group extension field, or -1 if not applicable
	EIP     uint32
	Message string
}

func (f *Fault) Error() string {
	if f.Ext >= 0 {
		return fmt.Sprintf("%s: opcode=0x%02X /%d eip=0x%08X: %s", f.Kind, f.Opcode, f.Ext, f.EIP, f.Message)
	}
	return fmt.Sprintf("%s: opcode=0x%02X eip=0x%08X: %s", f.Kind, f.Opcode, f.EIP, f.Message)
}

func unimplementedOpcode(opcode byte, eip uint32) *Fault {
	return &Fault{Kind: FaultUnimplementedOpcode, Opcode: opcode, Ext: -1, EIP: eip, Message: "no handler registered"}
}

func unimplementedExtension(opcode byte, ext int, eip uint32) *Fault {
	return &Fault{Kind: FaultUnimplementedOpcode, Opcode: opcode, Ext: ext, EIP: eip, Message: "opcode-group extension not supported"}
}

func divideError(opcode byte, eip uint32, reason string) *Fault {
	return &Fault{Kind: FaultDivideError, Opcode: opcode, Ext: -1, EIP: eip, Message: reason}
}
