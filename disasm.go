// disasm.go - a one-line-per-instruction disassembler for the `disasm`
// subcommand, trimmed from debug_disasm_x86.go down to exactly the opcode
// set spec.md §4.7 supports. Unlike the host's two-byte-opcode-aware
// disassembler, there is no 0x0F prefix anywhere in this subset, so that
// whole dispatch layer is dropped.

package main

import "fmt"

// regName8/regName32 mirror the register aliasing tables used by the
// engine itself, so disassembly output names registers the way the
// encoding actually addresses them.
var regName32 = [8]string{"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi"}
var regName8 = [8]string{"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh"}

// DisassembleOne renders the instruction at img[off:] as a mnemonic line
// and returns its encoded length in bytes. Unknown opcodes render as a
// ".byte" directive rather than erroring, since the disassembler is purely
// diagnostic and must not itself halt on something the engine would fault
// on at run time.
func DisassembleOne(img []byte, off int) (string, int) {
	if off >= len(img) {
		return "", 0
	}
	opcode := img[off]

	rm8 := func(m modRM) string {
		if m.mod == 3 {
			return regName8[m.rm]
		}
		return "m8"
	}
	rm32 := func(m modRM) string {
		if m.mod == 3 {
			return regName32[m.rm]
		}
		return "m32"
	}
	readModRM := func(p int) (modRM, int) {
		b := img[p]
		m := modRM{mod: b >> 6, regOrOp: (b >> 3) & 7, rm: b & 7}
		p++
		if m.mod != 3 && m.rm == 4 {
			p++ // SIB
		}
		switch {
		case m.mod == 0 && m.rm == 5:
			p += 4
		case m.mod == 1:
			p++
		case m.mod == 2:
			p += 4
		}
		return m, p
	}

	switch {
	case opcode == 0x01:
		m, end := readModRM(off + 1)
		return fmt.Sprintf("add %s, %s", rm32(m), regName32[m.regOrOp]), end - off
	case opcode == 0x3B:
		m, end := readModRM(off + 1)
		return fmt.Sprintf("cmp %s, %s", regName32[m.regOrOp], rm32(m)), end - off
	case opcode == 0x3C:
		return fmt.Sprintf("cmp al, 0x%02X", img[off+1]), 2
	case opcode == 0x3D:
		return fmt.Sprintf("cmp eax, 0x%08X", le32(img, off+1)), 5
	case opcode >= 0x40 && opcode <= 0x47:
		return fmt.Sprintf("inc %s", regName32[opcode-0x40]), 1
	case opcode >= 0x50 && opcode <= 0x57:
		return fmt.Sprintf("push %s", regName32[opcode-0x50]), 1
	case opcode >= 0x58 && opcode <= 0x5F:
		return fmt.Sprintf("pop %s", regName32[opcode-0x58]), 1
	case opcode == 0x68:
		return fmt.Sprintf("push 0x%08X", le32(img, off+1)), 5
	case opcode == 0x6A:
		return fmt.Sprintf("push 0x%02X", img[off+1]), 2
	case isJccOpcode(opcode):
		return fmt.Sprintf("%s 0x%02X", jccMnemonic(opcode), img[off+1]), 2
	case opcode == 0x83:
		m, end := readModRM(off + 1)
		mnemonic, ok := group83Mnemonic(m.regOrOp)
		if !ok {
			return fmt.Sprintf(".byte 0x%02X ; unsupported /%d", opcode, m.regOrOp), end - off
		}
		return fmt.Sprintf("%s %s, 0x%02X", mnemonic, rm32(m), img[end]), end - off + 1
	case opcode == 0x88:
		m, end := readModRM(off + 1)
		return fmt.Sprintf("mov %s, %s", rm8(m), regName8[m.regOrOp]), end - off
	case opcode == 0x89:
		m, end := readModRM(off + 1)
		return fmt.Sprintf("mov %s, %s", rm32(m), regName32[m.regOrOp]), end - off
	case opcode == 0x8A:
		m, end := readModRM(off + 1)
		return fmt.Sprintf("mov %s, %s", regName8[m.regOrOp], rm8(m)), end - off
	case opcode == 0x8B:
		m, end := readModRM(off + 1)
		return fmt.Sprintf("mov %s, %s", regName32[m.regOrOp], rm32(m)), end - off
	case opcode == 0x8D:
		m, end := readModRM(off + 1)
		return fmt.Sprintf("lea %s, [%s]", regName32[m.regOrOp], rm32(m)), end - off
	case opcode == 0x99:
		return "cdq", 1
	case opcode == 0xA1:
		return fmt.Sprintf("mov eax, [0x%08X]", le32(img, off+1)), 5
	case opcode == 0xA3:
		return fmt.Sprintf("mov [0x%08X], eax", le32(img, off+1)), 5
	case opcode >= 0xB0 && opcode <= 0xB7:
		return fmt.Sprintf("mov %s, 0x%02X", regName8[opcode-0xB0], img[off+1]), 2
	case opcode >= 0xB8 && opcode <= 0xBF:
		return fmt.Sprintf("mov %s, 0x%08X", regName32[opcode-0xB8], le32(img, off+1)), 5
	case opcode == 0xC3:
		return "ret", 1
	case opcode == 0xC7:
		m, end := readModRM(off + 1)
		return fmt.Sprintf("mov %s, 0x%08X", rm32(m), le32(img, end)), end - off + 4
	case opcode == 0xC9:
		return "leave", 1
	case opcode == 0xCD:
		return fmt.Sprintf("int 0x%02X", img[off+1]), 2
	case opcode == 0xE8:
		return fmt.Sprintf("call 0x%08X", le32(img, off+1)), 5
	case opcode == 0xE9:
		return fmt.Sprintf("jmp 0x%08X", le32(img, off+1)), 5
	case opcode == 0xEB:
		return fmt.Sprintf("jmp 0x%02X", img[off+1]), 2
	case opcode == 0xEC:
		return "in al, dx", 1
	case opcode == 0xEE:
		return "out dx, al", 1
	case opcode == 0xF7:
		m, end := readModRM(off + 1)
		if m.regOrOp != 7 {
			return fmt.Sprintf(".byte 0x%02X ; unsupported /%d", opcode, m.regOrOp), end - off
		}
		return fmt.Sprintf("idiv %s", rm32(m)), end - off
	case opcode == 0xFF:
		m, end := readModRM(off + 1)
		if m.regOrOp != 0 {
			return fmt.Sprintf(".byte 0x%02X ; unsupported /%d", opcode, m.regOrOp), end - off
		}
		return fmt.Sprintf("inc %s", rm32(m)), end - off
	default:
		return fmt.Sprintf(".byte 0x%02X", opcode), 1
	}
}

func le32(b []byte, off int) uint32 {
	return uint32(b[off]) | uint32(b[off+1])<<8 | uint32(b[off+2])<<16 | uint32(b[off+3])<<24
}

func isJccOpcode(opcode byte) bool {
	switch opcode {
	case 0x70, 0x71, 0x72, 0x73, 0x74, 0x75, 0x78, 0x79, 0x7C, 0x7E:
		return true
	}
	return false
}

func jccMnemonic(opcode byte) string {
	switch opcode {
	case 0x70:
		return "jo"
	case 0x71:
		return "jno"
	case 0x72:
		return "jc"
	case 0x73:
		return "jnc"
	case 0x74:
		return "jz"
	case 0x75:
		return "jnz"
	case 0x78:
		return "js"
	case 0x79:
		return "jns"
	case 0x7C:
		return "jl"
	case 0x7E:
		return "jle"
	}
	return "j?"
}

func group83Mnemonic(ext uint8) (string, bool) {
	switch ext {
	case 0:
		return "add", true
	case 5:
		return "sub", true
	case 7:
		return "cmp", true
	default:
		return "", false
	}
}
