package cpu

// Instruction is a single opcode handler. It reads whatever operand bytes
// it needs via the Cpu's pop* helpers, applies its effect, and charges its
// own machine-cycle cost via Cpu.charge — including the taken/not-taken
// cost split for conditional branches.
type Instruction func(c *Cpu)

// Opcode names an Instruction for disassembly/trace purposes and gives
// its encoded length in bytes, used only by the debug tracer (cycle cost
// is never derived from Length; every handler charges its own cost).
type Opcode struct {
	Name        string
	Length      byte
	Instruction Instruction
}

// Opcodes is the primary (non-CB-prefixed) 256-entry dispatch table.
// Entries absent from the map are illegal opcodes: Step returns an
// IllegalOpcode error rather than indexing a 256-element array, since
// most of the 0x00-0xFF space this core implements is sparse.
var Opcodes = map[byte]Opcode{
	0x00: {"NOP", 1, nop},

	// LD r,d8
	0x06: {"LD B,d8", 2, ldImm8(regB)},
	0x0e: {"LD C,d8", 2, ldImm8(regC)},
	0x16: {"LD D,d8", 2, ldImm8(regD)},
	0x1e: {"LD E,d8", 2, ldImm8(regE)},
	0x26: {"LD H,d8", 2, ldImm8(regH)},
	0x2e: {"LD L,d8", 2, ldImm8(regL)},
	0x3e: {"LD A,d8", 2, ldImm8(regA)},

	// LD rr,d16
	0x01: {"LD BC,d16", 3, ldImm16(0)},
	0x11: {"LD DE,d16", 3, ldImm16(1)},
	0x21: {"LD HL,d16", 3, ldImm16(2)},
	0x31: {"LD SP,d16", 3, ldImm16(3)},

	// Pointer-indirect loads/stores touching only A.
	0x0a: {"LD A,(BC)", 1, ldAFromBC},
	0x1a: {"LD A,(DE)", 1, ldAFromDE},
	0x02: {"LD (BC),A", 1, ldBCFromA},
	0x12: {"LD (DE),A", 1, ldDEFromA},
	0x2a: {"LD A,(HL+)", 1, ldAFromHLInc},
	0x3a: {"LD A,(HL-)", 1, ldAFromHLDec},
	0x22: {"LD (HL+),A", 1, ldHLIncFromA},
	0x32: {"LD (HL-),A", 1, ldHLDecFromA},

	0xea: {"LD (a16),A", 3, ldA16FromA},
	0xfa: {"LD A,(a16)", 3, ldAFromA16},
	0xe0: {"LDH (a8),A", 2, ldhA8FromA},
	0xf0: {"LDH A,(a8)", 2, ldhAFromA8},
	0xe2: {"LD (C),A", 1, ldCFromA},

	// 8-bit INC/DEC
	0x04: {"INC B", 1, incR(regB)},
	0x0c: {"INC C", 1, incR(regC)},
	0x14: {"INC D", 1, incR(regD)},
	0x1c: {"INC E", 1, incR(regE)},
	0x24: {"INC H", 1, incR(regH)},
	0x2c: {"INC L", 1, incR(regL)},
	0x3c: {"INC A", 1, incR(regA)},

	0x05: {"DEC B", 1, decR(regB)},
	0x0d: {"DEC C", 1, decR(regC)},
	0x15: {"DEC D", 1, decR(regD)},
	0x1d: {"DEC E", 1, decR(regE)},
	0x25: {"DEC H", 1, decR(regH)},
	0x2d: {"DEC L", 1, decR(regL)},
	0x3d: {"DEC A", 1, decR(regA)},

	// 16-bit INC/DEC
	0x03: {"INC BC", 1, incRR16(0)},
	0x13: {"INC DE", 1, incRR16(1)},
	0x23: {"INC HL", 1, incRR16(2)},
	0x33: {"INC SP", 1, incRR16(3)},
	0x0b: {"DEC BC", 1, decRR16(0)},
	0x1b: {"DEC DE", 1, decRR16(1)},
	0x2b: {"DEC HL", 1, decRR16(2)},
	0x3b: {"DEC SP", 1, decRR16(3)},

	// ADD A,r / (HL) / d8
	0x80: {"ADD A,B", 1, addAR(regB)},
	0x81: {"ADD A,C", 1, addAR(regC)},
	0x82: {"ADD A,D", 1, addAR(regD)},
	0x83: {"ADD A,E", 1, addAR(regE)},
	0x84: {"ADD A,H", 1, addAR(regH)},
	0x85: {"ADD A,L", 1, addAR(regL)},
	0x86: {"ADD A,(HL)", 1, addAR(regHLPtr)},
	0x87: {"ADD A,A", 1, addAR(regA)},
	0xc6: {"ADD A,d8", 2, addAD8},

	// SUB r / (HL) / d8
	0x90: {"SUB B", 1, subR(regB)},
	0x91: {"SUB C", 1, subR(regC)},
	0x92: {"SUB D", 1, subR(regD)},
	0x93: {"SUB E", 1, subR(regE)},
	0x94: {"SUB H", 1, subR(regH)},
	0x95: {"SUB L", 1, subR(regL)},
	0x96: {"SUB (HL)", 1, subR(regHLPtr)},
	0x97: {"SUB A", 1, subR(regA)},
	0xd6: {"SUB d8", 2, subD8},

	// CP r / (HL) / d8
	0xb8: {"CP B", 1, cpR(regB)},
	0xb9: {"CP C", 1, cpR(regC)},
	0xba: {"CP D", 1, cpR(regD)},
	0xbb: {"CP E", 1, cpR(regE)},
	0xbc: {"CP H", 1, cpR(regH)},
	0xbd: {"CP L", 1, cpR(regL)},
	0xbe: {"CP (HL)", 1, cpR(regHLPtr)},
	0xbf: {"CP A", 1, cpR(regA)},
	0xfe: {"CP d8", 2, cpD8},

	0xaf: {"XOR A", 1, xorA},

	// Relative jumps
	0x18: {"JR r8", 2, jr},
	0x20: {"JR NZ,r8", 2, jrCC(condNZ)},
	0x28: {"JR Z,r8", 2, jrCC(condZ)},
	0x30: {"JR NC,r8", 2, jrCC(condNC)},
	0x38: {"JR C,r8", 2, jrCC(condC)},

	// Absolute jumps
	0xc3: {"JP a16", 3, jp},
	0xc2: {"JP NZ,a16", 3, jpCC(condNZ)},
	0xca: {"JP Z,a16", 3, jpCC(condZ)},
	0xd2: {"JP NC,a16", 3, jpCC(condNC)},
	0xda: {"JP C,a16", 3, jpCC(condC)},
	0xe9: {"JP (HL)", 1, jpHL},

	0xcd: {"CALL a16", 3, call},
	0xc9: {"RET", 1, ret},

	0xc5: {"PUSH BC", 1, pushRR16(0)},
	0xd5: {"PUSH DE", 1, pushRR16(1)},
	0xe5: {"PUSH HL", 1, pushRR16(2)},
	0xf5: {"PUSH AF", 1, pushAF},

	0xc1: {"POP BC", 1, popRR16(0)},
	0xd1: {"POP DE", 1, popRR16(1)},
	0xe1: {"POP HL", 1, popRR16(2)},
	0xf1: {"POP AF", 1, popAF},

	0xf3: {"DI", 1, di},
	0xfb: {"EI", 1, ei},

	0x17: {"RLA", 1, rla},
}

func init() {
	// LD r,r': 0x40-0x7F, dst = (op>>3)&7, src = op&7, excluding 0x76
	// (HALT, which shares the encoding but is out of scope for this
	// core and left as an illegal opcode).
	for op := 0x40; op <= 0x7f; op++ {
		if op == 0x76 {
			continue
		}
		dst := byte(op>>3) & 7
		src := byte(op) & 7
		length := byte(1)
		Opcodes[byte(op)] = Opcode{Name: ldName(dst, src), Length: length, Instruction: ldRR(dst, src)}
	}
}
