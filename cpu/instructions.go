package cpu

// This file implements every instruction named in the opcode tables
// (opcodes.go, cb_opcodes.go). Handlers are small, parameterized closures
// where the Z80 encoding groups naturally (register-to-register loads,
// the arithmetic/compare family, relative and absolute jumps); a few
// single-purpose opcodes (NOP, CALL, RET, DI, EI, RLA) get a named
// function instead since there is only one of them.

// pair16 returns the 16-bit register selected by the 2-bit "dd"/"qq"
// encoding used by LD rr,d16 and 16-bit INC/DEC: 00=BC, 01=DE, 10=HL,
// 11=SP.
func (c *Cpu) pair16(idx byte) *Pair {
	switch idx {
	case 0:
		return &c.BC
	case 1:
		return &c.DE
	case 2:
		return &c.HL
	default:
		return &c.SP
	}
}

// nop does nothing for 4 cycles.
func nop(c *Cpu) { c.charge(4) }

// ldImm8 returns a handler for "LD r,d8".
func ldImm8(dst byte) Instruction {
	return func(c *Cpu) {
		c.writeReg8(dst, c.popU8FromPC())
		c.charge(8)
	}
}

// ldImm16 returns a handler for "LD rr,d16".
func ldImm16(dstIdx byte) Instruction {
	return func(c *Cpu) {
		c.pair16(dstIdx).Write(c.popU16FromPC())
		c.charge(12)
	}
}

// ldRR returns a handler for "LD r,r'" (register-to-register, or via
// (HL) on either side). Memory-involving forms cost 8 cycles; pure
// register-to-register forms cost 4.
func ldRR(dst, src byte) Instruction {
	cost := uint64(4)
	if dst == regHLPtr || src == regHLPtr {
		cost = 8
	}
	return func(c *Cpu) {
		c.writeReg8(dst, c.readReg8(src))
		c.charge(cost)
	}
}

func ldName(dst, src byte) string {
	return "LD " + regNames[dst] + "," + regNames[src]
}

// incR returns a handler for 8-bit "INC r". Flags: Z 0 H -.
func incR(idx byte) Instruction {
	return func(c *Cpu) {
		v := c.readReg8(idx) + 1
		c.writeReg8(idx, v)
		c.AF.SetZ(v == 0)
		c.AF.SetN(false)
		c.AF.SetH(v&0x0f == 0)
		c.charge(4)
	}
}

// decR returns a handler for 8-bit "DEC r". Flags: Z 1 H -.
func decR(idx byte) Instruction {
	return func(c *Cpu) {
		v := c.readReg8(idx) - 1
		c.writeReg8(idx, v)
		c.AF.SetZ(v == 0)
		c.AF.SetN(true)
		c.AF.SetH(v&0x0f == 0x0f)
		c.charge(4)
	}
}

// incRR16/decRR16 implement the 16-bit INC/DEC family: 8 cycles, no flags.
func incRR16(idx byte) Instruction {
	return func(c *Cpu) {
		c.pair16(idx).Inc()
		c.charge(8)
	}
}

func decRR16(idx byte) Instruction {
	return func(c *Cpu) {
		c.pair16(idx).Dec()
		c.charge(8)
	}
}

// addA computes the Z, H and C flags for an 8-bit add and writes the
// wrapped result into A.
func (c *Cpu) addA(operand byte) {
	a := c.AF.A()
	sum := uint16(a) + uint16(operand)
	result := byte(sum)
	c.AF.SetA(result)
	c.AF.SetZ(result == 0)
	c.AF.SetN(false)
	c.AF.SetH((a&0x0f)+(operand&0x0f) > 0x0f)
	c.AF.SetC(sum > 0xff)
}

// subFlags computes the Z, H and C flags for an 8-bit subtract (A minus
// operand) and returns the wrapped result, without writing A.
func (c *Cpu) subFlags(operand byte) byte {
	a := c.AF.A()
	result := a - operand
	c.AF.SetZ(result == 0)
	c.AF.SetN(true)
	c.AF.SetH(a&0x0f < operand&0x0f)
	c.AF.SetC(a < operand)
	return result
}

// addAR returns a handler for "ADD A,r" / "ADD A,(HL)". Flags: Z 0 H C.
func addAR(idx byte) Instruction {
	cost := uint64(4)
	if idx == regHLPtr {
		cost = 8
	}
	return func(c *Cpu) {
		c.addA(c.readReg8(idx))
		c.charge(cost)
	}
}

// addAD8 implements "ADD A,d8".
func addAD8(c *Cpu) {
	c.addA(c.popU8FromPC())
	c.charge(8)
}

// subR returns a handler for "SUB r" / "SUB (HL)". Flags: Z 1 H C.
func subR(idx byte) Instruction {
	cost := uint64(4)
	if idx == regHLPtr {
		cost = 8
	}
	return func(c *Cpu) {
		result := c.subFlags(c.readReg8(idx))
		c.AF.SetA(result)
		c.charge(cost)
	}
}

// subD8 implements "SUB d8".
func subD8(c *Cpu) {
	result := c.subFlags(c.popU8FromPC())
	c.AF.SetA(result)
	c.charge(8)
}

// cpR returns a handler for "CP r" / "CP (HL)": same flags as SUB, but A
// is left unchanged.
func cpR(idx byte) Instruction {
	cost := uint64(4)
	if idx == regHLPtr {
		cost = 8
	}
	return func(c *Cpu) {
		c.subFlags(c.readReg8(idx))
		c.charge(cost)
	}
}

// cpD8 implements "CP d8".
func cpD8(c *Cpu) {
	c.subFlags(c.popU8FromPC())
	c.charge(8)
}

// xorA implements "XOR A": A always becomes zero regardless of its prior
// value. Flags: Z 1, N/H/C 0.
func xorA(c *Cpu) {
	c.AF.SetA(0)
	c.AF.SetZ(true)
	c.AF.SetN(false)
	c.AF.SetH(false)
	c.AF.SetC(false)
	c.charge(4)
}

// jrOffset reads the signed 8-bit displacement following the opcode and
// returns PC + displacement, PC already having been advanced past the
// displacement byte.
func (c *Cpu) jrOffset() uint16 {
	off := int8(c.popU8FromPC())
	return c.PC.Read() + uint16(int16(off))
}

// jr implements unconditional "JR r8": always 12 cycles.
func jr(c *Cpu) {
	target := c.jrOffset()
	c.PC.Write(target)
	c.charge(12)
}

// jrCC returns a handler for a conditional "JR cc,r8": 12 cycles taken, 8
// not taken.
func jrCC(cond func(*Cpu) bool) Instruction {
	return func(c *Cpu) {
		target := c.jrOffset()
		if cond(c) {
			c.PC.Write(target)
			c.charge(12)
		} else {
			c.charge(8)
		}
	}
}

// jp implements unconditional "JP a16": always 16 cycles.
func jp(c *Cpu) {
	target := c.popU16FromPC()
	c.PC.Write(target)
	c.charge(16)
}

// jpCC returns a handler for a conditional "JP cc,a16": 16 cycles taken,
// 12 not taken. The target is always consumed from the instruction
// stream regardless of whether the jump is taken.
func jpCC(cond func(*Cpu) bool) Instruction {
	return func(c *Cpu) {
		target := c.popU16FromPC()
		if cond(c) {
			c.PC.Write(target)
			c.charge(16)
		} else {
			c.charge(12)
		}
	}
}

// jpHL implements "JP (HL)": an unconditional 4-cycle jump to the address
// held in HL, reading no further operand bytes.
func jpHL(c *Cpu) {
	c.PC.Write(c.HL.Read())
	c.charge(4)
}

// call implements "CALL a16": push the address of the next instruction,
// then jump. 24 cycles, always taken.
func call(c *Cpu) {
	target := c.popU16FromPC()
	c.pushU16(c.PC.Read())
	c.PC.Write(target)
	c.charge(24)
}

// ret implements "RET": pop the return address into PC. 16 cycles.
func ret(c *Cpu) {
	c.PC.Write(c.popU16())
	c.charge(16)
}

// pushRR16 returns a handler for "PUSH rr" over BC, DE or HL: 16 cycles.
func pushRR16(idx byte) Instruction {
	return func(c *Cpu) {
		c.pushU16(c.pair16(idx).Read())
		c.charge(16)
	}
}

// popRR16 returns a handler for "POP rr" over BC, DE or HL: 12 cycles.
func popRR16(idx byte) Instruction {
	return func(c *Cpu) {
		c.pair16(idx).Write(c.popU16())
		c.charge(12)
	}
}

// pushAF implements "PUSH AF": 16 cycles.
func pushAF(c *Cpu) {
	c.pushU16(c.AF.Read())
	c.charge(16)
}

// popAF implements "POP AF": 12 cycles. AF.Write masks the low nibble of
// F to zero, so the hardware invariant that only bits 4-7 of F are
// settable holds automatically.
func popAF(c *Cpu) {
	c.AF.Write(c.popU16())
	c.charge(12)
}

// di/ei implement "DI"/"EI": 4 cycles, toggling the interrupt-enable
// flag.
func di(c *Cpu) {
	c.InterruptsEnabled = false
	c.charge(4)
}

func ei(c *Cpu) {
	c.InterruptsEnabled = true
	c.charge(4)
}

// rotateLeftThroughCarry rotates v left by one bit, shifting the current
// carry flag into bit 0 and the outgoing bit 7 into the carry flag. It
// returns the rotated value and the new carry.
func (c *Cpu) rotateLeftThroughCarry(v byte) (result byte, newCarry bool) {
	newCarry = v&0x80 != 0
	result = v << 1
	if c.AF.C() {
		result |= 1
	}
	return result, newCarry
}

// rla implements "RLA": rotate A left through carry. Unlike the CB "RL r"
// family, RLA always clears Z regardless of the result.
func rla(c *Cpu) {
	result, newCarry := c.rotateLeftThroughCarry(c.AF.A())
	c.AF.SetA(result)
	c.AF.SetZ(false)
	c.AF.SetN(false)
	c.AF.SetH(false)
	c.AF.SetC(newCarry)
	c.charge(4)
}

// rlR returns a handler for the CB-prefixed "RL r": rotate register r
// left through carry. Flags: Z 0 0 C.
func rlR(idx byte) Instruction {
	return func(c *Cpu) {
		result, newCarry := c.rotateLeftThroughCarry(c.readReg8(idx))
		c.writeReg8(idx, result)
		c.AF.SetZ(result == 0)
		c.AF.SetN(false)
		c.AF.SetH(false)
		c.AF.SetC(newCarry)
		c.charge(8)
	}
}

// bit7H implements the CB-prefixed "BIT 7,H": Z is set when bit 7 of H is
// clear. Flags: Z 0 1 -; C is left untouched.
func bit7H(c *Cpu) {
	c.AF.SetZ(c.HL.High()&0x80 == 0)
	c.AF.SetN(false)
	c.AF.SetH(true)
	c.charge(8)
}

// Condition predicates used by the conditional JR/JP families.
func condNZ(c *Cpu) bool { return !c.AF.Z() }
func condZ(c *Cpu) bool  { return c.AF.Z() }
func condNC(c *Cpu) bool { return !c.AF.C() }
func condC(c *Cpu) bool  { return c.AF.C() }

// ldAFromBC/ldAFromDE/ldBCFromA/ldDEFromA implement the four
// pointer-indirect forms that touch only A: LD A,(BC)/(DE), LD
// (BC)/(DE),A.
func ldAFromBC(c *Cpu) {
	c.AF.SetA(c.Read(c.BC.Read()))
	c.charge(8)
}

func ldAFromDE(c *Cpu) {
	c.AF.SetA(c.Read(c.DE.Read()))
	c.charge(8)
}

func ldBCFromA(c *Cpu) {
	c.Write(c.BC.Read(), c.AF.A())
	c.charge(8)
}

func ldDEFromA(c *Cpu) {
	c.Write(c.DE.Read(), c.AF.A())
	c.charge(8)
}

// ldAFromHLInc/ldAFromHLDec implement "LD A,(HL+)" / "LD A,(HL-)".
func ldAFromHLInc(c *Cpu) {
	c.AF.SetA(c.Read(c.HL.Read()))
	c.HL.Inc()
	c.charge(8)
}

func ldAFromHLDec(c *Cpu) {
	c.AF.SetA(c.Read(c.HL.Read()))
	c.HL.Dec()
	c.charge(8)
}

// ldHLIncFromA/ldHLDecFromA implement "LD (HL+),A" / "LD (HL-),A".
func ldHLIncFromA(c *Cpu) {
	c.Write(c.HL.Read(), c.AF.A())
	c.HL.Inc()
	c.charge(8)
}

func ldHLDecFromA(c *Cpu) {
	c.Write(c.HL.Read(), c.AF.A())
	c.HL.Dec()
	c.charge(8)
}

// ldA16FromA/ldAFromA16 implement "LD (a16),A" / "LD A,(a16)": 16 cycles.
func ldA16FromA(c *Cpu) {
	addr := c.popU16FromPC()
	c.Write(addr, c.AF.A())
	c.charge(16)
}

func ldAFromA16(c *Cpu) {
	addr := c.popU16FromPC()
	c.AF.SetA(c.Read(addr))
	c.charge(16)
}

// ldhA8FromA/ldhAFromA8 implement "LDH (a8),A" / "LDH A,(a8)": the high
// page 0xFF00-0xFFFF, 12 cycles.
func ldhA8FromA(c *Cpu) {
	addr := 0xff00 | uint16(c.popU8FromPC())
	c.Write(addr, c.AF.A())
	c.charge(12)
}

func ldhAFromA8(c *Cpu) {
	addr := 0xff00 | uint16(c.popU8FromPC())
	c.AF.SetA(c.Read(addr))
	c.charge(12)
}

// ldCFromA implements "LD (C),A": 0xFF00+C, 8 cycles.
func ldCFromA(c *Cpu) {
	addr := 0xff00 | uint16(c.BC.Low())
	c.Write(addr, c.AF.A())
	c.charge(8)
}
