// Package cpu implements the Sharp LR35902 (the DMG's Z80/8080 variant):
// its register file, the fetch-decode-execute loop, and the 256-entry
// primary and CB-prefixed opcode tables.
package cpu

import (
	"fmt"

	"dmgo/mem"
)

// Cpu is the Sharp LR35902. It has no memory of its own beyond its
// registers; every read or write goes through Bus.
type Cpu struct {
	Bus *mem.Bus

	AF         AF
	BC, DE, HL Pair
	SP, PC     Pair

	// CycleCount is a monotonic machine-cycle counter. It never
	// decreases: every instruction adds its published cost to it
	// exactly once, including conditional branches (the taken cost when
	// taken, the not-taken cost otherwise).
	CycleCount uint64

	InterruptsEnabled bool

	// Debug, when true, makes Step print a disassembly line before
	// executing each instruction.
	Debug bool
}

// NewCPU returns a Cpu wired to bus, with all registers at their zero
// value and PC at 0x0000, where the boot-ROM overlay begins.
func NewCPU(bus *mem.Bus) *Cpu {
	return &Cpu{Bus: bus}
}

// Read reads one byte from the bus.
func (c *Cpu) Read(addr uint16) byte { return c.Bus.Read(addr) }

// Write writes one byte to the bus.
func (c *Cpu) Write(addr uint16, value byte) { c.Bus.Write(addr, value) }

// charge adds n machine cycles to the running total. Every instruction
// handler calls this exactly once.
func (c *Cpu) charge(n uint64) { c.CycleCount += n }

// popU8FromPC reads the byte at [PC], then increments PC.
func (c *Cpu) popU8FromPC() byte {
	v := c.Read(c.PC.Read())
	c.PC.Inc()
	return v
}

// popU16FromPC reads a little-endian 16-bit immediate: the low byte first,
// then the high byte, each via popU8FromPC.
func (c *Cpu) popU16FromPC() uint16 {
	lo := c.popU8FromPC()
	hi := c.popU8FromPC()
	return uint16(hi)<<8 | uint16(lo)
}

// pushU8 decrements SP, then writes v at the new SP.
func (c *Cpu) pushU8(v byte) {
	c.SP.Dec()
	c.Write(c.SP.Read(), v)
}

// pushU16 pushes the low byte of v first, then the high byte, so the high
// byte ends up at the lower address. This is the convention the CALL/RET
// scenario depends on.
func (c *Cpu) pushU16(v uint16) {
	c.pushU8(byte(v))
	c.pushU8(byte(v >> 8))
}

// popU8 reads the byte at SP, then increments SP.
func (c *Cpu) popU8() byte {
	v := c.Read(c.SP.Read())
	c.SP.Inc()
	return v
}

// popU16 pops two bytes and reassembles them with the first popped byte as
// the high byte, the second as the low byte — the mirror image of
// pushU16's store order.
func (c *Cpu) popU16() uint16 {
	hi := c.popU8()
	lo := c.popU8()
	return uint16(hi)<<8 | uint16(lo)
}

// IllegalOpcode is returned by Step when the fetched byte (or CB-prefixed
// byte pair) has no entry in the opcode table.
type IllegalOpcode struct {
	Addr  uint16
	Bytes []byte
}

func (e *IllegalOpcode) Error() string {
	return fmt.Sprintf("illegal opcode % X at 0x%04X", e.Bytes, e.Addr)
}

// Step executes exactly one instruction (a CB-prefixed pair counts as one
// step): it fetches an opcode byte at PC, decodes it against the primary or
// CB table, runs the handler, and ticks the bus once per machine cycle the
// handler charged. A fault raised by the bus (access to an unimplemented
// region, a write to read-only memory) or an opcode absent from both
// tables is returned as an error rather than left to crash the process;
// both are intended to be fatal at the caller.
func (c *Cpu) Step() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if f, ok := r.(*mem.Fault); ok {
				err = f
				return
			}
			panic(r)
		}
	}()

	startPC := c.PC.Read()
	before := c.CycleCount

	b := c.popU8FromPC()

	var op Opcode
	var ok bool
	if b == 0xcb {
		cb := c.popU8FromPC()
		op, ok = CBOpcodes[cb]
		if !ok {
			return &IllegalOpcode{Addr: startPC, Bytes: []byte{0xcb, cb}}
		}
		if c.Debug {
			c.trace(startPC, op, []byte{0xcb, cb})
		}
	} else {
		op, ok = Opcodes[b]
		if !ok {
			return &IllegalOpcode{Addr: startPC, Bytes: []byte{b}}
		}
		if c.Debug {
			c.trace(startPC, op, []byte{b})
		}
	}

	op.Instruction(c)

	delta := c.CycleCount - before
	for i := uint64(0); i < delta; i++ {
		c.Bus.Cycle()
	}
	return nil
}
