package cpu

// The Z80 8-bit register encoding used throughout the 0x40-0xBF opcode
// block and the CB-prefixed table: indices 0-5 and 7 are registers, index
// 6 is the byte pointed to by HL.
const (
	regB = iota
	regC
	regD
	regE
	regH
	regL
	regHLPtr
	regA
)

var regNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

func (c *Cpu) readReg8(idx byte) byte {
	switch idx {
	case regB:
		return c.BC.High()
	case regC:
		return c.BC.Low()
	case regD:
		return c.DE.High()
	case regE:
		return c.DE.Low()
	case regH:
		return c.HL.High()
	case regL:
		return c.HL.Low()
	case regHLPtr:
		return c.Read(c.HL.Read())
	default: // regA
		return c.AF.A()
	}
}

func (c *Cpu) writeReg8(idx byte, v byte) {
	switch idx {
	case regB:
		c.BC.SetHigh(v)
	case regC:
		c.BC.SetLow(v)
	case regD:
		c.DE.SetHigh(v)
	case regE:
		c.DE.SetLow(v)
	case regH:
		c.HL.SetHigh(v)
	case regL:
		c.HL.SetLow(v)
	case regHLPtr:
		c.Write(c.HL.Read(), v)
	default: // regA
		c.AF.SetA(v)
	}
}
