// Package ppu implements the DMG pixel-processing unit's timing state
// machine: the per-line mode sequence and scanline counter that the CPU's
// bus ticks once per machine cycle. Actual pixel output (tile fetch,
// background/sprite compositing) is out of scope; this is the clock that a
// real renderer would hang off of.
//
// Mode sequence: OAM search -> pixel transfer -> H-blank, repeated for each
// of the 144 visible lines, followed by a 10-line V-blank before the next
// frame's OAM search begins.
package ppu

// Mode is one of the four sequential states of the per-line machine.
type Mode int

const (
	OAM Mode = iota
	PixelTransfer
	HBlank
	VBlank
)

func (m Mode) String() string {
	switch m {
	case OAM:
		return "OAM"
	case PixelTransfer:
		return "PixelTransfer"
	case HBlank:
		return "HBlank"
	case VBlank:
		return "VBlank"
	default:
		return "Unknown"
	}
}

// Timing constants, in machine cycles.
const (
	OAMDuration           = 80
	PixelTransferDuration = 172
	HBlankDuration        = 204
	LineDuration          = OAMDuration + PixelTransferDuration + HBlankDuration // 456
	VisibleLines          = 144
	VBlankLines           = 10
	TotalLines            = VisibleLines + VBlankLines // 154
	VBlankDuration        = VBlankLines * LineDuration
	FrameDuration         = TotalLines * LineDuration // 70224
)

// PPU holds the line/mode state machine plus the handful of memory-mapped
// registers the CPU can see through the bus (FF42 SCY, FF44 LY).
type PPU struct {
	Mode Mode

	// LY is the current scanline, 0-153 inclusive.
	LY byte

	// SCY is the background vertical scroll register (FF42).
	SCY byte

	modeCycles int
	lineCycles int
}

// New returns a PPU in its power-on state: mode OAM, LY 0.
func New() *PPU {
	return &PPU{Mode: OAM}
}

// Cycle advances the state machine by one machine cycle. It must be called
// exactly once per machine cycle the CPU consumes, via Bus.Cycle().
func (p *PPU) Cycle() {
	p.modeCycles++
	p.lineCycles++

	if p.lineCycles == LineDuration {
		p.lineCycles = 0
		p.LY++
		if p.LY == TotalLines {
			p.LY = 0
		}
	}

	if p.modeCycles == p.modeDuration() {
		p.modeCycles = 0
		p.transition()
	}
}

func (p *PPU) modeDuration() int {
	switch p.Mode {
	case OAM:
		return OAMDuration
	case PixelTransfer:
		return PixelTransferDuration
	case HBlank:
		return HBlankDuration
	case VBlank:
		return VBlankDuration
	default:
		return 0
	}
}

func (p *PPU) transition() {
	switch p.Mode {
	case OAM:
		p.Mode = PixelTransfer
	case PixelTransfer:
		p.Mode = HBlank
	case HBlank:
		if p.LY < VisibleLines {
			p.Mode = OAM
		} else {
			p.Mode = VBlank
		}
	case VBlank:
		p.Mode = OAM
	}
}
