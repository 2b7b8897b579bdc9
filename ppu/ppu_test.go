package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeSequenceOneLine(t *testing.T) {
	p := New()
	assert.Equal(t, OAM, p.Mode)

	for range OAMDuration - 1 {
		p.Cycle()
	}
	assert.Equal(t, OAM, p.Mode, "still in OAM one cycle before its duration elapses")

	p.Cycle()
	assert.Equal(t, PixelTransfer, p.Mode, "OAM -> PixelTransfer at cycle 80")

	for range PixelTransferDuration - 1 {
		p.Cycle()
	}
	assert.Equal(t, PixelTransfer, p.Mode)
	p.Cycle()
	assert.Equal(t, HBlank, p.Mode, "PixelTransfer -> HBlank at cycle 80+172")

	for range HBlankDuration - 1 {
		p.Cycle()
	}
	assert.Equal(t, HBlank, p.Mode)
	assert.Equal(t, byte(0), p.LY)
	p.Cycle()
	assert.Equal(t, OAM, p.Mode, "HBlank -> OAM at the end of line 0")
	assert.Equal(t, byte(1), p.LY)
}

func TestFullFrame(t *testing.T) {
	p := New()
	seenLines := map[byte]int{}

	for range FrameDuration {
		seenLines[p.LY]++
		p.Cycle()
	}

	assert.Equal(t, OAM, p.Mode)
	assert.Equal(t, byte(0), p.LY, "LY wraps back to 0 after a full frame")
	assert.Len(t, seenLines, TotalLines)
	for ly, count := range seenLines {
		assert.Equal(t, LineDuration, count, "line %d should last exactly %d cycles", ly, LineDuration)
	}
}

func TestVBlankEntry(t *testing.T) {
	p := New()

	cyclesToEndOfLine143HBlank := VisibleLines*LineDuration - 1
	for range cyclesToEndOfLine143HBlank {
		p.Cycle()
	}
	assert.Equal(t, HBlank, p.Mode)
	assert.Equal(t, byte(143), p.LY)

	p.Cycle()
	assert.Equal(t, VBlank, p.Mode)
	assert.Equal(t, byte(144), p.LY)

	for range VBlankDuration - 1 {
		p.Cycle()
	}
	assert.Equal(t, VBlank, p.Mode)
	p.Cycle()
	assert.Equal(t, OAM, p.Mode)
	assert.Equal(t, byte(0), p.LY)
}

func TestSCYReadWrite(t *testing.T) {
	p := New()
	p.SCY = 0x42
	assert.Equal(t, byte(0x42), p.SCY)
}
