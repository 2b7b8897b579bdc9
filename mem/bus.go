// Package mem implements the bus: the single aggregate that owns the boot
// ROM, cartridge, VRAM, WRAM, HRAM and the PPU, and arbitrates every memory
// access the CPU makes. There is no other path to any of these regions —
// the CPU exclusively owns the Bus, and the Bus exclusively owns everything
// else, so no locking or interior mutability is needed anywhere in the core.
package mem

import (
	"fmt"
	"log"

	"dmgo/bootrom"
	"dmgo/cartridge"
	"dmgo/ppu"
)

const (
	vramSize = 0x2000 // 8 KiB, 0x8000-0x9FFF
	wramSize = 0x2000 // 8 KiB, 0xC000-0xDFFF
	hramSize = 0x7f   // 127 bytes, 0xFF80-0xFFFE
)

// Fault is a fatal emulation-time error: an access to an unimplemented
// region, a write to a read-only region, or any other condition a
// well-formed ROM would never produce. The bus panics with a *Fault rather
// than threading an error return through every Read/Write call; Cpu.Step
// recovers it and turns it into a returned error.
type Fault struct {
	Addr uint16
	Msg  string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("bus fault at 0x%04X: %s", f.Addr, f.Msg)
}

func fault(addr uint16, format string, a ...any) {
	panic(&Fault{Addr: addr, Msg: fmt.Sprintf(format, a...)})
}

// Bus is the central object connecting the CPU to every memory-mapped
// region and to the PPU. Each region begins at address 0 in its own local
// array; the Bus translates a global 16-bit address into the owning
// region's local offset.
type Bus struct {
	BootROM     *bootrom.BootROM
	Cartridge   *cartridge.Cartridge
	bootEnabled bool

	VRAM [vramSize]byte
	WRAM [wramSize]byte
	HRAM [hramSize]byte

	PPU *ppu.PPU

	// Stub sinks for ports this core doesn't implement (sound, LCDC,
	// BGP) but must still accept writes to, because the boot ROM touches
	// them.
	lcdc byte
	bgp  byte
}

// NewBus wires a cartridge and boot ROM into a fresh bus. The PPU starts
// powered on and the boot-ROM overlay starts active.
func NewBus(boot *bootrom.BootROM, cart *cartridge.Cartridge) *Bus {
	return &Bus{
		BootROM:     boot,
		Cartridge:   cart,
		bootEnabled: true,
		PPU:         ppu.New(),
	}
}

// Cycle advances every bus-owned subsystem (currently just the PPU) by one
// machine cycle. The CPU calls this once per machine cycle consumed by the
// instruction it just executed.
func (b *Bus) Cycle() {
	b.PPU.Cycle()
}

// Read dispatches a read to the region that owns addr.
func (b *Bus) Read(addr uint16) byte {
	switch {
	case b.bootEnabled && addr < 0x0100:
		return b.BootROM.Read(addr)

	case addr < 0x4000:
		return b.Cartridge.ReadBank0(addr)

	case addr < 0x8000:
		fault(addr, "cartridge ROM banking is not supported by this core")

	case addr < 0xa000:
		return b.VRAM[addr-0x8000]

	case addr < 0xc000:
		fault(addr, "external cartridge RAM is not supported by this core")

	case addr < 0xe000:
		return b.WRAM[addr-0xc000]

	case addr < 0xff00:
		fault(addr, "echo RAM is not supported by this core")

	case addr < 0xff80:
		return b.readIO(addr)

	case addr < 0xffff:
		return b.HRAM[addr-0xff80]

	default:
		fault(addr, "interrupt enable register is not supported by this core")
	}
	panic("unreachable")
}

// Write dispatches a write to the region that owns addr. A write to
// 0xFF50 is inspected before dispatch, per the Design Notes: the bus is the
// single place that consolidates boot-ROM-overlay disabling.
func (b *Bus) Write(addr uint16, value byte) {
	if addr == 0xff50 {
		if value == 1 {
			b.bootEnabled = false
		}
		return
	}

	switch {
	case b.bootEnabled && addr < 0x0100:
		fault(addr, "boot ROM is read-only")

	case addr < 0x4000:
		fault(addr, "cartridge ROM is read-only")

	case addr < 0x8000:
		fault(addr, "cartridge ROM banking is not supported by this core")

	case addr < 0xa000:
		b.VRAM[addr-0x8000] = value

	case addr < 0xc000:
		fault(addr, "external cartridge RAM is not supported by this core")

	case addr < 0xe000:
		b.WRAM[addr-0xc000] = value

	case addr < 0xff00:
		fault(addr, "echo RAM is not supported by this core")

	case addr < 0xff80:
		b.writeIO(addr, value)

	case addr < 0xffff:
		b.HRAM[addr-0xff80] = value

	default:
		fault(addr, "interrupt enable register is not supported by this core")
	}
}

// readIO and writeIO implement the thin, table-driven I/O port router of
// spec.md §4.3. The PPU is owned by this same struct, so ports that expose
// PPU state (SCY, LY) are read/written directly — no aliasing required.
func (b *Bus) readIO(addr uint16) byte {
	switch {
	case addr >= 0xff11 && addr <= 0xff14, addr >= 0xff24 && addr <= 0xff26:
		return 0 // sound: stub

	case addr == 0xff40:
		return b.lcdc

	case addr == 0xff42:
		return b.PPU.SCY

	case addr == 0xff44:
		return b.PPU.LY

	case addr == 0xff47:
		return b.bgp

	case addr == 0xff50:
		return 0
	}
	fault(addr, "unimplemented I/O port read")
	panic("unreachable")
}

func (b *Bus) writeIO(addr uint16, value byte) {
	switch {
	case addr >= 0xff11 && addr <= 0xff14, addr >= 0xff24 && addr <= 0xff26:
		log.Printf("mem: ignoring write 0x%02X to unimplemented sound port 0x%04X", value, addr)
		return

	case addr == 0xff40:
		log.Printf("mem: accepting write 0x%02X to stubbed LCDC", value)
		b.lcdc = value
		return

	case addr == 0xff42:
		b.PPU.SCY = value
		return

	case addr == 0xff44:
		return // LY is read-only; writes are silently ignored

	case addr == 0xff47:
		log.Printf("mem: accepting write 0x%02X to stubbed BGP", value)
		b.bgp = value
		return
	}
	fault(addr, "unimplemented I/O port write")
}
