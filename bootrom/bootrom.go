// Package bootrom holds the 256-byte DMG boot ROM that the bus overlays at
// 0x0000-0x00FF until the cartridge disables it by writing 1 to 0xFF50.
package bootrom

import (
	"errors"
	"fmt"
)

// Size is the fixed, non-negotiable length of a DMG boot ROM.
const Size = 256

// ErrBadSize is returned when the supplied data isn't exactly Size bytes.
var ErrBadSize = errors.New("bootrom: image must be exactly 256 bytes")

// BootROM is a read-only 256-byte image.
type BootROM struct {
	data [Size]byte
}

// New validates data and copies it into a BootROM.
func New(data []byte) (*BootROM, error) {
	if len(data) != Size {
		return nil, fmt.Errorf("%w: got %d bytes", ErrBadSize, len(data))
	}
	b := &BootROM{}
	copy(b.data[:], data)
	return b, nil
}

// Read reads a byte at addr, which must be < Size.
func (b *BootROM) Read(addr uint16) byte {
	return b.data[addr]
}
