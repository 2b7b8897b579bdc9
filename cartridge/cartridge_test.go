package cartridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeROM(banks int, title string, mapperID, sizeID byte) []byte {
	data := make([]byte, banks*bankSize)
	copy(data[titleStart:titleEnd+1], title)
	data[mapperByte] = mapperID
	data[sizeByte] = sizeID
	return data
}

func TestLoadValidROM(t *testing.T) {
	data := makeROM(2, "TETRIS", 0x00, 0x00)
	c, err := Load(data)
	assert.NoError(t, err)
	assert.Equal(t, "TETRIS", c.Title)
	assert.Equal(t, "ROM only", c.MapperName())
	assert.Equal(t, "32 KiB (2 banks)", c.SizeName())
}

func TestLoadBadSize(t *testing.T) {
	_, err := Load(make([]byte, 100))
	assert.ErrorIs(t, err, ErrBadSize)
}

func TestLoadUnsupportedMapper(t *testing.T) {
	data := makeROM(2, "GAME", 0x01, 0x00)
	_, err := Load(data)
	assert.ErrorIs(t, err, ErrUnsupportedMapper)
}

func TestLoadUnsupportedSize(t *testing.T) {
	data := makeROM(2, "GAME", 0x00, 0xAA)
	_, err := Load(data)
	assert.ErrorIs(t, err, ErrUnsupportedROMSize)
}

func TestReadBank0(t *testing.T) {
	data := makeROM(2, "GAME", 0x00, 0x00)
	data[0x0000] = 0x12
	data[0x3fff] = 0x34
	c, err := Load(data)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x12), c.ReadBank0(0x0000))
	assert.Equal(t, byte(0x34), c.ReadBank0(0x3fff))
}

func TestTitleIsTrimmedOfZeroPadding(t *testing.T) {
	data := makeROM(2, "DR.MARIO", 0x00, 0x00)
	c, err := Load(data)
	assert.NoError(t, err)
	assert.Equal(t, "DR.MARIO", c.Title)
}
