package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairReadWriteRoundTrip(t *testing.T) {
	var p Pair
	for _, v := range []uint16{0x0000, 0x1234, 0xffff, 0x00ff, 0xff00} {
		p.Write(v)
		assert.Equal(t, v, p.Read())
	}
}

func TestPairHighLow(t *testing.T) {
	var p Pair
	p.Write(0x1234)
	assert.Equal(t, byte(0x12), p.High())
	assert.Equal(t, byte(0x34), p.Low())

	p.SetHigh(0xab)
	assert.Equal(t, uint16(0xab34), p.Read())

	p.SetLow(0xcd)
	assert.Equal(t, uint16(0xabcd), p.Read())
}

func TestPairWrappingAdd(t *testing.T) {
	var p Pair
	p.Write(0xffff)
	p.WrappingAdd(1)
	assert.Equal(t, uint16(0), p.Read())

	p.Inc()
	assert.Equal(t, uint16(1), p.Read())

	p.Dec()
	p.Dec()
	assert.Equal(t, uint16(0xffff), p.Read())
}

func TestAFLowNibbleAlwaysClears(t *testing.T) {
	var af AF
	af.Write(0x12ff)
	assert.Equal(t, uint16(0x12f0), af.Read())

	af.SetF(0xff)
	assert.Equal(t, byte(0xf0), af.F())
}

func TestAFAccumulatorAlias(t *testing.T) {
	var af AF
	af.SetA(0x42)
	assert.Equal(t, byte(0x42), af.A())
	assert.Equal(t, byte(0x42), af.High())
}

func TestAFFlagBits(t *testing.T) {
	var af AF
	af.SetZ(true)
	af.SetN(false)
	af.SetH(true)
	af.SetC(false)
	assert.True(t, af.Z())
	assert.False(t, af.N())
	assert.True(t, af.H())
	assert.False(t, af.C())
	assert.Equal(t, byte(0xa0), af.F())

	af.SetC(true)
	assert.True(t, af.C())
	assert.Equal(t, byte(0xb0), af.F())
}
