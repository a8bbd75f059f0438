package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRamAcceptsRange(t *testing.T) {
	r := NewRam(0x10, 0x04)
	assert.False(t, r.Accepts(0x0F))
	assert.True(t, r.Accepts(0x10))
	assert.True(t, r.Accepts(0x13))
	assert.False(t, r.Accepts(0x14))
}

func TestRamReadWriteRoundTrip(t *testing.T) {
	r := NewRam(0x00, 0x10)
	r.SetByte(0x05, 0x42)
	assert.Equal(t, byte(0x42), r.GetByte(0x05))
}

func TestRamOutOfBoundsPanics(t *testing.T) {
	r := NewRam(0x10, 0x04)
	assert.Panics(t, func() { r.GetByte(0x00) })
	assert.Panics(t, func() { r.SetByte(0x20, 1) })
}

func TestRamMirrorSharesBackingStorage(t *testing.T) {
	backing := NewRam(0xC000, 0x2000)
	mirror := NewRamMirror(0xE000, backing, 0x1E00)

	backing.SetByte(0xC010, 0x99)
	assert.Equal(t, byte(0x99), mirror.GetByte(0xE010))

	mirror.SetByte(0xE020, 0x55)
	assert.Equal(t, byte(0x55), backing.GetByte(0xC020))
}

func TestRomRejectsWrites(t *testing.T) {
	r := NewRom(0x00, []byte{0xAA, 0xBB})
	assert.Equal(t, byte(0xAA), r.GetByte(0x00))
	assert.PanicsWithValue(t, &IllegalWriteError{Addr: 0x00}, func() { r.SetByte(0x00, 0xFF) })
}

func TestVoidReadsZeroAndSwallowsWrites(t *testing.T) {
	v := NewVoid(nil)
	assert.Equal(t, byte(0x00), v.GetByte(0x9999))
	assert.NotPanics(t, func() { v.SetByte(0x9999, 0xFF) })
}

func TestCompositeFallsBackToVoidWhenUnmapped(t *testing.T) {
	c := NewComposite(nil)
	assert.Equal(t, byte(0x00), c.GetByte(0x1234))
	c.SetByte(0x1234, 0xFF) // dropped silently
}

func TestCompositeDispatchesToAcceptingChild(t *testing.T) {
	c := NewComposite(nil)
	ram := NewRam(0xC000, 0x2000)
	c.Add(ram)
	c.SetByte(0xC010, 0x7F)
	assert.Equal(t, byte(0x7F), c.GetByte(0xC010))
	assert.Equal(t, byte(0x00), c.GetByte(0x0000))
}

func TestCompositeEarlierInsertionWins(t *testing.T) {
	c := NewComposite(nil)
	first := NewRam(0x0000, 0x0100)
	second := NewRam(0x0000, 0x0100)
	first.SetByte(0x0010, 0x01)
	second.SetByte(0x0010, 0x02)
	c.Add(first)
	c.Add(second)
	assert.Equal(t, byte(0x01), c.GetByte(0x0010))
}
