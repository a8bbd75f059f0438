package cpu

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmgcore/gbcpu/mem"
)

func newTestCPU(program ...byte) *CPU {
	ram := mem.NewRam(0x0000, 0xFFFF)
	rom := mem.NewRom(0x0000, program)
	composite := mem.NewComposite(slog.Default())
	composite.Add(rom)
	composite.Add(ram)
	c := New(composite)
	c.Reg.PC = 0x0000
	return c
}

func tickUntilIdle(t *testing.T, c *CPU) {
	t.Helper()
	require.NoError(t, c.Tick())
	for c.RemainingCycles() > 0 {
		require.NoError(t, c.Tick())
	}
}

// ADC, as in Scenario A but with operands that also overflow bit 7:
// ADC A,d8 sets half-carry on a low-nibble carry and full carry on an
// overflow out of bit 7.
func TestAdcHalfCarryAndCarry(t *testing.T) {
	c := newTestCPU(0xCE, 0x01) // ADC A,0x01
	c.Reg.A = 0xFF
	c.Reg.SetCFlag(false)
	tickUntilIdle(t, c)

	assert.Equal(t, byte(0x00), c.Reg.A)
	assert.True(t, c.Reg.ZFlag())
	assert.False(t, c.Reg.NFlag())
	assert.True(t, c.Reg.HFlag())
	assert.True(t, c.Reg.CFlag())
}

// Scenario B: ADD HL,HL doubles HL and reports half-carry/carry out of
// bit 11/bit 15 respectively.
func TestAddHLHLCarries(t *testing.T) {
	c := newTestCPU(0x29) // ADD HL,HL
	c.Reg.SetHL(0x8800)
	tickUntilIdle(t, c)

	assert.Equal(t, uint16(0x1000), c.Reg.HL())
	assert.True(t, c.Reg.CFlag())
	assert.False(t, c.Reg.NFlag())
}

// Scenario C: ADD SP,r8 with a negative offset clears Z and N
// unconditionally and derives H/C from the unsigned low-byte addition.
func TestAddSPSignedOffset(t *testing.T) {
	c := newTestCPU(0xE8, 0xFF) // ADD SP,-1
	c.Reg.SP = 0x0005
	c.Reg.SetZFlag(true)
	tickUntilIdle(t, c)

	assert.Equal(t, uint16(0x0004), c.Reg.SP)
	assert.False(t, c.Reg.ZFlag())
	assert.False(t, c.Reg.NFlag())
}

// Scenario D: DAA round-trips a BCD addition, here adjusting a raw binary
// sum of 0x45+0x38 (0x7D) to the correct BCD result 0x83. The test also
// sets H, which calls for the same +0x06 adjustment that the low nibble
// 0xD already does.
func TestDaaAfterBCDAdd(t *testing.T) {
	c := newTestCPU(0x27) // DAA
	c.Reg.A = 0x7D
	c.Reg.SetNFlag(false)
	c.Reg.SetHFlag(true)
	c.Reg.SetCFlag(false)
	tickUntilIdle(t, c)

	assert.Equal(t, byte(0x83), c.Reg.A)
	assert.False(t, c.Reg.CFlag())
	assert.False(t, c.Reg.HFlag())
}

// Scenario E: CALL a16 pushes the return address' high byte at SP-1 and
// low byte at SP-2.
func TestCallPushesReturnAddress(t *testing.T) {
	c := newTestCPU(0xCD, 0x03, 0x80) // CALL 0x8003
	c.Reg.SP = 0xFFFE

	tickUntilIdle(t, c)

	assert.Equal(t, uint16(0x8003), c.Reg.PC)
	assert.Equal(t, uint16(0xFFFC), c.Reg.SP)
	assert.Equal(t, byte(0x00), c.mmu.GetByte(0xFFFD)) // high byte of 0x0003
	assert.Equal(t, byte(0x03), c.mmu.GetByte(0xFFFC)) // low byte of 0x0003
}

// Scenario F: a not-taken conditional JR still consumes its operand byte
// and charges the shorter cycle cost.
func TestJrConditionNotTaken(t *testing.T) {
	c := newTestCPU(0x20, 0x05) // JR NZ,+5
	c.Reg.SetZFlag(true)        // condition fails
	startPC := c.Reg.PC

	require.NoError(t, c.Tick())
	total := uint8(1)
	for c.RemainingCycles() > 0 {
		require.NoError(t, c.Tick())
		total++
	}

	assert.Equal(t, startPC+2, c.Reg.PC) // advanced past opcode + operand, no branch
	assert.Equal(t, uint8(9), total)    // base cost charged whole on the fetch tick: 1 + 8 drain ticks
}

// Scenario G: PUSH/POP round-trip a register pair through the stack using
// the same byte ordering as CALL/RET.
func TestPushPopRoundTrip(t *testing.T) {
	c := newTestCPU(0xC5, 0xD1) // PUSH BC ; POP DE
	c.Reg.SetBC(0x1234)
	c.Reg.SP = 0xFFFE

	tickUntilIdle(t, c)
	assert.Equal(t, uint16(0xFFFC), c.Reg.SP)

	tickUntilIdle(t, c)
	assert.Equal(t, uint16(0x1234), c.Reg.DE())
	assert.Equal(t, uint16(0xFFFE), c.Reg.SP)
}

// Scenario H: an unmapped opcode byte faults Tick with a typed error
// instead of panicking out of the package.
func TestUnmappedOpcodeFaults(t *testing.T) {
	c := newTestCPU(0xD3) // unmapped
	err := c.Tick()
	require.Error(t, err)
	var unmapped *UnmappedOpcodeError
	assert.ErrorAs(t, err, &unmapped)
	assert.Equal(t, byte(0xD3), unmapped.Opcode)
}

func TestStopFaults(t *testing.T) {
	c := newTestCPU(0x10)
	err := c.Tick()
	require.Error(t, err)
	var stop *UnimplementedSTOPError
	assert.ErrorAs(t, err, &stop)
}

func TestD8WriteTargetIsIllegal(t *testing.T) {
	c := newTestCPU(0xC6, 0x01)
	assert.PanicsWithValue(t, &mem.IllegalWriteError{Addr: c.Reg.PC}, func() {
		AT8_D8.SetValue(c, 0xFF)
	})
}

func TestIncDecHalfCarryBoundary(t *testing.T) {
	c := newTestCPU(0x3C) // INC A
	c.Reg.A = 0x0F
	tickUntilIdle(t, c)
	assert.Equal(t, byte(0x10), c.Reg.A)
	assert.True(t, c.Reg.HFlag())
	assert.False(t, c.Reg.ZFlag())
}

func TestHaltSetsIsHalted(t *testing.T) {
	c := newTestCPU(0x76) // HALT
	tickUntilIdle(t, c)
	assert.True(t, c.IsHalted)
}

func TestEiDiToggleIME(t *testing.T) {
	c := newTestCPU(0xF3, 0xFB) // DI ; EI
	tickUntilIdle(t, c)
	assert.False(t, c.IME)
	tickUntilIdle(t, c)
	assert.True(t, c.IME)
}

func TestCBBitResSet(t *testing.T) {
	c := newTestCPU(0xCB, 0x47, 0xCB, 0x87, 0xCB, 0xC7) // BIT 0,A ; RES 0,A ; SET 0,A
	c.Reg.A = 0x01

	tickUntilIdle(t, c)
	assert.False(t, c.Reg.ZFlag())
	assert.True(t, c.Reg.HFlag())

	tickUntilIdle(t, c)
	assert.Equal(t, byte(0x00), c.Reg.A)

	tickUntilIdle(t, c)
	assert.Equal(t, byte(0x01), c.Reg.A)
}

func TestRstPushesReturnAddressAndJumps(t *testing.T) {
	c := newTestCPU()
	c.mmu.SetByte(0x0150, 0xC7) // RST 00H
	c.Reg.PC = 0x0150
	c.Reg.SP = 0xFFFE

	tickUntilIdle(t, c)
	assert.Equal(t, uint16(0x0000), c.Reg.PC)
	assert.Equal(t, uint16(0xFFFC), c.Reg.SP)
}
