package cpu

import "github.com/dmgcore/gbcpu/mask"

// Flag bit positions within F, counted from the LSB (bit 0), matching the
// Sharp LR35902's documented flag layout.
const (
	flagZ byte = 7
	flagN byte = 6
	flagH byte = 5
	flagC byte = 4
)

// Registers is the Sharp LR35902 register file: plain byte fields for the
// 8-bit halves and plain uint16 fields for PC/SP. A packed bit-field
// representation was considered and rejected as unnecessary; the only
// place the AF/F aliasing rule (F's low nibble always reads zero) must be
// enforced is SetF/SetAF, below.
type Registers struct {
	A, B, C, D, E, H, L byte
	F                   byte
	PC, SP              uint16
}

// NewRegisters returns a register file in its power-on state.
func NewRegisters() Registers {
	return Registers{
		A: 0x01, F: 0xB0,
		B: 0x00, C: 0x13,
		D: 0x00, E: 0xD8,
		H: 0x01, L: 0x4D,
		PC: 0x0000, SP: 0xFFFE,
	}
}

// SetF writes f, forcing the low nibble to zero.
func (r *Registers) SetF(f byte) {
	r.F = mask.Unset(f, mask.FromLSB(3), mask.FromLSB(0))
}

func (r *Registers) AF() uint16 { return uint16(r.A)<<8 | uint16(r.F) }
func (r *Registers) BC() uint16 { return uint16(r.B)<<8 | uint16(r.C) }
func (r *Registers) DE() uint16 { return uint16(r.D)<<8 | uint16(r.E) }
func (r *Registers) HL() uint16 { return uint16(r.H)<<8 | uint16(r.L) }

func (r *Registers) SetAF(v uint16) {
	r.A = byte(v >> 8)
	r.SetF(byte(v))
}

func (r *Registers) SetBC(v uint16) { r.B = byte(v >> 8); r.C = byte(v) }
func (r *Registers) SetDE(v uint16) { r.D = byte(v >> 8); r.E = byte(v) }
func (r *Registers) SetHL(v uint16) { r.H = byte(v >> 8); r.L = byte(v) }

func (r *Registers) ZFlag() bool { return mask.IsSet(r.F, mask.FromLSB(flagZ)) }
func (r *Registers) NFlag() bool { return mask.IsSet(r.F, mask.FromLSB(flagN)) }
func (r *Registers) HFlag() bool { return mask.IsSet(r.F, mask.FromLSB(flagH)) }
func (r *Registers) CFlag() bool { return mask.IsSet(r.F, mask.FromLSB(flagC)) }

func (r *Registers) setFlag(bit byte, on bool) {
	pos := mask.FromLSB(bit)
	if on {
		r.F = mask.Set(r.F, pos, 1)
	} else {
		r.F = mask.Unset(r.F, pos, pos)
	}
}

func (r *Registers) SetZFlag(on bool) { r.setFlag(flagZ, on) }
func (r *Registers) SetNFlag(on bool) { r.setFlag(flagN, on) }
func (r *Registers) SetHFlag(on bool) { r.setFlag(flagH, on) }
func (r *Registers) SetCFlag(on bool) { r.setFlag(flagC, on) }

// CFlagBit returns the carry flag as 0 or 1, the form the ADC/SBC carry
// input is consumed in.
func (r *Registers) CFlagBit() byte {
	if r.CFlag() {
		return 1
	}
	return 0
}

func (r *Registers) IncrPC() { r.PC++ }
func (r *Registers) IncrSP() { r.SP++ }
func (r *Registers) DecrSP() { r.SP-- }
func (r *Registers) IncrHL() { r.SetHL(r.HL() + 1) }
func (r *Registers) DecrHL() { r.SetHL(r.HL() - 1) }
