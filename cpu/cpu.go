// Package cpu implements the core of a Game Boy (DMG) CPU emulator: the
// Sharp LR35902 register file, its primary and CB-prefixed opcode
// dispatch tables, and the fetch-decode-execute loop that drives them
// against a pluggable mem.AddressSpace.
package cpu

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmgcore/gbcpu/mem"
)

// CPU holds all programmer-visible Sharp LR35902 state plus the
// bookkeeping the execution loop needs: the owned address space, the
// interrupt-master-enable and halted flags (mutated only by EI/DI/HALT/
// RETI), and the remaining-cycle counter that lets Tick fetch a new
// instruction only when the previous one has finished "running".
type CPU struct {
	Reg             Registers
	mmu             mem.AddressSpace
	IME             bool
	IsHalted        bool
	remainingCycles uint8
	logger          *slog.Logger
}

// Option configures a CPU at construction time.
type Option func(*CPU)

// WithLogger routes the CPU's diagnostics through logger instead of
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *CPU) { c.logger = logger }
}

// New constructs a CPU in its power-on state, owning space for the
// lifetime of execution.
func New(space mem.AddressSpace, opts ...Option) *CPU {
	c := &CPU{
		Reg:      NewRegisters(),
		mmu:      space,
		IME:      true,
		IsHalted: false,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// readU8 fetches the byte at PC and advances PC past it.
func (c *CPU) readU8() byte {
	b := c.mmu.GetByte(c.Reg.PC)
	c.Reg.IncrPC()
	return b
}

// readU16 fetches a little-endian word at PC and advances PC past both
// bytes.
func (c *CPU) readU16() uint16 {
	lo := c.readU8()
	hi := c.readU8()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) chargeCycles(n uint8) {
	c.remainingCycles += n
}

// RemainingCycles reports the current remaining-cycle counter, exposed
// for tests and the interactive debugger.
func (c *CPU) RemainingCycles() uint8 { return c.remainingCycles }

// Tick advances the CPU by one machine cycle: if an instruction is still
// "in flight" (remainingCycles > 0), it merely counts down. Otherwise it
// fetches, decodes, and executes the next primary opcode, charging its
// cycle cost. While IsHalted is set, Tick fetches nothing; the host clears
// the flag to resume. Faults raised during decode or execution (unmapped
// opcode, illegal write, out-of-bounds region access) are recovered here
// and returned as a typed error, logged with the PC of the faulting
// instruction; Tick never leaves a panic unrecovered.
func (c *CPU) Tick() (err error) {
	if c.remainingCycles > 0 {
		c.remainingCycles--
		return nil
	}
	if c.IsHalted {
		return nil
	}

	pc := c.Reg.PC
	defer func() {
		if r := recover(); r != nil {
			if asErr, ok := r.(error); ok {
				err = asErr
			} else {
				err = fmt.Errorf("cpu: fault during tick: %v", r)
			}
			c.logger.Error("cpu fault", "error", err, "pc", pc)
		}
	}()

	opcode := c.readU8()
	entry := primaryTable[opcode]
	if entry.Exec == nil {
		err := &UnmappedOpcodeError{PC: pc, Opcode: opcode}
		c.logger.Error("cpu fault", "error", err, "pc", pc)
		return err
	}
	entry.Exec(c)
	return nil
}

// Run calls Tick in a loop, pacing between iterations with clock, until
// ctx is done or Tick faults.
func (c *CPU) Run(ctx context.Context, clock *Clock) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := c.Tick(); err != nil {
			return err
		}
		if clock != nil {
			clock.Wait()
		}
	}
}
