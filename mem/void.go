package mem

import "log/slog"

// Void is the sink every Composite falls back to when no registered region
// accepts an address. It accepts everything, reads as zero, and drops
// writes, logging both at debug level the way the reference emulator logs
// void accesses.
type Void struct {
	logger *slog.Logger
}

// NewVoid constructs a Void logging through logger. A nil logger falls
// back to slog.Default().
func NewVoid(logger *slog.Logger) *Void {
	if logger == nil {
		logger = slog.Default()
	}
	return &Void{logger: logger}
}

func (v *Void) Accepts(uint16) bool { return true }

func (v *Void) GetByte(addr uint16) byte {
	v.logger.Debug("void read", "addr", addr)
	return 0x00
}

func (v *Void) SetByte(addr uint16, value byte) {
	v.logger.Debug("void write dropped", "addr", addr, "value", value)
}
