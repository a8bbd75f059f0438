package mem

import "log/slog"

// Composite is the central address-space dispatcher: an ordered list of
// regions plus a Void fallback. It searches children in insertion order
// and delegates to the first one whose Accepts returns true. Overlapping
// regions are resolved in favor of whichever was added first.
type Composite struct {
	spaces []AddressSpace
	void   AddressSpace
}

// NewComposite constructs an empty Composite whose fallback Void logs
// through logger.
func NewComposite(logger *slog.Logger) *Composite {
	return &Composite{void: NewVoid(logger)}
}

// Add registers space, giving it priority over every region added after
// it.
func (c *Composite) Add(space AddressSpace) {
	c.spaces = append(c.spaces, space)
}

func (c *Composite) space(addr uint16) AddressSpace {
	for _, s := range c.spaces {
		if s.Accepts(addr) {
			return s
		}
	}
	return c.void
}

// Accepts is always true: a Composite answers for the entire address bus,
// falling back to its Void sink.
func (c *Composite) Accepts(uint16) bool { return true }

func (c *Composite) GetByte(addr uint16) byte {
	return c.space(addr).GetByte(addr)
}

func (c *Composite) SetByte(addr uint16, value byte) {
	c.space(addr).SetByte(addr, value)
}
