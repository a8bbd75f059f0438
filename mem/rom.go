package mem

// Rom is a contiguous, read-only byte-array region. Reads behave like Ram;
// writes always fault.
type Rom struct {
	offset uint16
	space  []byte
}

// NewRom wraps data as a read-only region starting at offset. data is used
// directly, not copied.
func NewRom(offset uint16, data []byte) *Rom {
	return &Rom{offset: offset, space: data}
}

func (r *Rom) Accepts(addr uint16) bool {
	return addr >= r.offset && addr < r.offset+uint16(len(r.space))
}

func (r *Rom) GetByte(addr uint16) byte {
	if !r.Accepts(addr) {
		panic(&OutOfBoundsRegionError{Offset: r.offset, Size: uint16(len(r.space)), Addr: addr})
	}
	return r.space[addr-r.offset]
}

func (r *Rom) SetByte(addr uint16, _ byte) {
	if !r.Accepts(addr) {
		panic(&OutOfBoundsRegionError{Offset: r.offset, Size: uint16(len(r.space)), Addr: addr})
	}
	panic(&IllegalWriteError{Addr: addr})
}
