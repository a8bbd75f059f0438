package mem

// Ram is a contiguous, read-write byte-array region accepting exactly
// [offset, offset+len(space)).
type Ram struct {
	offset uint16
	space  []byte
}

// NewRam allocates a zeroed Ram region of size bytes starting at offset.
func NewRam(offset, size uint16) *Ram {
	return &Ram{offset: offset, space: make([]byte, size)}
}

// NewRamMirror returns a Ram region at offset that aliases the first size
// bytes of backing's underlying storage, for mirrored ranges such as the
// Game Boy's echo RAM (0xE000-0xFDFF mirroring most of work RAM). Writes
// through either region are visible through the other.
func NewRamMirror(offset uint16, backing *Ram, size uint16) *Ram {
	return &Ram{offset: offset, space: backing.space[:size]}
}

func (r *Ram) Accepts(addr uint16) bool {
	return addr >= r.offset && addr < r.offset+uint16(len(r.space))
}

func (r *Ram) index(addr uint16) int {
	if !r.Accepts(addr) {
		panic(&OutOfBoundsRegionError{Offset: r.offset, Size: uint16(len(r.space)), Addr: addr})
	}
	return int(addr - r.offset)
}

func (r *Ram) GetByte(addr uint16) byte {
	return r.space[r.index(addr)]
}

func (r *Ram) SetByte(addr uint16, value byte) {
	r.space[r.index(addr)] = value
}
