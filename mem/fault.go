package mem

import "fmt"

// OutOfBoundsRegionError reports an access to a Ram or Rom region at an
// address outside the range it was constructed to accept. This indicates a
// programmer error in whatever composed the address space: a region should
// never be asked to serve an address its own Accepts rejects.
type OutOfBoundsRegionError struct {
	Offset, Size uint16
	Addr         uint16
}

func (e *OutOfBoundsRegionError) Error() string {
	return fmt.Sprintf("mem: address 0x%04X out of bounds for region [0x%04X, 0x%04X)", e.Addr, e.Offset, e.Offset+e.Size)
}

// IllegalWriteError reports an attempted write to a read-only region (a
// Rom) or to an immediate operand target.
type IllegalWriteError struct {
	Addr uint16
}

func (e *IllegalWriteError) Error() string {
	return fmt.Sprintf("mem: illegal write to read-only address 0x%04X", e.Addr)
}
