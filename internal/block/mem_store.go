package block

import "github.com/rajames440/starforth/internal/mem"

// MemBackend is an in-memory Backend over internal/mem.Ints: a sparse,
// lazily-paged integer store. Used by tests and by the test runner to avoid
// touching the filesystem, grounded on the teacher's memcore.go use of
// internal/mem for VM memory, here repurposed as the block address space
// (one int cell per byte -- blocks are small and this is a reference/test
// backend, not the production FileBackend).
type MemBackend struct {
	ints mem.Ints
}

// NewMemBackend returns an empty in-memory backend; every block reads as
// all-zero until first written.
func NewMemBackend() *MemBackend {
	mb := &MemBackend{}
	mb.ints.PageSize = Size
	return mb
}

func (mb *MemBackend) ReadBlock(n int, buf []byte) error {
	base := uint(n-1) * uint(Size)
	ivals := make([]int, len(buf))
	if err := mb.ints.LoadInto(base, ivals); err != nil {
		return err
	}
	for i, v := range ivals {
		buf[i] = byte(v)
	}
	return nil
}

func (mb *MemBackend) WriteBlock(n int, buf []byte) error {
	base := uint(n-1) * uint(Size)
	ivals := make([]int, len(buf))
	for i, b := range buf {
		ivals[i] = int(b)
	}
	return mb.ints.Stor(base, ivals...)
}
