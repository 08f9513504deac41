package vm

import "encoding/binary"

// Memory is the VM's flat linear byte buffer: spec.md §3's "contiguous byte
// buffer of VM_MEMORY_SIZE bytes". It grows in chunks the way the teacher's
// vm.grow (internals.go) grows vm.mem, but is capped at a configured size --
// StarForth's memory is fixed-size, unlike gothird's open-ended vm.mem.
type Memory struct {
	buf   []byte
	limit int
}

const memGrowChunk = 4096

// NewMemory returns a Memory capped at size bytes.
func NewMemory(size int) *Memory {
	return &Memory{limit: size}
}

// Size reports the configured capacity (VM_MEMORY_SIZE).
func (m *Memory) Size() int { return m.limit }

func (m *Memory) grow(need int) error {
	if need > m.limit {
		return ErrOutOfBounds
	}
	if need <= len(m.buf) {
		return nil
	}
	size := (need + memGrowChunk - 1) / memGrowChunk * memGrowChunk
	if size > m.limit {
		size = m.limit
	}
	grown := make([]byte, size)
	copy(grown, m.buf)
	m.buf = grown
	return nil
}

func aligned(addr int) bool { return addr%CellSize == 0 }

// FetchCell reads one cell from addr. addr must be cell-aligned.
func (m *Memory) FetchCell(addr int) (Cell, error) {
	if !aligned(addr) {
		return 0, ErrMisaligned
	}
	if addr < 0 || addr+CellSize > m.limit {
		return 0, ErrOutOfBounds
	}
	if addr+CellSize > len(m.buf) {
		return 0, nil
	}
	return decodeCell(m.buf[addr : addr+CellSize]), nil
}

// StoreCell writes one cell at addr. addr must be cell-aligned.
func (m *Memory) StoreCell(addr int, val Cell) error {
	if !aligned(addr) {
		return ErrMisaligned
	}
	if addr < 0 || addr+CellSize > m.limit {
		return ErrOutOfBounds
	}
	if err := m.grow(addr + CellSize); err != nil {
		return err
	}
	encodeCell(m.buf[addr:addr+CellSize], val)
	return nil
}

// FetchByte reads one byte from addr; no alignment constraint.
func (m *Memory) FetchByte(addr int) (byte, error) {
	if addr < 0 || addr >= m.limit {
		return 0, ErrOutOfBounds
	}
	if addr >= len(m.buf) {
		return 0, nil
	}
	return m.buf[addr], nil
}

// StoreByte writes the low 8 bits of val at addr, bit-preserving even for
// negative inputs, per spec.md §4.2 ("C! truncates the low 8 bits, even of
// negative inputs").
func (m *Memory) StoreByte(addr int, val byte) error {
	if addr < 0 || addr >= m.limit {
		return ErrOutOfBounds
	}
	if err := m.grow(addr + 1); err != nil {
		return err
	}
	m.buf[addr] = val
	return nil
}

// FetchDouble reads two cells (low cell first, per spec.md's Double
// convention) starting at addr.
func (m *Memory) FetchDouble(addr int) (lo, hi Cell, err error) {
	if lo, err = m.FetchCell(addr); err != nil {
		return 0, 0, err
	}
	if hi, err = m.FetchCell(addr + CellSize); err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

// StoreDouble writes two cells (low cell first) starting at addr.
func (m *Memory) StoreDouble(addr int, lo, hi Cell) error {
	if err := m.StoreCell(addr, lo); err != nil {
		return err
	}
	return m.StoreCell(addr+CellSize, hi)
}

// LoadBytes copies a run of raw bytes out of memory, for block LIST/LOAD and
// string words; out-of-range reads yield zero bytes rather than an error,
// matching the teacher's Ints.LoadInto zero-fill-on-unallocated semantics.
func (m *Memory) LoadBytes(addr int, buf []byte) {
	for i := range buf {
		b, err := m.FetchByte(addr + i)
		if err != nil {
			b = 0
		}
		buf[i] = b
	}
}

// StoreBytes writes a run of raw bytes into memory, growing as needed.
func (m *Memory) StoreBytes(addr int, data []byte) error {
	if addr < 0 || addr+len(data) > m.limit {
		return ErrOutOfBounds
	}
	if err := m.grow(addr + len(data)); err != nil {
		return err
	}
	copy(m.buf[addr:], data)
	return nil
}

func decodeCell(b []byte) Cell {
	switch CellSize {
	case 8:
		return Cell(int64(binary.LittleEndian.Uint64(b)))
	default:
		return Cell(int32(binary.LittleEndian.Uint32(b)))
	}
}

func encodeCell(b []byte, v Cell) {
	switch CellSize {
	case 8:
		binary.LittleEndian.PutUint64(b, uint64(int64(v)))
	default:
		binary.LittleEndian.PutUint32(b, uint32(int32(v)))
	}
}
