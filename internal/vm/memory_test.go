package vm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajames440/starforth/internal/vm"
)

func TestMemory_StoreFetchCell(t *testing.T) {
	m := vm.NewMemory(1024)
	require.NoError(t, m.StoreCell(0, 42))
	v, err := m.FetchCell(0)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(42), v)
}

func TestMemory_NegativeCellRoundTrips(t *testing.T) {
	m := vm.NewMemory(1024)
	require.NoError(t, m.StoreCell(vm.CellSize, -7))
	v, err := m.FetchCell(vm.CellSize)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(-7), v)
}

func TestMemory_MisalignedAccessFaults(t *testing.T) {
	m := vm.NewMemory(1024)
	_, err := m.FetchCell(1)
	assert.ErrorIs(t, err, vm.ErrMisaligned)
}

func TestMemory_OutOfBoundsFaults(t *testing.T) {
	m := vm.NewMemory(16)
	err := m.StoreCell(1024, 1)
	assert.ErrorIs(t, err, vm.ErrOutOfBounds)
}

func TestMemory_StoreByteTruncatesBitPreserving(t *testing.T) {
	m := vm.NewMemory(1024)
	require.NoError(t, m.StoreByte(0, byte(int8(-1))))
	b, err := m.FetchByte(0)
	require.NoError(t, err)
	assert.Equal(t, byte(0xFF), b)
}

func TestMemory_UnallocatedReadsAreZero(t *testing.T) {
	m := vm.NewMemory(4096)
	v, err := m.FetchCell(2048)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(0), v)
}

func TestMemory_DoubleLowCellFirst(t *testing.T) {
	m := vm.NewMemory(1024)
	require.NoError(t, m.StoreDouble(0, 1, 2))
	lo, hi, err := m.FetchDouble(0)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(1), lo)
	assert.Equal(t, vm.Cell(2), hi)
}

func TestMemory_BytesRoundTrip(t *testing.T) {
	m := vm.NewMemory(1024)
	require.NoError(t, m.StoreBytes(10, []byte("hello")))
	buf := make([]byte, 5)
	m.LoadBytes(10, buf)
	assert.Equal(t, "hello", string(buf))
}
