package vm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajames440/starforth/internal/vm"
)

func TestStack_PushPop(t *testing.T) {
	s := vm.NewStack(4)
	require.NoError(t, s.Push(1, vm.ErrStackOverflow))
	require.NoError(t, s.Push(2, vm.ErrStackOverflow))
	assert.Equal(t, 2, s.Depth())

	v, err := s.Pop(vm.ErrStackUnderflow)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(2), v)
	assert.Equal(t, 1, s.Depth())
}

func TestStack_Underflow(t *testing.T) {
	s := vm.NewStack(4)
	_, err := s.Pop(vm.ErrStackUnderflow)
	require.Error(t, err)
	assert.ErrorIs(t, err, vm.ErrStackUnderflow)
}

func TestStack_Overflow(t *testing.T) {
	s := vm.NewStack(2)
	require.NoError(t, s.Push(1, vm.ErrStackOverflow))
	require.NoError(t, s.Push(2, vm.ErrStackOverflow))
	err := s.Push(3, vm.ErrStackOverflow)
	require.Error(t, err)
	assert.ErrorIs(t, err, vm.ErrStackOverflow)
}

func TestStack_PeekPoke(t *testing.T) {
	s := vm.NewStack(4)
	require.NoError(t, s.Push(10, vm.ErrStackOverflow))
	require.NoError(t, s.Push(20, vm.ErrStackOverflow))

	v, err := s.Peek(0, vm.ErrStackUnderflow)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(20), v)

	require.NoError(t, s.Poke(0, 99, vm.ErrStackUnderflow))
	v, err = s.Peek(0, vm.ErrStackUnderflow)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(99), v)
}

func TestStack_Roll(t *testing.T) {
	s := vm.NewStack(8)
	for _, c := range []vm.Cell{1, 2, 3, 4} {
		require.NoError(t, s.Push(c, vm.ErrStackOverflow))
	}
	// 3 ROLL moves the 4th-from-top item to the top: 1 2 3 4 -> 2 3 4 1
	require.NoError(t, s.Roll(3, vm.ErrStackUnderflow))
	assert.Equal(t, []vm.Cell{2, 3, 4, 1}, s.All())
}

func TestStack_Clear(t *testing.T) {
	s := vm.NewStack(4)
	require.NoError(t, s.Push(1, vm.ErrStackOverflow))
	s.Clear()
	assert.Equal(t, 0, s.Depth())
}
