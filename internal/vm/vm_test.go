package vm_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajames440/starforth/internal/vm"
)

func TestNew_Defaults(t *testing.T) {
	v := vm.New()
	assert.Equal(t, vm.ModeInterpret, v.Mode)
	assert.Equal(t, 10, v.Base)
	assert.Equal(t, vm.ErrNone, v.Error)
	assert.NotNil(t, v.Forth)
	assert.Same(t, v.Forth, v.Context)
	assert.Same(t, v.Forth, v.Current)
}

func TestNew_WithOptions(t *testing.T) {
	v := vm.New(vm.WithMemorySize(2048), vm.WithStackSize(8))
	assert.Equal(t, 2048, v.Mem.Size())
	assert.Equal(t, 8, v.Data.Cap())
	assert.Equal(t, 8, v.Return.Cap())
}

func TestVM_FaultRecordsErrorCode(t *testing.T) {
	v := vm.New()
	v.Fault(vm.ErrStackUnderflow)
	assert.Equal(t, vm.ErrStackUnderflow, v.Error)
}

func TestVM_FaultUnwrapsWrappedError(t *testing.T) {
	v := vm.New()
	v.Fault(vm.Faultf(vm.ErrInvalidBlock, "block %d", 99))
	assert.Equal(t, vm.ErrInvalidBlock, v.Error)
}

func TestVM_FaultDefaultsToCompilerErrorForUnknownErrors(t *testing.T) {
	v := vm.New()
	v.Fault(assert.AnError)
	assert.Equal(t, vm.ErrCompilerError, v.Error)
}

func TestVM_FaultNilIsNoop(t *testing.T) {
	v := vm.New()
	v.Error = vm.ErrStackOverflow
	v.Fault(nil)
	assert.Equal(t, vm.ErrStackOverflow, v.Error)
}

func TestVM_AbortClearsStacksAndState(t *testing.T) {
	v := vm.New()
	require.NoError(t, v.Data.Push(1, vm.ErrStackOverflow))
	require.NoError(t, v.Return.Push(2, vm.ErrStackOverflow))
	v.Mode = vm.ModeCompile
	v.Error = vm.ErrCompilerError

	v.Abort()

	assert.Equal(t, 0, v.Data.Depth())
	assert.Equal(t, 0, v.Return.Depth())
	assert.Equal(t, vm.ModeInterpret, v.Mode)
	assert.Equal(t, vm.ErrNone, v.Error)
}

func TestVM_ExecuteWithoutExecuteFnFaults(t *testing.T) {
	v := vm.New()
	v.Execute(1)
	assert.Equal(t, vm.ErrWordNotFound, v.Error)
}

func TestVM_ExecuteZeroHandleFaults(t *testing.T) {
	v := vm.New()
	v.ExecuteFn = func(vm *vm.VM, h int) { t.Fatal("must not be called for handle 0") }
	v.Execute(0)
	assert.Equal(t, vm.ErrWordNotFound, v.Error)
}

func TestVM_HoldBuildsRightToLeft(t *testing.T) {
	v := vm.New()
	v.ResetHold()
	v.Hold('3')
	v.Hold('2')
	v.Hold('1')
	assert.Equal(t, "123", string(v.HoldString()))
}

func TestVM_HoldOverflowFaults(t *testing.T) {
	v := vm.New()
	v.ResetHold()
	for i := 0; i < vm.HoldBufferSize; i++ {
		v.Hold('9')
	}
	assert.Equal(t, vm.ErrNone, v.Error)
	v.Hold('9')
	assert.Equal(t, vm.ErrNumericOverflow, v.Error)
}

func TestVM_WriteGoesThroughOutput(t *testing.T) {
	var buf bytes.Buffer
	v := vm.New(vm.WithOutput(&buf))
	n, err := v.Write([]byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NoError(t, v.Flush())
	assert.Equal(t, "hi", buf.String())
}

func TestVM_WithTeeWritesBothSinks(t *testing.T) {
	var a, b bytes.Buffer
	v := vm.New(vm.WithOutput(&a), vm.WithTee(&b))
	_, err := v.Write([]byte("x"))
	require.NoError(t, err)
	require.NoError(t, v.Flush())
	assert.Equal(t, "x", a.String())
	assert.Equal(t, "x", b.String())
}
