package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajames440/starforth/internal/interp"
	"github.com/rajames440/starforth/internal/vm"
)

func newTestInterp(t *testing.T, source string) (*interp.Interp, *vm.VM) {
	t.Helper()
	v := vm.New(vm.WithMemorySize(4096), vm.WithStackSize(32))
	scanner := interp.NewScanner()
	scanner.AddString("t", source)
	it := interp.New(v, scanner)
	return it, v
}

func TestInterpret_PushesNumericLiterals(t *testing.T) {
	it, v := newTestInterp(t, "1 2 3")
	it.Interpret()
	require.Equal(t, vm.ErrNone, v.Error)
	assert.Equal(t, []vm.Cell{1, 2, 3}, v.Data.All())
}

func TestInterpret_ExecutesKnownWordImmediatelyInInterpretMode(t *testing.T) {
	it, v := newTestInterp(t, "BANG")
	rang := false
	h := v.Dict.Create("BANG", v.Here)
	e := v.Dict.Entry(h)
	e.Kind = vm.KindPrimitive
	e.Prim = func(vm *vm.VM) { rang = true }

	it.Interpret()
	assert.True(t, rang)
	assert.Equal(t, vm.ErrNone, v.Error)
}

func TestInterpret_UnknownWordFaultsAndResetsAfterReport(t *testing.T) {
	it, v := newTestInterp(t, "BOGUS 5")
	it.Interpret()
	// BOGUS faults, the rest of that line (the trailing "5") is discarded,
	// and the fault is cleared after being reported so the loop can
	// continue -- there is nothing left to continue to here, but the error
	// must not still be latched.
	assert.Equal(t, vm.ErrNone, v.Error)
	assert.Equal(t, 0, v.Data.Depth())
}

func TestInterpret_CompileModeCompilesLiterals(t *testing.T) {
	it, v := newTestInterp(t, "42")
	v.Mode = vm.ModeCompile
	startHere := v.Here

	it.Interpret()

	assert.Equal(t, vm.ErrNone, v.Error)
	assert.Greater(t, v.Here, startHere)
	cell, err := v.Mem.FetchCell(startHere)
	require.NoError(t, err)
	assert.Equal(t, vm.OpLiteral, cell)
}

func TestInterpret_ImmediateWordRunsEvenInCompileMode(t *testing.T) {
	it, v := newTestInterp(t, "GO")
	ran := false
	h := v.Dict.Create("GO", v.Here)
	e := v.Dict.Entry(h)
	e.Kind = vm.KindPrimitive
	e.Flags |= vm.FlagImmediate
	e.Prim = func(vm *vm.VM) { ran = true }

	v.Mode = vm.ModeCompile
	it.Interpret()
	assert.True(t, ran)
}

func TestInterpret_DoubleLiteralPushesLowThenHigh(t *testing.T) {
	it, v := newTestInterp(t, "5.")
	it.Interpret()
	require.Equal(t, vm.ErrNone, v.Error)
	assert.Equal(t, []vm.Cell{5, 0}, v.Data.All())
}
