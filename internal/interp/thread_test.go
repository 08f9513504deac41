package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajames440/starforth/internal/interp"
	"github.com/rajames440/starforth/internal/vm"
)

func newTestVM(t *testing.T) *vm.VM {
	t.Helper()
	v := vm.New(vm.WithMemorySize(4096), vm.WithStackSize(32))
	interp.Install(v)
	return v
}

func definePrimitive(v *vm.VM, name string, fn vm.PrimitiveFunc) int {
	h := v.Dict.Create(name, v.Here)
	e := v.Dict.Entry(h)
	e.Kind = vm.KindPrimitive
	e.Prim = fn
	return h
}

func TestExecute_PrimitiveRunsDirectly(t *testing.T) {
	v := newTestVM(t)
	ran := false
	h := definePrimitive(v, "MARK", func(vm *vm.VM) { ran = true })
	v.Execute(h)
	assert.True(t, ran)
	assert.Equal(t, vm.ErrNone, v.Error)
}

func TestExecute_ConstantPushesValue(t *testing.T) {
	v := newTestVM(t)
	h := v.Dict.Create("FORTY-TWO", v.Here)
	e := v.Dict.Entry(h)
	e.Kind = vm.KindConstant
	e.Value = 42

	v.Execute(h)
	top, err := v.Data.Pop(vm.ErrStackUnderflow)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(42), top)
}

func TestExecute_VariablePushesPFA(t *testing.T) {
	v := newTestVM(t)
	pfa := v.Here
	h := v.Dict.Create("MYVAR", v.Here)
	e := v.Dict.Entry(h)
	e.Kind = vm.KindVariable
	e.PFA = pfa

	v.Execute(h)
	top, err := v.Data.Pop(vm.ErrStackUnderflow)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(pfa), top)
}

// TestExecute_ColonThreadRunsLiteralsAndExits builds, by hand, a colon
// definition equivalent to ": DOUBLE-ONE 1 1 ;" and checks it pushes two
// cells then returns.
func TestExecute_ColonThreadRunsLiteralsAndExits(t *testing.T) {
	v := newTestVM(t)
	pfa := v.Here
	v.CompileLiteral(1)
	v.CompileLiteral(1)
	v.Compile(vm.OpExit)

	h := v.Dict.Create("DOUBLE-ONE", v.Here)
	e := v.Dict.Entry(h)
	e.Kind = vm.KindColon
	e.PFA = pfa

	v.Execute(h)
	require.Equal(t, vm.ErrNone, v.Error)
	assert.Equal(t, []vm.Cell{1, 1}, v.Data.All())
	assert.Equal(t, 0, v.Return.Depth())
}

// TestExecute_ColonCallsAnotherColon exercises nested colon calls through
// the return stack: OUTER calls INNER, which pushes 9 and exits.
func TestExecute_ColonCallsAnotherColon(t *testing.T) {
	v := newTestVM(t)

	innerPFA := v.Here
	v.CompileLiteral(9)
	v.Compile(vm.OpExit)
	innerH := v.Dict.Create("INNER", v.Here)
	innerE := v.Dict.Entry(innerH)
	innerE.Kind = vm.KindColon
	innerE.PFA = innerPFA

	outerPFA := v.Here
	v.CompileCall(innerH)
	v.Compile(vm.OpExit)
	outerH := v.Dict.Create("OUTER", v.Here)
	outerE := v.Dict.Entry(outerH)
	outerE.Kind = vm.KindColon
	outerE.PFA = outerPFA

	v.Execute(outerH)
	require.Equal(t, vm.ErrNone, v.Error)
	assert.Equal(t, []vm.Cell{9}, v.Data.All())
}

// TestExecute_Branch0SkipsOverLiteralWhenTOSZero builds the equivalent of
// "0 IF 111 THEN 222" and checks only 222 is pushed.
func TestExecute_Branch0SkipsOverLiteralWhenTOSZero(t *testing.T) {
	v := newTestVM(t)
	pfa := v.Here
	v.CompileLiteral(0)
	patch := v.CompileBranch0()
	v.CompileLiteral(111)
	v.PatchBranchHere(patch)
	v.CompileLiteral(222)
	v.Compile(vm.OpExit)

	h := v.Dict.Create("COND", v.Here)
	e := v.Dict.Entry(h)
	e.Kind = vm.KindColon
	e.PFA = pfa

	v.Execute(h)
	require.Equal(t, vm.ErrNone, v.Error)
	assert.Equal(t, []vm.Cell{222}, v.Data.All())
}

func TestExecute_DoesWordPushesPFAThenRunsDoesCode(t *testing.T) {
	v := newTestVM(t)

	doesPFA := v.Here
	v.Compile(vm.OpExit) // DOES> body: just return, leaving PFA on stack

	createdPFA := v.Here
	v.CompileLiteral(77) // parameter field contents, irrelevant to the test

	h := v.Dict.Create("THING", v.Here)
	e := v.Dict.Entry(h)
	e.Kind = vm.KindDoes
	e.PFA = createdPFA
	e.DoesPFA = doesPFA

	v.Execute(h)
	require.Equal(t, vm.ErrNone, v.Error)
	top, err := v.Data.Pop(vm.ErrStackUnderflow)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(createdPFA), top)
}

func TestExecute_UnknownWordFaults(t *testing.T) {
	v := newTestVM(t)
	v.Execute(9999)
	assert.Equal(t, vm.ErrWordNotFound, v.Error)
}
