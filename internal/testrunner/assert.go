package testrunner

import "github.com/rajames440/starforth/internal/vm"

// AssertStackDepth reports whether v's data stack holds exactly expected
// cells, per test_common.c's assert_stack_depth. Word-module authors call
// this directly against a live VM, independent of whether the calling
// context is a go test or cmd/starforth -break-me.
func AssertStackDepth(v *vm.VM, expected int) bool {
	return v.Data.Depth() == expected
}

// AssertStackTop reports whether the top of v's data stack equals expected,
// per test_common.c's assert_stack_top. Returns false on an empty stack
// rather than faulting, mirroring the original's underflow guard.
func AssertStackTop(v *vm.VM, expected vm.Cell) bool {
	top, err := v.Data.Peek(0, vm.ErrStackUnderflow)
	if err != nil {
		return false
	}
	return top == expected
}

// AssertVMError reports whether v's fault state matches shouldHaveError,
// per test_common.c's assert_vm_error.
func AssertVMError(v *vm.VM, shouldHaveError bool) bool {
	return (v.Error != vm.ErrNone) == shouldHaveError
}
