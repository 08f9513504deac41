package testrunner

import "github.com/rajames440/starforth/internal/vm"

// VMState is a point-in-time snapshot of the VM's interpreter state, per
// test_common.c's save_vm_state.
type VMState struct {
	DataDepth   int
	ReturnDepth int
	Error       vm.Error
	LastFault   vm.Error
	Mode        vm.Mode
}

// SnapshotVMState captures v's current interpreter state for diagnostics;
// it is not fed back into RestoreVMState, which always clears unconditionally
// (see RestoreVMState).
func SnapshotVMState(v *vm.VM) VMState {
	return VMState{
		DataDepth:   v.Data.Depth(),
		ReturnDepth: v.Return.Depth(),
		Error:       v.Error,
		LastFault:   v.LastFault,
		Mode:        v.Mode,
	}
}

// RestoreVMState resets v to a clean interpreter state between test cases.
// It deliberately ignores the saved VMState and always clears both stacks
// and every control-flow flag, per test_common.c's restore_vm_state comment:
// "aggressively clear both stacks to prevent any stale state from affecting
// subsequent tests ... safer than trying to selectively clear ranges."
func RestoreVMState(v *vm.VM, _ VMState) {
	v.Abort()
	v.CurrentExecuting = 0
	v.LastFault = vm.ErrNone
}

// DictState is a point-in-time snapshot of the dictionary arena boundary,
// per test_common.c's save_dict_state.
type DictState struct {
	Latest int
	Here   int
}

// SnapshotDictState captures v's dictionary boundary before a test suite
// runs, so any words the suite defines can be unwound afterward.
func SnapshotDictState(v *vm.VM) DictState {
	latest, here := v.Dict.Snapshot(v.Here)
	return DictState{Latest: latest, Here: here}
}

// RestoreDictState rewinds v's dictionary and HERE pointer to a prior
// snapshot, discarding (but not reclaiming the memory of) any words defined
// since, per test_common.c's restore_dict_state.
func RestoreDictState(v *vm.VM, s DictState) {
	v.Dict.Restore(s.Latest)
	v.Here = s.Here
}
