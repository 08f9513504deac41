package vm

// ControlKind tags what a ControlMarker resolves, so LOOP/THEN/REPEAT know
// what to do with the marker(s) they pop, per spec.md §4.5/§9 ("a bounded
// compile-time stack of origin/destination markers; model it as a small
// ordered sequence owned by the compiler, asserting it is empty at ;").
type ControlKind uint8

const (
	CfIf ControlKind = iota
	CfElse
	CfDo
	CfQDo
	CfBegin
	CfWhile
)

// ControlMarker is one entry on the compile-time control-flow stack.
type ControlMarker struct {
	Kind ControlKind
	Addr int
}

// PushControl pushes a compile-time marker.
func (vm *VM) PushControl(kind ControlKind, addr int) {
	vm.ControlFlow = append(vm.ControlFlow, ControlMarker{kind, addr})
}

// PopControl pops the top marker, expecting one of the given kinds.
// Returns ok=false (and sets ErrCompilerError) on stack-empty or kind
// mismatch -- the unmatched-token cases spec.md §4.5 enumerates (ELSE
// without IF, THEN without IF, UNTIL without BEGIN, REPEAT without WHILE,
// LOOP without DO).
func (vm *VM) PopControl(want ...ControlKind) (ControlMarker, bool) {
	if len(vm.ControlFlow) == 0 {
		vm.Fault(ErrCompilerError)
		return ControlMarker{}, false
	}
	top := vm.ControlFlow[len(vm.ControlFlow)-1]
	matched := false
	for _, k := range want {
		if top.Kind == k {
			matched = true
			break
		}
	}
	if !matched {
		vm.Fault(ErrCompilerError)
		return ControlMarker{}, false
	}
	vm.ControlFlow = vm.ControlFlow[:len(vm.ControlFlow)-1]
	return top, true
}

// PeekControl returns the top marker without removing it, so LOOP/+LOOP can
// check for a pending ?DO forward-skip patch underneath the loop-body
// marker it just popped.
func (vm *VM) PeekControl() (ControlMarker, bool) {
	if len(vm.ControlFlow) == 0 {
		return ControlMarker{}, false
	}
	return vm.ControlFlow[len(vm.ControlFlow)-1], true
}

// ControlFlowEmpty reports whether the compile-time control-flow stack is
// empty, checked at ';' per spec.md §9.
func (vm *VM) ControlFlowEmpty() bool { return len(vm.ControlFlow) == 0 }

// ClearControlFlow discards any in-progress control-flow markers, used when
// a definition is abandoned by an error or by ABORT mid-compile.
func (vm *VM) ClearControlFlow() { vm.ControlFlow = vm.ControlFlow[:0] }
