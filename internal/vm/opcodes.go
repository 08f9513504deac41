package vm

// Thread cells hold either a positive dictionary handle (execute that
// entry) or one of these negative op markers, the first three followed by
// an operand cell.
// Handles are always >= 1 (see Dictionary), so there is no collision
// between a compiled call and a compiled op marker -- the same trick the
// teacher uses to keep FIRST's instruction stream unambiguous (first.go's
// vmCodePushint/vmCodeCompIt share the call-token space with dictionary
// addresses by construction, never by tag bit).
const (
	OpLiteral Cell = -(iota + 1) // operand: a literal value to push
	OpBranch                    // operand: byte delta from the operand cell's own address
	OpBranch0                   // operand: as OpBranch, taken only if TOS is zero (popped)
	OpExit                       // no operand: pop Return, continue there
	OpDoes                       // no operand: retarget Dict.Latest() to KindDoes, then exit like OpExit
)

// Compile appends val to the dictionary thread at Here and advances Here,
// grounded on the teacher's vm.compile (internals.go).
func (vm *VM) Compile(val Cell) {
	if err := vm.Mem.StoreCell(vm.Here, val); err != nil {
		vm.Fault(ErrDictionaryFull)
		return
	}
	vm.Here += CellSize
}

// CompileLiteral compiles a push of v, per spec.md §4.5's "compile mode:
// compile a LITERAL".
func (vm *VM) CompileLiteral(v Cell) {
	vm.Compile(OpLiteral)
	vm.Compile(v)
}

// CompileCall compiles a call to dictionary entry h.
func (vm *VM) CompileCall(h int) { vm.Compile(Cell(h)) }

// CompileBranch compiles an unconditional branch and returns the address of
// its (as yet unpatched) offset operand.
func (vm *VM) CompileBranch() (patchAddr int) {
	vm.Compile(OpBranch)
	patchAddr = vm.Here
	vm.Compile(0)
	return patchAddr
}

// CompileBranch0 compiles a pop-and-branch-if-zero and returns the address
// of its unpatched offset operand.
func (vm *VM) CompileBranch0() (patchAddr int) {
	vm.Compile(OpBranch0)
	patchAddr = vm.Here
	vm.Compile(0)
	return patchAddr
}

// PatchBranchTo backpatches the branch operand at patchAddr so that it
// targets dest: the offset is dest - patchAddr, applied relative to the
// operand cell's own address at runtime, mirroring third.go's `then`
// ("dup here swap - swap !").
func (vm *VM) PatchBranchTo(patchAddr, dest int) {
	if err := vm.Mem.StoreCell(patchAddr, Cell(dest-patchAddr)); err != nil {
		vm.Fault(ErrDictionaryFull)
	}
}

// PatchBranchHere patches the branch operand at patchAddr to target the
// current HERE, the common case (THEN, REPEAT's WHILE-patch).
func (vm *VM) PatchBranchHere(patchAddr int) { vm.PatchBranchTo(patchAddr, vm.Here) }
