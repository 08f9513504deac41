package words

import "github.com/rajames440/starforth/internal/vm"

// registerDefiningWords installs : ; CREATE DOES> VARIABLE CONSTANT [ ]
// IMMEDIATE SMUDGE HIDDEN, per spec.md §4.3.
func registerDefiningWords(v *vm.VM) {
	defineImmediate(v, ":", func(v *vm.VM) {
		if v.CompilingWord != 0 {
			v.Fault(vm.Faultf(vm.ErrCompilerError, "nested :"))
			return
		}
		name, ok := v.Source.NextToken()
		if !ok {
			v.Fault(vm.Faultf(vm.ErrParseError, "expected name after :"))
			return
		}
		h := v.Dict.Create(name, v.Here)
		e := v.Dict.Entry(h)
		e.Kind = vm.KindColon
		e.PFA = v.Here
		e.Flags |= vm.FlagSmudge // hidden until ; completes the definition
		v.CompilingWord = h
		v.Mode = vm.ModeCompile
	})
	defineImmediate(v, ";", func(v *vm.VM) {
		if v.CompilingWord == 0 {
			v.Fault(vm.Faultf(vm.ErrCompilerError, "unmatched ;"))
			return
		}
		if !v.ControlFlowEmpty() {
			v.Fault(vm.Faultf(vm.ErrCompilerError, "unbalanced control-flow in definition"))
			v.ClearControlFlow()
		}
		v.Compile(vm.OpExit)
		e := v.Dict.Entry(v.CompilingWord)
		e.Flags &^= vm.FlagSmudge
		v.CompilingWord = 0
		v.Mode = vm.ModeInterpret
	})

	define(v, "CREATE", func(v *vm.VM) {
		name, ok := v.Source.NextToken()
		if !ok {
			v.Fault(vm.Faultf(vm.ErrParseError, "expected name after CREATE"))
			return
		}
		h := v.Dict.Create(name, v.Here)
		e := v.Dict.Entry(h)
		e.Kind = vm.KindVariable
		e.PFA = v.Here
	})
	defineImmediate(v, "DOES>", func(v *vm.VM) {
		if v.CompilingWord == 0 {
			v.Fault(vm.Faultf(vm.ErrCompilerError, "DOES> outside a definition"))
			return
		}
		// DOES> compiles a single runtime marker: when the defining word
		// (e.g. CONST in ": CONST CREATE , DOES> @ ;") actually runs, OpDoes
		// retargets whatever CREATE most recently produced -- the child
		// being defined, not CONST itself -- to run the code following
		// DOES> whenever that child is later invoked.
		v.Compile(vm.OpDoes)
	})

	define(v, "VARIABLE", func(v *vm.VM) {
		name, ok := v.Source.NextToken()
		if !ok {
			v.Fault(vm.Faultf(vm.ErrParseError, "expected name after VARIABLE"))
			return
		}
		h := v.Dict.Create(name, v.Here)
		e := v.Dict.Entry(h)
		e.Kind = vm.KindVariable
		e.PFA = v.Here
		v.Compile(0)
	})
	define(v, "CONSTANT", func(v *vm.VM) {
		name, ok := v.Source.NextToken()
		if !ok {
			v.Fault(vm.Faultf(vm.ErrParseError, "expected name after CONSTANT"))
			return
		}
		val, ok := pop(v)
		if !ok {
			return
		}
		h := v.Dict.Create(name, v.Here)
		e := v.Dict.Entry(h)
		e.Kind = vm.KindConstant
		e.Value = val
	})

	defineImmediate(v, "[", func(v *vm.VM) { v.Mode = vm.ModeInterpret })
	define(v, "]", func(v *vm.VM) { v.Mode = vm.ModeCompile })

	defineImmediate(v, "IMMEDIATE", func(v *vm.VM) {
		if e := v.Dict.Entry(v.Dict.Latest()); e != nil {
			e.Flags |= vm.FlagImmediate
		}
	})
	define(v, "SMUDGE", func(v *vm.VM) {
		if e := v.Dict.Entry(v.Dict.Latest()); e != nil {
			e.Flags ^= vm.FlagSmudge
		}
	})
	define(v, "HIDDEN", func(v *vm.VM) {
		if e := v.Dict.Entry(v.Dict.Latest()); e != nil {
			e.Flags |= vm.FlagHidden
		}
	})
}
