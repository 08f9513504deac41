package interp

import "github.com/rajames440/starforth/internal/vm"

// Install wires the inner-interpreter's dispatch loop into v as its
// ExecuteFn, so vm.Execute (and hence EXECUTE, ', DOES>) runs colon-threaded
// code without internal/vm depending on internal/interp, per spec.md §9's
// "VM runtime contract ... the concrete lexer/parser/compiler ... referenced
// only through interpret(vm, source)".
func Install(v *vm.VM) {
	v.ExecuteFn = executeEntry
	v.InterpretFn = runSource
}

// executeEntry runs dictionary entry h to completion, dispatching on its
// Kind, grounded on the teacher's vm.call/vm.exec (internals.go) but
// iterative rather than recursive: a colon call pushes its return address
// onto vm.Return and continues the same loop at the callee's PFA, so
// StarForth definitions may nest arbitrarily deep without growing the Go
// call stack, per spec.md §5's "no primitive suspends").
func executeEntry(v *vm.VM, h int) {
	e := v.Dict.Entry(h)
	if e == nil {
		v.Fault(vm.ErrWordNotFound)
		return
	}
	switch e.Kind {
	case vm.KindPrimitive:
		e.Prim(v)
	case vm.KindConstant:
		_ = v.Data.Push(e.Value, vm.ErrStackOverflow)
	case vm.KindVariable:
		_ = v.Data.Push(vm.Cell(e.PFA), vm.ErrStackOverflow)
	case vm.KindColon:
		runThread(v, e.PFA)
	case vm.KindDoes:
		if err := v.Data.Push(vm.Cell(e.PFA), vm.ErrStackOverflow); err != nil {
			v.Fault(err)
			return
		}
		runThread(v, e.DoesPFA)
	default:
		v.Fault(vm.ErrWordNotFound)
	}
}

// runThread executes the threaded-code cell stream starting at addr until
// an OpExit unwinds past the top of this call (empty vm.Return relative to
// entry), or a fault/ABORT stops it early.
func runThread(v *vm.VM, addr int) {
	ip := addr
	baseDepth := v.Return.Depth()
	for {
		cell, err := v.Mem.FetchCell(ip)
		if err != nil {
			v.Fault(err)
			return
		}
		ip += vm.CellSize

		switch cell {
		case vm.OpLiteral:
			operand, err := v.Mem.FetchCell(ip)
			if err != nil {
				v.Fault(err)
				return
			}
			ip += vm.CellSize
			if err := v.Data.Push(operand, vm.ErrStackOverflow); err != nil {
				v.Fault(err)
				return
			}

		case vm.OpBranch:
			operandAddr := ip
			off, err := v.Mem.FetchCell(operandAddr)
			if err != nil {
				v.Fault(err)
				return
			}
			ip = operandAddr + off

		case vm.OpBranch0:
			operandAddr := ip
			off, err := v.Mem.FetchCell(operandAddr)
			if err != nil {
				v.Fault(err)
				return
			}
			ip = operandAddr + vm.CellSize
			flag, err := v.Data.Pop(vm.ErrStackUnderflow)
			if err != nil {
				v.Fault(err)
				return
			}
			if flag == 0 {
				ip = operandAddr + off
			}

		case vm.OpExit:
			if v.Return.Depth() <= baseDepth {
				return
			}
			ra, err := v.Return.Pop(vm.ErrReturnStackUnderflow)
			if err != nil {
				v.Fault(err)
				return
			}
			ip = int(ra)

		case vm.OpDoes:
			if e := v.Dict.Entry(v.Dict.Latest()); e != nil {
				e.Kind = vm.KindDoes
				e.DoesPFA = ip
			}
			if v.Return.Depth() <= baseDepth {
				return
			}
			ra, err := v.Return.Pop(vm.ErrReturnStackUnderflow)
			if err != nil {
				v.Fault(err)
				return
			}
			ip = int(ra)

		default:
			h := int(cell)
			entry := v.Dict.Entry(h)
			if entry == nil {
				v.Fault(vm.ErrWordNotFound)
				return
			}
			switch entry.Kind {
			case vm.KindPrimitive:
				entry.Prim(v)
			case vm.KindConstant:
				if err := v.Data.Push(entry.Value, vm.ErrStackOverflow); err != nil {
					v.Fault(err)
					return
				}
			case vm.KindVariable:
				if err := v.Data.Push(vm.Cell(entry.PFA), vm.ErrStackOverflow); err != nil {
					v.Fault(err)
					return
				}
			case vm.KindColon:
				if err := v.Return.Push(vm.Cell(ip), vm.ErrReturnStackOverflow); err != nil {
					v.Fault(err)
					return
				}
				ip = entry.PFA
			case vm.KindDoes:
				if err := v.Data.Push(vm.Cell(entry.PFA), vm.ErrStackOverflow); err != nil {
					v.Fault(err)
					return
				}
				if err := v.Return.Push(vm.Cell(ip), vm.ErrReturnStackOverflow); err != nil {
					v.Fault(err)
					return
				}
				ip = entry.DoesPFA
			}
		}

		if v.Error != vm.ErrNone || v.AbortRequested || v.ExitColon {
			v.ExitColon = false
			return
		}
	}
}
