// Package words implements StarForth's built-in word library: stack,
// memory, arithmetic, control-flow, defining, vocabulary, block, format,
// string, and system words, grouped into modules exactly as spec.md §4.7's
// run_all_tests ordering names them, and registered onto a *vm.VM through
// Register.
//
// Every word here is an ordinary vm.PrimitiveFunc built only on
// internal/vm's public API (stacks, memory, dictionary, opcodes,
// control-flow marker stack, SourceReader/BlockAccessor seams) so this
// package never needs to import internal/interp, grounded on the teacher's
// own primitive table (first.go's vmCodeTable / third.go's bootstrap
// source).
package words

import "github.com/rajames440/starforth/internal/vm"

func define(v *vm.VM, name string, fn vm.PrimitiveFunc) {
	h := v.Dict.Create(name, v.Here)
	e := v.Dict.Entry(h)
	e.Kind = vm.KindPrimitive
	e.Prim = fn
	v.Dict.MarkBuiltin(h)
}

func defineImmediate(v *vm.VM, name string, fn vm.PrimitiveFunc) {
	h := v.Dict.Create(name, v.Here)
	e := v.Dict.Entry(h)
	e.Kind = vm.KindPrimitive
	e.Prim = fn
	e.Flags |= vm.FlagImmediate
	v.Dict.MarkBuiltin(h)
}

func pop(v *vm.VM) (vm.Cell, bool) {
	c, err := v.Data.Pop(vm.ErrStackUnderflow)
	if err != nil {
		v.Fault(err)
		return 0, false
	}
	return c, true
}

func push(v *vm.VM, c vm.Cell) {
	if err := v.Data.Push(c, vm.ErrStackOverflow); err != nil {
		v.Fault(err)
	}
}

func peek(v *vm.VM, n int) (vm.Cell, bool) {
	c, err := v.Data.Peek(n, vm.ErrStackUnderflow)
	if err != nil {
		v.Fault(err)
		return 0, false
	}
	return c, true
}

// registerStackWords installs DUP DROP SWAP OVER ROT DEPTH PICK ROLL
// NIP TUCK ?DUP 2DROP 2DUP 2OVER 2SWAP 2ROT >R R> R@, per spec.md §4.1.
func registerStackWords(v *vm.VM) {
	define(v, "DUP", func(v *vm.VM) {
		a, ok := peek(v, 0)
		if !ok {
			return
		}
		push(v, a)
	})
	define(v, "DROP", func(v *vm.VM) { pop(v) })
	define(v, "NIP", func(v *vm.VM) {
		a, ok := pop(v)
		if !ok {
			return
		}
		if _, ok := pop(v); !ok {
			return
		}
		push(v, a)
	})
	define(v, "TUCK", func(v *vm.VM) {
		a, ok := pop(v)
		if !ok {
			return
		}
		b, ok := pop(v)
		if !ok {
			return
		}
		push(v, a)
		push(v, b)
		push(v, a)
	})
	define(v, "?DUP", func(v *vm.VM) {
		a, ok := peek(v, 0)
		if !ok {
			return
		}
		if a != 0 {
			push(v, a)
		}
	})
	define(v, "SWAP", func(v *vm.VM) {
		a, ok := pop(v)
		if !ok {
			return
		}
		b, ok := pop(v)
		if !ok {
			return
		}
		push(v, a)
		push(v, b)
	})
	define(v, "OVER", func(v *vm.VM) {
		a, ok := peek(v, 1)
		if !ok {
			return
		}
		push(v, a)
	})
	define(v, "ROT", func(v *vm.VM) {
		if err := v.Data.Roll(2, vm.ErrStackUnderflow); err != nil {
			v.Fault(err)
		}
	})
	define(v, "DEPTH", func(v *vm.VM) { push(v, vm.Cell(v.Data.Depth())) })
	define(v, "PICK", func(v *vm.VM) {
		n, ok := pop(v)
		if !ok {
			return
		}
		c, ok := peek(v, int(n))
		if !ok {
			return
		}
		push(v, c)
	})
	define(v, "ROLL", func(v *vm.VM) {
		n, ok := pop(v)
		if !ok {
			return
		}
		if err := v.Data.Roll(int(n), vm.ErrStackUnderflow); err != nil {
			v.Fault(err)
		}
	})
	define(v, "2DROP", func(v *vm.VM) {
		if _, ok := pop(v); !ok {
			return
		}
		pop(v)
	})
	define(v, "2DUP", func(v *vm.VM) {
		b, ok := peek(v, 0)
		if !ok {
			return
		}
		a, ok := peek(v, 1)
		if !ok {
			return
		}
		push(v, a)
		push(v, b)
	})
	define(v, "2OVER", func(v *vm.VM) {
		a, ok := peek(v, 3)
		if !ok {
			return
		}
		b, ok := peek(v, 2)
		if !ok {
			return
		}
		push(v, a)
		push(v, b)
	})
	define(v, "2SWAP", func(v *vm.VM) {
		d, ok := pop(v)
		if !ok {
			return
		}
		c, ok := pop(v)
		if !ok {
			return
		}
		b, ok := pop(v)
		if !ok {
			return
		}
		a, ok := pop(v)
		if !ok {
			return
		}
		push(v, c)
		push(v, d)
		push(v, a)
		push(v, b)
	})
	define(v, "2ROT", func(v *vm.VM) {
		f, ok := pop(v)
		if !ok {
			return
		}
		e, ok := pop(v)
		if !ok {
			return
		}
		d, ok := pop(v)
		if !ok {
			return
		}
		c, ok := pop(v)
		if !ok {
			return
		}
		b, ok := pop(v)
		if !ok {
			return
		}
		a, ok := pop(v)
		if !ok {
			return
		}
		push(v, c)
		push(v, d)
		push(v, e)
		push(v, f)
		push(v, a)
		push(v, b)
	})
	define(v, ">R", func(v *vm.VM) {
		c, ok := pop(v)
		if !ok {
			return
		}
		if err := v.Return.Push(c, vm.ErrReturnStackOverflow); err != nil {
			v.Fault(err)
		}
	})
	define(v, "R>", func(v *vm.VM) {
		c, err := v.Return.Pop(vm.ErrReturnStackUnderflow)
		if err != nil {
			v.Fault(err)
			return
		}
		push(v, c)
	})
	define(v, "R@", func(v *vm.VM) {
		c, err := v.Return.Peek(0, vm.ErrReturnStackUnderflow)
		if err != nil {
			v.Fault(err)
			return
		}
		push(v, c)
	})
}
