package words

import (
	"math/bits"

	"github.com/rajames440/starforth/internal/vm"
)

func binOp(v *vm.VM, fn func(a, b vm.Cell) vm.Cell) {
	b, ok := pop(v)
	if !ok {
		return
	}
	a, ok := pop(v)
	if !ok {
		return
	}
	push(v, fn(a, b))
}

func unOp(v *vm.VM, fn func(a vm.Cell) vm.Cell) {
	a, ok := pop(v)
	if !ok {
		return
	}
	push(v, fn(a))
}

// registerArithWords installs + - * / MOD /MOD NEGATE ABS MIN MAX 1+ 1-
// 2+ 2- 2* 2/, per spec.md §4.6's "signed two's-complement arithmetic;
// overflow wraps and is not an error".
func registerArithWords(v *vm.VM) {
	define(v, "+", func(v *vm.VM) { binOp(v, func(a, b vm.Cell) vm.Cell { return a + b }) })
	define(v, "-", func(v *vm.VM) { binOp(v, func(a, b vm.Cell) vm.Cell { return a - b }) })
	define(v, "*", func(v *vm.VM) { binOp(v, func(a, b vm.Cell) vm.Cell { return a * b }) })

	define(v, "/", func(v *vm.VM) {
		b, ok := pop(v)
		if !ok {
			return
		}
		a, ok := pop(v)
		if !ok {
			return
		}
		if b == 0 {
			v.Fault(vm.ErrDivisionByZero)
			return
		}
		push(v, a/b)
	})
	define(v, "MOD", func(v *vm.VM) {
		b, ok := pop(v)
		if !ok {
			return
		}
		a, ok := pop(v)
		if !ok {
			return
		}
		if b == 0 {
			v.Fault(vm.ErrDivisionByZero)
			return
		}
		push(v, a%b)
	})
	define(v, "/MOD", func(v *vm.VM) {
		b, ok := pop(v)
		if !ok {
			return
		}
		a, ok := pop(v)
		if !ok {
			return
		}
		if b == 0 {
			v.Fault(vm.ErrDivisionByZero)
			return
		}
		push(v, a%b)
		push(v, a/b)
	})
	define(v, "NEGATE", func(v *vm.VM) { unOp(v, func(a vm.Cell) vm.Cell { return -a }) })
	define(v, "ABS", func(v *vm.VM) {
		unOp(v, func(a vm.Cell) vm.Cell {
			if a < 0 {
				return -a
			}
			return a
		})
	})
	define(v, "MIN", func(v *vm.VM) {
		binOp(v, func(a, b vm.Cell) vm.Cell {
			if a < b {
				return a
			}
			return b
		})
	})
	define(v, "MAX", func(v *vm.VM) {
		binOp(v, func(a, b vm.Cell) vm.Cell {
			if a > b {
				return a
			}
			return b
		})
	})
	define(v, "1+", func(v *vm.VM) { unOp(v, func(a vm.Cell) vm.Cell { return a + 1 }) })
	define(v, "1-", func(v *vm.VM) { unOp(v, func(a vm.Cell) vm.Cell { return a - 1 }) })
	define(v, "2+", func(v *vm.VM) { unOp(v, func(a vm.Cell) vm.Cell { return a + 2 }) })
	define(v, "2-", func(v *vm.VM) { unOp(v, func(a vm.Cell) vm.Cell { return a - 2 }) })
	define(v, "2*", func(v *vm.VM) { unOp(v, func(a vm.Cell) vm.Cell { return a << 1 }) })
	define(v, "2/", func(v *vm.VM) { unOp(v, func(a vm.Cell) vm.Cell { return a >> 1 }) })
}

// registerLogicalWords installs AND OR XOR NOT/INVERT 0= 0< = < > <= >=,
// per spec.md's boolean convention (−1 true, 0 false).
func registerLogicalWords(v *vm.VM) {
	define(v, "AND", func(v *vm.VM) { binOp(v, func(a, b vm.Cell) vm.Cell { return a & b }) })
	define(v, "OR", func(v *vm.VM) { binOp(v, func(a, b vm.Cell) vm.Cell { return a | b }) })
	define(v, "XOR", func(v *vm.VM) { binOp(v, func(a, b vm.Cell) vm.Cell { return a ^ b }) })
	invert := func(v *vm.VM) { unOp(v, func(a vm.Cell) vm.Cell { return ^a }) }
	define(v, "INVERT", invert)
	define(v, "NOT", invert)
	define(v, "0=", func(v *vm.VM) { unOp(v, func(a vm.Cell) vm.Cell { return boolCellOf(a == 0) }) })
	define(v, "0<", func(v *vm.VM) { unOp(v, func(a vm.Cell) vm.Cell { return boolCellOf(a < 0) }) })
	define(v, "0>", func(v *vm.VM) { unOp(v, func(a vm.Cell) vm.Cell { return boolCellOf(a > 0) }) })
	define(v, "=", func(v *vm.VM) { binOp(v, func(a, b vm.Cell) vm.Cell { return boolCellOf(a == b) }) })
	define(v, "<>", func(v *vm.VM) { binOp(v, func(a, b vm.Cell) vm.Cell { return boolCellOf(a != b) }) })
	define(v, "<", func(v *vm.VM) { binOp(v, func(a, b vm.Cell) vm.Cell { return boolCellOf(a < b) }) })
	define(v, ">", func(v *vm.VM) { binOp(v, func(a, b vm.Cell) vm.Cell { return boolCellOf(a > b) }) })
	define(v, "<=", func(v *vm.VM) { binOp(v, func(a, b vm.Cell) vm.Cell { return boolCellOf(a <= b) }) })
	define(v, ">=", func(v *vm.VM) { binOp(v, func(a, b vm.Cell) vm.Cell { return boolCellOf(a >= b) }) })
}

func boolCellOf(b bool) vm.Cell {
	if b {
		return -1
	}
	return 0
}

// registerMixedArithWords installs */ */MOD M* M/MOD, using a
// double-cell intermediate sized to the native Cell width (via
// mulDouble/divDoubleBySingle in double_words.go) so the
// multiplication cannot overflow regardless of whether Cell is 32 or 64
// bits wide, per spec.md §4.6.
func registerMixedArithWords(v *vm.VM) {
	define(v, "*/", func(v *vm.VM) {
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
		if c == 0 {
			v.Fault(vm.ErrDivisionByZero)
			return
		}
		lo, hi := mulDouble(a, b)
		_, q := divDoubleBySingle(lo, hi, c)
		push(v, q)
	})
	define(v, "*/MOD", func(v *vm.VM) {
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
		if c == 0 {
			v.Fault(vm.ErrDivisionByZero)
			return
		}
		lo, hi := mulDouble(a, b)
		r, q := divDoubleBySingle(lo, hi, c)
		push(v, r)
		push(v, q)
	})
	define(v, "M*", func(v *vm.VM) {
		b, ok := pop(v)
		if !ok {
			return
		}
		a, ok := pop(v)
		if !ok {
			return
		}
		lo, hi := mulDouble(a, b)
		push(v, lo)
		push(v, hi)
	})
	define(v, "UM*", func(v *vm.VM) {
		b, ok := pop(v)
		if !ok {
			return
		}
		a, ok := pop(v)
		if !ok {
			return
		}
		hi, lo := bits.Mul(uint(a), uint(b))
		push(v, vm.Cell(lo))
		push(v, vm.Cell(hi))
	})
	define(v, "M/MOD", func(v *vm.VM) {
		divisor, ok := pop(v)
		if !ok {
			return
		}
		hi, ok := pop(v)
		if !ok {
			return
		}
		lo, ok := pop(v)
		if !ok {
			return
		}
		if divisor == 0 {
			v.Fault(vm.ErrDivisionByZero)
			return
		}
		r, q := divDoubleBySingle(lo, hi, divisor)
		push(v, r)
		push(v, q)
	})
}
