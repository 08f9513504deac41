package words

import (
	"math/bits"

	"github.com/rajames440/starforth/internal/vm"
)

// mulDouble computes the signed double-cell product of two single cells,
// width-generic (correct whether Cell is 32 or 64 bits), via the standard
// unsigned-widening-multiply-plus-sign-correction technique: an unsigned
// multiply gives the correct low half unconditionally, and the high half
// is corrected by subtracting the other operand once per negative input.
func mulDouble(a, b vm.Cell) (lo, hi vm.Cell) {
	uhi, ulo := bits.Mul(uint(a), uint(b))
	if a < 0 {
		uhi -= uint(b)
	}
	if b < 0 {
		uhi -= uint(a)
	}
	return vm.Cell(ulo), vm.Cell(uhi)
}

// divDoubleBySingle divides the signed double-cell value (lo, hi) by the
// single-cell divisor, truncating toward zero, returning (remainder,
// quotient) in spec.md §4.6's order (the same order /MOD returns them).
func divDoubleBySingle(lo, hi, divisor vm.Cell) (remainder, quotient vm.Cell) {
	neg := (hi < 0) != (divisor < 0)
	uLo, uHi := uint(lo), uint(hi)
	if hi < 0 {
		uLo, uHi = negateDouble(uLo, uHi)
	}
	uDivisor := uint(divisor)
	if divisor < 0 {
		uDivisor = uint(-divisor)
	}
	q, r := bits.Div(uHi, uLo, uDivisor)
	if neg {
		q = -q
	}
	if hi < 0 {
		r = -r
	}
	return vm.Cell(r), vm.Cell(q)
}

func negateDouble(lo, hi uint) (uint, uint) {
	lo = ^lo + 1
	carry := uint(0)
	if lo == 0 {
		carry = 1
	}
	hi = ^hi + carry
	return lo, hi
}

// registerDoubleWords installs D+ D- DNEGATE DABS D0= D= D<, per spec.md
// §4.6's "two-cell signed quantity; low cell pushed first".
func registerDoubleWords(v *vm.VM) {
	popDouble := func(v *vm.VM) (lo, hi vm.Cell, ok bool) {
		hi, ok = pop(v)
		if !ok {
			return
		}
		lo, ok = pop(v)
		return
	}
	pushDouble := func(v *vm.VM, lo, hi vm.Cell) {
		push(v, lo)
		push(v, hi)
	}

	define(v, "D+", func(v *vm.VM) {
		bLo, bHi, ok := popDouble(v)
		if !ok {
			return
		}
		aLo, aHi, ok := popDouble(v)
		if !ok {
			return
		}
		sumLo := aLo + bLo
		carry := vm.Cell(0)
		if uint(sumLo) < uint(aLo) {
			carry = 1
		}
		pushDouble(v, sumLo, aHi+bHi+carry)
	})
	define(v, "D-", func(v *vm.VM) {
		bLo, bHi, ok := popDouble(v)
		if !ok {
			return
		}
		aLo, aHi, ok := popDouble(v)
		if !ok {
			return
		}
		negLo, negHi := negateDoubleCell(bLo, bHi)
		sumLo := aLo + negLo
		carry := vm.Cell(0)
		if uint(sumLo) < uint(aLo) {
			carry = 1
		}
		pushDouble(v, sumLo, aHi+negHi+carry)
	})
	define(v, "DNEGATE", func(v *vm.VM) {
		lo, hi, ok := popDouble(v)
		if !ok {
			return
		}
		nLo, nHi := negateDoubleCell(lo, hi)
		pushDouble(v, nLo, nHi)
	})
	define(v, "DABS", func(v *vm.VM) {
		lo, hi, ok := popDouble(v)
		if !ok {
			return
		}
		if hi < 0 {
			lo, hi = negateDoubleCell(lo, hi)
		}
		pushDouble(v, lo, hi)
	})
	define(v, "D0=", func(v *vm.VM) {
		lo, hi, ok := popDouble(v)
		if !ok {
			return
		}
		push(v, boolCellOf(lo == 0 && hi == 0))
	})
	define(v, "D=", func(v *vm.VM) {
		bLo, bHi, ok := popDouble(v)
		if !ok {
			return
		}
		aLo, aHi, ok := popDouble(v)
		if !ok {
			return
		}
		push(v, boolCellOf(aLo == bLo && aHi == bHi))
	})
	define(v, "D<", func(v *vm.VM) {
		bLo, bHi, ok := popDouble(v)
		if !ok {
			return
		}
		aLo, aHi, ok := popDouble(v)
		if !ok {
			return
		}
		less := aHi < bHi || (aHi == bHi && uint(aLo) < uint(bLo))
		push(v, boolCellOf(less))
	})
}

func negateDoubleCell(lo, hi vm.Cell) (vm.Cell, vm.Cell) {
	ulo, uhi := negateDouble(uint(lo), uint(hi))
	return vm.Cell(ulo), vm.Cell(uhi)
}
