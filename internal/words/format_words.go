package words

import "github.com/rajames440/starforth/internal/vm"

// registerFormatWords installs <# # #S SIGN HOLD #> . .R U. BASE DECIMAL
// HEX OCTAL, per spec.md §4.6's pictured-numeric-output machinery built on
// top of vm.Hold/vm.HoldString/vm.ResetHold.
func registerFormatWords(v *vm.VM) {
	define(v, "<#", func(v *vm.VM) { v.ResetHold() })
	define(v, "#>", func(v *vm.VM) {
		if _, ok := pop(v); !ok { // discard the double's high cell
			return
		}
		if _, ok := pop(v); !ok { // discard the low cell
			return
		}
		s := v.HoldString()
		v.Write(s)
	})
	define(v, "HOLD", func(v *vm.VM) {
		c, ok := pop(v)
		if !ok {
			return
		}
		v.Hold(byte(c))
	})
	define(v, "SIGN", func(v *vm.VM) {
		n, ok := pop(v)
		if !ok {
			return
		}
		if n < 0 {
			v.Hold('-')
		}
	})
	define(v, "#", func(v *vm.VM) {
		hi, ok := pop(v)
		if !ok {
			return
		}
		lo, ok := pop(v)
		if !ok {
			return
		}
		base := vm.Cell(v.Base)
		r, q := divDoubleBySingle(lo, hi, base)
		if r < 0 {
			r = -r
		}
		v.Hold(digitChar(r))
		push(v, q)
		zero := vm.Cell(0)
		if q < 0 {
			zero = -1
		}
		push(v, zero)
	})
	define(v, "#S", func(v *vm.VM) {
		for {
			hi, ok := pop(v)
			if !ok {
				return
			}
			lo, ok := pop(v)
			if !ok {
				return
			}
			base := vm.Cell(v.Base)
			r, q := divDoubleBySingle(lo, hi, base)
			if r < 0 {
				r = -r
			}
			v.Hold(digitChar(r))
			push(v, q)
			zero := vm.Cell(0)
			if q < 0 {
				zero = -1
			}
			push(v, zero)
			if q == 0 && zero == 0 {
				return
			}
		}
	})

	define(v, ".", func(v *vm.VM) {
		n, ok := pop(v)
		if !ok {
			return
		}
		v.Write([]byte(vm.FormatNumber(n, v.Base)))
		v.Write([]byte{' '})
	})
	define(v, "U.", func(v *vm.VM) {
		n, ok := pop(v)
		if !ok {
			return
		}
		v.Write([]byte(formatUnsigned(n, v.Base)))
		v.Write([]byte{' '})
	})
	define(v, ".R", func(v *vm.VM) {
		width, ok := pop(v)
		if !ok {
			return
		}
		n, ok := pop(v)
		if !ok {
			return
		}
		s := vm.FormatNumber(n, v.Base)
		for i := len(s); i < int(width); i++ {
			v.Write([]byte{' '})
		}
		v.Write([]byte(s))
	})

	baseCell := v.Here
	v.Compile(10)
	define(v, "BASE", func(v *vm.VM) {
		if err := v.Mem.StoreCell(baseCell, vm.Cell(v.Base)); err != nil {
			v.Fault(err)
			return
		}
		push(v, vm.Cell(baseCell))
	})
	define(v, "DECIMAL", func(v *vm.VM) { v.Base = 10 })
	define(v, "HEX", func(v *vm.VM) { v.Base = 16 })
	define(v, "OCTAL", func(v *vm.VM) { v.Base = 8 })
}

func digitChar(v vm.Cell) byte {
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	return digits[v]
}

func formatUnsigned(v vm.Cell, base int) string {
	if v == 0 {
		return "0"
	}
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	u := uint(v)
	var buf [64]byte
	i := len(buf)
	for u > 0 {
		i--
		buf[i] = digits[u%uint(base)]
		u /= uint(base)
	}
	return string(buf[i:])
}
