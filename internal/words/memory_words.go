package words

import "github.com/rajames440/starforth/internal/vm"

// registerMemoryWords installs @ ! C@ C! 2@ 2! , C, 2, ALLOT HERE PAD,
// per spec.md §4.2.
func registerMemoryWords(v *vm.VM) {
	define(v, "@", func(v *vm.VM) {
		addr, ok := pop(v)
		if !ok {
			return
		}
		c, err := v.Mem.FetchCell(int(addr))
		if err != nil {
			v.Fault(err)
			return
		}
		push(v, c)
	})
	define(v, "!", func(v *vm.VM) {
		addr, ok := pop(v)
		if !ok {
			return
		}
		val, ok := pop(v)
		if !ok {
			return
		}
		if err := v.Mem.StoreCell(int(addr), val); err != nil {
			v.Fault(err)
		}
	})
	define(v, "C@", func(v *vm.VM) {
		addr, ok := pop(v)
		if !ok {
			return
		}
		b, err := v.Mem.FetchByte(int(addr))
		if err != nil {
			v.Fault(err)
			return
		}
		push(v, vm.Cell(b))
	})
	define(v, "C!", func(v *vm.VM) {
		addr, ok := pop(v)
		if !ok {
			return
		}
		val, ok := pop(v)
		if !ok {
			return
		}
		if err := v.Mem.StoreByte(int(addr), byte(val)); err != nil {
			v.Fault(err)
		}
	})
	define(v, "2@", func(v *vm.VM) {
		addr, ok := pop(v)
		if !ok {
			return
		}
		lo, hi, err := v.Mem.FetchDouble(int(addr))
		if err != nil {
			v.Fault(err)
			return
		}
		push(v, lo)
		push(v, hi)
	})
	define(v, "2!", func(v *vm.VM) {
		addr, ok := pop(v)
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
		if err := v.Mem.StoreDouble(int(addr), lo, hi); err != nil {
			v.Fault(err)
		}
	})
	define(v, ",", func(v *vm.VM) {
		val, ok := pop(v)
		if !ok {
			return
		}
		v.Compile(val)
	})
	define(v, "C,", func(v *vm.VM) {
		val, ok := pop(v)
		if !ok {
			return
		}
		if err := v.Mem.StoreByte(v.Here, byte(val)); err != nil {
			v.Fault(err)
			return
		}
		v.Here++
	})
	define(v, "2,", func(v *vm.VM) {
		hi, ok := pop(v)
		if !ok {
			return
		}
		lo, ok := pop(v)
		if !ok {
			return
		}
		v.Compile(lo)
		v.Compile(hi)
	})
	define(v, "ALLOT", func(v *vm.VM) {
		n, ok := pop(v)
		if !ok {
			return
		}
		v.Here += int(n)
	})
	define(v, "HERE", func(v *vm.VM) { push(v, vm.Cell(v.Here)) })
	define(v, "PAD", func(v *vm.VM) { push(v, vm.Cell(v.Pad)) })
	define(v, "ALIGN", func(v *vm.VM) { v.Here = alignUp(v.Here, vm.CellSize) })
	define(v, "ALIGNED", func(v *vm.VM) {
		addr, ok := pop(v)
		if !ok {
			return
		}
		push(v, vm.Cell(alignUp(int(addr), vm.CellSize)))
	})
}
