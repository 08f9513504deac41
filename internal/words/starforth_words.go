package words

import "github.com/rajames440/starforth/internal/vm"

// registerStarForthWords installs StarForth's own introspection
// extensions, .S (non-destructive stack dump), SEE (decompile a colon
// definition) and .MEM (hex-dump a memory range), beyond the FORTH-79 word set spec.md §4 enumerates -- grounded on
// the teacher's own dumper.go (vm.Dump), generalized from "dump the whole
// VM on abort" to "dump an arbitrary range on request".
func registerStarForthWords(v *vm.VM) {
	define(v, ".S", func(v *vm.VM) {
		cells := v.Data.All()
		v.Write([]byte{'<'})
		v.Write([]byte(vm.FormatNumber(vm.Cell(len(cells)), 10)))
		v.Write([]byte{'>', ' '})
		for _, c := range cells {
			v.Write([]byte(vm.FormatNumber(c, v.Base)))
			v.Write([]byte{' '})
		}
	})
	define(v, "SEE", func(v *vm.VM) {
		name, ok := v.Source.NextToken()
		if !ok {
			v.Fault(vm.Faultf(vm.ErrParseError, "expected a name after SEE"))
			return
		}
		h := v.Dict.Find(name)
		e := v.Dict.Entry(h)
		if e == nil {
			v.Fault(vm.Faultf(vm.ErrWordNotFound, "%s", name))
			return
		}
		if e.Kind != vm.KindColon && e.Kind != vm.KindDoes {
			v.Write([]byte(": " + name + " <primitive> ;"))
			return
		}
		v.Write([]byte(": " + name))
		addr := e.PFA
		for {
			cell, err := v.Mem.FetchCell(addr)
			if err != nil {
				v.Fault(err)
				return
			}
			addr += vm.CellSize
			switch cell {
			case vm.OpLiteral:
				operand, _ := v.Mem.FetchCell(addr)
				addr += vm.CellSize
				v.Write([]byte(" LIT(" + vm.FormatNumber(operand, 10) + ")"))
			case vm.OpBranch:
				operand, _ := v.Mem.FetchCell(addr)
				addr += vm.CellSize
				v.Write([]byte(" BRANCH(" + vm.FormatNumber(operand, 10) + ")"))
			case vm.OpBranch0:
				operand, _ := v.Mem.FetchCell(addr)
				addr += vm.CellSize
				v.Write([]byte(" BRANCH0(" + vm.FormatNumber(operand, 10) + ")"))
			case vm.OpDoes:
				v.Write([]byte(" DOES>"))
			case vm.OpExit:
				v.Write([]byte(" ;"))
				return
			default:
				if target := v.Dict.Entry(int(cell)); target != nil {
					v.Write([]byte(" " + target.Name))
				} else {
					v.Write([]byte(" ?"))
				}
			}
		}
	})
	define(v, ".MEM", func(v *vm.VM) {
		n, ok := pop(v)
		if !ok {
			return
		}
		addr, ok := pop(v)
		if !ok {
			return
		}
		buf := make([]byte, int(n))
		v.Mem.LoadBytes(int(addr), buf)
		const hexDigits = "0123456789abcdef"
		for i, b := range buf {
			if i%16 == 0 {
				v.Write([]byte{'\n'})
			}
			v.Write([]byte{hexDigits[b>>4], hexDigits[b&0xf], ' '})
		}
		v.Write([]byte{'\n'})
	})
}
