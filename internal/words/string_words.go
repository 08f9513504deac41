package words

import "github.com/rajames440/starforth/internal/vm"

// registerStringWords installs the comment words ( \ (- and the string
// words " S" TYPE COUNT, per spec.md §4.4, all built on the vm.Source seam
// (NextToken/ReadUntil/SkipLine) so this package never imports
// internal/interp's tokenizer directly.
func registerStringWords(v *vm.VM) {
	defineImmediate(v, "(", func(v *vm.VM) {
		if v.Source == nil {
			return
		}
		v.Source.ReadUntil(')')
	})
	defineImmediate(v, "\\", func(v *vm.VM) {
		if v.Source == nil {
			return
		}
		v.Source.SkipLine()
	})
	defineImmediate(v, "(-", func(v *vm.VM) {
		if v.Source == nil {
			return
		}
		v.Source.SkipLine()
	})

	defineImmediate(v, `"`, func(v *vm.VM) {
		text, _ := v.Source.ReadUntil('"')
		compileOrPushString(v, text)
	})
	defineImmediate(v, `S"`, func(v *vm.VM) {
		text, _ := v.Source.ReadUntil('"')
		compileOrPushString(v, text)
	})

	define(v, "TYPE", func(v *vm.VM) {
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
		v.Write(buf)
	})
	define(v, "COUNT", func(v *vm.VM) {
		addr, ok := pop(v)
		if !ok {
			return
		}
		length, err := v.Mem.FetchByte(int(addr))
		if err != nil {
			v.Fault(err)
			return
		}
		push(v, addr+1)
		push(v, vm.Cell(length))
	})
}

// compileOrPushString stores text as a counted string at HERE (interpret
// mode) or in the definition under compilation behind a branch over it
// (compile mode), leaving (addr, len) of the text after the count byte on
// the stack per spec.md §4.4's S" convention; " and S" both use it.
func compileOrPushString(v *vm.VM, text string) {
	skip := -1
	if v.Mode == vm.ModeCompile {
		skip = v.CompileBranch() // the thread jumps over the inline text
	}
	addr := v.Here
	if err := v.Mem.StoreByte(addr, byte(len(text))); err != nil {
		v.Fault(err)
		return
	}
	if err := v.Mem.StoreBytes(addr+1, []byte(text)); err != nil {
		v.Fault(err)
		return
	}
	v.Here = alignUp(addr+1+len(text), vm.CellSize)
	if v.Mode == vm.ModeCompile {
		v.PatchBranchHere(skip)
		v.CompileLiteral(vm.Cell(addr + 1))
		v.CompileLiteral(vm.Cell(len(text)))
		return
	}
	push(v, vm.Cell(addr+1))
	push(v, vm.Cell(len(text)))
}

func alignUp(n, align int) int { return (n + align - 1) / align * align }
