package words

import "github.com/rajames440/starforth/internal/vm"

// registerSystemWords installs ABORT ABORT" QUIT BYE KEY EXPECT EXECUTE, per
// spec.md §5 and §7's "Aborted: set by ABORT / ABORT\"" error taxonomy. BYE
// requests a shutdown the same way ABORT requests a reset: a flag the outer
// interpret loop (internal/interp) checks after each token, returning from
// the current Interpret pass, since no primitive here is allowed to
// terminate the process directly.
func registerSystemWords(v *vm.VM) {
	define(v, "ABORT", func(v *vm.VM) {
		v.AbortRequested = true
		v.Fault(vm.ErrAborted)
	})
	define(v, "QUIT", func(v *vm.VM) { v.Quit() })
	define(v, "BYE", func(v *vm.VM) { v.HaltRequested = true })

	// abortQuote is the runtime half of ABORT": compiled after the message's
	// counted-string literal, it pops (flag addr len), and on a non-zero
	// flag writes the message and faults, mirroring string_words.go's
	// compileOrPushString layout for S"/".
	abortQuote := defineHidden(v, "(abort\")", func(v *vm.VM) {
		length, ok := pop(v)
		if !ok {
			return
		}
		addr, ok := pop(v)
		if !ok {
			return
		}
		flag, ok := pop(v)
		if !ok {
			return
		}
		if flag == 0 {
			return
		}
		buf := make([]byte, int(length))
		v.Mem.LoadBytes(int(addr), buf)
		v.Write(buf)
		v.Write([]byte{'\n'})
		v.AbortRequested = true
		v.Fault(vm.Faultf(vm.ErrAborted, "%s", buf))
	})
	defineImmediate(v, `ABORT"`, func(v *vm.VM) {
		if v.Source == nil {
			v.Fault(vm.Faultf(vm.ErrParseError, "no input source"))
			return
		}
		text, _ := v.Source.ReadUntil('"')

		skip := -1
		if v.Mode == vm.ModeCompile {
			skip = v.CompileBranch() // the thread jumps over the inline message
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
			v.CompileCall(abortQuote)
			return
		}

		flag, ok := pop(v)
		if !ok {
			return
		}
		if flag == 0 {
			return
		}
		v.Write([]byte(text))
		v.Write([]byte{'\n'})
		v.AbortRequested = true
		v.Fault(vm.Faultf(vm.ErrAborted, "%s", text))
	})

	define(v, "EXECUTE", func(v *vm.VM) {
		h, ok := pop(v)
		if !ok {
			return
		}
		v.Execute(int(h))
	})

	define(v, "KEY", func(v *vm.VM) {
		if v.Source == nil {
			v.Fault(vm.Faultf(vm.ErrParseError, "no input source"))
			return
		}
		tok, ok := v.Source.NextToken()
		if !ok || len(tok) == 0 {
			push(v, -1)
			return
		}
		push(v, vm.Cell(tok[0]))
	})
	define(v, "EXPECT", func(v *vm.VM) {
		addr, ok := pop(v)
		if !ok {
			return
		}
		maxLen, ok := pop(v)
		if !ok {
			return
		}
		if v.Source == nil {
			v.Fault(vm.Faultf(vm.ErrParseError, "no input source"))
			return
		}
		text, _ := v.Source.ReadUntil('\n')
		if len(text) > int(maxLen) {
			text = text[:maxLen]
		}
		if err := v.Mem.StoreBytes(int(addr), []byte(text)); err != nil {
			v.Fault(err)
		}
	})
}
