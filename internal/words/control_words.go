package words

import "github.com/rajames440/starforth/internal/vm"

// defineHidden installs a runtime helper primitive that backs a compiling
// word (DO/?DO/LOOP/+LOOP's runtime halves) without it being visible to
// FIND/WORDS -- it is only ever reached via a compiled call cell, never
// typed by name, per spec.md §4.3's HIDDEN flag.
func defineHidden(v *vm.VM, name string, fn vm.PrimitiveFunc) int {
	h := v.Dict.Create(name, v.Here)
	e := v.Dict.Entry(h)
	e.Kind = vm.KindPrimitive
	e.Prim = fn
	e.Flags |= vm.FlagHidden
	v.Dict.MarkBuiltin(h)
	return h
}

// registerControlFlowWords installs IF ELSE THEN BEGIN UNTIL WHILE REPEAT
// DO ?DO LOOP +LOOP I J LEAVE UNLOOP EXIT, per spec.md §4.5. The structural
// words (IF ELSE THEN BEGIN UNTIL WHILE REPEAT DO ?DO LOOP +LOOP EXIT) are
// IMMEDIATE: they run at compile time, pushing/popping vm.ControlMarker
// entries and emitting OpBranch/OpBranch0 cells directly, mirroring the
// teacher's third.go bootstrap definitions of if/then/begin/until compiled
// in terms of branch and branch0. I/J/LEAVE/UNLOOP are ordinary runtime
// words: compiled as calls like any other primitive, since they act on the
// live loop frame on the return stack rather than on compile-time state.
func registerControlFlowWords(v *vm.VM) {
	doPrim := defineHidden(v, "(do)", func(v *vm.VM) {
		start, ok := pop(v)
		if !ok {
			return
		}
		limit, ok := pop(v)
		if !ok {
			return
		}
		if err := v.Return.Push(limit, vm.ErrReturnStackOverflow); err != nil {
			v.Fault(err)
			return
		}
		if err := v.Return.Push(start, vm.ErrReturnStackOverflow); err != nil {
			v.Fault(err)
		}
	})
	qdoPrim := defineHidden(v, "(?do)", func(v *vm.VM) {
		start, ok := pop(v)
		if !ok {
			return
		}
		limit, ok := pop(v)
		if !ok {
			return
		}
		if limit == start {
			push(v, 0) // take the forward branch: skip the loop body
			return
		}
		if err := v.Return.Push(limit, vm.ErrReturnStackOverflow); err != nil {
			v.Fault(err)
			return
		}
		if err := v.Return.Push(start, vm.ErrReturnStackOverflow); err != nil {
			v.Fault(err)
			return
		}
		push(v, -1) // fall through into the body
	})
	loopPrim := defineHidden(v, "(loop)", func(v *vm.VM) {
		idx, err := v.Return.Pop(vm.ErrReturnStackUnderflow)
		if err != nil {
			v.Fault(err)
			return
		}
		limit, err := v.Return.Peek(0, vm.ErrReturnStackUnderflow)
		if err != nil {
			v.Fault(err)
			return
		}
		idx++
		if idx == limit {
			v.Return.Pop(vm.ErrReturnStackUnderflow) // discard limit, loop done
			push(v, -1)                              // done: do not take the backward branch
			return
		}
		if err := v.Return.Push(idx, vm.ErrReturnStackOverflow); err != nil {
			v.Fault(err)
			return
		}
		push(v, 0) // continue: take the backward branch
	})
	plusLoopPrim := defineHidden(v, "(+loop)", func(v *vm.VM) {
		step, ok := pop(v)
		if !ok {
			return
		}
		idx, err := v.Return.Pop(vm.ErrReturnStackUnderflow)
		if err != nil {
			v.Fault(err)
			return
		}
		limit, err := v.Return.Peek(0, vm.ErrReturnStackUnderflow)
		if err != nil {
			v.Fault(err)
			return
		}
		newIdx := idx + step
		var done bool
		switch {
		case step > 0:
			done = newIdx >= limit && idx < limit
		case step < 0:
			done = newIdx <= limit && idx > limit
		default:
			done = true // a zero step can never converge; treat as a single pass
		}
		if done {
			v.Return.Pop(vm.ErrReturnStackUnderflow)
			push(v, -1)
			return
		}
		if err := v.Return.Push(newIdx, vm.ErrReturnStackOverflow); err != nil {
			v.Fault(err)
			return
		}
		push(v, 0)
	})

	defineImmediate(v, "IF", func(v *vm.VM) {
		addr := v.CompileBranch0()
		v.PushControl(vm.CfIf, addr)
	})
	defineImmediate(v, "ELSE", func(v *vm.VM) {
		m, ok := v.PopControl(vm.CfIf)
		if !ok {
			return
		}
		addr := v.CompileBranch()
		v.PatchBranchHere(m.Addr)
		v.PushControl(vm.CfIf, addr)
	})
	defineImmediate(v, "THEN", func(v *vm.VM) {
		m, ok := v.PopControl(vm.CfIf)
		if !ok {
			return
		}
		v.PatchBranchHere(m.Addr)
	})

	defineImmediate(v, "BEGIN", func(v *vm.VM) {
		v.PushControl(vm.CfBegin, v.Here)
	})
	defineImmediate(v, "UNTIL", func(v *vm.VM) {
		m, ok := v.PopControl(vm.CfBegin)
		if !ok {
			return
		}
		addr := v.CompileBranch0()
		v.PatchBranchTo(addr, m.Addr)
	})
	defineImmediate(v, "WHILE", func(v *vm.VM) {
		if _, ok := v.PeekControl(); !ok {
			v.Fault(vm.ErrCompilerError)
			return
		}
		addr := v.CompileBranch0()
		v.PushControl(vm.CfWhile, addr)
	})
	defineImmediate(v, "REPEAT", func(v *vm.VM) {
		w, ok := v.PopControl(vm.CfWhile)
		if !ok {
			return
		}
		b, ok := v.PopControl(vm.CfBegin)
		if !ok {
			return
		}
		addr := v.CompileBranch()
		v.PatchBranchTo(addr, b.Addr)
		v.PatchBranchHere(w.Addr)
	})

	defineImmediate(v, "DO", func(v *vm.VM) {
		v.CompileCall(doPrim)
		v.PushControl(vm.CfDo, v.Here)
	})
	defineImmediate(v, "?DO", func(v *vm.VM) {
		v.CompileCall(qdoPrim)
		patchAddr := v.CompileBranch0()
		v.PushControl(vm.CfQDo, patchAddr)
		v.PushControl(vm.CfDo, v.Here)
	})
	closeLoop := func(v *vm.VM, helper int) (ok bool) {
		do, ok := v.PopControl(vm.CfDo)
		if !ok {
			return false
		}
		v.CompileCall(helper)
		addr := v.CompileBranch0()
		v.PatchBranchTo(addr, do.Addr)
		if top, ok2 := v.PeekControl(); ok2 && top.Kind == vm.CfQDo {
			qd, _ := v.PopControl(vm.CfQDo)
			v.PatchBranchHere(qd.Addr)
		}
		return true
	}
	defineImmediate(v, "LOOP", func(v *vm.VM) { closeLoop(v, loopPrim) })
	defineImmediate(v, "+LOOP", func(v *vm.VM) { closeLoop(v, plusLoopPrim) })

	define(v, "I", func(v *vm.VM) {
		c, err := v.Return.Peek(0, vm.ErrReturnStackUnderflow)
		if err != nil {
			v.Fault(err)
			return
		}
		push(v, c)
	})
	define(v, "J", func(v *vm.VM) {
		c, err := v.Return.Peek(2, vm.ErrReturnStackUnderflow)
		if err != nil {
			v.Fault(err)
			return
		}
		push(v, c)
	})
	define(v, "UNLOOP", func(v *vm.VM) {
		if _, err := v.Return.Pop(vm.ErrReturnStackUnderflow); err != nil {
			v.Fault(err)
			return
		}
		if _, err := v.Return.Pop(vm.ErrReturnStackUnderflow); err != nil {
			v.Fault(err)
		}
	})
	define(v, "LEAVE", func(v *vm.VM) {
		idx, err := v.Return.Peek(0, vm.ErrReturnStackUnderflow)
		if err != nil {
			v.Fault(err)
			return
		}
		if err := v.Return.Poke(1, idx+1, vm.ErrReturnStackUnderflow); err != nil {
			v.Fault(err)
		}
	})

	defineImmediate(v, "EXIT", func(v *vm.VM) {
		v.Compile(vm.OpExit)
	})
}
