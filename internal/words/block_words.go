package words

import "github.com/rajames440/starforth/internal/vm"

const (
	blockLineLen  = 64 // bytes per screen line, per spec.md §6
	blockLinesPer = 16 // lines per 1024-byte block
)

func requireBlocks(v *vm.VM) bool {
	if v.Blocks == nil {
		v.Fault(vm.Faultf(vm.ErrInvalidBlock, "no block device configured"))
		return false
	}
	return true
}

// registerBlockWords installs BLOCK BUFFER UPDATE SAVE-BUFFERS EMPTY-BUFFERS
// FLUSH LOAD LIST THRU SCR -->, per spec.md §6.
func registerBlockWords(v *vm.VM) {
	define(v, "BLOCK", func(v *vm.VM) {
		if !requireBlocks(v) {
			return
		}
		n, ok := pop(v)
		if !ok {
			return
		}
		data, err := v.Blocks.Block(int(n))
		if err != nil {
			v.Fault(err)
			return
		}
		if err := v.Mem.StoreBytes(v.BlockBuf, data); err != nil {
			v.Fault(err)
			return
		}
		push(v, vm.Cell(v.BlockBuf))
	})
	define(v, "BUFFER", func(v *vm.VM) {
		if !requireBlocks(v) {
			return
		}
		n, ok := pop(v)
		if !ok {
			return
		}
		data, err := v.Blocks.Buffer(int(n))
		if err != nil {
			v.Fault(err)
			return
		}
		if err := v.Mem.StoreBytes(v.BlockBuf, data); err != nil {
			v.Fault(err)
			return
		}
		push(v, vm.Cell(v.BlockBuf))
	})
	define(v, "UPDATE", func(v *vm.VM) {
		if !requireBlocks(v) {
			return
		}
		if err := v.Blocks.Update(); err != nil {
			v.Fault(err)
		}
	})
	define(v, "SAVE-BUFFERS", func(v *vm.VM) {
		if !requireBlocks(v) {
			return
		}
		if err := v.Blocks.SaveBuffers(); err != nil {
			v.Fault(err)
		}
	})
	define(v, "EMPTY-BUFFERS", func(v *vm.VM) {
		if !requireBlocks(v) {
			return
		}
		v.Blocks.EmptyBuffers()
	})
	define(v, "FLUSH", func(v *vm.VM) {
		if !requireBlocks(v) {
			return
		}
		if err := v.Blocks.Flush(); err != nil {
			v.Fault(err)
		}
	})
	define(v, "SCR", func(v *vm.VM) { push(v, vm.Cell(v.Scr)) })

	define(v, "LIST", func(v *vm.VM) {
		if !requireBlocks(v) {
			return
		}
		n, ok := pop(v)
		if !ok {
			return
		}
		data, err := v.Blocks.Block(int(n))
		if err != nil {
			v.Fault(err)
			return
		}
		v.Scr = int(n)
		for line := 0; line < blockLinesPer; line++ {
			start := line * blockLineLen
			end := start + blockLineLen
			if end > len(data) {
				end = len(data)
			}
			v.Write([]byte{'\n'})
			v.Write(data[start:end])
		}
	})
	define(v, "THRU", func(v *vm.VM) {
		if !requireBlocks(v) {
			return
		}
		last, ok := pop(v)
		if !ok {
			return
		}
		first, ok := pop(v)
		if !ok {
			return
		}
		for n := first; n <= last; n++ {
			if !loadBlock(v, int(n)) {
				return
			}
		}
	})
	define(v, "LOAD", func(v *vm.VM) {
		if !requireBlocks(v) {
			return
		}
		n, ok := pop(v)
		if !ok {
			return
		}
		loadBlock(v, int(n))
	})
	defineImmediate(v, "-->", func(v *vm.VM) {
		// Interrupts the outer loop currently running over this block's
		// text (vm.InterpretFn checks BlockContinue after every token);
		// loadBlock sees it, clears it, and reports a clean run, so THRU
		// goes on to its next block. LOAD does not chain: after --> it
		// stops at the end of the block it was given.
		v.BlockContinue = true
	})
}

// loadBlock interprets block n's text through vm.Interpret, exactly as if
// it had been typed at the terminal, per spec.md §6. true is returned on
// a clean run to block end (or a --> hand-off); false on a fault or ABORT.
func loadBlock(v *vm.VM, n int) bool {
	data, err := v.Blocks.Block(n)
	if err != nil {
		v.Fault(err)
		return false
	}
	v.Scr = n
	savedSource := v.Source
	v.Source = newBlockScanner(data)
	defer func() { v.Source = savedSource }()

	v.Interpret()
	if v.BlockContinue {
		v.BlockContinue = false
		return true
	}
	return v.Error == vm.ErrNone && !v.AbortRequested
}
