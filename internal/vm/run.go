package vm

import (
	"context"

	"github.com/rajames440/starforth/internal/panicerr"
)

// Run drives the VM's outer interpret loop to exhaustion of vm.Source,
// wrapped in panicerr.Recover exactly as the teacher's api.go wraps
// vm.run(ctx) -- a goroutine-isolated call that turns a primitive-level
// panic or runtime.Goexit into a regular error return (spec.md §5), not an
// invitation to run VM code concurrently: exactly one goroutine ever
// executes FORTH code at a time.
//
// ctx is consulted once per outer-loop iteration (per spec.md §4.5 step),
// mirroring the teacher's exec(ctx) checking ctx.Err() after every step; a
// cancelled context stops the loop at the next token boundary and its error
// is returned, rather than being silently absorbed the way a VM.Error fault
// would be.
func (vm *VM) Run(ctx context.Context) error {
	err := panicerr.Recover("VM", func() error {
		vm.Ctx = ctx
		vm.Interpret()
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if vm.Error != ErrNone {
			return vm.Error
		}
		return nil
	})
	vm.Ctx = nil
	return err
}
