package interp

import (
	"fmt"
	"io"

	"github.com/rajames440/starforth/internal/vm"
)

// Interp ties a *vm.VM to a Scanner and drives the outer interpret/compile
// loop, grounded on the teacher's (*VM).run/step (internals.go).
type Interp struct {
	VM      *vm.VM
	Scanner *Scanner
}

// New returns an Interp with v wired to use scanner as its SourceReader and
// this package's threaded-code dispatcher as its ExecuteFn.
func New(v *vm.VM, scanner *Scanner) *Interp {
	v.Source = scanner
	Install(v)
	return &Interp{VM: v, Scanner: scanner}
}

// Interpret runs the outer loop to exhaustion of the currently queued input,
// per spec.md §4.5's four-step token loop. It returns after the last queued
// source reaches EOF; callers wanting an interactive REPL should queue an
// os.Stdin reader and call this once.
func (ip *Interp) Interpret() { runSource(ip.VM) }

// runSource drives the outer interpret/compile loop over whatever
// vm.Source currently holds. It is installed as vm.InterpretFn so
// LOAD/THRU (internal/words) can re-enter it after swapping in a block's
// SourceReader, without internal/words importing internal/interp.
func runSource(v *vm.VM) {
	for {
		if v.Ctx != nil && v.Ctx.Err() != nil {
			v.HaltRequested = true
			return
		}
		token, ok := v.Source.NextToken()
		if !ok {
			return
		}
		interpretToken(v, token)
		if v.Error != vm.ErrNone {
			reportError(v)
			v.Source.SkipLine()
			v.Error = vm.ErrNone
			v.Mode = vm.ModeInterpret
		}
		if v.AbortRequested {
			v.Abort()
		}
		if v.BlockContinue || v.HaltRequested {
			return
		}
	}
}

func interpretToken(v *vm.VM, token string) {
	if h := v.Dict.Find(token); h != 0 {
		entry := v.Dict.Entry(h)
		if v.Mode == vm.ModeInterpret || entry.Immediate() {
			v.CurrentExecuting = h
			v.Execute(h)
		} else {
			v.CompileCall(h)
		}
		return
	}

	value, isDouble, ok := vm.ParseNumber(token, v.Base)
	if !ok {
		v.Fault(vm.Faultf(vm.ErrWordNotFound, "%q", token))
		return
	}

	if v.Mode == vm.ModeInterpret {
		if err := v.Data.Push(value, vm.ErrStackOverflow); err != nil {
			v.Fault(err)
			return
		}
		if isDouble {
			high := vm.Cell(0)
			if value < 0 {
				high = -1
			}
			if err := v.Data.Push(high, vm.ErrStackOverflow); err != nil {
				v.Fault(err)
			}
		}
		return
	}

	v.CompileLiteral(value)
	if isDouble {
		high := vm.Cell(0)
		if value < 0 {
			high = -1
		}
		v.CompileLiteral(high)
	}
}

func reportError(v *vm.VM) {
	fmt.Fprintf(v, "\n%s: %s\n", v.Source.Location(), v.Error.Error())
}

var _ io.Writer = (*vm.VM)(nil)
