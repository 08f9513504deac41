package vm

import (
	"io"

	"github.com/rajames440/starforth/internal/flushio"
)

// Option configures a VM at construction time, mirroring the teacher's
// VMOption interface (api.go/options.go).
type Option interface{ apply(vm *VM) }

type optionFunc func(vm *VM)

func (f optionFunc) apply(vm *VM) { f(vm) }

// WithMemorySize overrides DefaultMemorySize.
func WithMemorySize(size int) Option {
	return optionFunc(func(vm *VM) {
		vm.Mem = NewMemory(size)
		vm.Pad = size - DefaultPadSize
		vm.BlockBuf = size - DefaultPadSize - BlockBufSize
	})
}

// WithStackSize overrides DefaultStackSize for both stacks.
func WithStackSize(size int) Option {
	return optionFunc(func(vm *VM) {
		vm.Data = NewStack(size)
		vm.Return = NewStack(size)
	})
}

// WithOutput sets the VM's output writer, wrapping it in a flush-able
// writer exactly as the teacher's outputOption does (api.go).
func WithOutput(w io.Writer) Option {
	return optionFunc(func(vm *VM) {
		vm.Out = w
		vm.outFlush = flushio.NewWriteFlusher(w)
	})
}

// WithTee composes an additional output sink, mirroring the teacher's
// teeOption (api.go): both the original and w receive every write.
func WithTee(w io.Writer) Option {
	return optionFunc(func(vm *VM) {
		vm.outFlush = flushio.WriteFlushers(vm.outFlush, flushio.NewWriteFlusher(w))
	})
}

// WithLogf installs a trace-logging callback, mirroring the teacher's
// WithLogf (api.go).
func WithLogf(logfn func(mess string, args ...interface{})) Option {
	return optionFunc(func(vm *VM) { vm.LogFn = logfn })
}

// WithBlocks attaches a block-store implementation (internal/block.Store
// satisfies BlockAccessor), keeping internal/vm free of a direct import.
func WithBlocks(b BlockAccessor) Option {
	return optionFunc(func(vm *VM) { vm.Blocks = b })
}

// WithSource attaches a token source (internal/interp.Scanner satisfies
// SourceReader), keeping internal/vm free of a direct import.
func WithSource(s SourceReader) Option {
	return optionFunc(func(vm *VM) { vm.Source = s })
}

// Flush flushes the VM's composed output writer, if any.
func (vm *VM) Flush() error {
	if vm.outFlush != nil {
		return vm.outFlush.Flush()
	}
	return nil
}

// Write sends raw bytes to the VM's output, through the flush-able writer
// when one has been configured via WithOutput/WithTee.
func (vm *VM) Write(p []byte) (int, error) {
	if vm.outFlush != nil {
		return vm.outFlush.Write(p)
	}
	if vm.Out != nil {
		return vm.Out.Write(p)
	}
	return len(p), nil
}
