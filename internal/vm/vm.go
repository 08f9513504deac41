package vm

import (
	"context"
	"io"

	"github.com/rajames440/starforth/internal/flushio"
	"github.com/rajames440/starforth/internal/logio"
)

// Mode is the VM's interpret/compile state, per spec.md §4.8.
type Mode uint8

const (
	ModeInterpret Mode = iota
	ModeCompile
)

func (m Mode) String() string {
	if m == ModeCompile {
		return "COMPILE"
	}
	return "INTERPRET"
}

// Default sizing, overridable through VMOption, grounded on the teacher's
// own default-then-override pattern in internals.go's init()/options.go.
const (
	DefaultMemorySize = 1 << 20 // 1 MiB
	DefaultStackSize  = 1024    // cells
	DefaultPadSize    = 256     // bytes
	HoldBufferSize    = 80      // pictured-output scratch, per spec.md §4.6
	BlockBufSize      = 1024    // mirrors internal/block.Size, per spec.md §6
)

// BlockAccessor is the seam VM uses to reach block storage without
// internal/vm depending on internal/block directly (spec.md keeps block
// persistence an external collaborator, §1).
type BlockAccessor interface {
	Block(n int) ([]byte, error)
	Buffer(n int) ([]byte, error)
	Update() error
	SaveBuffers() error
	EmptyBuffers()
	Flush() error
}

// SourceReader is the seam VM uses to pull tokens and raw runs of source
// text, so comment words ( \ (- and string words " S" can be implemented as
// ordinary primitives in internal/words without that package depending on
// internal/interp's tokenizer, per spec.md §9's "parser/compiler ...
// referenced only through interpret(vm, source)".
type SourceReader interface {
	// NextToken returns the next whitespace-delimited token, or ok=false at
	// end of input.
	NextToken() (token string, ok bool)
	// ReadUntil consumes and returns source text up to and including the
	// next occurrence of delim (the delimiter itself is not included in the
	// returned text). ok is false if input ended first.
	ReadUntil(delim byte) (text string, ok bool)
	// SkipLine discards the remainder of the current input line.
	SkipLine()
	// Location describes the current read position, for error reporting.
	Location() string
}

// VM aggregates every piece of process-wide interpreter state, per
// spec.md §3.
type VM struct {
	Data   *Stack
	Return *Stack
	Mem    *Memory
	Dict   *Dictionary

	Here    int
	Pad     int
	BlockBuf int // scratch region BLOCK/BUFFER copy one block's bytes into

	Latest  dictHandle // not updated by any word; Dict.Latest() holds the newest entry
	Mode    Mode
	Error   Error

	// LastFault holds the most recent code Fault recorded, surviving the
	// outer interpret loop's per-token auto-clear of Error (spec.md §7's
	// "errors are recorded... then recovered"); callers that need to know
	// whether a fault occurred during an Interpret() pass -- rather than
	// whether one is outstanding right now -- read this instead of Error.
	LastFault Error

	ExitColon       bool
	AbortRequested  bool
	HaltRequested   bool // set by BYE (or a cancelled Ctx); the outer interpret loop returns when it is set
	BlockContinue   bool // set by --> to interrupt the current LOAD/THRU pass
	CompilingWord   dictHandle
	CurrentExecuting dictHandle
	ControlFlow     []ControlMarker

	Base int // numeric I/O radix, default 10
	Scr  int // last listed/loaded block number

	// Context/Current implement the CONTEXT/CURRENT vocabulary selection
	// (spec.md §4.5's Vocabulary section). Forth is the always-present root.
	Context *Vocabulary
	Current *Vocabulary
	Forth   *Vocabulary
	Order   []*Vocabulary

	Blocks BlockAccessor
	Source SourceReader

	// Ctx is set for the duration of a Run(ctx) call; the outer interpret
	// loop (internal/interp) consults it once per token so a cancelled
	// context stops the VM at the next token boundary, per spec.md §5.
	Ctx context.Context

	vocabs []*Vocabulary

	// Pictured-output scratch, built right-to-left by <# # #S SIGN HOLD #>.
	hold    []byte
	holdPos int

	Out io.Writer
	outFlush flushio.WriteFlusher

	logio.Logging

	// ExecuteFn is installed by internal/interp at wiring time; it runs a
	// dictionary entry (primitive, colon thread, constant, variable, or
	// does>-trampoline) to completion. Word primitives that need to invoke
	// another word by handle (EXECUTE) call vm.Execute, keeping
	// internal/words free of a dependency on internal/interp's thread
	// encoding.
	ExecuteFn func(vm *VM, h dictHandle)

	// InterpretFn is installed by internal/interp alongside ExecuteFn; it
	// runs the outer interpret/compile loop to exhaustion of whatever
	// source is currently set in vm.Source. LOAD/THRU (internal/words)
	// call vm.Interpret after swapping in a block's SourceReader, so
	// re-entering the outer loop never requires internal/words to import
	// internal/interp.
	InterpretFn func(vm *VM)
}

// Execute runs dictionary entry h to completion.
func (vm *VM) Execute(h int) {
	if vm.ExecuteFn == nil || h == 0 {
		vm.Fault(ErrWordNotFound)
		return
	}
	vm.ExecuteFn(vm, h)
}

// Interpret runs the outer loop over the current vm.Source to exhaustion,
// per spec.md §6's "LOAD interprets the named block's text exactly as if
// typed at the terminal".
func (vm *VM) Interpret() {
	if vm.InterpretFn == nil {
		vm.Fault(ErrInvalidBlock)
		return
	}
	vm.InterpretFn(vm)
}

// Vocabulary names a dictionary search scope, per spec.md §4.5. StarForth
// keeps one flat dictionary chain (Dictionary.Find walks it unconditionally)
// and layers vocabulary bookkeeping on top as a naming/definitions-target
// convenience, rather than splitting the chain per vocabulary -- a
// simplification recorded in DESIGN.md.
type Vocabulary struct {
	Name string
	Head dictHandle // not updated by any word; lookup does not use it
}

// RegisterVocabulary adds vocab to the VM's vocabulary registry and returns
// its 1-based handle, the value CONTEXT/CURRENT hold as a plain Cell so
// CONTEXT @ / CURRENT @ read it like an ordinary variable per spec.md §4.5.
func (vm *VM) RegisterVocabulary(vocab *Vocabulary) int {
	vm.vocabs = append(vm.vocabs, vocab)
	return len(vm.vocabs)
}

// VocabByHandle resolves a CONTEXT/CURRENT-style handle back to its
// Vocabulary, or nil for an out-of-range handle.
func (vm *VM) VocabByHandle(h int) *Vocabulary {
	if h <= 0 || h > len(vm.vocabs) {
		return nil
	}
	return vm.vocabs[h-1]
}

// VocabHandle returns vocab's registry handle, registering it if this is its
// first use.
func (vm *VM) VocabHandle(vocab *Vocabulary) int {
	for i, existing := range vm.vocabs {
		if existing == vocab {
			return i + 1
		}
	}
	return vm.RegisterVocabulary(vocab)
}

// New constructs a VM with defaults, then applies opts, mirroring the
// teacher's New(opts ...VMOption) in api.go.
func New(opts ...Option) *VM {
	vm := &VM{
		Data:   NewStack(DefaultStackSize),
		Return: NewStack(DefaultStackSize),
		Mem:    NewMemory(DefaultMemorySize),
		Dict:   NewDictionary(),
		Base:     10,
		Pad:      DefaultMemorySize - DefaultPadSize,
		BlockBuf: DefaultMemorySize - DefaultPadSize - BlockBufSize,
		Here:     0,
		Out:      io.Discard,
	}
	vm.Forth = &Vocabulary{Name: "FORTH"}
	vm.RegisterVocabulary(vm.Forth)
	vm.Context = vm.Forth
	vm.Current = vm.Forth
	vm.Order = []*Vocabulary{vm.Forth}
	vm.hold = make([]byte, HoldBufferSize)
	vm.ResetHold()
	for _, opt := range opts {
		opt.apply(vm)
	}
	return vm
}

// ResetHold rewinds the pictured-output cursor to the end of the scratch
// buffer, ready to HOLD digits right-to-left, per spec.md §4.6.
func (vm *VM) ResetHold() { vm.holdPos = len(vm.hold) }

// Hold prepends one byte to the pictured-output buffer. Overflow (more
// digits held than HoldBufferSize) sets ErrNumericOverflow, per spec.md §4.6.
func (vm *VM) Hold(b byte) {
	if vm.holdPos == 0 {
		vm.Fault(ErrNumericOverflow)
		return
	}
	vm.holdPos--
	vm.hold[vm.holdPos] = b
}

// HoldString returns the bytes held so far, in output order.
func (vm *VM) HoldString() []byte { return vm.hold[vm.holdPos:] }

// Fault records a non-zero error code on the VM, per spec.md §7's
// "errors are recorded on the VM, not thrown". Primitives call this instead
// of returning an error so that the interpreter's per-token error check
// (spec.md §4.5 step 4) is the single place execution actually stops.
func (vm *VM) Fault(err error) {
	if err == nil {
		return
	}
	var code Error
	if !asError(err, &code) {
		code = ErrCompilerError
	}
	vm.Error = code
	vm.LastFault = code
}

func asError(err error, code *Error) bool {
	type unwrapper interface{ Unwrap() error }
	for {
		if c, ok := err.(Error); ok {
			*code = c
			return true
		}
		u, ok := err.(unwrapper)
		if !ok {
			return false
		}
		err = u.Unwrap()
		if err == nil {
			return false
		}
	}
}

// Abort clears both stacks and returns the VM to INTERPRET mode, per
// spec.md §5 ("ABORT clears both stacks and returns to the top-level
// interpreter loop").
func (vm *VM) Abort() {
	vm.Data.Clear()
	vm.Return.Clear()
	vm.Mode = ModeInterpret
	vm.CompilingWord = 0
	vm.ExitColon = false
	vm.AbortRequested = false
	vm.Error = ErrNone
}

// Quit resets both stacks and re-enters interpret mode without printing an
// OK prompt, per spec.md §5.
func (vm *VM) Quit() {
	vm.Abort()
}
