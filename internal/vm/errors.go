package vm

import "fmt"

// Error is the VM's fault taxonomy: a small closed set of non-zero codes
// recorded on VM.Error rather than thrown, mirroring the teacher's own
// progError/storError/codeError/memLimitError shape (internals.go,
// memcore.go) generalized to the full set spec.md §7 requires.
type Error uint8

// The zero Error (ErrNone) means "no fault", matching spec.md's "non-zero
// integer code when the last operation failed".
const (
	ErrNone Error = iota
	ErrStackUnderflow
	ErrStackOverflow
	ErrReturnStackUnderflow
	ErrReturnStackOverflow
	ErrDivisionByZero
	ErrMisaligned
	ErrOutOfBounds
	ErrDictionaryFull
	ErrWordNotFound
	ErrInvalidBlock
	ErrCompilerError
	ErrNumericOverflow
	ErrParseError
	ErrAborted
)

var errNames = [...]string{
	ErrNone:                 "ok",
	ErrStackUnderflow:       "stack underflow",
	ErrStackOverflow:        "data stack overflow",
	ErrReturnStackUnderflow: "return stack underflow",
	ErrReturnStackOverflow:  "return stack overflow",
	ErrDivisionByZero:       "division by zero",
	ErrMisaligned:           "misaligned address",
	ErrOutOfBounds:          "address out of bounds",
	ErrDictionaryFull:       "dictionary full",
	ErrWordNotFound:         "word not found",
	ErrInvalidBlock:         "invalid block",
	ErrCompilerError:        "compiler error",
	ErrNumericOverflow:      "numeric overflow",
	ErrParseError:           "parse error",
	ErrAborted:              "aborted",
}

// Error implements the error interface, so Error values compose cleanly with
// errors.Is/errors.As and %w wrapping elsewhere in the codebase.
func (e Error) Error() string {
	if int(e) < len(errNames) && errNames[e] != "" {
		return errNames[e]
	}
	return fmt.Sprintf("unknown vm error %d", uint8(e))
}

// faultError wraps an Error with contextual detail, while still comparing
// equal under errors.Is(err, vm.ErrXxx) via Unwrap.
type faultError struct {
	code Error
	detail string
}

func (fe faultError) Error() string {
	if fe.detail == "" {
		return fe.code.Error()
	}
	return fmt.Sprintf("%s: %s", fe.code.Error(), fe.detail)
}

func (fe faultError) Unwrap() error { return fe.code }

// Faultf builds an error that unwraps to code, carrying a formatted detail
// message, the way the teacher's progError/storError carry a single address.
func Faultf(code Error, format string, args ...interface{}) error {
	return faultError{code, fmt.Sprintf(format, args...)}
}
