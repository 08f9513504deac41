// Package interp implements StarForth's outer interpreter (tokenizer plus
// interpret/compile dispatch loop) and inner interpreter (threaded-code
// execution), wired onto internal/vm through its SourceReader and
// vm.ExecuteFn seams.
package interp

import (
	"io"
	"strings"
	"unicode"

	"github.com/rajames440/starforth/internal/fileinput"
	"github.com/rajames440/starforth/internal/vm"
)

// Scanner is the concrete vm.SourceReader: it reads whitespace-delimited
// tokens and raw delimited runs off a queue of input sources, grounded on
// the teacher's vm.scan (internals.go) built atop internal/fileinput.Input.
type Scanner struct {
	in fileinput.Input
}

// NewScanner returns an empty Scanner; sources are added with AddReader.
func NewScanner() *Scanner { return &Scanner{} }

// AddReader queues r to be read after any already-queued sources are
// exhausted, mirroring the teacher's multi-file vm.Queue composition.
func (s *Scanner) AddReader(r io.Reader) { s.in.Queue = append(s.in.Queue, r) }

// AddString queues a string as a named source, for LOAD/EVALUATE-style
// nested interpretation of in-memory text.
func (s *Scanner) AddString(name, text string) {
	s.AddReader(namedStringReader{strings.NewReader(text), name})
}

type namedStringReader struct {
	*strings.Reader
	name string
}

func (r namedStringReader) Name() string { return r.name }

// Location reports the name/line of the input currently being scanned, for
// error messages and trace logging.
func (s *Scanner) Location() string { return s.in.Scan.Location.String() }

// NextToken implements vm.SourceReader.
func (s *Scanner) NextToken() (string, bool) {
	var sb strings.Builder
	for {
		r, _, err := s.in.ReadRune()
		if err != nil {
			return "", false
		}
		if !unicode.IsControl(r) && !unicode.IsSpace(r) {
			sb.WriteRune(r)
			break
		}
	}
	for {
		r, _, err := s.in.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			break
		} else if unicode.IsControl(r) || unicode.IsSpace(r) {
			break
		}
		sb.WriteRune(r)
	}
	return sb.String(), true
}

// ReadUntil implements vm.SourceReader, used by comment words ( and
// string words " / S".
func (s *Scanner) ReadUntil(delim byte) (string, bool) {
	var sb strings.Builder
	for {
		r, _, err := s.in.ReadRune()
		if err != nil {
			return sb.String(), false
		}
		if byte(r) == delim && r < 0x80 {
			return sb.String(), true
		}
		sb.WriteRune(r)
	}
}

// SkipLine implements vm.SourceReader, used by the \ comment word.
func (s *Scanner) SkipLine() {
	for {
		r, _, err := s.in.ReadRune()
		if err != nil || r == '\n' {
			return
		}
	}
}

var _ vm.SourceReader = (*Scanner)(nil)
