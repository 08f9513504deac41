package words

import (
	"strings"

	"github.com/rajames440/starforth/internal/vm"
)

// blockScanner implements vm.SourceReader over one block's raw 1024-byte
// text, so LOAD/THRU (block_words.go) can hand it to vm.Interpret without
// internal/words depending on internal/interp's Scanner, per spec.md §9's
// parser/compiler seam.
type blockScanner struct {
	text []byte
	pos  int
}

func newBlockScanner(data []byte) *blockScanner {
	return &blockScanner{text: data}
}

func (b *blockScanner) NextToken() (string, bool) {
	for b.pos < len(b.text) && isSpaceByte(b.text[b.pos]) {
		b.pos++
	}
	if b.pos >= len(b.text) {
		return "", false
	}
	start := b.pos
	for b.pos < len(b.text) && !isSpaceByte(b.text[b.pos]) {
		b.pos++
	}
	return string(b.text[start:b.pos]), true
}

func (b *blockScanner) ReadUntil(delim byte) (string, bool) {
	start := b.pos
	for b.pos < len(b.text) {
		if b.text[b.pos] == delim {
			text := string(b.text[start:b.pos])
			b.pos++
			return text, true
		}
		b.pos++
	}
	return string(b.text[start:b.pos]), false
}

func (b *blockScanner) SkipLine() {
	for b.pos < len(b.text) && b.text[b.pos] != '\n' {
		b.pos++
	}
	if b.pos < len(b.text) {
		b.pos++
	}
}

func (b *blockScanner) Location() string {
	line := strings.Count(string(b.text[:b.pos]), "\n") + 1
	return "block:" + itoa(line)
}

func isSpaceByte(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == 0 }

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

var _ vm.SourceReader = (*blockScanner)(nil)
