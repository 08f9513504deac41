package interp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajames440/starforth/internal/interp"
)

func TestScanner_NextTokenSplitsOnWhitespace(t *testing.T) {
	s := interp.NewScanner()
	s.AddString("t", "DUP   SWAP\n1 2 +")
	var got []string
	for {
		tok, ok := s.NextToken()
		if !ok {
			break
		}
		got = append(got, tok)
	}
	assert.Equal(t, []string{"DUP", "SWAP", "1", "2", "+"}, got)
}

func TestScanner_ReadUntilConsumesUpToDelimiter(t *testing.T) {
	s := interp.NewScanner()
	s.AddString("t", " this is a comment) REST")
	text, ok := s.ReadUntil(')')
	require.True(t, ok)
	assert.Equal(t, " this is a comment", text)

	tok, ok := s.NextToken()
	require.True(t, ok)
	assert.Equal(t, "REST", tok)
}

func TestScanner_ReadUntilReportsUnterminated(t *testing.T) {
	s := interp.NewScanner()
	s.AddString("t", "no closer here")
	_, ok := s.ReadUntil(')')
	assert.False(t, ok)
}

func TestScanner_SkipLineDiscardsRestOfLine(t *testing.T) {
	s := interp.NewScanner()
	s.AddString("t", "junk junk junk\nNEXT")
	s.SkipLine()
	tok, ok := s.NextToken()
	require.True(t, ok)
	assert.Equal(t, "NEXT", tok)
}

func TestScanner_MultipleQueuedSources(t *testing.T) {
	s := interp.NewScanner()
	s.AddReader(strings.NewReader("FIRST"))
	s.AddReader(strings.NewReader("SECOND"))
	tok1, ok := s.NextToken()
	require.True(t, ok)
	tok2, ok := s.NextToken()
	require.True(t, ok)
	assert.Equal(t, []string{"FIRST", "SECOND"}, []string{tok1, tok2})

	_, ok = s.NextToken()
	assert.False(t, ok)
}
