package testrunner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rajames440/starforth/internal/testrunner"
)

func TestCaseBuilder_PlainCase(t *testing.T) {
	tc := testrunner.NewCase("basic")
	assert.Equal(t, "basic", tc.Name)
	assert.True(t, tc.Implemented)
}

func TestCaseBuilder_ChainedFields(t *testing.T) {
	v := newVM(t)
	r := testrunner.NewRunner(v, nil)

	tc := testrunner.NewCase("div_by_zero").
		WithInput("1 0 /").
		WithExpected("division fault").
		ExpectError()

	assert.Equal(t, testrunner.Pass, r.RunSingleTest("/", tc))
}

func TestCaseBuilder_EdgeCase(t *testing.T) {
	tc := testrunner.NewCase("big").WithInput("999999 999999 *").AsEdgeCase()
	assert.Equal(t, testrunner.EdgeCase, tc.Type)
}
