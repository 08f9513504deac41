package testrunner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajames440/starforth/internal/interp"
	"github.com/rajames440/starforth/internal/testrunner"
	"github.com/rajames440/starforth/internal/vm"
	"github.com/rajames440/starforth/internal/words"
)

// newVM builds a fresh VM with the full word set installed, grounded on
// internal/words/words_test.go's run helper.
func newVM(t *testing.T) *vm.VM {
	t.Helper()
	v := vm.New()
	scanner := interp.NewScanner()
	scanner.AddString("testrunner", "")
	interp.New(v, scanner)
	words.Register(v)
	return v
}

func TestRunSingleTest_PassAndFail(t *testing.T) {
	v := newVM(t)
	r := testrunner.NewRunner(v, nil)

	pass := testrunner.TestCase{Name: "ok", Input: "2 3 + DROP", Implemented: true}
	assert.Equal(t, testrunner.Pass, r.RunSingleTest("+", pass))

	fail := testrunner.TestCase{Name: "bad", Input: "1 0 /", Implemented: true}
	assert.Equal(t, testrunner.Fail, r.RunSingleTest("/", fail))

	expectedError := testrunner.TestCase{Name: "div0", Input: "1 0 /", ShouldError: true, Implemented: true}
	assert.Equal(t, testrunner.Pass, r.RunSingleTest("/", expectedError))
}

func TestRunSingleTest_SkipsUnimplemented(t *testing.T) {
	v := newVM(t)
	r := testrunner.NewRunner(v, nil)

	unimplemented := testrunner.TestCase{Name: "stub", Input: "NOPE", Implemented: false}
	assert.Equal(t, testrunner.Skip, r.RunSingleTest("NOPE", unimplemented))
}

func TestRunSingleTest_RestoresStackBetweenCases(t *testing.T) {
	v := newVM(t)
	r := testrunner.NewRunner(v, nil)

	r.RunSingleTest("DUP", testrunner.TestCase{Name: "leaves_data", Input: "1 2 3", Implemented: true})
	require.Equal(t, 0, v.Data.Depth(), "RestoreVMState must clear the data stack between cases")
}

func TestRunTestSuite_UnwindsDictionary(t *testing.T) {
	v := newVM(t)
	r := testrunner.NewRunner(v, nil)

	before := v.Here
	suite := testrunner.WordTestSuite{
		WordName: ":",
		Tests: []testrunner.TestCase{
			{Name: "define", Input: ": SCRATCH-WORD 42 ;", Implemented: true},
		},
	}
	r.RunTestSuite(suite)

	assert.Equal(t, before, v.Here, "suite-defined words must not leak past RestoreDictState")
	assert.Zero(t, v.Dict.Find("SCRATCH-WORD"), "SCRATCH-WORD should have been unwound")
}

func TestRunAllTests_AccumulatesStats(t *testing.T) {
	v := newVM(t)
	r := testrunner.NewDefaultRunner(v)

	stats := r.RunAllTests()
	assert.Greater(t, stats.TotalTests, 0)
	assert.Equal(t, stats.TotalTests, stats.Pass+stats.Fail+stats.Skip+stats.Error)
}

func TestRunModuleTests_UnknownModule(t *testing.T) {
	v := newVM(t)
	r := testrunner.NewDefaultRunner(v)
	err := r.RunModuleTests("No Such Module")
	assert.Error(t, err)
}

func TestRunWordTests_FindsSuite(t *testing.T) {
	v := newVM(t)
	r := testrunner.NewDefaultRunner(v)
	require.NoError(t, r.RunWordTests("DUP"))
}

func TestBreakMeReport_WritesFile(t *testing.T) {
	v := newVM(t)
	r := testrunner.NewDefaultRunner(v)

	path := filepath.Join(t.TempDir(), "BREAK_ME_REPORT.md")
	require.NoError(t, r.BreakMeReport(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "BREAK-ME DIAGNOSTIC REPORT")
	assert.Contains(t, string(data), "Total Tests")
}

func TestAssertHelpers(t *testing.T) {
	v := newVM(t)
	scanner := interp.NewScanner()
	scanner.AddString("assert", "1 2 3")
	interp.New(v, scanner).Interpret()

	assert.True(t, testrunner.AssertStackDepth(v, 3))
	assert.True(t, testrunner.AssertStackTop(v, 3))
	assert.False(t, testrunner.AssertVMError(v, true))
}

func TestSnapshotRestoreVMState(t *testing.T) {
	v := newVM(t)
	scanner := interp.NewScanner()
	scanner.AddString("snap", "1 2 3")
	interp.New(v, scanner).Interpret()
	require.Equal(t, 3, v.Data.Depth())

	snap := testrunner.SnapshotVMState(v)
	testrunner.RestoreVMState(v, snap)
	assert.Equal(t, 0, v.Data.Depth())
}

func TestSnapshotRestoreDictState(t *testing.T) {
	v := newVM(t)
	snap := testrunner.SnapshotDictState(v)

	scanner := interp.NewScanner()
	scanner.AddString("def", ": TEMP-DEF 1 ;")
	interp.New(v, scanner).Interpret()
	require.NotZero(t, v.Dict.Find("TEMP-DEF"))

	testrunner.RestoreDictState(v, snap)
	assert.Zero(t, v.Dict.Find("TEMP-DEF"))
}
