package vm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajames440/starforth/internal/vm"
)

func TestDictionary_CreateAndFind(t *testing.T) {
	d := vm.NewDictionary()
	h := d.Create("DUP", 0)
	assert.NotZero(t, h)
	assert.Equal(t, h, d.Find("DUP"))
	assert.Zero(t, d.Find("NOPE"))
}

func TestDictionary_NewestShadowsOlder(t *testing.T) {
	d := vm.NewDictionary()
	first := d.Create("X", 0)
	second := d.Create("X", 10)
	assert.Equal(t, second, d.Find("X"))
	assert.NotEqual(t, first, second)
}

func TestDictionary_HiddenEntryNotFound(t *testing.T) {
	d := vm.NewDictionary()
	h := d.Create("SECRET", 0)
	d.Entry(h).Flags |= vm.FlagHidden
	assert.Zero(t, d.Find("SECRET"))
}

func TestDictionary_ForgetRewindsHereAndChain(t *testing.T) {
	d := vm.NewDictionary()
	d.Create("A", 0)
	bHandle := d.Create("B", 20)
	d.Create("C", 40)

	restoreHere, err := d.Forget("B")
	require.NoError(t, err)
	assert.Equal(t, 20, restoreHere)
	assert.Zero(t, d.Find("B"))
	assert.Zero(t, d.Find("C"))
	assert.Equal(t, bHandle-1, d.Find("A"))
}

func TestDictionary_ForgetUnknownWordErrors(t *testing.T) {
	d := vm.NewDictionary()
	_, err := d.Forget("NOPE")
	assert.ErrorIs(t, err, vm.ErrWordNotFound)
}

func TestDictionary_ForgetBuiltinRefused(t *testing.T) {
	d := vm.NewDictionary()
	h := d.Create("DUP", 0)
	d.MarkBuiltin(h)
	_, err := d.Forget("DUP")
	assert.Error(t, err)
}

func TestDictionary_SnapshotRestore(t *testing.T) {
	d := vm.NewDictionary()
	d.Create("A", 0)
	latest, here := d.Snapshot(100)
	assert.Equal(t, 100, here)

	d.Create("B", 100)
	assert.NotZero(t, d.Find("B"))

	d.Restore(latest)
	assert.Zero(t, d.Find("B"))
	assert.NotZero(t, d.Find("A"))
}

func TestDictionary_NamesNewestFirst(t *testing.T) {
	d := vm.NewDictionary()
	d.Create("A", 0)
	d.Create("B", 0)
	assert.Equal(t, []string{"B", "A"}, d.Names())
}
