package words

import "github.com/rajames440/starforth/internal/vm"

// registerVocabularyWords installs VOCABULARY FORTH DEFINITIONS CONTEXT
// CURRENT ORDER, per spec.md §4.5. CONTEXT and CURRENT each push the address
// of a cell holding the selected vocabulary's handle (vm.VocabHandle), so
// CONTEXT @ / CURRENT @ read the selection; StarForth keeps one flat
// dictionary chain rather than splitting it per vocabulary (see DESIGN.md).
func registerVocabularyWords(v *vm.VM) {
	define(v, "VOCABULARY", func(v *vm.VM) {
		name, ok := v.Source.NextToken()
		if !ok {
			v.Fault(vm.Faultf(vm.ErrParseError, "expected a name after VOCABULARY"))
			return
		}
		vocab := &vm.Vocabulary{Name: name}
		h := v.Dict.Create(name, v.Here)
		e := v.Dict.Entry(h)
		e.Kind = vm.KindPrimitive
		e.Prim = func(v *vm.VM) { v.Context = vocab }
		v.Dict.MarkBuiltin(h)
	})
	define(v, "FORTH", func(v *vm.VM) { v.Context = v.Forth })
	define(v, "DEFINITIONS", func(v *vm.VM) { v.Current = v.Context })

	// CONTEXT and CURRENT are real VARIABLE-shaped cells (so @ and ! work on
	// them); each run of the word rewrites its cell from v.Context/v.Current
	// before pushing the address. A value stored there with ! never changes
	// v.Context/v.Current and is overwritten the next time the word runs.
	contextCell := v.Here
	v.Compile(vm.Cell(v.VocabHandle(v.Context)))
	define(v, "CONTEXT", func(v *vm.VM) {
		if err := v.Mem.StoreCell(contextCell, vm.Cell(v.VocabHandle(v.Context))); err != nil {
			v.Fault(err)
			return
		}
		push(v, vm.Cell(contextCell))
	})
	currentCell := v.Here
	v.Compile(vm.Cell(v.VocabHandle(v.Current)))
	define(v, "CURRENT", func(v *vm.VM) {
		if err := v.Mem.StoreCell(currentCell, vm.Cell(v.VocabHandle(v.Current))); err != nil {
			v.Fault(err)
			return
		}
		push(v, vm.Cell(currentCell))
	})
	define(v, "ORDER", func(v *vm.VM) {
		for _, vocab := range v.Order {
			v.Write([]byte(vocab.Name))
			v.Write([]byte{' '})
		}
	})
}
