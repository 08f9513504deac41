package words

import "github.com/rajames440/starforth/internal/vm"

// registerDictWords installs FIND ' FORGET >BODY WORDS, per spec.md §4.3.
func registerDictWords(v *vm.VM) {
	define(v, "FIND", func(v *vm.VM) {
		name, ok := v.Source.NextToken()
		if !ok {
			push(v, 0)
			push(v, 0)
			return
		}
		h := v.Dict.Find(name)
		push(v, vm.Cell(h))
		e := v.Dict.Entry(h)
		found := vm.Cell(0)
		if e != nil {
			found = 1
			if e.Immediate() {
				found = -1
			}
		}
		push(v, found)
	})
	define(v, "'", func(v *vm.VM) {
		name, ok := v.Source.NextToken()
		if !ok {
			v.Fault(vm.Faultf(vm.ErrParseError, "expected a name after '"))
			return
		}
		h := v.Dict.Find(name)
		if h == 0 {
			v.Fault(vm.Faultf(vm.ErrWordNotFound, "%s", name))
			return
		}
		push(v, vm.Cell(h))
	})
	define(v, "FORGET", func(v *vm.VM) {
		name, ok := v.Source.NextToken()
		if !ok {
			v.Fault(vm.Faultf(vm.ErrParseError, "expected a name after FORGET"))
			return
		}
		restoreHere, err := v.Dict.Forget(name)
		if err != nil {
			v.Fault(err)
			return
		}
		v.Here = restoreHere
	})
	define(v, ">BODY", func(v *vm.VM) {
		h, ok := pop(v)
		if !ok {
			return
		}
		e := v.Dict.Entry(int(h))
		if e == nil {
			v.Fault(vm.ErrWordNotFound)
			return
		}
		push(v, vm.Cell(e.PFA))
	})
	define(v, "WORDS", func(v *vm.VM) {
		for _, name := range v.Dict.Names() {
			v.Write([]byte(name))
			v.Write([]byte{' '})
		}
	})
}
