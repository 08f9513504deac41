package words

import "github.com/rajames440/starforth/internal/vm"

// registerIOWords installs CR EMIT SPACE SPACES, per spec.md §4.4's output
// primitives, all built on the same v.Write seam format_words.go's "." and
// string_words.go's TYPE already use, so no primitive here needs to know
// whether stdout is a terminal, a file, or a teeing writer.
func registerIOWords(v *vm.VM) {
	define(v, "CR", func(v *vm.VM) { v.Write([]byte{'\n'}) })
	define(v, "EMIT", func(v *vm.VM) {
		c, ok := pop(v)
		if !ok {
			return
		}
		v.Write([]byte{byte(c)})
	})
	define(v, "SPACE", func(v *vm.VM) { v.Write([]byte{' '}) })
	define(v, "SPACES", func(v *vm.VM) {
		n, ok := pop(v)
		if !ok {
			return
		}
		for i := vm.Cell(0); i < n; i++ {
			v.Write([]byte{' '})
		}
	})
}
