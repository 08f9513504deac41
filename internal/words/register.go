package words

import "github.com/rajames440/starforth/internal/vm"

// Register installs the complete StarForth word set onto v, in the order
// spec.md §4.7's run_all_tests module list enumerates: stack, memory,
// arithmetic/logical/mixed/double, format, string, I/O, block, dictionary,
// vocabulary, system, defining, control-flow, then StarForth's own
// introspection extensions.
func Register(v *vm.VM) {
	registerStackWords(v)
	registerMemoryWords(v)
	registerArithWords(v)
	registerLogicalWords(v)
	registerMixedArithWords(v)
	registerDoubleWords(v)
	registerFormatWords(v)
	registerStringWords(v)
	registerIOWords(v)
	registerBlockWords(v)
	registerDictWords(v)
	registerVocabularyWords(v)
	registerSystemWords(v)
	registerDefiningWords(v)
	registerControlFlowWords(v)
	registerStarForthWords(v)
}
