package testrunner

// Test-case tables below are adapted from
// original_source/src/test_runner/modules/*.c (one WordTestSuite per C
// array entry, same word/name/input/should-error shape), trimmed to the
// words StarForth actually implements and restyled as Go slice literals in
// place of the C struct-array-with-NULL-sentinel idiom.

func stackSuites() []WordTestSuite {
	return []WordTestSuite{
		{"DUP", []TestCase{
			NewCase("basic").WithInput("5 DUP . . CR").WithExpected("5 5"),
			NewCase("negative").WithInput("-42 DUP . . CR").WithExpected("-42 -42"),
			NewCase("empty_stack").WithInput("DUP").ExpectError(),
		}},
		{"DROP", []TestCase{
			{Name: "basic", Input: "5 7 DROP . CR", Expected: "5", Implemented: true},
			{Name: "double_drop", Input: "1 2 3 DROP DROP . CR", Expected: "1", Implemented: true},
			{Name: "empty_stack", Input: "DROP", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{"SWAP", []TestCase{
			{Name: "basic", Input: "5 7 SWAP . . CR", Expected: "7 5", Implemented: true},
			{Name: "one_item", Input: "42 SWAP", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{"OVER", []TestCase{
			{Name: "basic", Input: "5 7 OVER . . . CR", Expected: "5 7 5", Implemented: true},
			{Name: "empty_stack", Input: "OVER", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{"ROT", []TestCase{
			{Name: "basic", Input: "1 2 3 ROT . . . CR", Expected: "2 3 1", Implemented: true},
			{Name: "two_items", Input: "1 2 ROT", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{"DEPTH", []TestCase{
			{Name: "empty", Input: "DEPTH . CR", Expected: "0", Implemented: true},
			{Name: "multiple", Input: "1 2 3 DEPTH . CR", Expected: "3", Implemented: true},
		}},
		{"PICK", []TestCase{
			{Name: "pick_0", Input: "1 2 3 0 PICK . CR", Expected: "3", Implemented: true},
			{Name: "pick_2", Input: "1 2 3 2 PICK . CR", Expected: "1", Implemented: true},
		}},
		{"ROLL", []TestCase{
			{Name: "roll_1", Input: "1 2 3 1 ROLL . . . CR", Expected: "1 3 2", Implemented: true},
		}},
		{">R", []TestCase{
			{Name: "basic", Input: "5 >R R> . CR", Expected: "5", Implemented: true},
			{Name: "empty_stack", Input: ">R", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{"NIP", []TestCase{
			{Name: "basic", Input: "5 7 NIP . CR", Expected: "7", Implemented: true},
			{Name: "one_item", Input: "42 NIP", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{"TUCK", []TestCase{
			{Name: "basic", Input: "5 7 TUCK . . . CR", Expected: "7 5 7", Implemented: true},
			{Name: "one_item", Input: "42 TUCK", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{"?DUP", []TestCase{
			{Name: "nonzero", Input: "5 ?DUP . . CR", Expected: "5 5", Implemented: true},
			{Name: "zero", Input: "0 ?DUP DEPTH . CR", Expected: "1", Implemented: true},
		}},
	}
}

func arithmeticSuites() []WordTestSuite {
	return []WordTestSuite{
		{"+", []TestCase{
			{Name: "basic", Input: "5 7 + . CR", Expected: "12", Implemented: true},
			{Name: "both_negative", Input: "-5 -3 + . CR", Expected: "-8", Implemented: true},
			{Name: "empty_stack", Input: "+", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{"-", []TestCase{
			{Name: "basic", Input: "10 3 - . CR", Expected: "7", Implemented: true},
			{Name: "from_zero", Input: "0 5 - . CR", Expected: "-5", Implemented: true},
			{Name: "one_item", Input: "42 -", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{"*", []TestCase{
			{Name: "basic", Input: "6 7 * . CR", Expected: "42", Implemented: true},
			{Name: "by_negative", Input: "6 -7 * . CR", Expected: "-42", Implemented: true},
			{Name: "empty_stack", Input: "*", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{"/", []TestCase{
			{Name: "basic", Input: "15 3 / . CR", Expected: "5", Implemented: true},
			{Name: "negative_dividend", Input: "-15 3 / . CR", Expected: "-5", Implemented: true},
			{Name: "div_by_zero", Input: "1 0 /", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{"MOD", []TestCase{
			{Name: "basic", Input: "10 3 MOD . CR", Expected: "1", Implemented: true},
			{Name: "div_by_zero", Input: "1 0 MOD", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{"NEGATE", []TestCase{
			{Name: "basic", Input: "5 NEGATE . CR", Expected: "-5", Implemented: true},
		}},
		{"ABS", []TestCase{
			{Name: "negative", Input: "-5 ABS . CR", Expected: "5", Implemented: true},
		}},
	}
}

func logicalSuites() []WordTestSuite {
	return []WordTestSuite{
		{"AND", []TestCase{
			{Name: "bitwise", Input: "85 51 AND . CR", Expected: "17", Implemented: true},
			{Name: "empty_stack", Input: "AND", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{"OR", []TestCase{
			{Name: "bitwise", Input: "85 51 OR . CR", Expected: "119", Implemented: true},
		}},
		{"XOR", []TestCase{
			{Name: "both_true", Input: "-1 -1 XOR . CR", Expected: "0", Implemented: true},
		}},
		{"INVERT", []TestCase{
			{Name: "zero", Input: "0 INVERT . CR", Expected: "-1", Implemented: true},
		}},
		{"=", []TestCase{
			{Name: "equal", Input: "5 5 = . CR", Expected: "-1", Implemented: true},
			{Name: "not_equal", Input: "5 6 = . CR", Expected: "0", Implemented: true},
		}},
		{"<", []TestCase{
			{Name: "true", Input: "3 5 < . CR", Expected: "-1", Implemented: true},
		}},
	}
}

func mixedArithmeticSuites() []WordTestSuite {
	return []WordTestSuite{
		{"*/", []TestCase{
			{Name: "basic", Input: "6 7 4 */ . CR", Expected: "10", Implemented: true},
			{Name: "div_by_zero", Input: "6 7 0 */", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{"*/MOD", []TestCase{
			{Name: "basic", Input: "17 3 5 */MOD . . CR", Expected: "1 10", Implemented: true},
			{Name: "div_by_zero", Input: "6 7 0 */MOD", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{"M*", []TestCase{
			{Name: "basic", Input: "1000000 1000000 M* . . CR", Expected: "widened product", Implemented: true},
		}},
	}
}

func doubleSuites() []WordTestSuite {
	return []WordTestSuite{
		{"2DROP", []TestCase{
			{Name: "basic", Input: "1 2 3 4 2DROP . . CR", Expected: "1 2", Implemented: true},
			{Name: "empty_stack", Input: "2DROP", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{"2DUP", []TestCase{
			{Name: "basic", Input: "100 200 2DUP . . . . CR", Expected: "100 200 100 200", Implemented: true},
		}},
		{"2OVER", []TestCase{
			{Name: "basic", Input: "10 20 30 40 2OVER . . . . . . CR", Expected: "10 20 30 40 10 20", Implemented: true},
		}},
		{"2SWAP", []TestCase{
			{Name: "basic", Input: "1 2 3 4 2SWAP . . . . CR", Expected: "3 4 1 2", Implemented: true},
		}},
		{"D+", []TestCase{
			{Name: "basic", Input: "1 0 2 0 D+ . . CR", Expected: "3 0", Implemented: true},
		}},
	}
}

func formatSuites() []WordTestSuite {
	return []WordTestSuite{
		{"BASE", []TestCase{
			{Name: "hex", Input: "HEX FF . CR DECIMAL", Expected: "ff", Implemented: true},
			{Name: "base_fetch", Input: "BASE @ . CR", Expected: "current base", Implemented: true},
		}},
		{"DECIMAL", []TestCase{
			{Name: "from_hex", Input: "HEX FF DECIMAL . CR", Expected: "255", Implemented: true},
		}},
		{"HEX", []TestCase{
			{Name: "from_decimal", Input: "DECIMAL 255 HEX . CR DECIMAL", Expected: "ff", Implemented: true},
		}},
		{"#S", []TestCase{
			{Name: "basic", Input: "123 0 <# #S #>", Expected: "123", Implemented: true},
		}},
	}
}

func stringSuites() []WordTestSuite {
	return []WordTestSuite{
		{"COUNT", []TestCase{
			{Name: "basic", Input: `HERE S" Test" 2DROP COUNT . . CR`, Expected: "length and addr+1", Implemented: true},
		}},
		{"TYPE", []TestCase{
			{Name: "basic", Input: `S" hi" TYPE CR`, Expected: "hi", Implemented: true},
		}},
		{"\\", []TestCase{
			{Name: "basic", Input: "5 \\ this is ignored\nDUP . CR", Expected: "5 5", Implemented: true},
		}},
	}
}

func ioSuites() []WordTestSuite {
	return []WordTestSuite{
		{"CR", []TestCase{
			{Name: "basic", Input: "5 . CR 7 . CR", Expected: "5 then 7 on separate lines", Implemented: true},
		}},
		{"EMIT", []TestCase{
			{Name: "basic", Input: "65 EMIT CR", Expected: "A", Implemented: true},
		}},
		{"SPACE", []TestCase{
			{Name: "basic", Input: "5 . SPACE 7 . CR", Expected: "5  7", Implemented: true},
		}},
		{"SPACES", []TestCase{
			{Name: "basic", Input: "3 SPACES 5 . CR", Expected: "   5", Implemented: true},
			{Name: "zero", Input: "0 SPACES 5 . CR", Expected: "5", Implemented: true},
		}},
	}
}

func dictionarySuites() []WordTestSuite {
	return []WordTestSuite{
		{"HERE", []TestCase{
			{Name: "after_comma", Input: "HERE 42 , HERE SWAP - . CR", Expected: "cell size", Implemented: true},
			{Name: "stability", Input: "HERE DUP HERE = . CR", Expected: "-1", Implemented: true},
		}},
		{"ALLOT", []TestCase{
			{Name: "basic", Input: "HERE 10 ALLOT HERE SWAP - . CR", Expected: "10", Implemented: true},
			{Name: "empty_stack", Input: "ALLOT", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{",", []TestCase{
			{Name: "basic", Input: "42 , HERE 8 - @ . CR", Expected: "42", Implemented: true},
		}},
		{"FIND", []TestCase{
			{Name: "found", Input: "FIND DUP", Expected: "handle and non-immediate flag", Implemented: true},
		}},
		{"'", []TestCase{
			{Name: "not_found", Input: "' NOSUCHWORD", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
	}
}

func vocabularySuites() []WordTestSuite {
	return []WordTestSuite{
		{"VOCABULARY", []TestCase{
			{Name: "basic", Input: "VOCABULARY TEST-VOC1 TEST-VOC1 DEFINITIONS FORTH DEFINITIONS", Expected: "creates vocabulary", Implemented: true},
			{Name: "multiple_vocabs", Input: "VOCABULARY VA VOCABULARY VB VA DEFINITIONS FORTH DEFINITIONS", Expected: "multiple vocabs", Implemented: true},
		}},
		{"CONTEXT", []TestCase{
			{Name: "fetch", Input: "CONTEXT @ . CR", Expected: "current vocabulary handle", Implemented: true},
		}},
		{"ORDER", []TestCase{
			{Name: "basic", Input: "ORDER", Expected: "search order names", Implemented: true},
		}},
	}
}

func blockSuites() []WordTestSuite {
	return []WordTestSuite{
		{"BLOCK", []TestCase{
			{Name: "basic", Input: "1 BLOCK DUP . CR", Expected: "block address", Implemented: true},
			{Name: "zero_block", Input: "0 BLOCK", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{"BUFFER", []TestCase{
			{Name: "basic", Input: "1 BUFFER DUP . CR", Expected: "buffer address", Implemented: true},
		}},
		{"UPDATE", []TestCase{
			{Name: "basic", Input: "1 BLOCK DROP UPDATE SAVE-BUFFERS", Expected: "marks and flushes", Implemented: true},
		}},
		{"LOAD", []TestCase{
			{Name: "basic", Input: "1 LOAD", Expected: "interprets block 1", Implemented: true},
		}},
	}
}

func systemSuites() []WordTestSuite {
	return []WordTestSuite{
		{"ABORT", []TestCase{
			{Name: "with_data", Input: "1 2 3 ABORT DEPTH . CR", Expected: "clears stack", Implemented: true, ShouldError: true},
		}},
		{`ABORT"`, []TestCase{
			NewCase("false_flag_continues").WithInput(`0 ABORT" bad" 42 . CR`).WithExpected("42"),
			NewCase("true_flag_aborts").WithInput(`-1 ABORT" bad"`).ExpectError(),
		}},
		{"EXECUTE", []TestCase{
			{Name: "basic", Input: "7 FIND DUP DROP EXECUTE . . CR", Expected: "7 7", Implemented: true},
		}},
	}
}

func definingSuites() []WordTestSuite {
	return []WordTestSuite{
		{":", []TestCase{
			{Name: "basic", Input: ": TEST1 42 ; TEST1 . CR", Expected: "42", Implemented: true},
			{Name: "nested", Input: ": TEST3 : ;", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{";", []TestCase{
			{Name: "alone", Input: ";", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{"CONSTANT", []TestCase{
			{Name: "basic", Input: "42 CONSTANT MEANING MEANING . CR", Expected: "42", Implemented: true},
			{Name: "empty_stack", Input: "CONSTANT", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{"VARIABLE", []TestCase{
			{Name: "basic", Input: "VARIABLE X 10 X ! X @ . CR", Expected: "10", Implemented: true},
		}},
		{"DOES>", []TestCase{
			{Name: "create_does", Input: ": CONST CREATE , DOES> @ ; 5 CONST FIVE FIVE . CR", Expected: "5", Implemented: true},
		}},
	}
}

func controlSuites() []WordTestSuite {
	return []WordTestSuite{
		{"IF", []TestCase{
			{Name: "true", Input: ": TEST1 IF 42 ELSE 24 THEN . ; -1 TEST1 CR", Expected: "42", Implemented: true},
			{Name: "no_else", Input: ": TEST4 IF 42 THEN . ; -1 TEST4 CR", Expected: "42", Implemented: true},
		}},
		{"ELSE", []TestCase{
			{Name: "alone", Input: "ELSE", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{"THEN", []TestCase{
			{Name: "alone", Input: "THEN", ShouldError: true, Type: ErrorCase, Implemented: true},
		}},
		{"DO", []TestCase{
			{Name: "basic", Input: ": SUM 0 SWAP 0 DO I + LOOP ; 5 SUM . CR", Expected: "10", Implemented: true},
		}},
		{"BEGIN", []TestCase{
			{Name: "while_repeat", Input: ": COUNTDOWN BEGIN DUP 0 > WHILE 1- REPEAT ; 5 COUNTDOWN . CR", Expected: "0", Implemented: true},
		}},
	}
}

func starforthSuites() []WordTestSuite {
	return []WordTestSuite{
		{".S", []TestCase{
			{Name: "basic", Input: "1 2 3 .S", Expected: "<3> 1 2 3", Implemented: true},
		}},
		{"SEE", []TestCase{
			{Name: "colon_def", Input: ": CUBE DUP DUP * * ; SEE CUBE", Expected: "decompiled thread", Implemented: true},
		}},
		{"WORDS", []TestCase{
			{Name: "basic", Input: "WORDS", Expected: "dictionary listing", Implemented: true},
		}},
	}
}

// AllModules returns every test module in POST order, per test_runner.c's
// test_modules table: foundational stack/arithmetic/logical words first,
// then the rest of the FORTH-79 word set, then StarForth's own extensions.
func AllModules() []TestModule {
	return []TestModule{
		{Name: "Stack Words", Suites: stackSuites()},
		{Name: "Arithmetic Words", Suites: arithmeticSuites()},
		{Name: "Logical Words", Suites: logicalSuites()},
		{Name: "Mixed Arithmetic Words", Suites: mixedArithmeticSuites()},
		{Name: "Double Words", Suites: doubleSuites()},
		{Name: "Format Words", Suites: formatSuites()},
		{Name: "String Words", Suites: stringSuites()},
		{Name: "I/O Words", Suites: ioSuites()},
		{Name: "Block Words", Suites: blockSuites()},
		{Name: "Dictionary Words", Suites: dictionarySuites()},
		{Name: "Vocabulary Words", Suites: vocabularySuites()},
		{Name: "System Words", Suites: systemSuites()},
		{Name: "Defining Words", Suites: definingSuites()},
		{Name: "Control Words", Suites: controlSuites()},
		{Name: "StarForth Words", Suites: starforthSuites()},
	}
}
