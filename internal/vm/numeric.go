package vm

import "strings"

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// ParseNumber parses token in the given radix (spec.md §4.6's BASE-aware
// number parsing), accepting a leading '-' and a trailing '.' to denote a
// double-precision literal (spec.md §6's "Numbers parsed in current BASE;
// leading - denotes negation; . at end indicates double").
func ParseNumber(token string, base int) (value Cell, isDouble bool, ok bool) {
	if token == "" {
		return 0, false, false
	}
	s := token
	if strings.HasSuffix(s, ".") {
		isDouble = true
		s = s[:len(s)-1]
		if s == "" {
			return 0, false, false
		}
	}
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
		if s == "" {
			return 0, false, false
		}
	}
	var acc int64
	for i := 0; i < len(s); i++ {
		d := digitValue(s[i])
		if d < 0 || d >= base {
			return 0, false, false
		}
		acc = acc*int64(base) + int64(d)
	}
	if neg {
		acc = -acc
	}
	return Cell(acc), isDouble, true
}

func digitValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'z':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'Z':
		return int(b-'A') + 10
	default:
		return -1
	}
}

// FormatNumber renders v in the given radix, the inverse of ParseNumber,
// used by . .R .S and SEE (spec.md §4.6's <# # #S machinery in
// internal/words/format_words.go extracts its digits separately).
func FormatNumber(v Cell, base int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}
	var buf [64]byte
	i := len(buf)
	for u > 0 {
		i--
		buf[i] = digits[u%uint64(base)]
		u /= uint64(base)
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
