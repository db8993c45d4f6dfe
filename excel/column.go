package excel

import "math"

const alphabetSize = 26

// ColumnNumberToName converts a 1-based column number to its column letters
// (1→"A", 26→"Z", 27→"AA", 703→"AAA"). Numbers below 1 have no name.
func ColumnNumberToName(n int) (string, bool) {
	if n < 1 {
		return "", false
	}

	// Enough room for math.MaxInt in bijective base-26.
	var buf [14]byte
	i := len(buf)
	for dividend := n; dividend > 0; {
		modulo := (dividend - 1) % alphabetSize
		i--
		buf[i] = byte('A' + modulo)
		dividend = (dividend - modulo) / alphabetSize
	}

	return string(buf[i:]), true
}

// ColumnNameToNumber converts column letters to a 1-based column number
// ("A"→1, "b"→2, "AZ"→52). Letters are case-insensitive. Empty names, names
// containing anything other than A–Z, and names past math.MaxInt are rejected.
func ColumnNameToNumber(name string) (int, bool) {
	if name == "" {
		return 0, false
	}

	sum := 0
	for i := 0; i < len(name); i++ {
		d, ok := letterValue(name[i])
		if !ok {
			return 0, false
		}
		if sum > (math.MaxInt-d)/alphabetSize {
			return 0, false
		}
		sum = sum*alphabetSize + d
	}

	return sum, true
}

// letterValue maps an ASCII letter to its position in the alphabet (A=1 … Z=26).
func letterValue(c byte) (int, bool) {
	switch {
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 1, true
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 1, true
	default:
		return 0, false
	}
}
