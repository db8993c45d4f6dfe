package excel

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrInvalidAddress is returned when a string does not match the address grammar.
	ErrInvalidAddress = errors.New("invalid cell address")
	// ErrInvalidColumn is returned for column numbers below 1 or malformed column names.
	ErrInvalidColumn = errors.New("invalid column")
	// ErrInvalidCoordinates is returned when a row or column is not a positive integer.
	ErrInvalidCoordinates = errors.New("invalid cell coordinates")
)

// addressPat matches [sheet!]$?COL$?ROW once surrounding whitespace is trimmed.
// Quotes around the sheet name are optional and the sheet match is lazy, so
// "a!b!C3" yields sheet "a!b".
var addressPat = regexp.MustCompile(`^(?:'?(.+?)'?!)?\$?([A-Za-z]+)\$?([0-9]+)$`)

// RowAndColumnToAddress builds an address from 1-based row and column numbers
// (7, 2 → "B7"). A non-empty sheet produces a full address ("'Data'!B7").
func RowAndColumnToAddress(row, column int, sheet string) (string, bool) {
	if row < 1 {
		return "", false
	}
	name, ok := ColumnNumberToName(column)
	if !ok {
		return "", false
	}

	address := name + strconv.Itoa(row)
	if sheet != "" {
		address = AddressToFullAddress(sheet, address)
	}

	return address, true
}

// AddressToFullAddress prefixes address with a quoted sheet name: 'sheet'!address.
// Quotes inside sheet are not escaped.
func AddressToFullAddress(sheet, address string) string {
	return "'" + sheet + "'!" + address
}

// AddressToRowAndColumn parses an address such as "B7", "$B$7", "Data!B7" or
// "'My Data'!b7". Letters are case-insensitive and surrounding whitespace is
// ignored. The whole string must match; anything else yields false.
func AddressToRowAndColumn(address string) (Ref, bool) {
	m := addressPat.FindStringSubmatch(strings.TrimSpace(address))
	if m == nil {
		return Ref{}, false
	}

	row, err := strconv.Atoi(m[3])
	if err != nil || row < 1 {
		return Ref{}, false
	}
	column, ok := ColumnNameToNumber(m[2])
	if !ok {
		return Ref{}, false
	}

	return Ref{Row: row, Column: column, Sheet: m[1]}, true
}

// ParseAddress is AddressToRowAndColumn for callers that propagate errors.
func ParseAddress(address string) (Ref, error) {
	ref, ok := AddressToRowAndColumn(address)
	if !ok {
		return Ref{}, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return ref, nil
}

// MustAddress is like RowAndColumnToAddress but panics on invalid coordinates.
func MustAddress(row, column int, sheet string) string {
	address, ok := RowAndColumnToAddress(row, column, sheet)
	if !ok {
		panic(fmt.Sprintf("excel: %v: row %d, column %d", ErrInvalidCoordinates, row, column))
	}
	return address
}
