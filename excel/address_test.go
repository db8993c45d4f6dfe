package excel

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRowAndColumnToAddress(t *testing.T) {
	tests := []struct {
		row, column int
		sheet       string
		want        string
	}{
		{1, 1, "", "A1"},
		{7, 2, "", "B7"},
		{5, 2, "Data", "'Data'!B5"},
		{100, 28, "My Sheet", "'My Sheet'!AB100"},
		{1048576, 16384, "", "XFD1048576"},
	}
	for _, tt := range tests {
		got, ok := RowAndColumnToAddress(tt.row, tt.column, tt.sheet)
		require.True(t, ok)
		assert.Equal(t, tt.want, got)
	}
}

func TestRowAndColumnToAddress_Invalid(t *testing.T) {
	for _, rc := range [][2]int{{0, 1}, {1, 0}, {-1, 5}, {5, -1}} {
		got, ok := RowAndColumnToAddress(rc[0], rc[1], "Data")
		assert.False(t, ok, "row=%d column=%d", rc[0], rc[1])
		assert.Empty(t, got)
	}
}

func TestAddressToFullAddress(t *testing.T) {
	assert.Equal(t, "'Sheet1'!B7", AddressToFullAddress("Sheet1", "B7"))
	// Quotes are not escaped.
	assert.Equal(t, "'It's'!A1", AddressToFullAddress("It's", "A1"))
}

func TestAddressToRowAndColumn(t *testing.T) {
	tests := []struct {
		address string
		want    Ref
	}{
		{"B7", Ref{Row: 7, Column: 2}},
		{"b7", Ref{Row: 7, Column: 2}},
		{"$B$7", Ref{Row: 7, Column: 2}},
		{"$B7", Ref{Row: 7, Column: 2}},
		{"B$7", Ref{Row: 7, Column: 2}},
		{"  AA10 ", Ref{Row: 10, Column: 27}},
		{"'Data'!B5", Ref{Row: 5, Column: 2, Sheet: "Data"}},
		{"Data!B5", Ref{Row: 5, Column: 2, Sheet: "Data"}},
		{"'My Sheet'!$C$3", Ref{Row: 3, Column: 3, Sheet: "My Sheet"}},
		{"2024!A1", Ref{Row: 1, Column: 1, Sheet: "2024"}},
		{"a!b!C3", Ref{Row: 3, Column: 3, Sheet: "a!b"}},
		{"'a!b'!C3", Ref{Row: 3, Column: 3, Sheet: "a!b"}},
	}
	for _, tt := range tests {
		got, ok := AddressToRowAndColumn(tt.address)
		require.True(t, ok, "address=%q", tt.address)
		assert.Equal(t, tt.want, got, "address=%q", tt.address)
	}
}

func TestAddressToRowAndColumn_Invalid(t *testing.T) {
	for _, address := range []string{
		"",
		"   ",
		"B",
		"7",
		"7B",
		"B7C",
		"B7 x",
		"A0",
		"$$A1",
		"!A1",
		"A1:B2",
		"B99999999999999999999",
		"Data!",
	} {
		got, ok := AddressToRowAndColumn(address)
		assert.False(t, ok, "address=%q", address)
		assert.Equal(t, Ref{}, got)
	}
}

func TestAddressRoundTrip(t *testing.T) {
	for r := 1; r <= 1000; r++ {
		for c := 1; c <= 1000; c++ {
			address, ok := RowAndColumnToAddress(r, c, "")
			require.True(t, ok)
			ref, ok := AddressToRowAndColumn(address)
			require.True(t, ok)
			require.Equal(t, Ref{Row: r, Column: c}, ref)
		}
	}
}

func TestAddressRoundTrip_WithSheet(t *testing.T) {
	address, ok := RowAndColumnToAddress(5, 2, "Data")
	require.True(t, ok)
	assert.Equal(t, "'Data'!B5", address)

	ref, ok := AddressToRowAndColumn(address)
	require.True(t, ok)
	assert.Equal(t, Ref{Row: 5, Column: 2, Sheet: "Data"}, ref)
}

func TestAddressToRowAndColumn_MatchesExcelize(t *testing.T) {
	for _, cell := range []string{"A1", "Z26", "AA27", "XFD1048576"} {
		col, row, err := excelize.CellNameToCoordinates(cell)
		require.NoError(t, err)

		ref, ok := AddressToRowAndColumn(cell)
		require.True(t, ok)
		assert.Equal(t, row, ref.Row, "cell=%s", cell)
		assert.Equal(t, col, ref.Column, "cell=%s", cell)
	}
}

func TestParseAddress(t *testing.T) {
	ref, err := ParseAddress("'Data'!B5")
	require.NoError(t, err)
	assert.Equal(t, Ref{Row: 5, Column: 2, Sheet: "Data"}, ref)

	_, err = ParseAddress("7B")
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestMustAddress(t *testing.T) {
	assert.Equal(t, "'Data'!C4", MustAddress(4, 3, "Data"))
	assert.Panics(t, func() { MustAddress(0, 3, "") })
}

func TestRef(t *testing.T) {
	ref := Ref{Row: 7, Column: 2, Sheet: "Data"}
	assert.True(t, ref.Valid())
	assert.Equal(t, "B7", ref.Address())
	assert.Equal(t, "'Data'!B7", ref.String())
	assert.Equal(t, "B", ref.ColumnName())
	assert.Equal(t, Ref{Row: 8, Column: 4, Sheet: "Data"}, ref.Offset(1, 2))

	assert.False(t, Ref{}.Valid())
	assert.Empty(t, Ref{}.String())
}

func TestRef_JSONOmitsEmptySheet(t *testing.T) {
	b, err := json.Marshal(Ref{Row: 7, Column: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"row":7,"column":2}`, string(b))

	b, err = json.Marshal(Ref{Row: 5, Column: 2, Sheet: "Data"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"row":5,"column":2,"sheet":"Data"}`, string(b))
}

func ExampleAddressToRowAndColumn() {
	ref, ok := AddressToRowAndColumn("'Data'!$B$5")
	fmt.Println(ref.Row, ref.Column, ref.Sheet, ok)
	// Output: 5 2 Data true
}
