package excel

// Ref is a decoded cell reference. Row and Column are 1-based; an empty
// Sheet means the address carried no sheet prefix.
type Ref struct {
	Row    int    `json:"row"`
	Column int    `json:"column"`
	Sheet  string `json:"sheet,omitempty"`
}

// Valid reports whether both coordinates are positive.
func (r Ref) Valid() bool {
	return r.Row >= 1 && r.Column >= 1
}

// Address returns the bare address of r, ignoring its sheet (e.g. "B7").
// It returns "" when r is not valid.
func (r Ref) Address() string {
	address, _ := RowAndColumnToAddress(r.Row, r.Column, "")
	return address
}

// String returns the full address when r has a sheet and the bare address otherwise.
func (r Ref) String() string {
	address, _ := RowAndColumnToAddress(r.Row, r.Column, r.Sheet)
	return address
}

// ColumnName returns the column letters of r, or "" when the column is not valid.
func (r Ref) ColumnName() string {
	name, _ := ColumnNumberToName(r.Column)
	return name
}

// Offset returns r moved by rows and cols, keeping the sheet.
func (r Ref) Offset(rows, cols int) Ref {
	return Ref{Row: r.Row + rows, Column: r.Column + cols, Sheet: r.Sheet}
}
