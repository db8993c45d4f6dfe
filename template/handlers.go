package template

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/orayew2002/xladdr/excel"
	"github.com/xuri/excelize/v2"
)

// Placeholder keys understood by the address handler.
const (
	KeyAddress     = "{{address}}"
	KeyFullAddress = "{{full_address}}"
	KeyColumn      = "{{column}}"
	KeyRow         = "{{row}}"
	keyRefPrefix   = "{{ref:"
)

var placeholderPat = regexp.MustCompile(`\{\{(address|full_address|column|row|ref:[^{}]+)\}\}`)

// RegisterDefaults registers the address placeholder handler.
func RegisterDefaults(r *Registry) {
	RegisterAddressHandler(r)
}

// ---------- address placeholders ----------

// RegisterAddressHandler registers one shared handler for every address
// placeholder. Because the registry stops at the first matched pattern, sharing
// the handler lets a cell such as "{{column}}{{row}} = {{ref:B2}}" be expanded
// in a single pass.
//
//	{{address}}       → B7
//	{{full_address}}  → 'Data'!B7
//	{{column}}        → B
//	{{row}}           → 7
//	{{ref:C3}}        → current value of C3 on the same sheet
//	{{ref:'Other'!C3}} → current value of C3 on sheet Other
func RegisterAddressHandler(r *Registry) {
	for _, key := range []string{KeyAddress, KeyFullAddress, KeyColumn, KeyRow, keyRefPrefix} {
		r.Register(key, expandAddresses)
	}
}

func expandAddresses(f *excelize.File, cell excel.Ref, value string) error {
	address, ok := excel.RowAndColumnToAddress(cell.Row, cell.Column, "")
	if !ok {
		return fmt.Errorf("%w: row %d, column %d", excel.ErrInvalidCoordinates, cell.Row, cell.Column)
	}

	styleID, _ := f.GetCellStyle(cell.Sheet, address)

	var expandErr error
	replaced := placeholderPat.ReplaceAllStringFunc(value, func(m string) string {
		if expandErr != nil {
			return m
		}
		v, err := placeholderValue(f, cell, m[2:len(m)-2])
		if err != nil {
			expandErr = fmt.Errorf("placeholder %s: %w", m, err)
			return m
		}
		return v
	})
	if expandErr != nil {
		return expandErr
	}

	if err := f.SetCellStr(cell.Sheet, address, replaced); err != nil {
		return fmt.Errorf("address handler: %w", err)
	}

	if styleID != 0 {
		if err := f.SetCellStyle(cell.Sheet, address, address, styleID); err != nil {
			return fmt.Errorf("restore style: %w", err)
		}
	}

	return nil
}

func placeholderValue(f *excelize.File, cell excel.Ref, key string) (string, error) {
	switch key {
	case "address":
		return cell.Address(), nil
	case "full_address":
		return excel.AddressToFullAddress(cell.Sheet, cell.Address()), nil
	case "column":
		return cell.ColumnName(), nil
	case "row":
		return strconv.Itoa(cell.Row), nil
	}

	target, err := excel.ParseAddress(strings.TrimPrefix(key, "ref:"))
	if err != nil {
		return "", err
	}
	sheet := target.Sheet
	if sheet == "" {
		sheet = cell.Sheet
	}

	v, err := f.GetCellValue(sheet, target.Address())
	if err != nil {
		return "", fmt.Errorf("read %s: %w", excel.AddressToFullAddress(sheet, target.Address()), err)
	}
	return v, nil
}

// ---------- merge codes ----------

var mergeCodePat = regexp.MustCompile(`\[(\d+):(\d+)\]`)

// RegisterMergeHandler registers a handler that detects [extraRows:extraCols] codes
// embedded in cell values, strips the code, and merges the cell with its neighbours.
//
//	[1:0] → merge with 1 row below
//	[0:2] → merge 2 cols to the right
//	[0:0] → strip code only
//
// Run this in a separate pass after placeholders are expanded.
func RegisterMergeHandler(r *Registry) {
	r.Register("[", handleMergeCode)
}

func handleMergeCode(f *excelize.File, cell excel.Ref, value string) error {
	m := mergeCodePat.FindStringSubmatch(value)
	if m == nil {
		return nil // "[" present but not a merge code
	}

	extraRows, err := strconv.Atoi(m[1])
	if err != nil {
		return fmt.Errorf("merge handler: rows %q: %w", m[1], err)
	}
	extraCols, err := strconv.Atoi(m[2])
	if err != nil {
		return fmt.Errorf("merge handler: cols %q: %w", m[2], err)
	}

	topLeft := cell.Address()
	styleID, _ := f.GetCellStyle(cell.Sheet, topLeft)

	cleaned := mergeCodePat.ReplaceAllString(value, "")
	if err := f.SetCellStr(cell.Sheet, topLeft, cleaned); err != nil {
		return fmt.Errorf("merge handler: set value: %w", err)
	}

	if extraRows == 0 && extraCols == 0 {
		return nil
	}

	end := cell.Offset(extraRows, extraCols)
	bottomRight, ok := excel.RowAndColumnToAddress(end.Row, end.Column, "")
	if !ok {
		return fmt.Errorf("merge handler: %w: [%d:%d] from %s", excel.ErrInvalidCoordinates, extraRows, extraCols, topLeft)
	}
	if err := f.MergeCell(cell.Sheet, topLeft, bottomRight); err != nil {
		return fmt.Errorf("merge handler: merge: %w", err)
	}

	if styleID != 0 {
		if err := f.SetCellStyle(cell.Sheet, topLeft, bottomRight, styleID); err != nil {
			return fmt.Errorf("merge handler: style: %w", err)
		}
	}

	return nil
}
