package report

import (
	"fmt"

	"github.com/orayew2002/xladdr/excel"
	"github.com/orayew2002/xladdr/template"
	"github.com/xuri/excelize/v2"
)

// SheetName is the sheet the report is written to.
const SheetName = "Addresses"

// headers defines the column layout for the report table.
var headers = []string{"Input", "Sheet", "Row", "Column", "Column name", "Address"}

// WriteToFile creates a new Excel file with the report and saves it to path.
func WriteToFile(entries []Entry, path string) error {
	f, err := build(entries)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}

// WriteToBytes creates a new Excel file with the report and returns it as bytes.
func WriteToBytes(entries []Entry) ([]byte, error) {
	f, err := build(entries)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}

	return buf.Bytes(), nil
}

func build(entries []Entry) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	sm := template.NewStyleManager(f)

	if err := writeHeaders(f, sm); err != nil {
		f.Close()
		return nil, fmt.Errorf("write headers: %w", err)
	}

	if err := writeRows(f, sm, entries); err != nil {
		f.Close()
		return nil, fmt.Errorf("write rows: %w", err)
	}

	if err := autoFitColumns(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("auto fit columns: %w", err)
	}

	return f, nil
}

func writeHeaders(f *excelize.File, sm *template.StyleManager) error {
	style, err := sm.Header()
	if err != nil {
		return err
	}

	for i, header := range headers {
		cell := excel.MustAddress(1, i+1, "")
		if err := f.SetCellStr(SheetName, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetName, cell, cell, style); err != nil {
			return err
		}
	}

	return nil
}

func writeRows(f *excelize.File, sm *template.StyleManager, entries []Entry) error {
	okStyle, err := sm.Left()
	if err != nil {
		return err
	}
	badStyle, err := sm.Invalid()
	if err != nil {
		return err
	}

	for i, e := range entries {
		row := i + 2 // row 1 is headers
		values := []any{e.Input, "invalid"}
		style := badStyle
		if e.OK {
			values = []any{e.Input, e.Ref.Sheet, e.Ref.Row, e.Ref.Column, e.Ref.ColumnName(), e.Ref.String()}
			style = okStyle
		}

		first := excel.MustAddress(row, 1, "")
		last := excel.MustAddress(row, len(headers), "")
		if err := f.SetSheetRow(SheetName, first, &values); err != nil {
			return fmt.Errorf("entry %d (%q): %w", i+1, e.Input, err)
		}
		if err := f.SetCellStyle(SheetName, first, last, style); err != nil {
			return fmt.Errorf("entry %d style: %w", i+1, err)
		}
	}

	return nil
}

func autoFitColumns(f *excelize.File) error {
	widths := []float64{24, 16, 10, 10, 12, 28}
	for i, w := range widths {
		colName, ok := excel.ColumnNumberToName(i + 1)
		if !ok {
			return fmt.Errorf("%w: %d", excel.ErrInvalidColumn, i+1)
		}
		if err := f.SetColWidth(SheetName, colName, colName, w); err != nil {
			return err
		}
	}
	return nil
}
