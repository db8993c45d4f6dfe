package processor

import (
	"bytes"
	"fmt"

	"github.com/orayew2002/xladdr/excel"
	"github.com/orayew2002/xladdr/template"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// Processor applies registered template handlers to Excel files.
type Processor struct {
	registry *template.Registry
	log      zerolog.Logger
}

// New creates a Processor with the given template registry.
func New(registry *template.Registry) *Processor {
	return &Processor{registry: registry, log: zerolog.Nop()}
}

// WithLogger sets the logger used to report handled cells.
func (p *Processor) WithLogger(l zerolog.Logger) *Processor {
	p.log = l
	return p
}

// ProcessFile opens the input Excel file, processes all sheets, saves to output,
// and returns the resulting file as bytes.
func (p *Processor) ProcessFile(input, output string) ([]byte, error) {
	f, err := excelize.OpenFile(input)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", input, err)
	}
	defer f.Close()

	if err := p.process(f); err != nil {
		return nil, err
	}

	if err := f.SaveAs(output); err != nil {
		return nil, fmt.Errorf("save %s: %w", output, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}

	return buf.Bytes(), nil
}

// ProcessBytes reads an Excel file from raw bytes, processes all sheets,
// and returns the resulting file as bytes.
func (p *Processor) ProcessBytes(data []byte) ([]byte, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open from bytes: %w", err)
	}
	defer f.Close()

	if err := p.process(f); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}

	return buf.Bytes(), nil
}

// Process applies the registry to an already opened workbook.
func (p *Processor) Process(f *excelize.File) error {
	return p.process(f)
}

func (p *Processor) process(f *excelize.File) error {
	for _, sheet := range f.GetSheetList() {
		if err := p.processSheet(f, sheet); err != nil {
			return fmt.Errorf("sheet %q: %w", sheet, err)
		}
	}
	return nil
}

func (p *Processor) processSheet(f *excelize.File, sheet string) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("get rows: %w", err)
	}

	for r := range rows {
		for c := range rows[r] {
			value := rows[r][c]
			if value == "" {
				continue
			}

			cell := excel.Ref{Row: r + 1, Column: c + 1, Sheet: sheet}
			handled, err := p.registry.Process(f, cell, value)
			if err != nil {
				return fmt.Errorf("cell %s: %w", cell.Address(), err)
			}
			if handled {
				p.log.Debug().Str("cell", cell.String()).Str("value", value).Msg("handled")
			}
		}
	}

	return nil
}
