package report

import (
	"github.com/orayew2002/xladdr/excel"
	"github.com/samber/lo"
)

// Entry is one parsed input line of the report.
type Entry struct {
	Input string
	Ref   excel.Ref
	OK    bool
}

// Build parses every input as a cell address.
func Build(inputs []string) []Entry {
	return lo.Map(inputs, func(in string, _ int) Entry {
		ref, ok := excel.AddressToRowAndColumn(in)
		return Entry{Input: in, Ref: ref, OK: ok}
	})
}

// Invalid returns the entries that failed to parse.
func Invalid(entries []Entry) []Entry {
	return lo.Reject(entries, func(e Entry, _ int) bool { return e.OK })
}
