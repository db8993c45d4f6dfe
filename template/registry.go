package template

import (
	"strings"

	"github.com/orayew2002/xladdr/excel"
	"github.com/xuri/excelize/v2"
)

// HandlerFunc processes a matched placeholder in an Excel cell.
// cell carries the sheet name and the 1-based row and column of the cell.
type HandlerFunc func(f *excelize.File, cell excel.Ref, value string) error

// Registry holds pattern → handler mappings.
type Registry struct {
	handlers []entry
}

type entry struct {
	pattern string
	handler HandlerFunc
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a handler for the given pattern (e.g. "{{address}}").
// Handlers are checked in registration order; the first match wins.
func (r *Registry) Register(pattern string, handler HandlerFunc) {
	r.handlers = append(r.handlers, entry{pattern: pattern, handler: handler})
}

// Len returns the number of registered patterns.
func (r *Registry) Len() int {
	return len(r.handlers)
}

// Process checks value against all registered patterns and runs the first
// handler whose pattern it contains. Returns true if a handler was executed.
func (r *Registry) Process(f *excelize.File, cell excel.Ref, value string) (bool, error) {
	for _, e := range r.handlers {
		if strings.Contains(value, e.pattern) {
			if err := e.handler(f, cell, value); err != nil {
				return false, err
			}

			return true, nil
		}
	}

	return false, nil
}
