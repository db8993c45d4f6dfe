package domain

import (
	"math/rand/v2"
	"strings"

	"github.com/bxcodec/faker/v4"
	"github.com/orayew2002/xladdr/excel"
)

// Worksheet limits of the xlsx format.
const (
	MaxRows    = 1048576
	MaxColumns = 16384
)

// GenerateRefs creates n random references inside the worksheet limits.
// Roughly half carry a sheet name made of one or two fake words; the rest are bare.
func GenerateRefs(n int) []excel.Ref {
	refs := make([]excel.Ref, n)

	for i := range n {
		refs[i] = excel.Ref{
			Row:    rand.IntN(MaxRows) + 1,
			Column: rand.IntN(MaxColumns) + 1,
		}
		if rand.IntN(2) == 0 {
			refs[i].Sheet = sheetName()
		}
	}

	return refs
}

func sheetName() string {
	words := []string{capitalize(faker.Word())}
	if rand.IntN(2) == 0 {
		words = append(words, faker.Word())
	}
	return strings.Join(words, " ")
}

func capitalize(s string) string {
	if s == "" {
		return "Sheet"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
