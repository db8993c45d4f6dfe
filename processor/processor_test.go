package processor

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/orayew2002/xladdr/excel"
	"github.com/orayew2002/xladdr/template"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, cells map[string]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for cell, v := range cells {
		require.NoError(t, f.SetCellStr("Sheet1", cell, v))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func cellValue(t *testing.T, data []byte, cell string) string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("Sheet1", cell)
	require.NoError(t, err)
	return v
}

func TestProcessBytes(t *testing.T) {
	data := workbook(t, map[string]string{
		"A1": "{{address}}",
		"C5": "at {{full_address}}",
		"B2": "{{ref:A9}}",
		"A9": "nine",
		"D1": "untouched",
	})

	registry := template.New()
	template.RegisterDefaults(registry)

	var logs bytes.Buffer
	out, err := New(registry).WithLogger(zerolog.New(&logs)).ProcessBytes(data)
	require.NoError(t, err)

	assert.Equal(t, "A1", cellValue(t, out, "A1"))
	assert.Equal(t, "at 'Sheet1'!C5", cellValue(t, out, "C5"))
	assert.Equal(t, "nine", cellValue(t, out, "B2"))
	assert.Equal(t, "untouched", cellValue(t, out, "D1"))
	assert.Contains(t, logs.String(), `"cell":"'Sheet1'!C5"`)
}

func TestProcessBytes_ErrorHasCellContext(t *testing.T) {
	data := workbook(t, map[string]string{"B3": "{{ref:nope}}"})

	registry := template.New()
	template.RegisterDefaults(registry)

	_, err := New(registry).ProcessBytes(data)
	require.ErrorIs(t, err, excel.ErrInvalidAddress)
	assert.Contains(t, err.Error(), `sheet "Sheet1"`)
	assert.Contains(t, err.Error(), "cell B3")
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.xlsx")
	output := filepath.Join(dir, "out.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetCellStr("Sheet1", "B4", "{{column}}{{row}}[0:1]"))
	require.NoError(t, f.SaveAs(input))
	require.NoError(t, f.Close())

	registry := template.New()
	template.RegisterDefaults(registry)
	_, err := New(registry).ProcessFile(input, output)
	require.NoError(t, err)

	merge := template.New()
	template.RegisterMergeHandler(merge)
	data, err := New(merge).ProcessFile(output, filepath.Join(dir, "merged.xlsx"))
	require.NoError(t, err)

	assert.Equal(t, "B4", cellValue(t, data, "B4"))
}

func TestProcessFile_MissingInput(t *testing.T) {
	_, err := New(template.New()).ProcessFile(filepath.Join(t.TempDir(), "missing.xlsx"), "out.xlsx")
	require.Error(t, err)
}
