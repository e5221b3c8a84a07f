package migration

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadSheet opens an uploaded workbook and returns the raw rows of the
// named sheet, falling back to the first sheet when the name is absent.
// Failures here are run-wide preconditions, not row errors.
func ReadSheet(data []byte, name string) ([][]string, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("no file uploaded")
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	sheet := sheets[0]
	for _, s := range sheets {
		if s == name {
			sheet = s
			break
		}
	}

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q: %w", sheet, err)
	}
	if len(raw) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}
	return raw, nil
}
