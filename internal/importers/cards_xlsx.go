package importers

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImportXLSX reads card rows from an XLSX workbook's first sheet with the
// same row semantics as ImportCSV: row 1 is a header, a blank first cell
// skips the row, a row that fails to store increments Errored.
func ImportXLSX(r io.Reader, store CardStore) (ImportResult, error) {
	var result ImportResult

	f, err := excelize.OpenReader(r)
	if err != nil {
		return result, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return result, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return result, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return result, nil
	}

	for _, row := range rows[1:] {
		if strings.TrimSpace(field(row, 0)) == "" {
			continue
		}
		if err := addCard(store, row); err != nil {
			result.Errored++
			continue
		}
		result.Imported++
	}

	return result, nil
}
