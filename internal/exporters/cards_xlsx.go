package exporters

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/talkseed/aacboard/internal/entities"
)

// XLSXSheetName is the sheet cards are written to and read from.
const XLSXSheetName = "Sheet1"

// ExportXLSX writes the cards in order as an XLSX workbook with the same
// four columns as the CSV export. Spreadsheet users get a format with no
// encoding pitfalls at all.
func ExportXLSX(w io.Writer, cards []entities.Card) error {
	f := excelize.NewFile()
	defer f.Close()

	for col, title := range CSVHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(XLSXSheetName, cell, title); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, card := range cards {
		for col, value := range csvRecord(card) {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(XLSXSheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write card %q: %w", card.Text, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
