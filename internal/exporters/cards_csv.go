// Package exporters serializes the card collection to interchange formats.
package exporters

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/talkseed/aacboard/internal/entities"
)

// CSV column header, fixed order: text, image URL, category, background
// color. The import side accepts and ignores any header content, so this is
// purely for human readers and spreadsheet tools.
var CSVHeader = []string{"텍스트", "이미지URL", "카테고리", "배경색"}

// utf8BOM makes the encoding unambiguous to spreadsheet tools that would
// otherwise guess a legacy codepage for Korean text.
const utf8BOM = "\uFEFF"

// ExportCSV writes the cards in order as UTF-8 CSV with a leading BOM.
// Fields are quoted when they contain a comma, quote or newline; a card
// without a background color exports the default. csv.Writer also quotes a
// field with a leading space or carriage return, but the repository trims
// every field on write so no stored card hits that case.
func ExportCSV(w io.Writer, cards []entities.Card) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, card := range cards {
		if err := cw.Write(csvRecord(card)); err != nil {
			return fmt.Errorf("failed to write card %q: %w", card.Text, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRecord(card entities.Card) []string {
	color := card.BackgroundColor
	if color == "" {
		color = entities.DefaultCardBackgroundColor
	}
	return []string{card.Text, card.ImageURL, card.Category, color}
}
