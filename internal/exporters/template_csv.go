package exporters

import (
	"io"

	"github.com/talkseed/aacboard/internal/entities"
)

// WriteTemplateCSV writes a small sample file users can fill in and import
// back, in the same format ExportCSV emits.
func WriteTemplateCSV(w io.Writer) error {
	samples := []entities.Card{
		{Text: "물", ImageURL: "https://cdn-icons-png.flaticon.com/512/2851/2851133.png", Category: "음식", BackgroundColor: "#BBDEFB"},
		{Text: "밥", ImageURL: "https://cdn-icons-png.flaticon.com/512/3480/3480822.png", Category: "음식", BackgroundColor: "#FFE0B2"},
		{Text: "안녕하세요", ImageURL: "https://cdn-icons-png.flaticon.com/512/1077/1077114.png", Category: "인사", BackgroundColor: "#FFF9C4"},
	}
	return ExportCSV(w, samples)
}
