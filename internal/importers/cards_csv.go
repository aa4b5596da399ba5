// Package importers loads card data from user-authored interchange files.
//
// Import files are routinely malformed, so the whole file is a best-effort
// batch: a bad row is counted and skipped, never aborting the rows around
// it. Each accepted row is stored through the card repository's add
// operation, so a failure part-way cannot corrupt rows already imported.
package importers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/talkseed/aacboard/internal/database/cards"
	"github.com/talkseed/aacboard/internal/entities"
)

// CardStore is the slice of the card repository the importers need.
//
// Implementations:
//   - cards.Repository (internal/database/cards)
type CardStore interface {
	Add(input cards.NewCard) (*entities.Card, error)
}

// ImportResult reports how a best-effort batch went.
type ImportResult struct {
	Imported int `json:"imported"`
	Errored  int `json:"errored"`
}

// ImportCSV reads card rows from r and stores each through store.
//
// The input must be UTF-8 text, optionally with a leading BOM. The first
// physical line is discarded as a header with no validation. A record spans
// multiple physical lines only while a quoted field is open; a malformed
// record (an unterminated or bare quote) increments Errored and parsing
// resumes at the next physical line, so one bad row never takes its
// neighbors down with it. A record whose trimmed first field is empty is
// skipped silently. Fields beyond the fourth are ignored; missing trailing
// fields default.
func ImportCSV(r io.Reader, store CardStore) (ImportResult, error) {
	var result ImportResult

	data, err := io.ReadAll(r)
	if err != nil {
		return result, fmt.Errorf("failed to read input: %w", err)
	}
	if !utf8.Valid(data) {
		return result, fmt.Errorf("input is not UTF-8 text")
	}
	data = bytes.TrimPrefix(data, []byte("\uFEFF"))

	lines := physicalLines(string(data))

	// Index 0 is the header: any content is accepted and ignored.
	for i := 1; i < len(lines); {
		end, closed := recordEnd(lines, i)
		if !closed {
			// A quote left open to end of input. Charge the opening line
			// and pick up again at the one after it.
			result.Errored++
			i++
			continue
		}

		raw := strings.Join(lines[i:end+1], "\n")
		if strings.TrimSpace(raw) == "" {
			i = end + 1
			continue
		}

		record, err := parseRecord(raw)
		if err != nil {
			result.Errored++
			i++
			continue
		}
		i = end + 1

		if strings.TrimSpace(field(record, 0)) == "" {
			continue
		}
		if err := addCard(store, record); err != nil {
			result.Errored++
			continue
		}
		result.Imported++
	}

	return result, nil
}

func addCard(store CardStore, record []string) error {
	_, err := store.Add(cards.NewCard{
		Text:            strings.TrimSpace(field(record, 0)),
		ImageURL:        strings.TrimSpace(field(record, 1)),
		Category:        strings.TrimSpace(field(record, 2)),
		BackgroundColor: strings.TrimSpace(field(record, 3)),
	})
	return err
}

// physicalLines splits on newlines, dropping the carriage return at each
// line end so CRLF input parses the same as LF.
func physicalLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// recordEnd walks lines from start tracking quote state. A record runs onto
// the following physical line only while a quoted field is still open.
// closed is false when the input ends before the quote does.
func recordEnd(lines []string, start int) (end int, closed bool) {
	inQuotes := false
	for i := start; i < len(lines); i++ {
		for _, r := range lines[i] {
			if r == '"' {
				inQuotes = !inQuotes
			}
		}
		if !inQuotes {
			return i, true
		}
	}
	return len(lines) - 1, false
}

func parseRecord(raw string) ([]string, error) {
	cr := csv.NewReader(strings.NewReader(raw))
	cr.FieldsPerRecord = -1 // rows may carry extra or missing columns
	return cr.Read()
}

func field(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}
