package importers

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkseed/aacboard/internal/database/cards"
	"github.com/talkseed/aacboard/internal/entities"
	"github.com/talkseed/aacboard/internal/exporters"
)

type mockStore struct {
	added       []cards.NewCard
	failOnEvery bool
}

func (m *mockStore) Add(input cards.NewCard) (*entities.Card, error) {
	if m.failOnEvery {
		return nil, errors.New("disk full")
	}
	m.added = append(m.added, input)
	return &entities.Card{ID: "id", Text: input.Text}, nil
}

func TestImportCSV_Basic(t *testing.T) {
	csv := "텍스트,이미지URL,카테고리,배경색\n" +
		"물,https://example.com/water.png,음식,#BBDEFB\n" +
		"밥,,음식,#FFE0B2\n"

	store := &mockStore{}
	result, err := ImportCSV(strings.NewReader(csv), store)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Errored)
	require.Len(t, store.added, 2)
	assert.Equal(t, "물", store.added[0].Text)
	assert.Equal(t, "https://example.com/water.png", store.added[0].ImageURL)
	assert.Equal(t, "음식", store.added[0].Category)
	assert.Equal(t, "#BBDEFB", store.added[0].BackgroundColor)
}

func TestImportCSV_StripsBOM(t *testing.T) {
	csv := "\uFEFF텍스트,이미지URL,카테고리,배경색\n물,,,#BBDEFB\n"

	store := &mockStore{}
	result, err := ImportCSV(strings.NewReader(csv), store)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
}

func TestImportCSV_HeaderContentIgnored(t *testing.T) {
	// Any first line is discarded, even one that looks like data
	csv := "whatever,junk\n물,,,\n"

	store := &mockStore{}
	result, err := ImportCSV(strings.NewReader(csv), store)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, "물", store.added[0].Text)
}

func TestImportCSV_BlankTextRowsSkippedSilently(t *testing.T) {
	csv := "텍스트,이미지URL,카테고리,배경색\n" +
		"물,,,\n" +
		"   ,ignored,ignored,ignored\n" +
		"\n" +
		"밥,,,\n"

	store := &mockStore{}
	result, err := ImportCSV(strings.NewReader(csv), store)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Errored)
}

func TestImportCSV_MalformedRowsCountedNotFatal(t *testing.T) {
	csv := "텍스트,이미지URL,카테고리,배경색\n" +
		"물,,,#BBDEFB\n" +
		"깨진 \"행,,,#FFFFFF\n" + // bare quote inside an unquoted field
		"밥,,,#FFE0B2\n"

	store := &mockStore{}
	result, err := ImportCSV(strings.NewReader(csv), store)
	require.NoError(t, err)

	// No valid row is dropped because of an adjacent malformed one
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Errored)
	require.Len(t, store.added, 2)
	assert.Equal(t, "물", store.added[0].Text)
	assert.Equal(t, "밥", store.added[1].Text)
}

func TestImportCSV_UnterminatedQuoteChargesOneRow(t *testing.T) {
	csv := "텍스트,이미지URL,카테고리,배경색\n" +
		"물,,,#BBDEFB\n" +
		"\"깨진,,,#FFFFFF\n" + // opening quote never closed
		"밥,,,#FFE0B2\n" +
		"국,,,#FFFFFF\n"

	store := &mockStore{}
	result, err := ImportCSV(strings.NewReader(csv), store)
	require.NoError(t, err)

	// The open quote ends only at end of input; it must not swallow the
	// rows after its own line.
	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 1, result.Errored)
	require.Len(t, store.added, 3)
	assert.Equal(t, "물", store.added[0].Text)
	assert.Equal(t, "밥", store.added[1].Text)
	assert.Equal(t, "국", store.added[2].Text)
}

func TestImportCSV_StoreFailureCountsAsRowError(t *testing.T) {
	csv := "h\n물,,,\n밥,,,\n"

	store := &mockStore{failOnEvery: true}
	result, err := ImportCSV(strings.NewReader(csv), store)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 2, result.Errored)
}

func TestImportCSV_ExtraColumnsIgnored(t *testing.T) {
	csv := "h\n물,,음식,#BBDEFB,extra,more\n"

	store := &mockStore{}
	result, err := ImportCSV(strings.NewReader(csv), store)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, "음식", store.added[0].Category)
}

func TestImportCSV_NotText(t *testing.T) {
	store := &mockStore{}
	_, err := ImportCSV(bytes.NewReader([]byte{0xff, 0xfe, 0x00, 0x12, 0x81}), store)
	assert.Error(t, err)
	assert.Empty(t, store.added)
}

func TestImportCSV_EmptyInput(t *testing.T) {
	store := &mockStore{}
	result, err := ImportCSV(strings.NewReader(""), store)
	require.NoError(t, err)
	assert.Zero(t, result.Imported)
	assert.Zero(t, result.Errored)
}

func TestImportCSV_QuotedFields(t *testing.T) {
	csv := "h\n" + `"안녕, ""친구""",,,#BBDEFB` + "\n"

	store := &mockStore{}
	result, err := ImportCSV(strings.NewReader(csv), store)
	require.NoError(t, err)
	require.Equal(t, 1, result.Imported)
	assert.Equal(t, `안녕, "친구"`, store.added[0].Text)
}

func TestImportCSV_RoundTrip(t *testing.T) {
	original := []entities.Card{
		{Text: `안녕, "친구"`, ImageURL: "https://example.com/a.png", Category: "인사", BackgroundColor: "#FFF9C4"},
		{Text: "여러\n줄", Category: "음식", BackgroundColor: "#BBDEFB"},
		{Text: "물", BackgroundColor: "#BBDEFB"},
	}

	var buf bytes.Buffer
	require.NoError(t, exporters.ExportCSV(&buf, original))

	store := &mockStore{}
	result, err := ImportCSV(&buf, store)
	require.NoError(t, err)
	require.Equal(t, len(original), result.Imported)
	assert.Zero(t, result.Errored)

	for i, card := range original {
		assert.Equal(t, card.Text, store.added[i].Text)
		assert.Equal(t, card.ImageURL, store.added[i].ImageURL)
		assert.Equal(t, card.Category, store.added[i].Category)
		assert.Equal(t, card.BackgroundColor, store.added[i].BackgroundColor)
	}
}
