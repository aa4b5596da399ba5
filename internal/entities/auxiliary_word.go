package entities

import (
	"time"
)

// MaxAuxiliaryWordLength bounds auxiliary word text, counted in runes so
// Korean words get the full budget.
const MaxAuxiliaryWordLength = 10

// AuxiliaryWord is a short quick-access word rendered in the persistent word
// bar, distinct from cards.
type AuxiliaryWord struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Text      string    `gorm:"size:40" json:"text"`
	Icon      string    `gorm:"type:text" json:"icon,omitempty"`
	Position  int       `gorm:"index" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AuxiliaryWord) TableName() string {
	return "auxiliary_words"
}

// DefaultAuxiliaryWords returns the canonical word-bar seed list. Pure: ids
// and positions are assigned by the repository when the list is stored.
func DefaultAuxiliaryWords() []AuxiliaryWord {
	texts := []string{"네", "아니요", "주세요", "감사합니다", "도와주세요", "좋아요", "싫어요", "그만"}
	words := make([]AuxiliaryWord, 0, len(texts))
	for _, t := range texts {
		words = append(words, AuxiliaryWord{Text: t})
	}
	return words
}
