package entities

import (
	"time"
)

// FavoriteSentence is a previously composed sentence saved for reuse.
// UseCount only ever grows; it is bumped through the dedicated increment
// operation, never written directly.
type FavoriteSentence struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Text      string    `gorm:"type:text" json:"text"`
	UseCount  int       `json:"use_count"`
	Position  int       `gorm:"index" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FavoriteSentence) TableName() string {
	return "favorite_sentences"
}
