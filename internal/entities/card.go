package entities

import (
	"time"
)

// DefaultCardBackgroundColor is applied when a card is created without an
// explicit color and when exporting a card whose color is empty.
const DefaultCardBackgroundColor = "#BBDEFB"

// Card is a single symbol/word tile. The category linkage is by name, not by
// id: deleting or renaming a Category leaves referencing cards untouched and
// they simply stop matching category filters.
type Card struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	Text            string    `gorm:"size:512" json:"text"`
	ImageURL        string    `gorm:"type:text" json:"image_url,omitempty"` // remote URL or data: payload
	Category        string    `gorm:"index;size:100" json:"category,omitempty"`
	BackgroundColor string    `gorm:"size:9" json:"background_color"`
	Position        int       `gorm:"index" json:"position"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Card) TableName() string {
	return "cards"
}
