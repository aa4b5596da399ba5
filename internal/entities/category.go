package entities

import (
	"time"
)

// Defaults matching the card dialog's category form.
const (
	DefaultCategoryBackgroundColor = "#2196F3"
	DefaultCategoryIcon            = "folder"
)

// Category is a named, colored grouping of cards with a lifecycle independent
// of its members. Name is unique within the collection.
type Category struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	Name            string    `gorm:"uniqueIndex;size:100" json:"name"`
	Emoji           string    `gorm:"size:16" json:"emoji,omitempty"`
	Icon            string    `gorm:"size:50" json:"icon,omitempty"` // named glyph, used when Emoji is empty
	BackgroundColor string    `gorm:"size:9" json:"background_color"`
	DisplayOrder    int       `gorm:"column:position;index" json:"order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

// DisplayIcon returns the effective icon glyph, preferring the emoji.
func (c Category) DisplayIcon() string {
	if c.Emoji != "" {
		return c.Emoji
	}
	return c.Icon
}
