package entities

import (
	"time"
)

// FavoriteCard marks a card as pinned for quick access. It is a membership
// set keyed by card id, not a full record. Ids of since-deleted cards may
// linger; readers filter against the current card collection.
type FavoriteCard struct {
	CardID    string    `gorm:"primaryKey;size:36" json:"card_id"`
	Position  int       `gorm:"index" json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

func (FavoriteCard) TableName() string {
	return "favorite_cards"
}
