// Package cards provides database operations for card management.
//
// # Usage
//
//	repo := cards.NewRepository(db)
//	card, err := repo.Add(cards.NewCard{Text: "물", Category: "음식"})
package cards

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/talkseed/aacboard/internal/database"
	"github.com/talkseed/aacboard/internal/entities"
	"github.com/talkseed/aacboard/internal/idgen"
	"github.com/talkseed/aacboard/internal/utils"
)

// Repository handles all card database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new cards repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// NewCard carries the caller-supplied fields for Add. Text is required;
// everything else is optional with documented defaults.
type NewCard struct {
	Text            string
	ImageURL        string
	Category        string
	BackgroundColor string
}

// CardUpdate carries a partial update: nil fields keep their prior value.
type CardUpdate struct {
	Text            *string
	ImageURL        *string
	Category        *string
	BackgroundColor *string
}

// GetAll returns every card in insertion order.
func (r *Repository) GetAll() ([]entities.Card, error) {
	var cards []entities.Card
	err := r.db.Order("position ASC").Find(&cards).Error
	return cards, err
}

// GetByCategory returns the cards whose category name matches exactly, in
// insertion order. A name that no longer exists as a Category still matches
// cards that reference it.
func (r *Repository) GetByCategory(name string) ([]entities.Card, error) {
	var cards []entities.Card
	err := r.db.Where("category = ?", name).Order("position ASC").Find(&cards).Error
	return cards, err
}

// Add validates and stores a new card, returning the full record.
func (r *Repository) Add(input NewCard) (*entities.Card, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, database.ErrEmptyText
	}

	card := &entities.Card{
		ID:              idgen.New(),
		Text:            text,
		ImageURL:        strings.TrimSpace(input.ImageURL),
		Category:        strings.TrimSpace(input.Category),
		BackgroundColor: utils.NormalizeHexColor(input.BackgroundColor, entities.DefaultCardBackgroundColor),
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		pos, err := database.NextPosition(tx, &entities.Card{})
		if err != nil {
			return err
		}
		card.Position = pos
		return tx.Create(card).Error
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

// Update applies the non-nil fields of upd to the card and returns the
// updated record. Returns database.ErrNotFound when the id is absent, with
// the collection untouched.
func (r *Repository) Update(id string, upd CardUpdate) (*entities.Card, error) {
	var card entities.Card
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&card, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return database.ErrNotFound
			}
			return err
		}

		if upd.Text != nil {
			text := strings.TrimSpace(*upd.Text)
			if text == "" {
				return database.ErrEmptyText
			}
			card.Text = text
		}
		if upd.ImageURL != nil {
			card.ImageURL = strings.TrimSpace(*upd.ImageURL)
		}
		if upd.Category != nil {
			card.Category = strings.TrimSpace(*upd.Category)
		}
		if upd.BackgroundColor != nil {
			card.BackgroundColor = utils.NormalizeHexColor(*upd.BackgroundColor, entities.DefaultCardBackgroundColor)
		}

		return tx.Save(&card).Error
	})
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// Delete removes the card. Deleting has no cascading effect on categories or
// favourites; a favourite mark referencing the id becomes tolerated garbage.
// Returns database.ErrNotFound when the id is absent, so a second delete of
// the same id reports it and changes nothing.
func (r *Repository) Delete(id string) error {
	res := r.db.Delete(&entities.Card{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}
