// Package favouritecards provides database operations for the favourite-card
// id set.
//
// Membership is keyed by card id. Ids of cards deleted after being marked
// stay in the set; readers filter against the current card collection.
//
// # Usage
//
//	repo := favouritecards.NewRepository(db)
//	nowFavourite, err := repo.Toggle(cardID)
package favouritecards

import (
	"errors"

	"gorm.io/gorm"

	"github.com/talkseed/aacboard/internal/database"
	"github.com/talkseed/aacboard/internal/entities"
)

// Repository handles all favourite-card database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new favourite-cards repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Toggle flips the card's membership and returns the new state: true when
// the card is now a favourite.
func (r *Repository) Toggle(cardID string) (bool, error) {
	var favourite bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing entities.FavoriteCard
		err := tx.First(&existing, "card_id = ?", cardID).Error
		switch {
		case err == nil:
			favourite = false
			return tx.Delete(&entities.FavoriteCard{}, "card_id = ?", cardID).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			pos, err := database.NextPosition(tx, &entities.FavoriteCard{})
			if err != nil {
				return err
			}
			favourite = true
			return tx.Create(&entities.FavoriteCard{CardID: cardID, Position: pos}).Error
		default:
			return err
		}
	})
	if err != nil {
		return false, err
	}
	return favourite, nil
}

// IsFavourite reports whether the card id is in the set.
func (r *Repository) IsFavourite(cardID string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.FavoriteCard{}).Where("card_id = ?", cardID).Count(&count).Error
	return count > 0, err
}

// GetAll returns the favourite card ids in the order they were marked.
func (r *Repository) GetAll() ([]string, error) {
	var ids []string
	err := r.db.Model(&entities.FavoriteCard{}).
		Order("position ASC").
		Pluck("card_id", &ids).Error
	return ids, err
}
