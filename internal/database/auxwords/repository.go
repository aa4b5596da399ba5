// Package auxwords provides database operations for auxiliary word
// management.
//
// Auxiliary words are the short quick-access words in the persistent bar.
// Text length is bounded at the mutation boundary, not in storage, so a
// "reset to defaults" replace never trips validation.
//
// # Usage
//
//	repo := auxwords.NewRepository(db)
//	word, err := repo.Add("주세요", "")
package auxwords

import (
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/talkseed/aacboard/internal/database"
	"github.com/talkseed/aacboard/internal/entities"
	"github.com/talkseed/aacboard/internal/idgen"
)

// Repository handles all auxiliary word database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new auxiliary word repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAll returns every auxiliary word in bar order.
func (r *Repository) GetAll() ([]entities.AuxiliaryWord, error) {
	var words []entities.AuxiliaryWord
	err := r.db.Order("position ASC").Find(&words).Error
	return words, err
}

// Add validates and stores a new word. Text must be 1 to
// entities.MaxAuxiliaryWordLength runes after trimming; longer input returns
// database.ErrWordLength with the collection unchanged.
func (r *Repository) Add(text, icon string) (*entities.AuxiliaryWord, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, database.ErrEmptyText
	}
	if utf8.RuneCountInString(text) > entities.MaxAuxiliaryWordLength {
		return nil, database.ErrWordLength
	}

	word := &entities.AuxiliaryWord{
		ID:   idgen.New(),
		Text: text,
		Icon: strings.TrimSpace(icon),
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		pos, err := database.NextPosition(tx, &entities.AuxiliaryWord{})
		if err != nil {
			return err
		}
		word.Position = pos
		return tx.Create(word).Error
	})
	if err != nil {
		return nil, err
	}
	return word, nil
}

// Delete removes the word. Returns database.ErrNotFound when the id is
// absent.
func (r *Repository) Delete(id string) error {
	res := r.db.Delete(&entities.AuxiliaryWord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// ReplaceAll overwrites the whole collection with words, in slice order, in
// one transaction. Ids and positions are assigned fresh; incoming ids are
// ignored. Used by the reset-to-defaults flow with
// entities.DefaultAuxiliaryWords().
func (r *Repository) ReplaceAll(words []entities.AuxiliaryWord) ([]entities.AuxiliaryWord, error) {
	stored := make([]entities.AuxiliaryWord, 0, len(words))
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.AuxiliaryWord{}).Error; err != nil {
			return err
		}
		for i, w := range words {
			word := entities.AuxiliaryWord{
				ID:       idgen.New(),
				Text:     strings.TrimSpace(w.Text),
				Icon:     strings.TrimSpace(w.Icon),
				Position: i + 1,
			}
			if err := tx.Create(&word).Error; err != nil {
				return err
			}
			stored = append(stored, word)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}
