// Package sentences provides database operations for favorite sentence
// management.
//
// # Usage
//
//	repo := sentences.NewRepository(db)
//	sentence, err := repo.Add("물 주세요")
package sentences

import (
	"strings"

	"gorm.io/gorm"

	"github.com/talkseed/aacboard/internal/database"
	"github.com/talkseed/aacboard/internal/entities"
	"github.com/talkseed/aacboard/internal/idgen"
)

// Repository handles all favorite sentence database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new sentences repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAll returns every favorite sentence in insertion order.
func (r *Repository) GetAll() ([]entities.FavoriteSentence, error) {
	var out []entities.FavoriteSentence
	err := r.db.Order("position ASC").Find(&out).Error
	return out, err
}

// Add stores a sentence from the composition buffer with a use count of 0.
func (r *Repository) Add(text string) (*entities.FavoriteSentence, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, database.ErrEmptyText
	}

	sentence := &entities.FavoriteSentence{
		ID:   idgen.New(),
		Text: text,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		pos, err := database.NextPosition(tx, &entities.FavoriteSentence{})
		if err != nil {
			return err
		}
		sentence.Position = pos
		return tx.Create(sentence).Error
	})
	if err != nil {
		return nil, err
	}
	return sentence, nil
}

// IncrementUseCount bumps the sentence's use count by one in a single
// read-modify-write. A missing id is a silent no-op: stale references from
// the quick-access list are expected.
func (r *Repository) IncrementUseCount(id string) error {
	return r.db.Model(&entities.FavoriteSentence{}).
		Where("id = ?", id).
		Update("use_count", gorm.Expr("use_count + 1")).Error
}

// Delete removes the sentence. Returns database.ErrNotFound when the id is
// absent.
func (r *Repository) Delete(id string) error {
	res := r.db.Delete(&entities.FavoriteSentence{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}
