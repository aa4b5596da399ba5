// Package categories provides database operations for category management.
//
// Categories have a lifecycle independent of the cards referencing them:
// deletes and renames never touch the card collection.
//
// # Usage
//
//	repo := categories.NewRepository(db)
//	cat, err := repo.Add(categories.NewCategory{Name: "음식", Emoji: "🍚"})
package categories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/talkseed/aacboard/internal/database"
	"github.com/talkseed/aacboard/internal/entities"
	"github.com/talkseed/aacboard/internal/idgen"
	"github.com/talkseed/aacboard/internal/utils"
)

// Repository handles all category database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new categories repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// NewCategory carries the caller-supplied fields for Add.
type NewCategory struct {
	Name            string
	Emoji           string
	Icon            string
	BackgroundColor string
}

// CategoryUpdate carries a partial update: nil fields keep their prior value.
type CategoryUpdate struct {
	Name            *string
	Emoji           *string
	Icon            *string
	BackgroundColor *string
}

// GetAll returns every category in display order.
func (r *Repository) GetAll() ([]entities.Category, error) {
	var cats []entities.Category
	err := r.db.Order("position ASC").Find(&cats).Error
	return cats, err
}

// Add validates and stores a new category, returning the full record.
// Returns database.ErrDuplicateName when the name is already taken.
func (r *Repository) Add(input NewCategory) (*entities.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, database.ErrEmptyText
	}

	icon := strings.TrimSpace(input.Icon)
	if icon == "" {
		icon = entities.DefaultCategoryIcon
	}

	cat := &entities.Category{
		ID:              idgen.New(),
		Name:            name,
		Emoji:           strings.TrimSpace(input.Emoji),
		Icon:            icon,
		BackgroundColor: utils.NormalizeHexColor(input.BackgroundColor, entities.DefaultCategoryBackgroundColor),
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return database.ErrDuplicateName
		}

		pos, err := database.NextPosition(tx, &entities.Category{})
		if err != nil {
			return err
		}
		cat.DisplayOrder = pos
		return tx.Create(cat).Error
	})
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// Update applies the non-nil fields of upd and returns the updated record.
// Renaming to a name held by another category returns
// database.ErrDuplicateName. Cards referencing the old name are left alone
// and simply stop matching the category filter.
func (r *Repository) Update(id string, upd CategoryUpdate) (*entities.Category, error) {
	var cat entities.Category
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&cat, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return database.ErrNotFound
			}
			return err
		}

		if upd.Name != nil {
			name := strings.TrimSpace(*upd.Name)
			if name == "" {
				return database.ErrEmptyText
			}
			if name != cat.Name {
				var count int64
				if err := tx.Model(&entities.Category{}).Where("name = ? AND id <> ?", name, id).Count(&count).Error; err != nil {
					return err
				}
				if count > 0 {
					return database.ErrDuplicateName
				}
				cat.Name = name
			}
		}
		if upd.Emoji != nil {
			cat.Emoji = strings.TrimSpace(*upd.Emoji)
		}
		if upd.Icon != nil {
			icon := strings.TrimSpace(*upd.Icon)
			if icon == "" {
				icon = entities.DefaultCategoryIcon
			}
			cat.Icon = icon
		}
		if upd.BackgroundColor != nil {
			cat.BackgroundColor = utils.NormalizeHexColor(*upd.BackgroundColor, entities.DefaultCategoryBackgroundColor)
		}

		return tx.Save(&cat).Error
	})
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// Delete removes the category record only: cards keep their category name by
// value. Returns database.ErrNotFound when the id is absent.
func (r *Repository) Delete(id string) error {
	res := r.db.Delete(&entities.Category{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}
