// Package settings provides database operations for application settings.
//
// Settings persist as key/value rows; Get assembles the typed record and
// fills defaults for anything absent or unparseable.
//
// # Usage
//
//	repo := settings.NewRepository(db)
//	current, err := repo.Get()
package settings

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/talkseed/aacboard/internal/entities"
)

// Repository handles all settings database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new settings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// SettingsUpdate carries a partial update: nil fields keep their prior
// value.
type SettingsUpdate struct {
	SpeechRate  *float64
	SpeechPitch *float64
}

// Get returns the typed settings record, applying defaults for any missing
// key.
func (r *Repository) Get() (entities.Settings, error) {
	out := entities.DefaultSettings()

	var rows []entities.Setting
	if err := r.db.Where("key IN ?", []string{
		entities.SettingKeySpeechRate,
		entities.SettingKeySpeechPitch,
	}).Find(&rows).Error; err != nil {
		return out, err
	}

	for _, row := range rows {
		v, err := strconv.ParseFloat(row.Value, 64)
		if err != nil {
			continue
		}
		switch row.Key {
		case entities.SettingKeySpeechRate:
			out.SpeechRate = v
		case entities.SettingKeySpeechPitch:
			out.SpeechPitch = v
		}
	}
	return out, nil
}

// Set merges the provided fields into the stored settings in one
// transaction.
func (r *Repository) Set(upd SettingsUpdate) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if upd.SpeechRate != nil {
			if err := setKey(tx, entities.SettingKeySpeechRate, formatFloat(*upd.SpeechRate)); err != nil {
				return err
			}
		}
		if upd.SpeechPitch != nil {
			if err := setKey(tx, entities.SettingKeySpeechPitch, formatFloat(*upd.SpeechPitch)); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetSetting retrieves a raw setting row by key.
func (r *Repository) GetSetting(key string) (*entities.Setting, error) {
	var setting entities.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// SetSetting creates or updates a raw setting row.
func (r *Repository) SetSetting(key, value string) error {
	return setKey(r.db, key, value)
}

func setKey(tx *gorm.DB, key, value string) error {
	var setting entities.Setting
	err := tx.Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = entities.Setting{Key: key, Value: value}
		return tx.Create(&setting).Error
	} else if err != nil {
		return err
	}

	setting.Value = value
	return tx.Save(&setting).Error
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
