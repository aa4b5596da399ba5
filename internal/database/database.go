package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/talkseed/aacboard/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.Card{},
		&entities.Category{},
		&entities.FavoriteSentence{},
		&entities.FavoriteCard{},
		&entities.AuxiliaryWord{},
		&entities.Setting{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ClearAll irreversibly erases every collection and all settings in one
// transaction. Callers confirm with the user before reaching this.
func (d *Database) ClearAll() error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&entities.Card{},
			&entities.Category{},
			&entities.FavoriteSentence{},
			&entities.FavoriteCard{},
			&entities.AuxiliaryWord{},
			&entities.Setting{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear collection: %w", err)
			}
		}
		return nil
	})
}

// NextPosition returns the next insertion rank for an ordered collection.
// Ranks of deleted rows are never reused, so relative order is stable across
// save/load cycles. Call inside the insert's transaction.
func NextPosition(tx *gorm.DB, model interface{}) (int, error) {
	var max int
	err := tx.Model(model).Select("COALESCE(MAX(position), 0)").Scan(&max).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute next position: %w", err)
	}
	return max + 1, nil
}
