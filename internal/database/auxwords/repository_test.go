package auxwords

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/talkseed/aacboard/internal/database"
	"github.com/talkseed/aacboard/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_auxwords_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.AuxiliaryWord{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_Add(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	word, err := repo.Add("주세요", "")
	require.NoError(t, err)

	assert.NotEmpty(t, word.ID)
	assert.Equal(t, "주세요", word.Text)
	assert.Equal(t, 1, word.Position)
}

func TestRepository_Add_LengthBoundary(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	// 10 runes is the maximum allowed
	ten := strings.Repeat("가", 10)
	word, err := repo.Add(ten, "")
	require.NoError(t, err)
	assert.Equal(t, ten, word.Text)

	// 11 runes fails and leaves the collection unchanged
	eleven := strings.Repeat("가", 11)
	_, err = repo.Add(eleven, "")
	assert.ErrorIs(t, err, database.ErrWordLength)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRepository_Add_EmptyText(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Add("  ", "")
	assert.ErrorIs(t, err, database.ErrEmptyText)
}

func TestRepository_Delete(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	word, err := repo.Add("주세요", "")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(word.ID))

	err = repo.Delete(word.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestRepository_ReplaceAll(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Add("지울단어", "")
	require.NoError(t, err)

	stored, err := repo.ReplaceAll(entities.DefaultAuxiliaryWords())
	require.NoError(t, err)
	require.Len(t, stored, len(entities.DefaultAuxiliaryWords()))

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, len(stored))
	for i, w := range entities.DefaultAuxiliaryWords() {
		assert.Equal(t, w.Text, all[i].Text)
		assert.Equal(t, i+1, all[i].Position)
		assert.NotEmpty(t, all[i].ID)
	}
}

func TestDefaultAuxiliaryWords_Pure(t *testing.T) {
	a := entities.DefaultAuxiliaryWords()
	b := entities.DefaultAuxiliaryWords()
	require.Equal(t, a, b)

	a[0].Text = "변경"
	assert.NotEqual(t, a[0].Text, entities.DefaultAuxiliaryWords()[0].Text)

	// Every default fits the mutation-boundary bound
	for _, w := range entities.DefaultAuxiliaryWords() {
		assert.LessOrEqual(t, len([]rune(w.Text)), entities.MaxAuxiliaryWordLength)
	}
}
