package favouritecards

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/talkseed/aacboard/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_favouritecards_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.FavoriteCard{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_Toggle(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	on, err := repo.Toggle("card-1")
	require.NoError(t, err)
	assert.True(t, on)

	fav, err := repo.IsFavourite("card-1")
	require.NoError(t, err)
	assert.True(t, fav)

	// Second toggle returns to the original state
	on, err = repo.Toggle("card-1")
	require.NoError(t, err)
	assert.False(t, on)

	fav, err = repo.IsFavourite("card-1")
	require.NoError(t, err)
	assert.False(t, fav)

	ids, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRepository_GetAll_MarkOrder(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	for _, id := range []string{"card-3", "card-1", "card-2"} {
		_, err := repo.Toggle(id)
		require.NoError(t, err)
	}

	ids, err := repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"card-3", "card-1", "card-2"}, ids)
}

func TestRepository_IsFavourite_UnknownID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	fav, err := repo.IsFavourite("never-seen")
	require.NoError(t, err)
	assert.False(t, fav)
}

func TestRepository_StaleIDTolerated(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	// The set does not know about card lifecycles: an id whose card was
	// deleted elsewhere stays until toggled off, and reads never fail.
	_, err := repo.Toggle("deleted-card")
	require.NoError(t, err)

	ids, err := repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"deleted-card"}, ids)

	on, err := repo.Toggle("deleted-card")
	require.NoError(t, err)
	assert.False(t, on)
}
