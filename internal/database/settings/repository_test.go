package settings

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
	dbPath := "./test_settings_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Setting{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_Get_DefaultsWhenEmpty(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	s, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultSettings(), s)
}

func TestRepository_Set_PartialMerge(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	rate := 1.5
	require.NoError(t, repo.Set(SettingsUpdate{SpeechRate: &rate}))

	s, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, 1.5, s.SpeechRate)
	// Unset keys stay at their defaults
	assert.Equal(t, entities.DefaultSpeechPitch, s.SpeechPitch)

	pitch := 0.8
	require.NoError(t, repo.Set(SettingsUpdate{SpeechPitch: &pitch}))

	s, err = repo.Get()
	require.NoError(t, err)
	assert.Equal(t, 1.5, s.SpeechRate)
	assert.Equal(t, 0.8, s.SpeechPitch)
}

func TestRepository_Set_Overwrite(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	rate := 1.5
	require.NoError(t, repo.Set(SettingsUpdate{SpeechRate: &rate}))
	rate = 0.5
	require.NoError(t, repo.Set(SettingsUpdate{SpeechRate: &rate}))

	s, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, 0.5, s.SpeechRate)
}

func TestRepository_Get_UnparseableValueFallsBack(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.SetSetting(entities.SettingKeySpeechRate, "fast"))

	s, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultSpeechRate, s.SpeechRate)
}

func TestRepository_SetSetting_RawRoundTrip(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.SetSetting("theme", "dark"))

	setting, err := repo.GetSetting("theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", setting.Value)
}
