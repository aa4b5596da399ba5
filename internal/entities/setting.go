package entities

import (
	"time"
)

type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys
const (
	SettingKeySpeechRate  = "speech_rate"
	SettingKeySpeechPitch = "speech_pitch"
)

// Speech defaults used when a key is absent or unparseable.
const (
	DefaultSpeechRate  = 1.0
	DefaultSpeechPitch = 1.0
)

// Settings is the typed view over the settings rows. Missing keys read as
// the defaults above.
type Settings struct {
	SpeechRate  float64 `json:"speech_rate"`
	SpeechPitch float64 `json:"speech_pitch"`
}

// DefaultSettings returns the settings record with every option at its
// fallback value.
func DefaultSettings() Settings {
	return Settings{
		SpeechRate:  DefaultSpeechRate,
		SpeechPitch: DefaultSpeechPitch,
	}
}
