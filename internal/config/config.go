package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
	}

	Database struct {
		Path string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)

	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
	}
}
