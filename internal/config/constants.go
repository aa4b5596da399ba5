package config

// Default paths for databases
const (
	// DefaultDatabasePath is the default path for the board database
	DefaultDatabasePath = "./aacboard.db"
)
