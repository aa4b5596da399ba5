package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/talkseed/aacboard/internal/database"
)

// openDatabase opens (creating if needed) the board database at path.
func openDatabase(path string) (*database.Database, error) {
	db, err := database.NewDatabase(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	return db, nil
}

// outputWriter returns a writer for path, or stdout when path is empty.
// The returned close function is a no-op for stdout.
func outputWriter(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}
