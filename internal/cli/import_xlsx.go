package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/talkseed/aacboard/internal/config"
	"github.com/talkseed/aacboard/internal/database/cards"
	"github.com/talkseed/aacboard/internal/importers"
)

// ImportXLSXCommand loads cards from an XLSX workbook into the board
// database.
type ImportXLSXCommand struct {
	FilePath     string
	DatabasePath string
	DryRun       bool
}

func NewImportXLSXCommand() *ImportXLSXCommand {
	return &ImportXLSXCommand{}
}

func (cmd *ImportXLSXCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-xlsx", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to the XLSX file to import (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the board database file")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Parse the file and report counts without changing the database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-xlsx -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import cards from the first sheet of an XLSX workbook\n")
		fmt.Fprintf(os.Stderr, "(columns: 텍스트,이미지URL,카테고리,배경색; row 1 is the header).\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	return nil
}

func (cmd *ImportXLSXCommand) Run() error {
	f, err := os.Open(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", cmd.FilePath, err)
	}
	defer f.Close()

	dbPath := cmd.DatabasePath
	if cmd.DryRun {
		dbPath = ":memory:"
		fmt.Println("DRY RUN MODE - No changes will be made")
	}

	db, err := openDatabase(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	result, err := importers.ImportXLSX(f, cards.NewRepository(db.DB))
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Imported %d cards", result.Imported)
	if result.Errored > 0 {
		fmt.Printf(" (%d rows skipped)", result.Errored)
	}
	fmt.Println()
	return nil
}
