package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/talkseed/aacboard/internal/config"
	"github.com/talkseed/aacboard/internal/database/cards"
	"github.com/talkseed/aacboard/internal/exporters"
)

// ExportCSVCommand writes the card collection as CSV.
type ExportCSVCommand struct {
	DatabasePath string
	OutputPath   string
}

func NewExportCSVCommand() *ExportCSVCommand {
	return &ExportCSVCommand{}
}

func (cmd *ExportCSVCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export-csv", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the board database file")
	fs.StringVar(&cmd.OutputPath, "output", "", "Output file (default: stdout)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export-csv [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export all cards as UTF-8 CSV with a BOM, in board order.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ExportCSVCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	all, err := cards.NewRepository(db.DB).GetAll()
	if err != nil {
		return fmt.Errorf("failed to read cards: %w", err)
	}

	w, closeFn, err := outputWriter(cmd.OutputPath)
	if err != nil {
		return err
	}

	if err := exporters.ExportCSV(w, all); err != nil {
		closeFn()
		return fmt.Errorf("export failed: %w", err)
	}
	if err := closeFn(); err != nil {
		return fmt.Errorf("failed to finish output: %w", err)
	}

	if cmd.OutputPath != "" {
		fmt.Fprintf(os.Stderr, "Exported %d cards to %s\n", len(all), cmd.OutputPath)
	}
	return nil
}
