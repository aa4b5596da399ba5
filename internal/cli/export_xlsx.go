package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/talkseed/aacboard/internal/config"
	"github.com/talkseed/aacboard/internal/database/cards"
	"github.com/talkseed/aacboard/internal/exporters"
)

// ExportXLSXCommand writes the card collection as an XLSX workbook.
type ExportXLSXCommand struct {
	DatabasePath string
	OutputPath   string
}

func NewExportXLSXCommand() *ExportXLSXCommand {
	return &ExportXLSXCommand{}
}

func (cmd *ExportXLSXCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export-xlsx", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the board database file")
	fs.StringVar(&cmd.OutputPath, "output", "", "Output file (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export-xlsx -output <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export all cards as an XLSX workbook, in board order.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.OutputPath == "" {
		return fmt.Errorf("required flag -output not provided")
	}

	return nil
}

func (cmd *ExportXLSXCommand) Run() error {
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

	if err := exporters.ExportXLSX(w, all); err != nil {
		closeFn()
		return fmt.Errorf("export failed: %w", err)
	}
	if err := closeFn(); err != nil {
		return fmt.Errorf("failed to finish output: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Exported %d cards to %s\n", len(all), cmd.OutputPath)
	return nil
}
