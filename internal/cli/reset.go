package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/talkseed/aacboard/internal/config"
	"github.com/talkseed/aacboard/internal/database/auxwords"
	"github.com/talkseed/aacboard/internal/entities"
)

// ResetCommand erases every collection, or restores the auxiliary word bar
// to its defaults. Destructive, so it refuses to run without -yes.
type ResetCommand struct {
	DatabasePath string
	AuxWordsOnly bool
	Confirmed    bool
}

func NewResetCommand() *ResetCommand {
	return &ResetCommand{}
}

func (cmd *ResetCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("reset", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the board database file")
	fs.BoolVar(&cmd.AuxWordsOnly, "auxwords", false, "Only restore the auxiliary word bar to its default words")
	fs.BoolVar(&cmd.Confirmed, "yes", false, "Confirm the reset (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s reset -yes [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Erase all board data and settings. With -auxwords, only replace the\n")
		fmt.Fprintf(os.Stderr, "auxiliary word list with the default words.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if !cmd.Confirmed {
		return fmt.Errorf("refusing to reset without -yes")
	}

	return nil
}

func (cmd *ResetCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	if cmd.AuxWordsOnly {
		words, err := auxwords.NewRepository(db.DB).ReplaceAll(entities.DefaultAuxiliaryWords())
		if err != nil {
			return fmt.Errorf("failed to restore auxiliary words: %w", err)
		}
		fmt.Printf("Restored %d default auxiliary words\n", len(words))
		return nil
	}

	if err := db.ClearAll(); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	fmt.Println("All board data erased")
	return nil
}
