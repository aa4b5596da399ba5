package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/talkseed/aacboard/internal/config"
	"github.com/talkseed/aacboard/internal/database/auxwords"
	"github.com/talkseed/aacboard/internal/database/cards"
	"github.com/talkseed/aacboard/internal/database/categories"
	"github.com/talkseed/aacboard/internal/database/favouritecards"
	"github.com/talkseed/aacboard/internal/database/sentences"
	"github.com/talkseed/aacboard/internal/database/settings"
)

// StatsCommand prints a summary of every collection in the board database.
type StatsCommand struct {
	DatabasePath string
}

func NewStatsCommand() *StatsCommand {
	return &StatsCommand{}
}

func (cmd *StatsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the board database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s stats [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print per-collection counts and the current speech settings.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *StatsCommand) Run() error {
	db, err := openDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	allCards, err := cards.NewRepository(db.DB).GetAll()
	if err != nil {
		return fmt.Errorf("failed to read cards: %w", err)
	}
	cats, err := categories.NewRepository(db.DB).GetAll()
	if err != nil {
		return fmt.Errorf("failed to read categories: %w", err)
	}
	favs, err := favouritecards.NewRepository(db.DB).GetAll()
	if err != nil {
		return fmt.Errorf("failed to read favourite cards: %w", err)
	}
	favSentences, err := sentences.NewRepository(db.DB).GetAll()
	if err != nil {
		return fmt.Errorf("failed to read favourite sentences: %w", err)
	}
	words, err := auxwords.NewRepository(db.DB).GetAll()
	if err != nil {
		return fmt.Errorf("failed to read auxiliary words: %w", err)
	}
	speech, err := settings.NewRepository(db.DB).Get()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	fmt.Printf("Cards:               %d\n", len(allCards))
	fmt.Printf("Categories:          %d\n", len(cats))
	fmt.Printf("Favourite cards:     %d\n", len(favs))
	fmt.Printf("Favourite sentences: %d\n", len(favSentences))
	fmt.Printf("Auxiliary words:     %d\n", len(words))
	fmt.Printf("Speech rate:         %.2f\n", speech.SpeechRate)
	fmt.Printf("Speech pitch:        %.2f\n", speech.SpeechPitch)

	perCategory := make(map[string]int, len(cats))
	for _, c := range allCards {
		perCategory[c.Category]++
	}
	for _, cat := range cats {
		fmt.Printf("  %s %s: %d cards\n", cat.DisplayIcon(), cat.Name, perCategory[cat.Name])
	}

	return nil
}
