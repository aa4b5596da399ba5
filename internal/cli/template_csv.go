package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/talkseed/aacboard/internal/exporters"
)

// TemplateCSVCommand writes a sample import file users can fill in.
type TemplateCSVCommand struct {
	OutputPath string
}

func NewTemplateCSVCommand() *TemplateCSVCommand {
	return &TemplateCSVCommand{}
}

func (cmd *TemplateCSVCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("template-csv", flag.ExitOnError)

	fs.StringVar(&cmd.OutputPath, "output", "", "Output file (default: stdout)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s template-csv [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Write a sample CSV in the import format.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *TemplateCSVCommand) Run() error {
	w, closeFn, err := outputWriter(cmd.OutputPath)
	if err != nil {
		return err
	}

	if err := exporters.WriteTemplateCSV(w); err != nil {
		closeFn()
		return fmt.Errorf("failed to write template: %w", err)
	}
	return closeFn()
}
