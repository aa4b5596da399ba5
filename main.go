package main

import (
	"fmt"
	"os"

	"github.com/talkseed/aacboard/internal/cli"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	commands := map[string]command{
		"import-csv":   cli.NewImportCSVCommand(),
		"export-csv":   cli.NewExportCSVCommand(),
		"import-xlsx":  cli.NewImportXLSXCommand(),
		"export-xlsx":  cli.NewExportXLSXCommand(),
		"template-csv": cli.NewTemplateCSVCommand(),
		"stats":        cli.NewStatsCommand(),
		"reset":        cli.NewResetCommand(),
	}

	name := os.Args[1]
	args := os.Args[2:]

	switch name {
	case "-h", "--help", "help":
		printUsage()
		return
	case "version":
		fmt.Printf("aacboard %s (%s)\n", Version, Commit)
		return
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  import-csv    Import cards from a CSV file\n")
	fmt.Fprintf(os.Stderr, "  export-csv    Export cards as CSV\n")
	fmt.Fprintf(os.Stderr, "  import-xlsx   Import cards from an XLSX workbook\n")
	fmt.Fprintf(os.Stderr, "  export-xlsx   Export cards as an XLSX workbook\n")
	fmt.Fprintf(os.Stderr, "  template-csv  Write a sample CSV in the import format\n")
	fmt.Fprintf(os.Stderr, "  stats         Print per-collection counts and speech settings\n")
	fmt.Fprintf(os.Stderr, "  reset         Erase board data, or restore default auxiliary words\n")
	fmt.Fprintf(os.Stderr, "  version       Print version information\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
