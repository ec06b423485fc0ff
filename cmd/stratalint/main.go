package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/stratalint/stratalint/lint"
	"github.com/stratalint/stratalint/report"
)

const version = "0.1.0"

// commandLine represents the command-line interface
type commandLine struct {
	Files    []string `arg:"" optional:"" name:"file" help:"Config files to lint"`
	Format   string   `help:"Output format" default:"text" enum:"text,json,yaml"`
	Parallel int      `help:"Number of parallel workers (0 = CPU count)" default:"1"`
	Quiet    bool     `help:"Suppress per-file OK lines" short:"q"`
	Verbose  bool     `help:"Enable verbose output" short:"v"`
	NoColor  bool     `help:"Disable colored output"`
	Version  bool     `help:"Show version information"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one CLI invocation and returns the process exit code:
// 0 when every file passed, 1 when any file failed or was missing,
// 2 for usage errors.
func run(args []string, stdout, stderr io.Writer) int {
	var cli commandLine

	parser, err := kong.New(&cli,
		kong.Name("stratalint"),
		kong.Description("Structural linter for indentation-based config files: bracket balance, duplicate entries, cross-reference tokens."),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "stratalint: %v\n", err)
		return 2
	}

	if cli.Version {
		fmt.Fprintf(stdout, "stratalint v%s\n", version)
		return 0
	}

	if len(cli.Files) == 0 {
		fmt.Fprintln(stderr, "usage: stratalint [flags] <file> ...")
		return 2
	}

	if cli.Verbose && cli.Format == report.FormatText {
		fmt.Fprintf(stderr, "Linting %d file(s)\n", len(cli.Files))
	}

	results := lint.Runner{Parallel: cli.Parallel}.Run(cli.Files)

	printer := &report.Printer{
		Stdout:  stdout,
		Stderr:  stderr,
		Format:  cli.Format,
		Quiet:   cli.Quiet,
		NoColor: cli.NoColor || cli.Format != report.FormatText,
	}

	if err := printer.Print(results); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if lint.AnyFailed(results) {
		return 1
	}

	return 0
}
