package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/renderer"
	"github.com/google/subcommands"
)

type checkCmd struct {
	input string
}

func (*checkCmd) Name() string { return "check" }
func (*checkCmd) Synopsis() string {
	return "validates every line of the transaction file"
}
func (*checkCmd) Usage() string {
	return `hcalc check [-f <file>]

  Parses every line of the transaction file and lists the lines that would be
  rejected, with the reason. The command fails if any line is rejected.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "f", "", "Transaction file, \"-\" for stdin (default from config)")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	input := stringFlag(c.input, cfg.Input)

	lines, err := readInput(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	txns, rejections := holdings.Parse(lines)
	logRejections(newLogger(cfg), rejections)

	renderer.Rejections(os.Stdout, rejections)
	if len(rejections) > 0 {
		return subcommands.ExitFailure
	}
	fmt.Printf("%d transaction(s), no error\n", len(txns))
	return subcommands.ExitSuccess
}

// readInput reads all the lines of input ("-" for stdin).
func readInput(input string) ([]string, error) {
	if input != "-" {
		return holdings.ReadFile(input)
	}
	lines, err := holdings.ReadLines(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", holdings.ErrUnreadableInput, err)
	}
	return lines, nil
}
