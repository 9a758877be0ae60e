package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/config"
	"github.com/etnz/holdings/date"
	"github.com/etnz/holdings/renderer"
	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	date     string
	input    string
	output   string
	format   string
	currency string
	query    string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "compute the holdings of every account on a given date" }
func (*holdingsCmd) Usage() string {
	return `hcalc holdings [-d <date>] [-f <file>] [-o <file>] [-format text|markdown|json] [-c <currency>] [-q <jsonpath>]

  Reads the transaction file and prints the cash balance and the asset
  quantities of every account as of the end of the given date.
  Rejected lines are skipped and reported on stderr.

Usage Examples:
# Holdings of the transactions piped in, as of today.
$ cat transactions.csv | hcalc holdings

# Cash of account A at the end of 2020, in JSON.
$ hcalc holdings -f transactions.csv -d 20201231 -format json -q '$.A.CASH'
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Cutoff date (YYYYMMDD). Transactions after it are ignored.")
	f.StringVar(&c.input, "f", "", "Transaction file, \"-\" for stdin (default from config)")
	f.StringVar(&c.output, "o", "", "Report file, \"-\" for stdout (default from config)")
	f.StringVar(&c.format, "format", "", "Report format: text, markdown or json (default from config)")
	f.StringVar(&c.currency, "c", "", "Currency used to format cash in the markdown report")
	f.StringVar(&c.query, "q", "", "JSONPath expression applied to the json report")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	cfg.Input = stringFlag(c.input, cfg.Input)
	cfg.Output = stringFlag(c.output, cfg.Output)
	cfg.Format = stringFlag(c.format, cfg.Format)
	cfg.Currency = stringFlag(c.currency, cfg.Currency)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if cfg.Currency != "" && !renderer.ValidCurrency(cfg.Currency) {
		fmt.Fprintf(os.Stderr, "Error: unknown currency %q\n", cfg.Currency)
		return subcommands.ExitUsageError
	}
	if c.query != "" && cfg.Format != config.FormatJSON {
		fmt.Fprintf(os.Stderr, "Error: -q requires the json format\n")
		return subcommands.ExitUsageError
	}

	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	log := newLogger(cfg).WithField("cutoff", on)

	res, err := calculate(cfg.Input, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing holdings: %v\n", err)
		return subcommands.ExitFailure
	}
	logRejections(log, res.Rejections)
	for _, account := range holdings.Accounts(res.Holdings) {
		log.WithField("account", account).WithField("assets", len(res.Holdings[account])-1).Debug("account folded")
	}
	log.WithField("accounts", len(res.Holdings)).WithField("rejected", len(res.Rejections)).Info("holdings computed")

	w, closeOutput, err := openOutput(cfg.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	err = render(w, cfg, on, res, c.query)
	if cerr := closeOutput(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// render writes the report in the configured format.
func render(w io.Writer, cfg *config.Config, on date.Date, res holdings.Result, query string) error {
	switch cfg.Format {
	case config.FormatMarkdown:
		return writeMarkdown(w, renderer.Markdown(renderer.NewReport(on, res, cfg.Currency)))
	case config.FormatJSON:
		if query == "" {
			return renderer.JSON(w, res.Holdings)
		}
		data, err := holdings.MarshalAccounts(res.Holdings)
		if err != nil {
			return err
		}
		out, err := jsonQuery(data, query)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", out)
		return err
	default:
		return renderer.Text(w, res.Holdings)
	}
}
