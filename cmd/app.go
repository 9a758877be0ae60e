// Package cmd implements the hcalc command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/config"
	"github.com/etnz/holdings/date"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the YAML configuration file (default $"+config.EnvPath+" or "+config.DefaultPath+")")
var verbose = flag.Bool("v", false, "Log every account and rejected line")

// Commands lists the hcalc subcommands.
var Commands = []subcommands.Command{
	&holdingsCmd{},
	&checkCmd{},
	&configCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// loadConfig loads the configuration file selected by the global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadAndValidate(*configFile)
	if err != nil {
		return nil, err
	}
	if *verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// newLogger returns the logger of this run. Every entry carries the run id.
func newLogger(cfg *config.Config) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.WarnLevel)
	if cfg.Verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l.WithField("run", uuid.NewString())
}

// calculate reads the transactions from input ("-" for stdin) and computes
// the holdings as of cutoff.
func calculate(input string, cutoff date.Date) (holdings.Result, error) {
	if input == "-" {
		return holdings.CalculateReader(os.Stdin, cutoff)
	}
	return holdings.CalculateFile(input, cutoff)
}

// logRejections logs every rejected line.
func logRejections(log *logrus.Entry, rejections []holdings.Rejection) {
	for _, r := range rejections {
		entry := log.WithField("line", r.Line)
		if reason := r.Reason(); reason != nil {
			entry = entry.WithFields(logrus.Fields{
				"kind":  reason.Kind,
				"field": reason.Field,
				"value": reason.Value,
			})
		}
		entry.Warn("rejected transaction")
	}
}

// openOutput returns the writer for output ("-" for stdout). The returned
// close function must be called once writing is done.
func openOutput(output string) (io.Writer, func() error, error) {
	if output == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(output)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create output file %q: %w", output, err)
	}
	return f, f.Close, nil
}

// stringFlag returns value when the flag was set on the command line,
// fallback otherwise.
func stringFlag(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
