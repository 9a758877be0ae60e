package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdings/config"
	"github.com/google/subcommands"
	"gopkg.in/yaml.v3"
)

type configCmd struct {
	write bool
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "print the effective configuration" }
func (*configCmd) Usage() string {
	return `hcalc config [-w]

  Prints the configuration in use as YAML. With -w, writes it to
  ` + config.DefaultPath + ` (or $` + config.EnvPath + `) instead.
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.write, "w", false, "write the configuration file")
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.write {
		path := stringFlag(*configFile, config.Path())
		if err := config.Dump(path, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Configuration written to %s\n", path)
		return subcommands.ExitSuccess
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	os.Stdout.Write(data)
	return subcommands.ExitSuccess
}
