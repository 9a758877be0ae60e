package cmd

import (
	"flag"

	"github.com/etnz/holdings/config"
	"github.com/etnz/holdings/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// filePredictors maps the flags naming files to their completion.
var filePredictors = map[string]complete.Predictor{
	"f":      predict.Files("*"),
	"o":      predict.Files("*"),
	"config": predict.Files("*.yaml"),
}

// Completion returns the shell completion tree of the application, built
// from the flags of every command.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(fs)}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(append(topics, "readme"))
	}
	return root
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case isBoolFlag(f):
			flags[f.Name] = predict.Nothing
		case f.Name == "format":
			flags[f.Name] = predict.Set(config.Formats)
		case filePredictors[f.Name] != nil:
			flags[f.Name] = filePredictors[f.Name]
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
