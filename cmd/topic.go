package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/holdings/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show the hcalc documentation" }
func (*topicCmd) Usage() string {
	return `hcalc topic [-l] [<topic>...]

Print the documentation topics given as arguments, the readme when there is
none. "*" stands for every topic.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "l", false, "list the topics and their title")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		if err := listTopics(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error listing topics: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	names := f.Args()
	if len(names) == 0 {
		names = []string{"readme"}
	}
	doc, err := docs.GetTopics(names...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading topic: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

// listTopics writes one "name\ttitle" line per topic, the title being the
// topic's first level-one heading.
func listTopics(w io.Writer) error {
	names, err := docs.GetAllTopics()
	if err != nil {
		return err
	}
	for _, name := range names {
		content, err := docs.GetTopic(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", name, topicTitle(content))
	}
	return nil
}

func topicTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if title, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(title)
		}
	}
	return ""
}
