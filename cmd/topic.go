package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/luizmugnaicomex-art/landedcost/docs"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation about landed costs, simulations and files" }
func (*topicCmd) Usage() string {
	return `lcc topic [-list] [<topic>...]

  Prints the documentation topics, "*" prints all of them. Without a topic, prints the
  introduction and the list of topics.

Example:

$ lcc topic categories simulation
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "only print the topic names")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		names, err := docs.GetAllTopics()
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot list topics: %v\n", err)
			return subcommands.ExitFailure
		}
		for _, name := range names {
			fmt.Fprintln(stdout, name)
		}
		return subcommands.ExitSuccess
	}

	names := f.Args()
	if len(names) == 0 {
		names = append(names, "readme")
	}
	md, err := docs.GetTopics(names...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
