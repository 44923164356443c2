// Command lcc computes landed costs, simulations, demurrage exposure and cash-flow projections
// of imports.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/luizmugnaicomex-art/landedcost/cmd"
)

func main() {
	// exits when called by the shell for completion.
	cmd.Completion().Complete("lcc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
