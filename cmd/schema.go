package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/luizmugnaicomex-art/landedcost"
)

type schemaCmd struct{}

func (*schemaCmd) Name() string     { return "schema" }
func (*schemaCmd) Synopsis() string { return "print the JSON schema of the input files" }
func (*schemaCmd) Usage() string {
	return `lcc schema [profile|item]

  Prints the JSON schema of an import profile snapshot (default) or of a
  single cost item, for editors and upstream exporters.
`
}

func (*schemaCmd) SetFlags(f *flag.FlagSet) {}

func (*schemaCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	switch f.Arg(0) {
	case "", "profile":
		return printJSON(landedcost.ProfileSchema())
	case "item":
		return printJSON(landedcost.ItemSchema())
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown schema %q, want profile or item\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
}
