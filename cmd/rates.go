package cmd

import (
	"cmp"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/luizmugnaicomex-art/landedcost"
	"github.com/luizmugnaicomex-art/landedcost/config"
)

type ratesCmd struct {
	paths  string
	output string
}

func (*ratesCmd) Name() string { return "rates" }
func (*ratesCmd) Synopsis() string {
	return "extract an exchange-rate table from a saved rate document"
}
func (*ratesCmd) Usage() string {
	return `lcc rates [-paths <paths.yaml>] [-o <rates.json>] <document.json>

  Reads a JSON document saved from a rate source, extracts the date and the
  USD, EUR and CNY rates with JSONPath expressions, and writes the table in
  the format expected by the global -rates flag.

  The paths file (.toml, .yaml or .json) maps date, usdCompra, usdVenda,
  eurCompra, eurVenda and cny to expressions; missing ones default to the
  table's own layout ($.date, $.usd.venda, ...).

Usage Examples:
# paths.yaml
#   date: $.fetchedAt
#   usdVenda: $.quotes[?(@.code=="USD")].sell
$ lcc rates -paths paths.yaml -o rates.json bcb-2024-03-01.json
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.paths, "paths", "", "JSONPath mapping file. Defaults to $LCC_RATE_PATHS_FILE.")
	f.StringVar(&c.output, "o", "", "Write the table to this file instead of the standard output.")
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one rate document")
		return subcommands.ExitUsageError
	}
	cfg, err := settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	paths := landedcost.DefaultRatePaths
	if file := cmp.Or(c.paths, cfg.RatePathsFile); file != "" {
		if paths, err = config.LoadRatePaths(file); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	doc, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer doc.Close()
	table, err := landedcost.ImportRates(doc, paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %s: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	if c.output == "" {
		return printJSON(table)
	}
	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	saved := stdout
	stdout = out
	status := printJSON(table)
	stdout = saved
	if err := out.Close(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return status
}
