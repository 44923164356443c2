package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/luizmugnaicomex-art/landedcost"
	"github.com/luizmugnaicomex-art/landedcost/config"
	"github.com/luizmugnaicomex-art/landedcost/renderer"
)

type breakdownCmd struct {
	profile string
	format  string
}

func (*breakdownCmd) Name() string     { return "breakdown" }
func (*breakdownCmd) Synopsis() string { return "display the landed cost of an import, per category" }
func (*breakdownCmd) Usage() string {
	return `lcc breakdown -p <profile.json> [-format md|html|json]

  Converts every cost item of the import into BRL at the sell rates of the
  exchange-rate table, and sums them per category.
`
}

func (c *breakdownCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.profile, "p", "", "Import profile snapshot (JSON).")
	f.StringVar(&c.format, "format", "", "Output format: md, html or json. Defaults to $LCC_REPORT_FORMAT.")
}

func (c *breakdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	format, err := reportFormat(c.format, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	p, err := decodeProfile(c.profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding import profile: %v\n", err)
		return subcommands.ExitFailure
	}
	rates, err := loadRates(cfg.RatesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading exchange rates: %v\n", err)
		return subcommands.ExitFailure
	}

	if format == config.FormatJSON {
		b, err := p.Breakdown(rates)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing the landed cost of %q: %v\n", p.ID, err)
			return subcommands.ExitFailure
		}
		return printJSON(struct {
			ImportID  string                   `json:"importId"`
			Breakdown landedcost.CostBreakdown `json:"breakdown"`
			CIF       landedcost.Money         `json:"cifBRL"`
		}{p.ID, b, b.CIF()})
	}
	return printReport(format, renderer.BreakdownMarkdown(p, rates))
}
