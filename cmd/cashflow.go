package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/luizmugnaicomex-art/landedcost"
	"github.com/luizmugnaicomex-art/landedcost/config"
	"github.com/luizmugnaicomex-art/landedcost/date"
	"github.com/luizmugnaicomex-art/landedcost/export"
	"github.com/luizmugnaicomex-art/landedcost/renderer"
)

// defaultMonths is the length of the default projection window, current month included.
const defaultMonths = 6

type cashflowCmd struct {
	from   string
	to     string
	pdf    string
	format string
}

func (*cashflowCmd) Name() string { return "cashflow" }
func (*cashflowCmd) Synopsis() string {
	return "project the monthly expenses of several imports"
}
func (*cashflowCmd) Usage() string {
	return `lcc cashflow [-from <date>] [-to <date>] [-pdf <out.pdf>] [-format md|html|json] <items.jsonl|profile.json>...

  Buckets the cost items of every import per calendar month: payments made
  (actual) and outstanding items by due date (projected), and lists the
  pending payments. Item files are JSONL of {"importId": ..., "item": {...}};
  profile snapshots (.json) contribute all their items.

  The window defaults to the current month and the next five.
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "First month of the window (any date in it). Defaults to the current month.")
	f.StringVar(&c.to, "to", "", "Last month of the window (any date in it).")
	f.StringVar(&c.pdf, "pdf", "", "Also write the projection to this PDF file.")
	f.StringVar(&c.format, "format", "", "Output format: md, html or json. Defaults to $LCC_REPORT_FORMAT.")
}

// window parses the -from and -to flags.
func (c *cashflowCmd) window() (from, to date.Date, err error) {
	from = date.Today()
	if c.from != "" {
		if from, err = date.Parse(c.from); err != nil {
			return from, to, fmt.Errorf("invalid -from: %w", err)
		}
	}
	to = from.StartOfMonth().AddMonth(defaultMonths - 1)
	if c.to != "" {
		if to, err = date.Parse(c.to); err != nil {
			return from, to, fmt.Errorf("invalid -to: %w", err)
		}
	}
	return from, to, nil
}

func (c *cashflowCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no item file given")
		return subcommands.ExitUsageError
	}
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
	from, to, err := c.window()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	items, err := decodeItems(ctx, f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding cost items: %v\n", err)
		return subcommands.ExitFailure
	}
	rates, err := loadRates(cfg.RatesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading exchange rates: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.pdf != "" || format == config.FormatJSON {
		p, err := landedcost.ProjectCashFlow(items, from, to, rates)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error projecting cash flow: %v\n", err)
			return subcommands.ExitFailure
		}
		if c.pdf != "" {
			if err := writePDF(c.pdf, func(f *os.File) error { return export.CashFlowPDF(f, p) }); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitFailure
			}
		}
		if format == config.FormatJSON {
			return printJSON(p)
		}
	}
	return printReport(format, renderer.CashFlowMarkdown(items, from, to, rates))
}
