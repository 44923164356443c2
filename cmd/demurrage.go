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
	"github.com/luizmugnaicomex-art/landedcost/renderer"
	"github.com/shopspring/decimal"
)

type demurrageCmd struct {
	profile   string
	today     string
	dailyRate string
	format    string
}

func (*demurrageCmd) Name() string { return "demurrage" }
func (*demurrageCmd) Synopsis() string {
	return "display the demurrage exposure of a container at port"
}
func (*demurrageCmd) Usage() string {
	return `lcc demurrage -p <profile.json> [-today <date>] [-daily-rate <USD>] [-format md|html|json]

  Computes the end of the demurrage free time from the "Arrival at Port"
  milestone, the days remaining, and once overdue, an estimated charge at the
  daily rate. Nothing is computed before the container arrives.
`
}

func (c *demurrageCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.profile, "p", "", "Import profile snapshot (JSON).")
	f.StringVar(&c.today, "today", "", "Day of evaluation (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.dailyRate, "daily-rate", "", "Demurrage charge per overdue day, in USD. Defaults to $LCC_DEMURRAGE_DAILY_RATE_USD.")
	f.StringVar(&c.format, "format", "", "Output format: md, html or json. Defaults to $LCC_REPORT_FORMAT.")
}

func (c *demurrageCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	today := date.Today()
	if c.today != "" {
		if today, err = date.Parse(c.today); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -today: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	rate := cfg.DemurrageDailyRateUSD
	if c.dailyRate != "" {
		if rate, err = decimal.NewFromString(c.dailyRate); err != nil || rate.IsNegative() {
			fmt.Fprintf(os.Stderr, "Error: invalid -daily-rate %q\n", c.dailyRate)
			return subcommands.ExitUsageError
		}
	}
	p, err := decodeProfile(c.profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding import profile: %v\n", err)
		return subcommands.ExitFailure
	}

	if format == config.FormatJSON {
		e, ok := p.Demurrage(today, rate)
		var exposure *landedcost.DemurrageExposure
		if ok {
			exposure = &e
		}
		return printJSON(struct {
			ImportID   string                        `json:"importId"`
			Today      date.Date                     `json:"today"`
			Computable bool                          `json:"computable"`
			Exposure   *landedcost.DemurrageExposure `json:"exposure,omitempty"`
		}{p.ID, today, ok, exposure})
	}
	return printReport(format, renderer.DemurrageMarkdown(p, today, rate))
}
