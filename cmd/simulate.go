package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/luizmugnaicomex-art/landedcost"
	"github.com/luizmugnaicomex-art/landedcost/config"
	"github.com/luizmugnaicomex-art/landedcost/export"
	"github.com/luizmugnaicomex-art/landedcost/logger"
	"github.com/luizmugnaicomex-art/landedcost/renderer"
	"github.com/shopspring/decimal"
)

type simulateCmd struct {
	profile     string
	exTariff    bool
	schedule    string
	storageDays int
	fees        string
	pdf         string
	format      string
}

func (*simulateCmd) Name() string { return "simulate" }
func (*simulateCmd) Synopsis() string {
	return "compare the landed cost of an import with a what-if scenario"
}
func (*simulateCmd) Usage() string {
	return `lcc simulate -p <profile.json> [-ex-tariff] [-schedule <name> -storage-days <days>] [-fees <BRL>] [-pdf <out.pdf>] [-format md|html|json]

  Simulates the EX-tariff duty relief granted to the import, a bonded-warehouse
  stay under one of the catalog schedules, and additional fees, and compares
  the result with the real figures.

Usage Examples:
$ lcc simulate -p IMP-017.json -ex-tariff
$ lcc simulate -p IMP-017.json -schedule dry-port -storage-days 40 -fees 1200.50
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.profile, "p", "", "Import profile snapshot (JSON).")
	f.BoolVar(&c.exTariff, "ex-tariff", false, "Apply the EX-tariff relief of the profile to the import duty (II).")
	f.StringVar(&c.schedule, "schedule", "", "Warehouse schedule name, see 'lcc catalog'.")
	f.IntVar(&c.storageDays, "storage-days", 0, "Days of bonded storage, billed by periods of 15 days.")
	f.StringVar(&c.fees, "fees", "0", "Additional fees in BRL.")
	f.StringVar(&c.pdf, "pdf", "", "Also write the comparison to this PDF file.")
	f.StringVar(&c.format, "format", "", "Output format: md, html or json. Defaults to $LCC_REPORT_FORMAT.")
}

// parameters builds the simulation parameters from the flags.
func (c *simulateCmd) parameters(catalog landedcost.Catalog) (landedcost.SimulationParameters, error) {
	params := landedcost.SimulationParameters{ApplyExTariff: c.exTariff, StorageDays: c.storageDays}
	fees, err := decimal.NewFromString(c.fees)
	if err != nil {
		return params, fmt.Errorf("invalid -fees %q: %w", c.fees, err)
	}
	if fees.IsNegative() {
		logger.Log.Warn().Stringer("fees", fees).Msg("negative additional fees are ignored")
	}
	params.AdditionalFeesBRL = fees
	if c.schedule != "" {
		s, err := catalog.Lookup(c.schedule)
		if err != nil {
			return params, err
		}
		params.WarehouseSchedule = &s
	} else if c.storageDays != 0 {
		logger.Log.Warn().Int("days", c.storageDays).Msg("storage days without a warehouse schedule are ignored")
	}
	return params, nil
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	catalog, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading warehouse catalog: %v\n", err)
		return subcommands.ExitFailure
	}
	params, err := c.parameters(catalog)
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

	if c.pdf != "" || format == config.FormatJSON {
		cmp, err := landedcost.Simulate(p, params, rates)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error simulating %q: %v\n", p.ID, err)
			return subcommands.ExitFailure
		}
		if c.pdf != "" {
			if err := writePDF(c.pdf, func(f *os.File) error { return export.ComparisonPDF(f, p.ID, cmp) }); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitFailure
			}
		}
		if format == config.FormatJSON {
			return printJSON(struct {
				ImportID   string                `json:"importId"`
				Comparison landedcost.Comparison `json:"comparison"`
			}{p.ID, cmp})
		}
	}
	return printReport(format, renderer.ComparisonMarkdown(p, params, rates))
}

// writePDF creates path and writes a PDF document into it.
func writePDF(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating PDF file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing PDF file: %w", err)
	}
	logger.Log.Info().Str("file", path).Msg("PDF written")
	return nil
}
