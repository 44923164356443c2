// Package cmd implements the lcc command line: landed cost, simulation, demurrage and cash-flow
// reports over import profile snapshots.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"
	"github.com/luizmugnaicomex-art/landedcost"
	"github.com/luizmugnaicomex-art/landedcost/config"
	"github.com/luizmugnaicomex-art/landedcost/logger"
	"golang.org/x/sync/errgroup"
)

// Commands lists every lcc subcommand, by group.
var Commands = []struct {
	Group    string
	Commands []subcommands.Command
}{
	{"reports", []subcommands.Command{&breakdownCmd{}, &simulateCmd{}, &demurrageCmd{}, &cashflowCmd{}}},
	{"data", []subcommands.Command{&catalogCmd{}, &ratesCmd{}, &schemaCmd{}}},
	{"help", []subcommands.Command{&topicCmd{}}},
}

// Register the subcommands.
func Register(c *subcommands.Commander) {
	for _, g := range Commands {
		for _, cmd := range g.Commands {
			c.Register(cmd, g.Group)
		}
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ratesFile = flag.String("rates", "", "Exchange-rate table (JSON). Defaults to $LCC_RATES_FILE.")
var catalogFile = flag.String("catalog", "", "Warehouse catalog (.toml, .yaml or .json). Defaults to $LCC_CATALOG_FILE, then to the built-in catalog.")
var logLevel = flag.String("log-level", "", "Log level: debug, info, warn or error. Defaults to $LCC_LOG_LEVEL.")

// stdout receives the reports.
var stdout io.Writer = os.Stdout

// settings returns the configuration, with the global flags taking precedence.
func settings() (*config.Config, error) {
	c, err := config.Load()
	if err != nil {
		return nil, err
	}
	s := *c
	if *ratesFile != "" {
		s.RatesFile = *ratesFile
	}
	if *catalogFile != "" {
		s.CatalogFile = *catalogFile
	}
	if *logLevel != "" {
		s.LogLevel = *logLevel
	}
	logger.SetLevel(s.LogLevel)
	return &s, nil
}

// loadRates reads the exchange-rate table. Without a table it returns nil, and reports show
// the rates as unavailable.
func loadRates(path string) (*landedcost.ExchangeRateTable, error) {
	if path == "" {
		logger.Log.Warn().Msg("no exchange-rate table configured, BRL amounts are unavailable")
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rates, err := landedcost.DecodeRates(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Log.Debug().Str("file", path).Stringer("date", rates.Date).Msg("exchange rates loaded")
	return rates, nil
}

// loadCatalog reads the warehouse catalog, or returns the built-in one.
func loadCatalog(path string) (landedcost.Catalog, error) {
	if path == "" {
		return landedcost.DefaultCatalog(), nil
	}
	c, err := config.LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	logger.Log.Debug().Str("file", path).Int("schedules", len(c)).Msg("warehouse catalog loaded")
	return c, nil
}

// decodeProfile reads and validates an import profile snapshot.
func decodeProfile(path string) (landedcost.ImportCostProfile, error) {
	if path == "" {
		return landedcost.ImportCostProfile{}, fmt.Errorf("missing import profile, use -p <profile.json>")
	}
	f, err := os.Open(path)
	if err != nil {
		return landedcost.ImportCostProfile{}, err
	}
	defer f.Close()
	p, err := landedcost.DecodeProfile(f)
	if err != nil {
		return p, fmt.Errorf("%s: %w", path, err)
	}
	for _, item := range p.Items {
		if !item.Currency.Known() {
			logger.Log.Warn().Str("import", p.ID).Str("item", item.ID).Str("currency", string(item.Currency)).
				Msg("unknown currency, the value is taken as BRL")
		}
	}
	return p, nil
}

// decodeItems reads cost items from JSONL item files and JSON profile snapshots, concurrently.
// Items are returned in the order of paths.
func decodeItems(ctx context.Context, paths []string) ([]landedcost.ImportItem, error) {
	results := make([][]landedcost.ImportItem, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			items, err := decodeItemFile(path)
			if err != nil {
				return err
			}
			logger.Log.Debug().Str("file", path).Int("items", len(items)).Msg("cost items loaded")
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var items []landedcost.ImportItem
	for _, r := range results {
		items = append(items, r...)
	}
	return items, nil
}

func decodeItemFile(path string) ([]landedcost.ImportItem, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		p, err := decodeProfile(path)
		if err != nil {
			return nil, err
		}
		return p.ImportItems(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return landedcost.DecodeItems(path, f)
}
