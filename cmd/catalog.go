package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/luizmugnaicomex-art/landedcost/config"
	"github.com/luizmugnaicomex-art/landedcost/renderer"
)

type catalogCmd struct {
	format string
}

func (*catalogCmd) Name() string     { return "catalog" }
func (*catalogCmd) Synopsis() string { return "list the bonded-warehouse fee schedules" }
func (*catalogCmd) Usage() string {
	return `lcc catalog [-format md|html|json]

  Lists the warehouse schedules available to 'lcc simulate -schedule'. Use
  the global -catalog flag or $LCC_CATALOG_FILE to replace the built-in ones.
`
}

func (c *catalogCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "", "Output format: md, html or json. Defaults to $LCC_REPORT_FORMAT.")
}

func (c *catalogCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if format == config.FormatJSON {
		return printJSON(catalog)
	}
	return printReport(format, renderer.CatalogMarkdown(catalog))
}
