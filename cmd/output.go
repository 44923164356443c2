package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/luizmugnaicomex-art/landedcost/config"
	"github.com/luizmugnaicomex-art/landedcost/logger"
	"github.com/luizmugnaicomex-art/landedcost/renderer"
)

// printMarkdown renders md for the terminal, or prints it raw if it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	logger.Log.Debug().Err(err).Msg("cannot render markdown, printing it raw")
	fmt.Fprint(stdout, md)
}

// printJSON writes v as indented JSON.
func printJSON(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printReport prints the markdown report md in format, which is md or html.
func printReport(format, md string) subcommands.ExitStatus {
	if format == config.FormatHTML {
		html, err := renderer.HTML(md)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Fprint(stdout, html)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

// reportFormat returns the -format flag value, or the configured default.
func reportFormat(flagValue string, c *config.Config) (string, error) {
	if flagValue == "" {
		return c.ReportFormat, nil
	}
	return flagValue, config.ValidateFormat(flagValue)
}
