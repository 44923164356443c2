package cmd

import (
	"flag"

	"github.com/luizmugnaicomex-art/landedcost"
	"github.com/luizmugnaicomex-art/landedcost/config"
	"github.com/luizmugnaicomex-art/landedcost/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors predicts the values of flags shared by several subcommands.
var flagPredictors = map[string]complete.Predictor{
	"p":         predict.Files("*.json"),
	"pdf":       predict.Files("*.pdf"),
	"o":         predict.Files("*.json"),
	"paths":     predict.Files("*"),
	"rates":     predict.Files("*.json"),
	"catalog":   predict.Files("*"),
	"format":    predict.Set(config.Formats),
	"log-level": predict.Set{"debug", "info", "warn", "error"},
}

// argPredictors predicts the positional arguments of subcommands.
var argPredictors = map[string]complete.Predictor{
	"cashflow": predict.Files("*"),
	"rates":    predict.Files("*.json"),
	"schema":   predict.Set{"profile", "item"},
	"topic":    complete.PredictFunc(predictTopics),
}

func predictTopics(prefix string) []string {
	topics, _ := docs.GetAllTopics()
	return topics
}

// predictSchedules predicts the schedule names of the built-in catalog.
func predictSchedules(prefix string) []string {
	var names []string
	for _, s := range landedcost.DefaultCatalog() {
		names = append(names, s.Name)
	}
	return names
}

// Completion returns the shell completion of lcc: its global flags, its subcommands and their flags.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictFlags(flag.CommandLine),
	}
	for _, g := range Commands {
		for _, c := range g.Commands {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			sub := &complete.Command{Flags: predictFlags(fs), Args: predict.Nothing}
			if p, ok := argPredictors[c.Name()]; ok {
				sub.Args = p
			}
			root.Sub[c.Name()] = sub
		}
	}
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{Args: predict.Nothing}
	}
	return root
}

func predictFlags(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case f.Name == "schedule":
			flags[f.Name] = complete.PredictFunc(predictSchedules)
		case isBool(f):
			flags[f.Name] = predict.Nothing
		case flagPredictors[f.Name] != nil:
			flags[f.Name] = flagPredictors[f.Name]
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

// isBool reports whether f is a boolean flag, which takes no value.
func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
