// Command spm manages stock portfolios from the terminal.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/vjacques/stockfolio/cmd"
)

func main() {
	// Shell completion: this returns immediately unless the shell is asking
	// for completions, in which case it prints them and exits.
	completion().Complete("spm")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	dateFlags := map[string]complete.Predictor{
		"p": predict.Nothing,
		"d": predict.Nothing,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"stocks-dir":    predict.Dirs("*"),
			"portfolio-dir": predict.Dirs("*"),
			"api-key":       predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"create":    {},
			"list":      {},
			"buy":       {Flags: map[string]complete.Predictor{"p": predict.Nothing, "s": predict.Nothing, "q": predict.Nothing, "d": predict.Nothing}},
			"sell":      {Flags: map[string]complete.Predictor{"p": predict.Nothing, "s": predict.Nothing, "q": predict.Nothing, "d": predict.Nothing}},
			"rebalance": {Flags: map[string]complete.Predictor{"p": predict.Nothing, "t": predict.Nothing, "d": predict.Nothing}},
			"log":       {Flags: map[string]complete.Predictor{"p": predict.Nothing}},
			"value":     {Flags: dateFlags},
			"holding":   {Flags: dateFlags},
			"graph":     {Flags: map[string]complete.Predictor{"p": predict.Nothing, "b": predict.Nothing, "e": predict.Nothing, "png": predict.Files("*.png")}},
			"movavg":    {Flags: map[string]complete.Predictor{"s": predict.Nothing, "d": predict.Nothing, "x": predict.Nothing}},
			"crossover": {Flags: map[string]complete.Predictor{"s": predict.Nothing, "b": predict.Nothing, "e": predict.Nothing, "x": predict.Nothing}},
			"fetch":     {Flags: map[string]complete.Predictor{"s": predict.Nothing}},
			"search":    {},
			"topic":     {},
			"assist":    {Flags: map[string]complete.Predictor{"p": predict.Nothing}},
		},
	}
}
