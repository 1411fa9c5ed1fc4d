package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fetchCmd struct {
	symbol string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "download a symbol's daily price series" }
func (*fetchCmd) Usage() string {
	return `spm fetch -s <symbol>

  Fetches the full daily series from Alpha Vantage and stores it in the
  stocks directory. Requires an API key.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock symbol to fetch.")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "a -s symbol is required")
		return subcommands.ExitUsageError
	}
	if _, err := avClient(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	market, err := OpenMarket()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	series, err := market.Series(c.symbol)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	first, _ := series.First()
	last, row := series.Latest()
	fmt.Printf("%s: %d days from %s to %s, last close %.2f\n", c.symbol, series.Len(), first, last, row.Close)
	return subcommands.ExitSuccess
}
