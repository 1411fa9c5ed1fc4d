package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/vjacques/stockfolio"
	"github.com/vjacques/stockfolio/renderer"
)

type holdingCmd struct {
	portfolio string
	date      string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display a portfolio's composition on a date" }
func (*holdingCmd) Usage() string {
	return `spm holding -p <portfolio> [-d <date>]

  Shows each held symbol with its quantity, price and value on the date,
  and the portfolio total.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Portfolio name.")
	f.StringVar(&c.date, "d", stockfolio.Today().String(), "Report date (YYYY-MM-DD).")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := stockfolio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	market, err := OpenMarket()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	p, err := LoadPortfolio(c.portfolio, market)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderHolding(renderer.NewHolding(p, on)))
	return subcommands.ExitSuccess
}
