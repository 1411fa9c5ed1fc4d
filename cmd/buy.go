package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/vjacques/stockfolio"
)

type buyCmd struct {
	portfolio string
	symbol    string
	quantity  string
	date      string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a share purchase in a portfolio" }
func (*buyCmd) Usage() string {
	return `spm buy -p <portfolio> -s <symbol> -q <quantity> [-d <date>]

  Buys shares of a symbol on a date (today by default) and saves the
  portfolio. The symbol must have price data, locally or via the API.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Portfolio name.")
	f.StringVar(&c.symbol, "s", "", "Stock symbol to buy.")
	f.StringVar(&c.quantity, "q", "", "Number of shares to buy.")
	f.StringVar(&c.date, "d", stockfolio.Today().String(), "Transaction date (YYYY-MM-DD).")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := stockfolio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	quantity, err := stockfolio.ParseQuantity(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity: %v\n", err)
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
	series, err := market.Series(c.symbol)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := p.BuyStock(c.symbol, series, quantity, on); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := SavePortfolio(p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Bought %s %s on %s, now holding %s\n", quantity, c.symbol, on, p.Quantity(c.symbol))
	return subcommands.ExitSuccess
}
