package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/vjacques/stockfolio"
)

type crossoverCmd struct {
	symbol string
	begin  string
	end    string
	days   int
}

func (*crossoverCmd) Name() string { return "crossover" }
func (*crossoverCmd) Synopsis() string {
	return "list the days a symbol closed above its moving average"
}
func (*crossoverCmd) Usage() string {
	return `spm crossover -s <symbol> -x <days> -b <begin> [-e <end>]

  Lists every trading day in the range whose closing price is above that
  day's x-day moving average.
`
}

func (c *crossoverCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock symbol.")
	f.StringVar(&c.begin, "b", "", "Start date (YYYY-MM-DD).")
	f.StringVar(&c.end, "e", stockfolio.Today().String(), "End date (YYYY-MM-DD).")
	f.IntVar(&c.days, "x", 30, "Window size in trading days.")
}

func (c *crossoverCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	begin, err := stockfolio.ParseDate(c.begin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing begin date: %v\n", err)
		return subcommands.ExitUsageError
	}
	end, err := stockfolio.ParseDate(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
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

	days, err := stockfolio.CrossoverDays(series, c.days, stockfolio.NewRange(begin, end))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if len(days) == 0 {
		fmt.Printf("%s never closed above its %d-day average in that range\n", c.symbol, c.days)
		return subcommands.ExitSuccess
	}
	for _, d := range days {
		fmt.Println(d)
	}
	return subcommands.ExitSuccess
}
