package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/vjacques/stockfolio"
)

type movavgCmd struct {
	symbol string
	date   string
	days   int
}

func (*movavgCmd) Name() string     { return "movavg" }
func (*movavgCmd) Synopsis() string { return "print a symbol's x-day moving average" }
func (*movavgCmd) Usage() string {
	return `spm movavg -s <symbol> -x <days> [-d <date>]

  Averages the closing price over the last x trading days ending at the
  date, resolved to the nearest trading day before it.
`
}

func (c *movavgCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock symbol.")
	f.StringVar(&c.date, "d", stockfolio.Today().String(), "End date (YYYY-MM-DD).")
	f.IntVar(&c.days, "x", 30, "Window size in trading days.")
}

func (c *movavgCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	series, err := market.Series(c.symbol)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	avg, err := stockfolio.MovingAverage(series, on, c.days)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s %d-day moving average on %s: %.2f\n", c.symbol, c.days, on, avg)
	return subcommands.ExitSuccess
}
