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

type graphCmd struct {
	portfolio string
	begin     string
	end       string
	png       string
}

func (*graphCmd) Name() string     { return "graph" }
func (*graphCmd) Synopsis() string { return "graph a portfolio's value over a date range" }
func (*graphCmd) Usage() string {
	return `spm graph -p <portfolio> -b <begin> [-e <end>] [-png <file>]

  Draws the portfolio's daily value as a star graph in the terminal, or as
  a PNG line chart when -png is given.
`
}

func (c *graphCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Portfolio name.")
	f.StringVar(&c.begin, "b", "", "Start date (YYYY-MM-DD).")
	f.StringVar(&c.end, "e", stockfolio.Today().String(), "End date (YYYY-MM-DD).")
	f.StringVar(&c.png, "png", "", "Write a PNG chart to this file instead of drawing in the terminal.")
}

func (c *graphCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	r := stockfolio.NewRange(begin, end)

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

	if c.png == "" {
		fmt.Print(stockfolio.Graph(p, r))
		return subcommands.ExitSuccess
	}

	out, err := os.Create(c.png)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := renderer.RenderChart(out, p, r); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %s\n", c.png)
	return subcommands.ExitSuccess
}
