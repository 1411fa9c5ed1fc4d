package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/vjacques/stockfolio"
)

// targetsFlag accumulates repeated -t SYMBOL=FRACTION values.
type targetsFlag map[string]float64

func (t targetsFlag) String() string {
	var parts []string
	for symbol, fraction := range t {
		parts = append(parts, fmt.Sprintf("%s=%g", symbol, fraction))
	}
	return strings.Join(parts, ",")
}

func (t targetsFlag) Set(value string) error {
	symbol, fraction, ok := strings.Cut(value, "=")
	if !ok {
		return fmt.Errorf("want SYMBOL=FRACTION, got %q", value)
	}
	weight, err := strconv.ParseFloat(fraction, 64)
	if err != nil {
		return fmt.Errorf("bad fraction in %q: %w", value, err)
	}
	if weight < 0 || weight > 1 {
		return fmt.Errorf("fraction %q out of [0,1]", fraction)
	}
	t[strings.TrimSpace(symbol)] = weight
	return nil
}

type rebalanceCmd struct {
	portfolio string
	date      string
	targets   targetsFlag
}

func (*rebalanceCmd) Name() string     { return "rebalance" }
func (*rebalanceCmd) Synopsis() string { return "trade holdings toward target weights" }
func (*rebalanceCmd) Usage() string {
	return `spm rebalance -p <portfolio> -t SYMBOL=FRACTION [-t ...] [-d <date>]

  Trades whole shares at the date's closing prices so each holding's value
  approaches its target fraction of the total. Held symbols without a
  target are sold out. Fractions should sum to 1.
`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	c.targets = make(targetsFlag)
	f.StringVar(&c.portfolio, "p", "", "Portfolio name.")
	f.StringVar(&c.date, "d", stockfolio.Today().String(), "Rebalance date (YYYY-MM-DD).")
	f.Var(c.targets, "t", "Target weight as SYMBOL=FRACTION, repeatable.")
}

func (c *rebalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := stockfolio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if len(c.targets) == 0 {
		fmt.Fprintln(os.Stderr, "at least one -t SYMBOL=FRACTION target is required")
		return subcommands.ExitUsageError
	}
	var sum float64
	for _, fraction := range c.targets {
		sum += fraction
	}
	if sum > 1.0001 {
		fmt.Fprintf(os.Stderr, "target fractions sum to %g, want at most 1\n", sum)
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

	records, err := p.Rebalance(on, c.targets)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := SavePortfolio(p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if len(records) == 0 {
		fmt.Println("Already balanced, no trades.")
		return subcommands.ExitSuccess
	}
	for _, r := range records {
		fmt.Println(r)
	}
	return subcommands.ExitSuccess
}
