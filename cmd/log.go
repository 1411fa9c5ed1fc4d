package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/vjacques/stockfolio/renderer"
)

type logCmd struct {
	portfolio string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "display a portfolio's transaction history" }
func (*logCmd) Usage() string {
	return `spm log -p <portfolio>

  Shows every recorded transaction in order, including the trades produced
  by past rebalances.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Portfolio name.")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.RenderLog(renderer.NewLog(p)))
	return subcommands.ExitSuccess
}
