package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/vjacques/stockfolio"
)

type createCmd struct{}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new empty portfolio" }
func (*createCmd) Usage() string {
	return `spm create <name>

  Creates a new empty portfolio stored under the portfolio directory.
`
}

func (*createCmd) SetFlags(f *flag.FlagSet) {}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "create takes exactly one portfolio name")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	if _, err := os.Stat(portfolioPath(name)); err == nil {
		fmt.Fprintf(os.Stderr, "portfolio %q already exists\n", name)
		return subcommands.ExitFailure
	}
	if err := SavePortfolio(stockfolio.NewPortfolio(name)); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating portfolio %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created portfolio %q\n", name)
	return subcommands.ExitSuccess
}
