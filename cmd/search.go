package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search for stock symbols by keywords" }
func (*searchCmd) Usage() string {
	return `spm search <keywords>

  Searches Alpha Vantage for symbols matching a ticker fragment or company
  name. Requires an API key.
`
}

func (*searchCmd) SetFlags(f *flag.FlagSet) {}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "search takes keywords to look for")
		return subcommands.ExitUsageError
	}
	client, err := avClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	matches, err := client.Search(strings.Join(f.Args(), " "))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if len(matches) == 0 {
		fmt.Println("No matches.")
		return subcommands.ExitSuccess
	}
	for _, m := range matches {
		fmt.Printf("%-8s %-40s %s (%s)\n", m.Symbol, m.Name, m.Region, m.Currency)
	}
	return subcommands.ExitSuccess
}
