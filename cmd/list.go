package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all stored portfolios" }
func (*listCmd) Usage() string {
	return `spm list

  Lists the names of all portfolios in the portfolio directory.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries, err := os.ReadDir(*portfolioDir)
	if os.IsNotExist(err) {
		fmt.Println("No portfolios yet. Create one with 'spm create <name>'.")
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", *portfolioDir, err)
		return subcommands.ExitFailure
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".txt" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Println(name)
	}
	return subcommands.ExitSuccess
}
