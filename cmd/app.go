// Package cmd implements the CLI application to manage stock portfolios.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/vjacques/stockfolio"
	"github.com/vjacques/stockfolio/alphavantage"
)

// Register the subcommands.
// A main package calls Register() to install them, and Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&createCmd{}, "portfolios")
	c.Register(&listCmd{}, "portfolios")

	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&rebalanceCmd{}, "transactions")
	c.Register(&logCmd{}, "transactions")

	c.Register(&valueCmd{}, "reports")
	c.Register(&holdingCmd{}, "reports")
	c.Register(&graphCmd{}, "reports")
	c.Register(&movavgCmd{}, "reports")
	c.Register(&crossoverCmd{}, "reports")

	c.Register(&fetchCmd{}, "prices")
	c.Register(&searchCmd{}, "prices")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables.

var stocksDir = flag.String("stocks-dir", "./stocks", "Directory holding per-symbol price CSV files")
var portfolioDir = flag.String("portfolio-dir", "./portfolios", "Directory holding portfolio transaction files")
var apiKey = flag.String("api-key", "", "Alpha Vantage API key (defaults to $ALPHAVANTAGE_API_KEY)")

// quoter returns the Alpha Vantage client, or nil when no key is configured.
func quoter() stockfolio.Quoter {
	key := *apiKey
	if key == "" {
		key = os.Getenv("ALPHAVANTAGE_API_KEY")
	}
	if key == "" {
		return nil
	}
	return alphavantage.New(key)
}

// avClient returns the Alpha Vantage client or an error when no key is
// configured, for commands that cannot work without one.
func avClient() (*alphavantage.Client, error) {
	q := quoter()
	if q == nil {
		return nil, fmt.Errorf("no API key: set -api-key or $ALPHAVANTAGE_API_KEY")
	}
	return q.(*alphavantage.Client), nil
}

// OpenMarket opens the price store under the stocks directory.
func OpenMarket() (*stockfolio.Market, error) {
	return stockfolio.NewMarket(*stocksDir, quoter())
}

func portfolioPath(name string) string {
	return filepath.Join(*portfolioDir, name+".txt")
}

// LoadPortfolio reads and replays a stored portfolio.
func LoadPortfolio(name string, src stockfolio.PriceSource) (*stockfolio.Portfolio, error) {
	f, err := os.Open(portfolioPath(name))
	if err != nil {
		return nil, fmt.Errorf("no portfolio %q: %w", name, err)
	}
	defer f.Close()
	return stockfolio.DecodePortfolio(name, f, src)
}

// SavePortfolio writes a portfolio's transaction history to its file.
func SavePortfolio(p *stockfolio.Portfolio) error {
	if err := os.MkdirAll(*portfolioDir, 0777); err != nil {
		return err
	}
	f, err := os.Create(portfolioPath(p.Name()))
	if err != nil {
		return err
	}
	defer f.Close()
	if err := stockfolio.EncodeHistory(f, p); err != nil {
		return err
	}
	return f.Close()
}
