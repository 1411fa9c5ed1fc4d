package stockfolio

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// EncodeHistory writes a portfolio's transaction history, one record per
// line, in its original order. Decoding the output with DecodePortfolio
// rebuilds an equivalent portfolio.
func EncodeHistory(w io.Writer, p *Portfolio) error {
	for _, tx := range p.Transactions() {
		if _, err := fmt.Fprintln(w, tx.String()); err != nil {
			return fmt.Errorf("encoding %q history: %w", p.name, err)
		}
	}
	return nil
}

// DecodePortfolio rebuilds a portfolio by replaying a transaction history
// read from 'r'. Price series for each symbol come from 'src'; a symbol
// unknown to 'src' fails the decode. Blank lines are skipped.
func DecodePortfolio(name string, r io.Reader, src PriceSource) (*Portfolio, error) {
	p := NewPortfolio(name)
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tx, err := ParseTransaction(line)
		if err != nil {
			return nil, fmt.Errorf("decoding %q line %d: %w", name, n, err)
		}
		if err := p.replay(tx, src); err != nil {
			return nil, fmt.Errorf("decoding %q line %d: %w", name, n, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("decoding %q: %w", name, err)
	}
	return p, nil
}

// replay applies a single decoded transaction.
func (p *Portfolio) replay(tx Transaction, src PriceSource) error {
	switch tx.Action {
	case Buy:
		series, err := src.Series(tx.Symbol)
		if err != nil {
			return err
		}
		return p.BuyStock(tx.Symbol, series, tx.Quantity, tx.Date)
	case Sell:
		return p.SellStock(tx.Symbol, tx.Quantity, tx.Date)
	default:
		return fmt.Errorf("unknown action %q", tx.Action)
	}
}
