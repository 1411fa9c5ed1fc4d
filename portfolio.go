package stockfolio

import (
	"fmt"
	"iter"
	"maps"
	"math"
	"slices"
)

// Portfolio owns a set of share lots keyed by symbol and an append-only
// transaction history. The history is the durable form; the lots are derived
// state that replaying the history reproduces exactly.
type Portfolio struct {
	name    string
	shares  map[string]*ShareLot
	history []Transaction
}

// NewPortfolio creates an empty portfolio with a name.
func NewPortfolio(name string) *Portfolio {
	return &Portfolio{
		name:   name,
		shares: make(map[string]*ShareLot),
	}
}

// Name returns the portfolio's name, unique within the owning collection.
func (p *Portfolio) Name() string { return p.name }

// Size returns the number of distinct symbols held.
func (p *Portfolio) Size() int { return len(p.shares) }

// Symbols returns the held symbols in sorted order.
func (p *Portfolio) Symbols() []string {
	symbols := slices.Collect(maps.Keys(p.shares))
	slices.Sort(symbols)
	return symbols
}

// Share returns the lot held for a symbol, or nil if unheld.
func (p *Portfolio) Share(symbol string) *ShareLot { return p.shares[symbol] }

// Quantity returns the current share count for a symbol, zero when unheld.
func (p *Portfolio) Quantity(symbol string) Quantity {
	lot, ok := p.shares[symbol]
	if !ok {
		return Quantity{}
	}
	return lot.Quantity()
}

// Transactions returns an iterator over the history in its original order.
func (p *Portfolio) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range p.history {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// NewestTransactionDate returns the date of the latest transaction, or the
// zero date for an empty history.
func (p *Portfolio) NewestTransactionDate() Date {
	var newest Date
	for _, tx := range p.history {
		if tx.Date.After(newest) {
			newest = tx.Date
		}
	}
	return newest
}

// BuyStock buys 'quantity' shares of a symbol on 'on', creating the lot when
// the symbol is unheld, and appends a BUY record to the history. 'prices' is
// the symbol's series, shared read-only with the lot.
func (p *Portfolio) BuyStock(symbol string, prices *PriceSeries, quantity Quantity, on Date) error {
	lot, ok := p.shares[symbol]
	if !ok {
		lot = NewShareLot(symbol, prices)
	}
	if err := lot.Purchase(quantity, on); err != nil {
		return err
	}
	p.shares[symbol] = lot
	p.history = append(p.history, NewBuy(symbol, quantity, on))
	return nil
}

// SellStock sells 'quantity' shares of a held symbol on 'on' and appends a
// SELL record. The lot is removed when its quantity reaches exactly zero. A
// failed sell leaves the portfolio unchanged.
func (p *Portfolio) SellStock(symbol string, quantity Quantity, on Date) error {
	lot, ok := p.shares[symbol]
	if !ok {
		return fmt.Errorf("sell %s: %w", symbol, ErrStockNotFound)
	}
	if err := lot.Sell(quantity, on); err != nil {
		return err
	}
	if lot.Quantity().IsZero() {
		delete(p.shares, symbol)
	}
	p.history = append(p.history, NewSell(symbol, quantity, on))
	return nil
}

// Value returns the portfolio's total market value on 'on': the sum of each
// lot's close times held quantity. Symbols without any price data contribute
// zero rather than failing the whole valuation.
func (p *Portfolio) Value(on Date) float64 {
	var total float64
	for _, lot := range p.shares {
		total += lot.ValueOn(on)
	}
	return total
}

// Rebalance trades each held symbol so that its market value on 'on' matches
// the target fraction of the total portfolio value. Missing symbols in
// 'targets' mean a zero target; the caller is responsible for fractions
// summing to 1.
//
// Trades are rounded to whole shares and clamped so no symbol sells more
// than it holds as of 'on'. The whole batch is computed and validated before
// any lot is mutated, so a rejected rebalance changes nothing. It returns
// the BUY/SELL records appended to the history, one per non-zero trade.
func (p *Portfolio) Rebalance(on Date, targets map[string]float64) ([]Transaction, error) {
	if newest := p.NewestTransactionDate(); on.Before(newest) {
		return nil, fmt.Errorf("rebalance on %s, last transaction on %s: %w", on, newest, ErrOutOfOrderRebalance)
	}

	total := p.Value(on)

	type trade struct {
		lot    *ShareLot
		shares float64
	}
	var trades []trade
	for _, symbol := range p.Symbols() {
		lot := p.shares[symbol]
		price := lot.PriceOn(on)
		if price == 0 {
			// No data at all for this symbol: it valued at zero above and
			// cannot be traded toward a target.
			continue
		}
		target := total * targets[symbol]
		current := lot.ValueOn(on)
		shares := math.Round((target - current) / price)
		if held := lot.QuantityOn(on).InexactFloat64(); held+shares < 0 {
			shares = -held // never sell more than held as of that day
		}
		if shares == 0 {
			continue
		}
		trades = append(trades, trade{lot: lot, shares: shares})
	}

	// The batch is valid as a whole: apply every adjustment, then record it.
	records := make([]Transaction, 0, len(trades))
	for _, t := range trades {
		t.lot.UpdateQuantity(Q(t.shares), on)
		if t.lot.Quantity().IsZero() {
			delete(p.shares, t.lot.Symbol())
		}
		var record Transaction
		if t.shares > 0 {
			record = NewBuy(t.lot.Symbol(), Q(t.shares), on)
		} else {
			record = NewSell(t.lot.Symbol(), Q(-t.shares), on)
		}
		p.history = append(p.history, record)
		records = append(records, record)
	}
	return records, nil
}
