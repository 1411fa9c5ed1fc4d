package stockfolio

import "fmt"

// ShareLot tracks one symbol's holding within a portfolio: the current share
// count and the quantity-in-effect on every transaction date, so past
// holdings can be queried. The price series is shared and read-only; the lot
// does not own it.
type ShareLot struct {
	symbol   string
	quantity Quantity
	prices   *PriceSeries
	history  History[Quantity]
}

// NewShareLot creates an empty lot for a symbol, pricing against the given series.
func NewShareLot(symbol string, prices *PriceSeries) *ShareLot {
	return &ShareLot{symbol: symbol, prices: prices}
}

// Symbol returns the symbol this lot holds.
func (l *ShareLot) Symbol() string { return l.symbol }

// Quantity returns the current share count.
func (l *ShareLot) Quantity() Quantity { return l.quantity }

// Purchase adds 'quantity' shares on 'on' and records the new total.
func (l *ShareLot) Purchase(quantity Quantity, on Date) error {
	if !quantity.IsPositive() {
		return fmt.Errorf("buy %s of %s: %w", quantity, l.symbol, ErrInvalidQuantity)
	}
	l.quantity = l.quantity.Add(quantity)
	l.history.Append(on, l.quantity)
	return nil
}

// Sell removes 'quantity' shares on 'on' and records the new total.
// Selling more than held fails with ErrInsufficientShares and leaves the lot
// unchanged.
func (l *ShareLot) Sell(quantity Quantity, on Date) error {
	if !quantity.IsPositive() {
		return fmt.Errorf("sell %s of %s: %w", quantity, l.symbol, ErrInvalidQuantity)
	}
	if l.quantity.LessThan(quantity) {
		return fmt.Errorf("sell %s of %s, holding %s: %w", quantity, l.symbol, l.quantity, ErrInsufficientShares)
	}
	l.quantity = l.quantity.Sub(quantity)
	l.history.Append(on, l.quantity)
	return nil
}

// UpdateQuantity adds 'delta' (possibly negative) to the share count and
// records the new total at 'on'. Rebalancing uses it after the whole batch
// of trades has been validated.
func (l *ShareLot) UpdateQuantity(delta Quantity, on Date) {
	l.quantity = l.quantity.Add(delta)
	l.history.Append(on, l.quantity)
}

// PriceOn returns the closing price for this lot's symbol on 'on', resolved
// to the nearest recorded trading day. Zero means an empty series.
func (l *ShareLot) PriceOn(on Date) float64 {
	if l.prices == nil {
		return 0
	}
	return l.prices.CloseOn(on)
}

// QuantityOn returns the share count in effect on 'on': the quantity
// recorded that day, or the latest quantity recorded before it. Holdings are
// zero before the first recorded transaction.
func (l *ShareLot) QuantityOn(on Date) Quantity {
	q, _ := l.history.ValueAsOf(on)
	return q
}

// ValueOn returns close price times held quantity on 'on'. A 0 price (no
// data at all) yields a 0 value, not an error.
func (l *ShareLot) ValueOn(on Date) float64 {
	price := l.PriceOn(on)
	if price == 0 {
		return 0
	}
	return price * l.QuantityOn(on).InexactFloat64()
}

// History returns a copy of the quantity history keyed by date string.
// Callers get a snapshot, never a live view.
func (l *ShareLot) History() map[string]Quantity {
	snapshot := make(map[string]Quantity, l.history.Len())
	for on, q := range l.history.Values() {
		snapshot[on.String()] = q
	}
	return snapshot
}
