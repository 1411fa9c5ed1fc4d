package stockfolio

import (
	"fmt"
	"strings"
)

// Action identifies the kind of a portfolio transaction.
type Action string

const (
	Buy  Action = "BUY"
	Sell Action = "SELL"
)

// ParseAction parses the persisted form of an action.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown action %q", s)
	}
}

// Transaction is one entry of a portfolio's append-only history.
//
// The history is the durable representation of a portfolio: the per-symbol
// lots are a derived cache that replaying the history in order fully
// reconstructs.
type Transaction struct {
	Action   Action
	Symbol   string
	Quantity Quantity
	Date     Date
}

// NewBuy returns a BUY record.
func NewBuy(symbol string, quantity Quantity, on Date) Transaction {
	return Transaction{Action: Buy, Symbol: symbol, Quantity: quantity, Date: on}
}

// NewSell returns a SELL record.
func NewSell(symbol string, quantity Quantity, on Date) Transaction {
	return Transaction{Action: Sell, Symbol: symbol, Quantity: quantity, Date: on}
}

// String formats the record in its persisted form "ACTION;SYMBOL;QUANTITY;DATE".
func (t Transaction) String() string {
	return fmt.Sprintf("%s;%s;%s;%s", t.Action, t.Symbol, t.Quantity, t.Date)
}

// Equal reports whether two records are identical.
func (t Transaction) Equal(o Transaction) bool {
	return t.Action == o.Action && t.Symbol == o.Symbol &&
		t.Quantity.Equal(o.Quantity) && t.Date == o.Date
}

// ParseTransaction parses one persisted record line "ACTION;SYMBOL;QUANTITY;DATE".
func ParseTransaction(line string) (Transaction, error) {
	fields := strings.Split(strings.TrimSpace(line), ";")
	if len(fields) != 4 {
		return Transaction{}, fmt.Errorf("invalid transaction %q: want 4 fields, got %d", line, len(fields))
	}
	action, err := ParseAction(fields[0])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid transaction %q: %w", line, err)
	}
	if fields[1] == "" {
		return Transaction{}, fmt.Errorf("invalid transaction %q: empty symbol", line)
	}
	quantity, err := ParseQuantity(fields[2])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid transaction %q: bad quantity: %w", line, err)
	}
	on, err := ParseDate(fields[3])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid transaction %q: %w", line, err)
	}
	return Transaction{Action: action, Symbol: fields[1], Quantity: quantity, Date: on}, nil
}
