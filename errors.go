package stockfolio

import "errors"

// Errors reported by the accounting engine. They are raised synchronously to
// the caller; the engine never retries or logs. Callers match them with
// errors.Is, the wrapped message carries the symbol and date context.
var (
	// ErrStockNotFound reports an operation on a symbol the portfolio does not hold.
	ErrStockNotFound = errors.New("stock not found in portfolio")

	// ErrInsufficientShares reports a sell larger than the currently held quantity.
	ErrInsufficientShares = errors.New("cannot sell more shares than held")

	// ErrNoPriceData reports that a series has no record at or before a query date.
	ErrNoPriceData = errors.New("no price data")

	// ErrOutOfOrderRebalance reports a rebalance dated before the portfolio's
	// latest transaction. Rebalancing must move strictly forward in time.
	ErrOutOfOrderRebalance = errors.New("rebalance date precedes last transaction")

	// ErrInvalidQuantity reports a non-positive trade quantity.
	ErrInvalidQuantity = errors.New("trade quantity must be positive")
)
