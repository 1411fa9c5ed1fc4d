package stockfolio

import (
	"fmt"
	"iter"
)

// OHLC is the record of one symbol's prices for one trading day.
// It is immutable: a series only ever replaces whole records.
type OHLC struct {
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// PriceSeries holds the daily OHLC records of a single symbol.
//
// It is read-only from the accounting engine's perspective: the engine
// resolves dates and reads closes, the price cache owns writes. Weekends and
// holidays have no record, queries on such days resolve to the nearest prior
// trading day.
type PriceSeries struct {
	symbol string
	rows   History[OHLC]
}

// NewPriceSeries returns an empty series for the given symbol.
func NewPriceSeries(symbol string) *PriceSeries {
	return &PriceSeries{symbol: symbol}
}

// Symbol returns the symbol this series quotes.
func (s *PriceSeries) Symbol() string { return s.symbol }

// Len returns the number of recorded trading days.
func (s *PriceSeries) Len() int { return s.rows.Len() }

// Append records the OHLC row for a trading day, overwriting any existing
// record on that day.
func (s *PriceSeries) Append(on Date, row OHLC) { s.rows.Append(on, row) }

// Get returns the record on exactly that day.
func (s *PriceSeries) Get(on Date) (OHLC, bool) { return s.rows.Get(on) }

// First returns the earliest recorded trading day and its record.
func (s *PriceSeries) First() (Date, OHLC) { return s.rows.First() }

// Latest returns the most recent recorded trading day and its record.
func (s *PriceSeries) Latest() (Date, OHLC) { return s.rows.Latest() }

// Days returns an iterator over all recorded days in chronological order.
func (s *PriceSeries) Days() iter.Seq2[Date, OHLC] { return s.rows.Values() }

// Resolve returns the record on 'on', or the record of the nearest prior
// trading day, stepping backward one calendar day at a time. The walk is
// bounded by the earliest recorded day; when nothing exists at or before
// 'on' it returns ErrNoPriceData. The search never looks forward, so it is
// deterministic for a fixed series and date.
func (s *PriceSeries) Resolve(on Date) (OHLC, error) {
	if row, ok := s.rows.Get(on); ok {
		return row, nil
	}
	earliest, _ := s.rows.First()
	if s.rows.Len() == 0 || on.Before(earliest) {
		return OHLC{}, fmt.Errorf("%s at or before %s: %w", s.symbol, on, ErrNoPriceData)
	}
	for day := on.Add(-1); !day.Before(earliest); day = day.Add(-1) {
		if row, ok := s.rows.Get(day); ok {
			return row, nil
		}
	}
	// Unreachable while the walk is bounded by an existing earliest day.
	return OHLC{}, fmt.Errorf("%s at or before %s: %w", s.symbol, on, ErrNoPriceData)
}

// CloseOn returns the closing price on 'on' using a floor lookup: the exact
// day if recorded, else the latest earlier day. When the series starts after
// 'on' the earliest later record is used instead. The 0 sentinel means the
// series is entirely empty.
func (s *PriceSeries) CloseOn(on Date) float64 {
	if row, ok := s.rows.ValueAsOf(on); ok {
		return row.Close
	}
	if row, ok := s.rows.ValueOnOrAfter(on); ok {
		return row.Close
	}
	return 0
}
