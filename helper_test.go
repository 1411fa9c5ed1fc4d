package stockfolio

import (
	"fmt"
	"time"
)

func day(d int) Date    { return NewDate(2024, time.June, d) }
func july(d int) Date   { return NewDate(2024, time.July, d) }
func closeRow(c float64) OHLC {
	return OHLC{Open: c, High: c, Low: c, Close: c}
}

// flatSeries builds a series with one row per given day, all four prices set
// to the close.
func flatSeries(symbol string, closes map[Date]float64) *PriceSeries {
	s := NewPriceSeries(symbol)
	for on, c := range closes {
		s.Append(on, closeRow(c))
	}
	return s
}

// constSeries builds a series quoting the same close every weekday of June
// and July 2024.
func constSeries(symbol string, c float64) *PriceSeries {
	s := NewPriceSeries(symbol)
	for on := range NewRange(day(1), july(31)).Days() {
		switch on.Weekday() {
		case time.Saturday, time.Sunday:
			continue
		}
		s.Append(on, closeRow(c))
	}
	return s
}

// memSource is an in-memory PriceSource for replay tests.
type memSource map[string]*PriceSeries

func (m memSource) Series(symbol string) (*PriceSeries, error) {
	s, ok := m[symbol]
	if !ok {
		return nil, fmt.Errorf("%s: %w", symbol, ErrStockNotFound)
	}
	return s, nil
}

func (m memSource) IsValidSymbol(symbol string) bool {
	_, ok := m[symbol]
	return ok
}

// fourStocks is the rebalance fixture: four holdings quoted flat across June
// 2024.
func fourStocks() (memSource, *Portfolio) {
	src := memSource{
		"NFLX":  constSeries("NFLX", 15),
		"GOOGL": constSeries("GOOGL", 30),
		"MSFT":  constSeries("MSFT", 10),
		"AAPL":  constSeries("AAPL", 30),
	}
	p := NewPortfolio("fixture")
	for _, h := range []struct {
		symbol string
		qty    float64
	}{
		{"NFLX", 25}, {"GOOGL", 10}, {"MSFT", 25}, {"AAPL", 5},
	} {
		series, _ := src.Series(h.symbol)
		if err := p.BuyStock(h.symbol, series, Q(h.qty), day(3)); err != nil {
			panic(err)
		}
	}
	return src, p
}
