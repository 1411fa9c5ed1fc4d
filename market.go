package stockfolio

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// PriceSource provides price series by symbol. Portfolio decoding and the
// command layer depend on this interface rather than on a concrete market,
// so tests replay histories against in-memory series.
type PriceSource interface {
	// Series returns the full daily series for a symbol.
	Series(symbol string) (*PriceSeries, error)
	// IsValidSymbol reports whether the symbol is known locally, without
	// triggering a fetch.
	IsValidSymbol(symbol string) bool
}

// Quoter fetches a symbol's full daily series from a quote provider.
type Quoter interface {
	FetchDaily(symbol string) (*PriceSeries, error)
}

// Market is a PriceSource backed by a directory of per-symbol CSV files,
// with an in-memory cache in front and an optional Quoter behind. Lookups go
// memory, then disk, then provider; fetched series are written back to disk
// so a symbol is fetched at most once.
type Market struct {
	dir    string
	cache  map[string]*PriceSeries
	quoter Quoter
}

// NewMarket opens (creating if needed) a market over 'dir'. A nil quoter
// restricts the market to symbols already on disk.
func NewMarket(dir string, quoter Quoter) (*Market, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, fmt.Errorf("opening market %q: %w", dir, err)
	}
	return &Market{
		dir:    dir,
		cache:  make(map[string]*PriceSeries),
		quoter: quoter,
	}, nil
}

func (m *Market) path(symbol string) string {
	return filepath.Join(m.dir, symbol+".csv")
}

// Series returns the daily series for a symbol, loading from disk or
// fetching from the quoter on first use.
func (m *Market) Series(symbol string) (*PriceSeries, error) {
	if series, ok := m.cache[symbol]; ok {
		return series, nil
	}
	series, err := m.load(symbol)
	if os.IsNotExist(err) {
		series, err = m.fetch(symbol)
	}
	if err != nil {
		return nil, err
	}
	m.cache[symbol] = series
	return series, nil
}

func (m *Market) load(symbol string) (*PriceSeries, error) {
	f, err := os.Open(m.path(symbol))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodePriceSeries(symbol, f)
}

func (m *Market) fetch(symbol string) (*PriceSeries, error) {
	if m.quoter == nil {
		return nil, fmt.Errorf("%s has no local data and no quote provider is configured: %w", symbol, ErrStockNotFound)
	}
	series, err := m.quoter.FetchDaily(symbol)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", symbol, err)
	}
	if err := m.store(series); err != nil {
		return nil, err
	}
	return series, nil
}

func (m *Market) store(series *PriceSeries) error {
	f, err := os.Create(m.path(series.Symbol()))
	if err != nil {
		return fmt.Errorf("storing %s prices: %w", series.Symbol(), err)
	}
	defer f.Close()
	if err := EncodePriceSeries(f, series); err != nil {
		return err
	}
	return f.Close()
}

// IsValidSymbol reports whether the symbol is cached in memory or on disk.
// It never calls the quoter.
func (m *Market) IsValidSymbol(symbol string) bool {
	if _, ok := m.cache[symbol]; ok {
		return true
	}
	_, err := os.Stat(m.path(symbol))
	return err == nil
}

// Symbols lists every symbol with data on disk, sorted.
func (m *Market) Symbols() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("listing market %q: %w", m.dir, err)
	}
	var symbols []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".csv"); ok && !e.IsDir() {
			symbols = append(symbols, name)
		}
	}
	slices.Sort(symbols)
	return symbols, nil
}
