package stockfolio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// countingQuoter serves canned series and counts fetches.
type countingQuoter struct {
	series map[string]*PriceSeries
	calls  int
}

func (q *countingQuoter) FetchDaily(symbol string) (*PriceSeries, error) {
	q.calls++
	s, ok := q.series[symbol]
	if !ok {
		return nil, fmt.Errorf("no such symbol %q", symbol)
	}
	return s, nil
}

func TestMarket_SeriesFromDisk(t *testing.T) {
	dir := t.TempDir()
	csv := "2024-06-03,100,105,99,102\n"
	if err := os.WriteFile(filepath.Join(dir, "AAPL.csv"), []byte(csv), 0666); err != nil {
		t.Fatal(err)
	}

	m, err := NewMarket(dir, nil)
	if err != nil {
		t.Fatalf("NewMarket() error = %v", err)
	}
	s, err := m.Series("AAPL")
	if err != nil {
		t.Fatalf("Series() error = %v", err)
	}
	if s.CloseOn(day(3)) != 102 {
		t.Errorf("CloseOn() = %v, want 102", s.CloseOn(day(3)))
	}
}

func TestMarket_SeriesFetchesOnce(t *testing.T) {
	quoter := &countingQuoter{series: map[string]*PriceSeries{
		"AAPL": flatSeries("AAPL", map[Date]float64{day(3): 102}),
	}}
	m, err := NewMarket(t.TempDir(), quoter)
	if err != nil {
		t.Fatalf("NewMarket() error = %v", err)
	}

	for range 3 {
		if _, err := m.Series("AAPL"); err != nil {
			t.Fatalf("Series() error = %v", err)
		}
	}
	if quoter.calls != 1 {
		t.Errorf("quoter called %d times, want 1", quoter.calls)
	}

	// The fetched series was written back: a fresh market over the same
	// directory finds it without a quoter.
	again, err := NewMarket(m.dir, nil)
	if err != nil {
		t.Fatalf("NewMarket() error = %v", err)
	}
	s, err := again.Series("AAPL")
	if err != nil {
		t.Fatalf("Series() after write-back error = %v", err)
	}
	if s.CloseOn(day(3)) != 102 {
		t.Errorf("CloseOn() = %v after write-back, want 102", s.CloseOn(day(3)))
	}
}

func TestMarket_SeriesUnknown(t *testing.T) {
	m, err := NewMarket(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewMarket() error = %v", err)
	}
	if _, err := m.Series("GHOST"); !errors.Is(err, ErrStockNotFound) {
		t.Errorf("Series() error = %v, want ErrStockNotFound", err)
	}
}

func TestMarket_IsValidSymbol(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "AAPL.csv"), []byte("2024-06-03,1,1,1,1\n"), 0666); err != nil {
		t.Fatal(err)
	}
	quoter := &countingQuoter{}
	m, err := NewMarket(dir, quoter)
	if err != nil {
		t.Fatalf("NewMarket() error = %v", err)
	}

	if !m.IsValidSymbol("AAPL") {
		t.Errorf("IsValidSymbol(AAPL) = false, want true")
	}
	if m.IsValidSymbol("GHOST") {
		t.Errorf("IsValidSymbol(GHOST) = true, want false")
	}
	if quoter.calls != 0 {
		t.Errorf("IsValidSymbol() hit the quoter %d times", quoter.calls)
	}
}

func TestMarket_Symbols(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"MSFT.csv", "AAPL.csv", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(""), 0666); err != nil {
			t.Fatal(err)
		}
	}
	m, err := NewMarket(dir, nil)
	if err != nil {
		t.Fatalf("NewMarket() error = %v", err)
	}
	got, err := m.Symbols()
	if err != nil {
		t.Fatalf("Symbols() error = %v", err)
	}
	if want := []string{"AAPL", "MSFT"}; !slices.Equal(got, want) {
		t.Errorf("Symbols() = %v, want %v", got, want)
	}
}
