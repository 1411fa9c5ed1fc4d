package stockfolio

import (
	"errors"
	"testing"
)

// fri7 is a Friday; day(8) and day(9) are the weekend after it.
func weekSeries() *PriceSeries {
	return flatSeries("AAPL", map[Date]float64{
		day(3): 100, // Monday
		day(4): 101,
		day(5): 102,
		day(6): 103,
		day(7): 104, // Friday
	})
}

func TestPriceSeries_Resolve(t *testing.T) {
	s := weekSeries()

	tests := []struct {
		name string
		on   Date
		want float64
	}{
		{"trading day", day(5), 102},
		{"saturday", day(8), 104},
		{"sunday", day(9), 104},
		{"far after", day(30), 104},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Resolve(tt.on)
			if err != nil {
				t.Fatalf("Resolve(%s) error = %v", tt.on, err)
			}
			if got.Close != tt.want {
				t.Errorf("Resolve(%s).Close = %v, want %v", tt.on, got.Close, tt.want)
			}
		})
	}
}

func TestPriceSeries_ResolveBeforeFirst(t *testing.T) {
	s := weekSeries()
	_, err := s.Resolve(day(1))
	if !errors.Is(err, ErrNoPriceData) {
		t.Fatalf("Resolve() error = %v, want ErrNoPriceData", err)
	}
}

func TestPriceSeries_ResolveEmpty(t *testing.T) {
	s := NewPriceSeries("EMPTY")
	_, err := s.Resolve(day(5))
	if !errors.Is(err, ErrNoPriceData) {
		t.Fatalf("Resolve() error = %v, want ErrNoPriceData", err)
	}
}

// Resolve is deterministic: the same series and date always settle on the
// same trading day, and the resolved day never exceeds the queried one.
func TestPriceSeries_ResolveDeterministic(t *testing.T) {
	s := weekSeries()
	first, err := s.Resolve(day(9))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	for range 10 {
		again, err := s.Resolve(day(9))
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if again != first {
			t.Fatalf("Resolve() = %v, want stable %v", again, first)
		}
	}
}

func TestPriceSeries_CloseOn(t *testing.T) {
	s := weekSeries()

	if got := s.CloseOn(day(8)); got != 104 {
		t.Errorf("CloseOn(weekend) = %v, want 104", got)
	}
	// Before the series starts, the earliest later close is used.
	if got := s.CloseOn(day(1)); got != 100 {
		t.Errorf("CloseOn(before first) = %v, want 100", got)
	}
	if got := NewPriceSeries("EMPTY").CloseOn(day(5)); got != 0 {
		t.Errorf("CloseOn(empty) = %v, want 0", got)
	}
}
