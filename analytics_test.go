package stockfolio

import (
	"errors"
	"testing"
)

// risingSeries quotes 100, 101, ... across the first two weeks of June 2024
// weekdays (3-7 and 10-14).
func risingSeries() *PriceSeries {
	s := NewPriceSeries("AAPL")
	c := 100.0
	for _, d := range []int{3, 4, 5, 6, 7, 10, 11, 12, 13, 14} {
		s.Append(day(d), closeRow(c))
		c++
	}
	return s
}

func TestChange(t *testing.T) {
	s := risingSeries()

	tests := []struct {
		name string
		r    Range
		want float64
	}{
		{"trading days", NewRange(day(3), day(14)), 9},
		{"weekend ends resolve backward", NewRange(day(8), day(15)), 5}, // friday 104 to friday 109
		{"flat", NewRange(day(5), day(5)), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Change(s, tt.r)
			if err != nil {
				t.Fatalf("Change() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Change() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := Change(s, NewRange(day(1), day(5))); !errors.Is(err, ErrNoPriceData) {
		t.Errorf("Change() before first day error = %v, want ErrNoPriceData", err)
	}
}

func TestMovingAverage(t *testing.T) {
	s := risingSeries()

	tests := []struct {
		name string
		on   Date
		x    int
		want float64
	}{
		{"single day", day(7), 1, 104},
		{"full window", day(7), 5, 102},            // 104..100 over mon-fri
		{"window spans weekend", day(11), 3, 105},  // 106, 105, 104
		{"weekend date resolves", day(9), 2, 103.5}, // friday 104, thursday 103
		{"window exceeds series", day(4), 10, 100.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MovingAverage(s, tt.on, tt.x)
			if err != nil {
				t.Fatalf("MovingAverage() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("MovingAverage(%s, %d) = %v, want %v", tt.on, tt.x, got, tt.want)
			}
		})
	}

	if _, err := MovingAverage(s, day(7), 0); err == nil {
		t.Errorf("MovingAverage(x=0) error = nil")
	}
}

func TestCrossoverDays(t *testing.T) {
	// A strictly rising series closes above every multi-day average of its
	// own past, so all trading days in range cross.
	s := risingSeries()
	got, err := CrossoverDays(s, 3, NewRange(day(5), day(12)))
	if err != nil {
		t.Fatalf("CrossoverDays() error = %v", err)
	}
	want := []Date{day(5), day(6), day(7), day(10), day(11), day(12)}
	if len(got) != len(want) {
		t.Fatalf("CrossoverDays() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CrossoverDays()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCrossoverDays_Falling(t *testing.T) {
	s := NewPriceSeries("AAPL")
	c := 110.0
	for _, d := range []int{3, 4, 5, 6, 7} {
		s.Append(day(d), closeRow(c))
		c--
	}
	// A falling close is always below its own trailing average.
	got, err := CrossoverDays(s, 3, NewRange(day(5), day(7)))
	if err != nil {
		t.Fatalf("CrossoverDays() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("CrossoverDays() = %v, want none", got)
	}
}
