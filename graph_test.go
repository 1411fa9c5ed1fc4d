package stockfolio

import (
	"strings"
	"testing"
)

func TestGraph(t *testing.T) {
	p := NewPortfolio("retirement")
	if err := p.BuyStock("AAPL", constSeries("AAPL", 100), Q(10), day(3)); err != nil {
		t.Fatalf("BuyStock() error = %v", err)
	}

	out := Graph(p, NewRange(day(3), day(12)))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if !strings.Contains(lines[0], "retirement") {
		t.Errorf("title %q does not name the portfolio", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Scale:") {
		t.Errorf("line %q is not the scale legend", lines[1])
	}
	// Range of 10 days, step 1: one bar per day after title, legend, blank.
	bars := lines[3:]
	if len(bars) != 10 {
		t.Fatalf("got %d bars, want 10", len(bars))
	}
	for _, bar := range bars {
		if !strings.Contains(bar, "*") {
			t.Errorf("bar %q has no stars", bar)
		}
	}
}

func TestGraph_ThinsLongRanges(t *testing.T) {
	p := NewPortfolio("retirement")
	if err := p.BuyStock("AAPL", constSeries("AAPL", 100), Q(10), day(3)); err != nil {
		t.Fatalf("BuyStock() error = %v", err)
	}

	out := Graph(p, NewRange(day(1), july(31)))
	bars := strings.Count(out, "*\n") // every bar line ends with a star
	if bars > 31 {
		t.Errorf("got %d bars for a two-month range, want at most 31", bars)
	}
}

func TestGraph_CapsBarWidth(t *testing.T) {
	p := NewPortfolio("growth")
	if err := p.BuyStock("AAPL", risingSeries(), Q(10), day(3)); err != nil {
		t.Fatalf("BuyStock() error = %v", err)
	}

	out := Graph(p, NewRange(day(3), day(14)))
	for _, line := range strings.Split(out, "\n") {
		if n := strings.Count(line, "*"); n > 50 {
			t.Errorf("bar %q is %d stars wide, want at most 50", line, n)
		}
	}
}
