package stockfolio

import (
	"fmt"
	"strings"
)

const (
	graphMaxStars = 50
	graphMaxRows  = 30
)

// Graph renders the portfolio's value over a date range as a column of star
// bars, one row per sampled day. Long ranges are thinned to at most thirty
// rows; bars are scaled between the lowest and highest sampled values so the
// largest bar is fifty stars. The legend line below the title gives the
// value of the first star and of each additional one.
func Graph(p *Portfolio, r Range) string {
	step := r.Len()/graphMaxRows + 1

	type sample struct {
		day   Date
		value float64
	}
	var samples []sample
	lo, hi := 0.0, 0.0
	for day := r.From; !day.After(r.To); day = day.Add(step) {
		v := p.Value(day)
		if len(samples) == 0 || v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		samples = append(samples, sample{day: day, value: v})
	}

	// One star marks the baseline; each further star adds 'unit'.
	unit := (hi - lo) / (graphMaxStars - 1)
	if unit == 0 {
		unit = 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Performance of portfolio %s\n", p.Name())
	fmt.Fprintf(&sb, "Scale: first * = %.2f, each additional * = %.2f\n\n", lo, unit)
	for _, s := range samples {
		stars := int((s.value-lo)/unit) + 1
		fmt.Fprintf(&sb, "%s: %s\n", s.day, strings.Repeat("*", stars))
	}
	return sb.String()
}
