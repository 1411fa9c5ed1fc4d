package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/vjacques/stockfolio"
)

// RenderChart renders a portfolio's daily value over a date range as a PNG
// line chart, for when the terminal star graph is not enough.
func RenderChart(w io.Writer, p *stockfolio.Portfolio, r stockfolio.Range) error {
	if r.Len() < 2 {
		return fmt.Errorf("need at least 2 days to chart, got %d", r.Len())
	}

	xValues := make([]time.Time, 0, r.Len())
	yValues := make([]float64, 0, r.Len())
	for day := range r.Days() {
		xValues = append(xValues, day.Time())
		yValues = append(yValues, p.Value(day))
	}

	valueSeries := chart.TimeSeries{
		Name: "Portfolio Value",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"),
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: yValues,
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Performance of portfolio %s", p.Name()),
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 02")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{valueSeries},
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("chart render failed: %w", err)
	}
	return nil
}
