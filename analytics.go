package stockfolio

import "fmt"

// Change returns the difference in closing price between two dates, each
// resolved to the nearest trading day at or before it. A positive result
// means the price rose over the range.
func Change(series *PriceSeries, r Range) (float64, error) {
	from, err := series.Resolve(r.From)
	if err != nil {
		return 0, err
	}
	to, err := series.Resolve(r.To)
	if err != nil {
		return 0, err
	}
	return to.Close - from.Close, nil
}

// MovingAverage returns the mean closing price over the last 'x' trading
// days ending at 'on' (resolved to the nearest trading day at or before it).
// Days are counted backward through the series, skipping non-trading gaps.
func MovingAverage(series *PriceSeries, on Date, x int) (float64, error) {
	if x <= 0 {
		return 0, fmt.Errorf("moving average over %d days", x)
	}
	row, err := series.Resolve(on)
	if err != nil {
		return 0, err
	}
	first, _ := series.First()

	sum, count := row.Close, 1
	day := resolvedDay(series, on)
	for count < x {
		day = day.Add(-1)
		if day.Before(first) {
			break // series starts mid-window, average what we have
		}
		if r, ok := series.Get(day); ok {
			sum += r.Close
			count++
		}
	}
	return sum / float64(count), nil
}

// resolvedDay walks back to the trading day Resolve settles on.
func resolvedDay(series *PriceSeries, on Date) Date {
	for {
		if _, ok := series.Get(on); ok {
			return on
		}
		on = on.Add(-1)
	}
}

// CrossoverDays returns the days within 'r' where the closing price is above
// that day's x-day moving average. Only days with a trading record count.
func CrossoverDays(series *PriceSeries, x int, r Range) ([]Date, error) {
	var days []Date
	for day := range r.Days() {
		row, ok := series.Get(day)
		if !ok {
			continue
		}
		avg, err := MovingAverage(series, day, x)
		if err != nil {
			return nil, err
		}
		if row.Close > avg {
			days = append(days, day)
		}
	}
	return days, nil
}
