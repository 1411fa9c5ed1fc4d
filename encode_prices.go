package stockfolio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// DecodePriceSeries reads daily rows "date,open,high,low,close" into a
// series for 'symbol'. A leading header row is skipped, as are trailing
// extra columns (quote feeds add volume), so provider CSV can be stored and
// reloaded untouched.
func DecodePriceSeries(symbol string, r io.Reader) (*PriceSeries, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	series := NewPriceSeries(symbol)
	for n := 1; ; n++ {
		record, err := cr.Read()
		if err == io.EOF {
			return series, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decoding %s prices: %w", symbol, err)
		}
		if len(record) < 5 {
			return nil, fmt.Errorf("decoding %s prices row %d: want at least 5 fields, got %d", symbol, n, len(record))
		}
		day, err := ParseDate(record[0])
		if err != nil {
			if n == 1 {
				continue // header row
			}
			return nil, fmt.Errorf("decoding %s prices row %d: %w", symbol, n, err)
		}
		var ohlc OHLC
		for i, v := range []*float64{&ohlc.Open, &ohlc.High, &ohlc.Low, &ohlc.Close} {
			*v, err = strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("decoding %s prices row %d: %w", symbol, n, err)
			}
		}
		series.Append(day, ohlc)
	}
}

// EncodePriceSeries writes a series as "date,open,high,low,close" rows in
// chronological order, with no header.
func EncodePriceSeries(w io.Writer, series *PriceSeries) error {
	cw := csv.NewWriter(w)
	for day, ohlc := range series.Days() {
		record := []string{
			day.String(),
			strconv.FormatFloat(ohlc.Open, 'f', -1, 64),
			strconv.FormatFloat(ohlc.High, 'f', -1, 64),
			strconv.FormatFloat(ohlc.Low, 'f', -1, 64),
			strconv.FormatFloat(ohlc.Close, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("encoding %s prices: %w", series.Symbol(), err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("encoding %s prices: %w", series.Symbol(), err)
	}
	return nil
}
