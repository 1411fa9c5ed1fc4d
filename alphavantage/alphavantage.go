// Package alphavantage fetches daily price series and quotes from the
// Alpha Vantage API (https://www.alphavantage.co/documentation/).
//
// Responses are cached on disk until the end of the day: the free tier
// allows very few requests, and daily series do not change intraday anyway.
package alphavantage

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"

	"github.com/vjacques/stockfolio"
)

const baseURL = "https://www.alphavantage.co/query"

// Client queries Alpha Vantage. It implements stockfolio.Quoter.
type Client struct {
	// APIKey authenticates every request. Get a free one at
	// https://www.alphavantage.co/support/#api-key.
	APIKey string
	// HTTP is the client used for requests; nil means a daily-cached one.
	HTTP *http.Client
}

// New returns a client for the given API key, with daily response caching.
func New(apiKey string) *Client {
	return &Client{APIKey: apiKey, HTTP: daily()}
}

func (c *Client) http() *http.Client {
	if c.HTTP == nil {
		c.HTTP = daily()
	}
	return c.HTTP
}

func (c *Client) query(params url.Values) string {
	params.Set("apikey", c.APIKey)
	return baseURL + "?" + params.Encode()
}

// FetchDaily downloads the full daily series for a symbol, most recent
// twenty-plus years.
func (c *Client) FetchDaily(symbol string) (*stockfolio.PriceSeries, error) {
	addr := c.query(url.Values{
		"function":   {"TIME_SERIES_DAILY"},
		"symbol":     {symbol},
		"outputsize": {"full"},
		"datatype":   {"csv"},
	})
	resp, err := c.http().Get(addr)
	if err != nil {
		return nil, fmt.Errorf("fetching %s daily series: %w", symbol, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("fetching %s daily series: %v", symbol, resp.Status)
	}
	series, err := stockfolio.DecodePriceSeries(symbol, resp.Body)
	if err != nil {
		return nil, err
	}
	if series.Len() == 0 {
		// The API reports bad symbols and throttling as a 200 with a JSON
		// error body, which decodes to an empty series.
		return nil, fmt.Errorf("fetching %s daily series: empty response, unknown symbol or rate limit hit", symbol)
	}
	return series, nil
}

// GlobalQuote returns the latest quoted price for a symbol.
func (c *Client) GlobalQuote(symbol string) (float64, error) {
	addr := c.query(url.Values{
		"function": {"GLOBAL_QUOTE"},
		"symbol":   {symbol},
	})
	var jobj any
	if err := jwget(c.http(), addr, &jobj); err != nil {
		return 0, fmt.Errorf("quoting %s: %w", symbol, err)
	}
	path := "$[\"Global Quote\"][\"05. price\"]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("quoting %s: %q %w", symbol, path, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer, keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	price, ok := jval.(string)
	if !ok {
		return 0, fmt.Errorf("quoting %s: %q is not a string: %v", symbol, path, jval)
	}
	q, err := stockfolio.ParseQuantity(price)
	if err != nil {
		return 0, fmt.Errorf("quoting %s: %w", symbol, err)
	}
	return q.InexactFloat64(), nil
}

// Match is one result of a symbol search.
type Match struct {
	Symbol   string
	Name     string
	Region   string
	Currency string
}

// Search looks up symbols matching keywords (a ticker fragment or a company
// name).
func (c *Client) Search(keywords string) ([]Match, error) {
	addr := c.query(url.Values{
		"function": {"SYMBOL_SEARCH"},
		"keywords": {keywords},
	})
	var jobj struct {
		BestMatches []map[string]string `json:"bestMatches"`
	}
	if err := jwget(c.http(), addr, &jobj); err != nil {
		return nil, fmt.Errorf("searching %q: %w", keywords, err)
	}
	matches := make([]Match, 0, len(jobj.BestMatches))
	for _, m := range jobj.BestMatches {
		matches = append(matches, Match{
			Symbol:   m["1. symbol"],
			Name:     m["2. name"],
			Region:   m["4. region"],
			Currency: m["8. currency"],
		})
	}
	return matches, nil
}
