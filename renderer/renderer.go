// Package renderer turns portfolio data into markdown reports and PNG
// charts for the command layer.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/vjacques/stockfolio"
)

//go:embed templates/*.md
var templates embed.FS

// HoldingRow is one symbol line of a holding report.
type HoldingRow struct {
	Symbol   string
	Quantity stockfolio.Quantity
	Price    stockfolio.Money
	Value    stockfolio.Money
}

// Holding is the composition of a portfolio on a given date.
type Holding struct {
	Name  string
	Date  stockfolio.Date
	Rows  []HoldingRow
	Total stockfolio.Money
}

// NewHolding computes the holding report of a portfolio on a date.
func NewHolding(p *stockfolio.Portfolio, on stockfolio.Date) *Holding {
	h := &Holding{Name: p.Name(), Date: on}
	for _, symbol := range p.Symbols() {
		lot := p.Share(symbol)
		h.Rows = append(h.Rows, HoldingRow{
			Symbol:   symbol,
			Quantity: lot.QuantityOn(on),
			Price:    stockfolio.USD(lot.PriceOn(on)),
			Value:    stockfolio.USD(lot.ValueOn(on)),
		})
	}
	h.Total = stockfolio.USD(p.Value(on))
	return h
}

// RenderHolding renders the Holding struct to a markdown string.
func RenderHolding(h *Holding) string {
	return renderTemplate("holding", "holding.md", h)
}

// Log is the transaction log of a portfolio.
type Log struct {
	Name    string
	Records []stockfolio.Transaction
}

// NewLog collects a portfolio's transaction history for rendering.
func NewLog(p *stockfolio.Portfolio) *Log {
	l := &Log{Name: p.Name()}
	for _, tx := range p.Transactions() {
		l.Records = append(l.Records, tx)
	}
	return l
}

// RenderLog renders the Log struct to a markdown string.
func RenderLog(l *Log) string {
	return renderTemplate("log", "log.md", l)
}

// renderTemplate is a generic utility to render an embedded template.
func renderTemplate(templateName, file string, data any) string {
	content, err := fs.ReadFile(templates, "templates/"+file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(templateName).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
