// Package stockfolio implements portfolio and share-lot accounting over
// daily price series.
//
// A Portfolio holds one ShareLot per symbol and an append-only transaction
// history. The history is the durable form: EncodeHistory writes it as plain
// "ACTION;SYMBOL;QUANTITY;DATE" lines and DecodePortfolio rebuilds the
// portfolio by replaying them, so a stored portfolio round-trips exactly.
//
// Prices come from a PriceSource, typically a Market backed by per-symbol
// CSV files and an optional remote Quoter. A PriceSeries resolves any
// calendar date to the nearest trading day at or before it, so weekend and
// holiday valuations use the last available close.
package stockfolio
