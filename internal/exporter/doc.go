// Package exporter runs the Bitvavo to Parqet export.
//
// A run is a single forward pass:
//   - fetch the trade history of every configured symbol against the quote currency
//   - fetch the deposit history of all assets and keep quote-currency deposits
//   - map both to Parqet rows, sort by datetime and write the CSV file
//
// Failed API calls are logged and treated as empty; only a canceled context or a
// failed file write aborts the run.
package exporter
