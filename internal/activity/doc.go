// Package activity maps exchange trades and deposits to Parqet activity rows.
//
// Parqet's CSV import expects:
//   - datetime as ISO 8601 UTC with millisecond precision and a "Z" suffix
//   - decimal numbers with a comma as decimal separator, never in exponent notation
//   - one of the activity types Buy, Sell or TransferIn
//
// Rows sort chronologically by comparing their datetime strings, which is valid
// because every datetime has the same fixed-width UTC layout.
package activity
