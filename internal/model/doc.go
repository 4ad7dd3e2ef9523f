// Package model defines the exchange records the exporter works with.
//
// Conventions:
//   - Timestamps: int64 milliseconds since Unix epoch (UTC), as Bitvavo reports them
//   - Quantities and prices: decimal strings exactly as returned by the exchange
//   - IDs: uuid.UUID for trade and order IDs
package model
