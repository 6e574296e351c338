// Package menu models the restaurant's menu catalog as seen by order creation.
//
// Items are referenced by order lines as snapshots (id, name, unit price, category).
// Catalog.Match resolves free-text item names, such as names extracted from a scanned
// receipt, to catalog entries; names that match nothing become placeholder items so an
// order can still be created.
package menu
