// Package cart provides the staging cart staff fill in before placing an order.
//
// A cart holds the fulfillment header (platform, reference, requested time, customer,
// notes) and an ordered list of lines. It never reaches the order store: checkout turns it
// into an order.Order through order.Factory and the cart is discarded on success only.
package cart
