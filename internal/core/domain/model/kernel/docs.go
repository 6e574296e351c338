// Package kernel provides the value objects shared by the orderdesk domain model.
//
// The package includes:
//   - OrderID: the store primary key of an order ("order_{epochMillis}_{suffix}")
//   - UUID: identity of menu items and staging carts
//   - TimeOfDay: an hour:minute wall-clock time with no date, used for requested delivery times
//   - Money: a non-negative decimal amount for prices and totals
//   - Clock: the source of "now" for id synthesis and urgency computation
//
// All value objects are immutable; zero values are invalid and report so through Validate.
package kernel
