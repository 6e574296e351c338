package order

import (
	"orderdesk/internal/core/domain/model/kernel"
)

// Fulfillment is the header the staff fills in before placing an order.
type Fulfillment struct {
	Platform  Platform
	Reference string
	Requested *kernel.TimeOfDay
	Customer  Customer
	Notes     string
}

// Factory synthesizes the identifier and display tag of new orders from one clock reading.
type Factory struct {
	clock kernel.Clock
}

func NewFactory(clock kernel.Clock) *Factory {
	return &Factory{clock: clock}
}

// Create builds a Pending order. The id and the fallback tag reference both come from the
// same instant, so an order created at 14:05 gets "..._1405" when no reference was given.
func (f *Factory) Create(fulfillment Fulfillment, items []LineItem) (*Order, error) {
	now := f.clock.Now()

	tag, err := NewDisplayTag(fulfillment.Platform, fulfillment.Reference, now)
	if err != nil {
		return nil, err
	}

	return NewOrder(
		kernel.NewOrderID(now),
		tag,
		fulfillment.Platform,
		items,
		fulfillment.Requested,
		fulfillment.Customer,
		fulfillment.Notes,
		now,
	)
}
