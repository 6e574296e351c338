package order

import (
	"errors"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root of the order lifecycle: it is classified and tagged at
// creation, then only moves forward through its statuses until it is delivered or deleted.
//
// Order follows these invariants:
//   - Must have a valid identifier and a non-empty display tag
//   - New orders have a known platform and at least one line item
//   - Status transitions only go to the immediate successor
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id       kernel.OrderID
	tag      DisplayTag
	platform Platform
	items    []LineItem
	status   Status

	createdAt time.Time

	// requested is the structured delivery time, nil when the customer gave none
	requested *kernel.TimeOfDay

	customer Customer
	notes    string

	isConstructed bool
}

// NewOrder creates a new Pending order.
//
// Parameters:
//   - id: synthesized internal identifier, see kernel.NewOrderID
//   - tag: synthesized display tag, see NewDisplayTag
//   - platform: a known platform
//   - items: at least one line item
//   - requested: optional requested delivery time
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: every validation failure joined with errors.Join
func NewOrder(
	id kernel.OrderID,
	tag DisplayTag,
	platform Platform,
	items []LineItem,
	requested *kernel.TimeOfDay,
	customer Customer,
	notes string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		requested:     requested,
		customer:      customer,
		notes:         strings.TrimSpace(notes),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTag(tag),
		o.setPlatform(platform),
		o.setItems(items),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order read from the store. Unlike NewOrder it accepts any valid
// status, an unknown platform and an empty item list, since dine-in rows and legacy rows
// written by other clients share the same table.
func RestoreOrder(
	id kernel.OrderID,
	tag DisplayTag,
	platform Platform,
	items []LineItem,
	status Status,
	requested *kernel.TimeOfDay,
	customer Customer,
	notes string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		platform:      platform,
		items:         append([]LineItem(nil), items...),
		requested:     requested,
		customer:      customer,
		notes:         notes,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTag(tag),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.OrderID {
	return o.id
}

func (o *Order) Tag() DisplayTag {
	return o.tag
}

// Platform returns the stored platform, UnknownPlatform for rows that carry none.
func (o *Order) Platform() Platform {
	return o.platform
}

// ResolvedPlatform returns the stored platform, falling back to the platform derived from
// the display tag.
func (o *Order) ResolvedPlatform() (Platform, bool) {
	if o.platform != UnknownPlatform {
		return o.platform, true
	}
	return o.tag.Platform()
}

// Kind returns the fulfillment kind, derived from the platform or the tag prefix.
func (o *Order) Kind() (FulfillmentKind, bool) {
	if o.platform != UnknownPlatform {
		return o.platform.FulfillmentKind(), true
	}
	return o.tag.Kind()
}

// Items returns a copy of the line items.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// RequestedTime returns the structured requested time, nil when absent.
func (o *Order) RequestedTime() *kernel.TimeOfDay {
	return o.requested
}

func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) Notes() string {
	return o.notes
}

// Total is the sum of unit price × quantity over all lines.
func (o *Order) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ItemCount is the sum of all line quantities.
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.items {
		count += item.Quantity()
	}
	return count
}

// IsActive reports whether the order still belongs on the board.
func (o *Order) IsActive() bool {
	return !o.status.IsTerminal()
}

// AdvanceTo moves the order to next, which must be the immediate successor of the
// current status.
//
// Example:
//
//	if err := o.AdvanceTo(order.InPreparation); err != nil {
//	    // Order was not Pending
//	}
func (o *Order) AdvanceTo(next Status) error {
	newStatus, err := o.status.AdvanceTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTag(tag DisplayTag) error {
	if err := tag.Validate(); err != nil {
		return err
	}
	o.tag = tag
	return nil
}

func (o *Order) setPlatform(platform Platform) error {
	if err := platform.Validate(); err != nil {
		return err
	}
	o.platform = platform
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	o.items = append([]LineItem(nil), items...)
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}
