package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)

	// ErrDeletionNotConfirmed is returned when the staff has not confirmed the deletion.
	ErrDeletionNotConfirmed = errors.New("order deletion must be confirmed")
)

// DeleteOrderCommand permanently removes an order. The confirmed flag carries the staff's
// answer to the confirmation prompt.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.OrderID
	confirmed bool

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(orderID kernel.OrderID, confirmed bool) (DeleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		orderID:   orderID,
		confirmed: confirmed,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c DeleteOrderCommand) Confirmed() bool {
	return c.confirmed
}
