package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
		"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
	)
)

// AdvanceOrderStatusCommand moves an order to its next lifecycle status.
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	next    order.Status

	guard guard.ConstructorGuard
}

func NewAdvanceOrderStatusCommand(orderID kernel.OrderID, next order.Status) (AdvanceOrderStatusCommand, error) {
	cmd := AdvanceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNext(next),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

func (c AdvanceOrderStatusCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c AdvanceOrderStatusCommand) Next() order.Status {
	return c.next
}

func (c *AdvanceOrderStatusCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderStatusCommand) setNext(next order.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	c.next = next
	return nil
}
