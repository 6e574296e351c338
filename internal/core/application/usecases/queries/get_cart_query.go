package queries

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/cart"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New("GetCartQuery must be created via NewGetCartQuery constructor")
)

type GetCartQuery struct {
	cartID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCartQuery(cartID kernel.UUID) (GetCartQuery, error) {
	if err := cartID.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{cartID: cartID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) CartID() kernel.UUID {
	return q.cartID
}

// CartView is the staging cart with its running total.
type CartView struct {
	ID            string         `json:"id"`
	Platform      string         `json:"platform"`
	Reference     string         `json:"reference,omitempty"`
	RequestedTime string         `json:"requested_time,omitempty"`
	Customer      CustomerView   `json:"customer"`
	Notes         string         `json:"notes,omitempty"`
	Lines         []LineItemView `json:"lines"`
	Total         string         `json:"total"`
}

// NewCartView maps a cart to its read model.
func NewCartView(c *cart.Cart) CartView {
	header := c.Header()
	view := CartView{
		ID:        c.ID().String(),
		Platform:  header.Platform.Key(),
		Reference: header.Reference,
		Customer:  CustomerView(header.Customer),
		Notes: header.Notes,
		Total: c.Total().String(),
	}
	if header.Requested != nil {
		view.RequestedTime = header.Requested.String()
	}

	lines := c.Lines()
	view.Lines = make([]LineItemView, 0, len(lines))
	for _, line := range lines {
		view.Lines = append(view.Lines, newLineItemView(line))
	}

	return view
}

type GetCartQueryHandler struct {
	carts ports.CartStore
}

func NewGetCartQueryHandler(carts ports.CartStore) GetCartQueryHandler {
	return GetCartQueryHandler{carts: carts}
}

func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartView, error) {
	if err := query.Validate(); err != nil {
		return CartView{}, err
	}

	c, err := h.carts.Get(ctx, query.CartID())
	if err != nil {
		return CartView{}, err
	}

	return NewCartView(c), nil
}
