package http

import (
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

type customerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type cartHeaderRequest struct {
	Platform      string          `json:"platform"`
	Reference     string          `json:"reference"`
	RequestedTime string          `json:"requested_time"`
	Customer      customerRequest `json:"customer"`
	Notes         string          `json:"notes"`
}

func (r cartHeaderRequest) toFulfillment() (order.Fulfillment, error) {
	platform, err := order.ParsePlatform(r.Platform)
	if err != nil {
		return order.Fulfillment{}, err
	}

	var requested *kernel.TimeOfDay
	if strings.TrimSpace(r.RequestedTime) != "" {
		t, err := kernel.ParseTimeOfDay(r.RequestedTime)
		if err != nil {
			return order.Fulfillment{}, err
		}
		requested = &t
	}

	return order.Fulfillment{
		Platform:  platform,
		Reference: r.Reference,
		Requested: requested,
		Customer:  order.NewCustomer(r.Customer.Name, r.Customer.Phone, r.Customer.Address, r.Customer.Notes),
		Notes:     r.Notes,
	}, nil
}

type addCartItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Note       string `json:"note"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type advanceOrderRequest struct {
	Status string `json:"status"`
}

type importOrderRequest struct {
	Platform string               `json:"platform"`
	Order    ports.ExtractedOrder `json:"order"`
}

type addMenuItemRequest struct {
	Name      string `json:"name"`
	Price     string `json:"price"`
	Category  string `json:"category"`
	Available *bool  `json:"available"`
}
