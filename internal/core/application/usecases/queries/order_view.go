package queries

import (
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
)

// LineItemView is one order line as shown to staff.
type LineItemView struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	Subtotal   string `json:"subtotal"`
	Note       string `json:"note,omitempty"`
}

// UrgencyView is the derived urgency of an order; absent when no requested time is known.
type UrgencyView struct {
	Level           string `json:"level"`
	MinutesUntilDue int    `json:"minutes_until_due"`
	Label           string `json:"label"`
}

// CustomerView carries the optional contact data unchanged.
type CustomerView struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// OrderView is the read model of an order for the board and the flat list.
type OrderView struct {
	ID                string         `json:"id"`
	Tag               string         `json:"tag"`
	ShortNumber       string         `json:"short_number"`
	Platform          string         `json:"platform"`
	PlatformLabel     string         `json:"platform_label"`
	PlatformColor     string         `json:"platform_color,omitempty"`
	Kind              string         `json:"kind"`
	Status            string         `json:"status"`
	NextStatus        string         `json:"next_status,omitempty"`
	Items             []LineItemView `json:"items"`
	ItemCount         int            `json:"item_count"`
	Total             string         `json:"total"`
	CreatedAt         time.Time      `json:"created_at"`
	MinutesSinceEntry int            `json:"minutes_since_entry"`
	RequestedTime     string         `json:"requested_time,omitempty"`
	Urgency           *UrgencyView   `json:"urgency,omitempty"`
	Customer          CustomerView   `json:"customer"`
	Notes             string         `json:"notes,omitempty"`
}

// NewOrderView renders o as seen at now.
func NewOrderView(o *order.Order, now time.Time) OrderView {
	platform := services.DerivedPlatform(o)
	view := OrderView{
		ID:                o.ID().String(),
		Tag:               o.Tag().String(),
		ShortNumber:       o.Tag().ShortNumber(),
		Platform:          platform.Key(),
		PlatformLabel:     platform.Label(),
		PlatformColor:     platform.Color(),
		Kind:              platform.FulfillmentKind().String(),
		Status:            o.Status().String(),
		ItemCount:         o.ItemCount(),
		Total:             o.Total().String(),
		CreatedAt:         o.CreatedAt(),
		MinutesSinceEntry: int(now.Sub(o.CreatedAt()).Minutes()),
		Customer: CustomerView{
			Name:    o.Customer().Name,
			Phone:   o.Customer().Phone,
			Address: o.Customer().Address,
			Notes:   o.Customer().Notes,
		},
		Notes: o.Notes(),
	}

	if kind, ok := o.Kind(); ok {
		view.Kind = kind.String()
	}
	if next, err := o.Status().Next(); err == nil {
		view.NextStatus = next.String()
	}
	if requested, ok := services.ResolveRequestedTime(o); ok {
		view.RequestedTime = requested.String()
	}
	if u := services.ClassifyUrgency(o, now); u != nil {
		view.Urgency = &UrgencyView{
			Level:           u.Level.String(),
			MinutesUntilDue: u.MinutesUntilDue,
			Label:           u.Label,
		}
	}

	view.Items = make([]LineItemView, 0, len(o.Items()))
	for _, item := range o.Items() {
		view.Items = append(view.Items, newLineItemView(item))
	}

	return view
}

func newOrderViews(orders []*order.Order, now time.Time) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o, now))
	}
	return views
}

func newLineItemView(item order.LineItem) LineItemView {
	return LineItemView{
		MenuItemID: item.MenuItemID().String(),
		Name:       item.Name(),
		Category:   item.Category(),
		Quantity:   item.Quantity(),
		UnitPrice:  item.UnitPrice().String(),
		Subtotal:   item.Subtotal().String(),
		Note:       item.Note(),
	}
}
