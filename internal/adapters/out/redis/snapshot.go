package redis

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// orderSnapshot is the JSON form of an order held in the cache hash.
type orderSnapshot struct {
	ID        string         `json:"id"`
	Tag       string         `json:"tag"`
	Platform  string         `json:"platform,omitempty"`
	Status    string         `json:"status"`
	Requested string         `json:"requested,omitempty"`
	Customer  order.Customer `json:"customer"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	Items     []lineSnapshot `json:"items"`
}

type lineSnapshot struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
	UnitPrice  string `json:"unit_price"`
	Quantity   int    `json:"quantity"`
	Note       string `json:"note,omitempty"`
}

func snapshotOf(o *order.Order) orderSnapshot {
	s := orderSnapshot{
		ID:        o.ID().String(),
		Tag:       o.Tag().String(),
		Status:    o.Status().String(),
		Customer:  o.Customer(),
		Notes:     o.Notes(),
		CreatedAt: o.CreatedAt(),
		Items:     make([]lineSnapshot, 0, len(o.Items())),
	}
	if o.Platform() != order.UnknownPlatform {
		s.Platform = o.Platform().Key()
	}
	if t := o.RequestedTime(); t != nil {
		s.Requested = t.String()
	}
	for _, item := range o.Items() {
		s.Items = append(s.Items, lineSnapshot{
			MenuItemID: item.MenuItemID().String(),
			Name:       item.Name(),
			Category:   item.Category(),
			UnitPrice:  item.UnitPrice().String(),
			Quantity:   item.Quantity(),
			Note:       item.Note(),
		})
	}
	return s
}

func (s orderSnapshot) restore() (*order.Order, error) {
	id, err := kernel.RestoreOrderID(s.ID)
	if err != nil {
		return nil, err
	}
	tag, err := order.DisplayTagFromString(s.Tag)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(s.Status)
	if err != nil {
		return nil, err
	}

	platform := order.UnknownPlatform
	if s.Platform != "" {
		if platform, err = order.ParsePlatform(s.Platform); err != nil {
			return nil, err
		}
	}

	var requested *kernel.TimeOfDay
	if s.Requested != "" {
		t, parseErr := kernel.ParseTimeOfDay(s.Requested)
		if parseErr != nil {
			return nil, parseErr
		}
		requested = &t
	}

	items := make([]order.LineItem, 0, len(s.Items))
	for _, line := range s.Items {
		menuItemID, idErr := kernel.UUIDFromString(line.MenuItemID)
		if idErr != nil {
			return nil, idErr
		}
		price, priceErr := kernel.MoneyFromString(line.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.RestoreLineItem(menuItemID, line.Name, price, line.Category, line.Quantity, line.Note)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, tag, platform, items, status, requested, s.Customer, s.Notes, s.CreatedAt)
}
