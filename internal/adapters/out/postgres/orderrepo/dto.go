// Package orderrepo maps order aggregates to the shared orders and order_items tables.
package orderrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is one row of the orders table. Status and platform are stored by name so that
// the other clients of the store can read them.
type OrderDTO struct {
	ID            string        `gorm:"type:varchar(64);primaryKey"`
	Tag           string        `gorm:"type:varchar(128);not null;index"`
	Platform      string        `gorm:"type:varchar(32)"`
	Status        string        `gorm:"type:varchar(32);not null;index"`
	RequestedTime *string       `gorm:"type:varchar(5)"`
	Customer      CustomerDTO   `gorm:"embedded;embeddedPrefix:customer_"`
	Notes         string        `gorm:"type:text"`
	CreatedAt     time.Time     `gorm:"not null;index"`
	Items         []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type CustomerDTO struct {
	Name    string `gorm:"type:varchar(255)"`
	Phone   string `gorm:"type:varchar(64)"`
	Address string `gorm:"type:varchar(512)"`
	Notes   string `gorm:"type:text"`
}

// LineItemDTO is one row of order_items. Position keeps the entry order of the lines.
type LineItemDTO struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	OrderID    string          `gorm:"type:varchar(64);not null;index"`
	Position   int             `gorm:"not null"`
	MenuItemID uuid.UUID       `gorm:"type:uuid"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Category   string          `gorm:"type:varchar(64)"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Quantity   int             `gorm:"not null"`
	Note       string          `gorm:"type:text"`
}

func (LineItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var requested *string
	if t := o.RequestedTime(); t != nil {
		s := t.String()
		requested = &s
	}

	var platform string
	if o.Platform() != order.UnknownPlatform {
		platform = o.Platform().Key()
	}

	items := make([]LineItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, LineItemDTO{
			OrderID:    o.ID().String(),
			Position:   i,
			MenuItemID: item.MenuItemID().Bytes(),
			Name:       item.Name(),
			Category:   item.Category(),
			UnitPrice:  item.UnitPrice().Amount(),
			Quantity:   item.Quantity(),
			Note:       item.Note(),
		})
	}

	customer := o.Customer()
	return OrderDTO{
		ID:            o.ID().String(),
		Tag:           o.Tag().String(),
		Platform:      platform,
		Status:        o.Status().String(),
		RequestedTime: requested,
		Customer: CustomerDTO{
			Name:    customer.Name,
			Phone:   customer.Phone,
			Address: customer.Address,
			Notes:   customer.Notes,
		},
		Notes:     o.Notes(),
		CreatedAt: o.CreatedAt(),
		Items:     items,
	}
}

// toDomain restores rows written by any client, so a foreign id layout, an unknown platform
// and a missing or malformed requested time are tolerated.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.RestoreOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	tag, err := order.DisplayTagFromString(dto.Tag)
	if err != nil {
		return nil, err
	}

	platform := order.UnknownPlatform
	if dto.Platform != "" {
		if parsed, parseErr := order.ParsePlatform(dto.Platform); parseErr == nil {
			platform = parsed
		}
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var requested *kernel.TimeOfDay
	if dto.RequestedTime != nil {
		if t, parseErr := kernel.ParseTimeOfDay(*dto.RequestedTime); parseErr == nil {
			requested = &t
		}
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		tag,
		platform,
		items,
		status,
		requested,
		order.Customer(dto.Customer),
		dto.Notes,
		dto.CreatedAt,
	)
}

func lineItemToDomain(dto LineItemDTO) (order.LineItem, error) {
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.RestoreLineItem(menuItemID, dto.Name, price, dto.Category, dto.Quantity, dto.Note)
}
