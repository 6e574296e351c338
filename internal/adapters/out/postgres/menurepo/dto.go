// Package menurepo persists the menu catalog.
package menurepo

import (
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MenuItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Category  string          `gorm:"type:varchar(64);index"`
	Available bool            `gorm:"not null;default:true"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:        item.ID().Bytes(),
		Name:      item.Name(),
		Price:     item.Price().Amount(),
		Category:  item.Category(),
		Available: item.IsAvailable(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.NewMenuItem(id, dto.Name, price, dto.Category, dto.Available)
}
