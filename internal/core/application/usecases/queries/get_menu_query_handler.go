package queries

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetMenuQueryHandler reads the catalog straight from the database, bypassing the
// aggregate mapping.
//
// Example:
//
//	handler := NewGetMenuQueryHandler(db)
//	items, err := handler.Handle(ctx, NewGetMenuQuery(true))
type GetMenuQueryHandler struct {
	db *gorm.DB
}

func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle returns the catalog sorted by category, then name.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]MenuItemView, 0)

	sql := `
		SELECT
			id,
			name,
			price,
			category,
			available
		FROM menu_items
	`
	args := make([]any, 0, 1)
	if query.OnlyAvailable() {
		sql += "WHERE available = ?\n"
		args = append(args, true)
	}
	sql += "ORDER BY category, name"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			price     decimal.Decimal
			category  string
			available bool
		)

		if err = rows.Scan(&id, &name, &price, &category, &available); err != nil {
			return nil, err
		}

		money, moneyErr := kernel.NewMoney(price)
		if moneyErr != nil {
			return nil, moneyErr
		}

		items = append(items, MenuItemView{
			ID:        id.String(),
			Name:      name,
			Price:     money.String(),
			Category:  category,
			Available: available,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
