package queries

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New("GetMenuQuery must be created via NewGetMenuQuery constructor")
)

// GetMenuQuery lists the menu catalog. When onlyAvailable is set, items switched off in
// the kitchen are left out.
type GetMenuQuery struct {
	onlyAvailable bool

	guard guard.ConstructorGuard
}

func NewGetMenuQuery(onlyAvailable bool) GetMenuQuery {
	return GetMenuQuery{onlyAvailable: onlyAvailable, guard: guard.NewConstructorGuard()}
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

func (q GetMenuQuery) OnlyAvailable() bool {
	return q.onlyAvailable
}

// MenuItemView is one catalog row.
type MenuItemView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Category  string `json:"category"`
	Available bool   `json:"available"`
}
