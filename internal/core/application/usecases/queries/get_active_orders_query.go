package queries

import (
	"errors"

	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery retrieves the flat list of active orders.
//
// Example:
//
//	filter, _ := services.ParsePlatformFilter("glovo")
//	query := NewGetActiveOrdersQuery(filter, services.SortByUrgency)
//
//	views, err := handler.Handle(ctx, query)
type GetActiveOrdersQuery struct {
	filter services.PlatformFilter
	sort   services.SortMode

	guard guard.ConstructorGuard
}

func NewGetActiveOrdersQuery(filter services.PlatformFilter, sort services.SortMode) GetActiveOrdersQuery {
	return GetActiveOrdersQuery{filter: filter, sort: sort, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

func (q GetActiveOrdersQuery) Filter() services.PlatformFilter {
	return q.filter
}

func (q GetActiveOrdersQuery) Sort() services.SortMode {
	return q.sort
}
