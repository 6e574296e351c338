package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/menu"
)

// MenuRepository exposes the menu catalog. Placeholder items are never stored.
type MenuRepository interface {
	Add(ctx context.Context, item *menu.MenuItem) error

	// Get returns errs.ObjectNotFoundError for an unknown id.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetAll returns the catalog ordered by category and name; the order decides which
	// item wins a fuzzy name match.
	GetAll(ctx context.Context) ([]*menu.MenuItem, error)
}
