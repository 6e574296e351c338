package menu

import (
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
)

// Catalog is the ordered list of menu items used to resolve extracted item names.
type Catalog struct {
	items []*MenuItem
}

func NewCatalog(items []*MenuItem) Catalog {
	return Catalog{items: items}
}

func (c Catalog) Items() []*MenuItem {
	return c.items
}

func (c Catalog) Len() int {
	return len(c.items)
}

// Match resolves an extracted name against the catalog, ignoring case. An exact name wins,
// then the first item (in catalog order) whose name contains the extracted one, then the
// longest item name contained in the extracted one. Receipts often carry extra words
// around the dish name, hence the last pass.
func (c Catalog) Match(name string) (*MenuItem, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil, false
	}

	for _, item := range c.items {
		if strings.ToLower(item.Name()) == needle {
			return item, true
		}
	}

	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.Name()), needle) {
			return item, true
		}
	}

	var best *MenuItem
	for _, item := range c.items {
		candidate := strings.ToLower(item.Name())
		if candidate == "" || !strings.Contains(needle, candidate) {
			continue
		}
		if best == nil || len(candidate) > len(best.Name()) {
			best = item
		}
	}

	return best, best != nil
}

// Resolve matches name against the catalog, falling back to a placeholder item priced
// with fallbackPrice.
func (c Catalog) Resolve(name string, fallbackPrice kernel.Money) (*MenuItem, error) {
	if item, ok := c.Match(name); ok {
		return item, nil
	}
	return NewPlaceholderMenuItem(name, fallbackPrice)
}
