package menurepo

import (
	"context"
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/menu"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuRepository {
	return &GormMenuRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add stores a catalog item. Placeholder items are rejected.
func (r *GormMenuRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if item.IsPlaceholder() {
		return errs.NewValueIsInvalidErrorWithCause("menu item",
			fmt.Errorf("%q is a placeholder and cannot be stored", item.Name()))
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID().String(), item)
	return nil
}

func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll returns the catalog ordered by category, then name.
func (r *GormMenuRepository) GetAll(ctx context.Context) ([]*menu.MenuItem, error) {
	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Order("category, name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*menu.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
