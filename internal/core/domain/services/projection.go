package services

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// DefaultPlatform is assumed by the flat list for orders whose platform cannot be derived.
const DefaultPlatform = order.Phone

// SortMode orders the flat list.
type SortMode string

const (
	SortByUrgency  SortMode = "urgency"
	SortByPlatform SortMode = "platform"
)

// ParseSortMode defaults to SortByUrgency for an empty value.
func ParseSortMode(s string) (SortMode, error) {
	switch mode := SortMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return SortByUrgency, nil
	case SortByUrgency, SortByPlatform:
		return mode, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("sort", fmt.Errorf("%q is not a valid sort mode", s))
	}
}

// PlatformFilter restricts the flat list to one platform, or passes everything through.
type PlatformFilter struct {
	all      bool
	platform order.Platform
}

// FilterAll passes every order.
var FilterAll = PlatformFilter{all: true}

func FilterPlatform(p order.Platform) PlatformFilter {
	return PlatformFilter{platform: p}
}

// ParsePlatformFilter accepts "ALL" (any case, or empty) or a platform key.
func ParsePlatformFilter(s string) (PlatformFilter, error) {
	if s = strings.TrimSpace(s); s == "" || strings.EqualFold(s, "all") {
		return FilterAll, nil
	}
	p, err := order.ParsePlatform(s)
	if err != nil {
		return PlatformFilter{}, err
	}
	return FilterPlatform(p), nil
}

func (f PlatformFilter) IsAll() bool {
	return f.all
}

func (f PlatformFilter) Platform() order.Platform {
	return f.platform
}

func (f PlatformFilter) String() string {
	if f.all {
		return "ALL"
	}
	return f.platform.Key()
}

func (f PlatformFilter) Matches(o *order.Order) bool {
	return f.all || DerivedPlatform(o) == f.platform
}

// PlatformColumn is one column of the board.
type PlatformColumn struct {
	Platform order.Platform
	Orders   []*order.Order
}

// IsDeliveryOrder separates delivery and takeaway orders from dine-in rows sharing the
// same store: the tag carries a DEL_/ASP_ prefix, the row has an explicit platform, or the
// tag is not a plain table number.
func IsDeliveryOrder(o *order.Order) bool {
	return o.Tag().HasKindPrefix() || o.Platform() != order.UnknownPlatform || !o.Tag().IsNumeric()
}

// DerivedPlatform is the platform used by the flat list filter and sort, DefaultPlatform
// when none can be derived.
func DerivedPlatform(o *order.Order) order.Platform {
	if p, ok := o.ResolvedPlatform(); ok {
		return p
	}
	return DefaultPlatform
}

// ActiveOrders is the base list every view starts from: Delivered and dine-in rows are
// dropped and the rest is ordered by creation time, newest first.
func ActiveOrders(orders []*order.Order) []*order.Order {
	active := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.IsActive() && IsDeliveryOrder(o) {
			active = append(active, o)
		}
	}

	slices.SortStableFunc(active, func(a, b *order.Order) int {
		return b.CreatedAt().Compare(a.CreatedAt())
	})

	return active
}

// GroupByPlatform builds one column per platform in canonical order. Each order lands in
// at most one column; orders with no derivable platform are left out of the board.
func GroupByPlatform(orders []*order.Order) []PlatformColumn {
	platforms := order.Platforms()
	columns := make([]PlatformColumn, len(platforms))
	index := make(map[order.Platform]int, len(platforms))
	for i, p := range platforms {
		columns[i] = PlatformColumn{Platform: p, Orders: []*order.Order{}}
		index[p] = i
	}

	for _, o := range ActiveOrders(orders) {
		p, ok := o.ResolvedPlatform()
		if !ok {
			continue
		}
		i := index[p]
		columns[i].Orders = append(columns[i].Orders, o)
	}

	return columns
}

// Project builds the flat list: base list, then filter, then a stable sort.
//
// SortByUrgency orders by minutes until due (SortRollover) with orders lacking a requested
// time last. SortByPlatform orders by derived platform key.
func Project(orders []*order.Order, filter PlatformFilter, mode SortMode, now time.Time) []*order.Order {
	projected := []*order.Order{}
	for _, o := range ActiveOrders(orders) {
		if filter.Matches(o) {
			projected = append(projected, o)
		}
	}

	switch mode {
	case SortByPlatform:
		slices.SortStableFunc(projected, func(a, b *order.Order) int {
			return strings.Compare(DerivedPlatform(a).Key(), DerivedPlatform(b).Key())
		})
	default:
		keys := make(map[*order.Order]int, len(projected))
		for _, o := range projected {
			keys[o] = sortMinutes(o, now)
		}
		slices.SortStableFunc(projected, func(a, b *order.Order) int {
			return cmp.Compare(keys[a], keys[b])
		})
	}

	return projected
}

func sortMinutes(o *order.Order, now time.Time) int {
	minutes, ok := MinutesUntilDue(o, now, SortRollover)
	if !ok {
		return math.MaxInt
	}
	return minutes
}
