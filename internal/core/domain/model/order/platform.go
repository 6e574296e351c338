package order

import (
	"fmt"
	"strings"

	"orderdesk/internal/pkg/errs"
)

// Platform is the channel an order came from. It decides the fulfillment kind and the
// column the order is shown in.
type Platform int

const (
	// UnknownPlatform is the zero value; restored dine-in rows carry it.
	UnknownPlatform Platform = iota
	JustEat
	Glovo
	Deliveroo
	UberEats
	Phone
	Takeaway
)

type platformInfo struct {
	key   string
	label string
	color string
}

func getPlatformInfo() map[Platform]platformInfo {
	//nolint:exhaustive // UnknownPlatform has no presentation metadata
	return map[Platform]platformInfo{
		JustEat:   {key: "just-eat", label: "Just Eat", color: "#ff8000"},
		Glovo:     {key: "glovo", label: "Glovo", color: "#ffc244"},
		Deliveroo: {key: "deliveroo", label: "Deliveroo", color: "#00ccbc"},
		UberEats:  {key: "uber-eats", label: "Uber Eats", color: "#06c167"},
		Phone:     {key: "phone", label: "Phone", color: "#6366f1"},
		Takeaway:  {key: "takeaway", label: "Takeaway", color: "#64748b"},
	}
}

// Platforms returns every known platform in canonical order.
func Platforms() []Platform {
	return []Platform{JustEat, Glovo, Deliveroo, UberEats, Phone, Takeaway}
}

// ParsePlatform accepts a platform key ("uber-eats") or its token ("UBER_EATS").
func ParsePlatform(s string) (Platform, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	for _, p := range Platforms() {
		if p.Key() == normalized {
			return p, nil
		}
	}
	return UnknownPlatform, errs.NewValueIsInvalidErrorWithCause("platform", fmt.Errorf("%q is not a known platform", s))
}

func (p Platform) Validate() error {
	if _, ok := getPlatformInfo()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("platform", fmt.Errorf("%d is not a valid platform", p))
	}
	return nil
}

// Key is the lower-case identifier, e.g. "just-eat".
func (p Platform) Key() string {
	return getPlatformInfo()[p].key
}

func (p Platform) Label() string {
	if info, ok := getPlatformInfo()[p]; ok {
		return info.label
	}
	return "Unknown"
}

func (p Platform) Color() string {
	return getPlatformInfo()[p].color
}

// Token is the canonical upper-case form used in display tags: "JUST_EAT".
func (p Platform) Token() string {
	return strings.ReplaceAll(strings.ToUpper(p.Key()), "-", "_")
}

// tokenForms lists the spellings found in stored tags: the canonical underscore form and
// the legacy hyphenated form.
func (p Platform) tokenForms() []string {
	canonical := p.Token()
	legacy := strings.ToUpper(p.Key())
	if legacy == canonical {
		return []string{canonical}
	}
	return []string{canonical, legacy}
}

func (p Platform) FulfillmentKind() FulfillmentKind {
	if p == Takeaway || p == Phone {
		return Pickup
	}
	return Delivery
}

func (p Platform) String() string {
	if p == UnknownPlatform {
		return "unknown"
	}
	return p.Key()
}

// FulfillmentKind separates courier deliveries from in-person pickups.
type FulfillmentKind int

const (
	Delivery FulfillmentKind = iota + 1
	Pickup
)

// Prefix is the display tag prefix: "DEL" or "ASP".
func (k FulfillmentKind) Prefix() string {
	if k == Pickup {
		return "ASP"
	}
	return "DEL"
}

func (k FulfillmentKind) String() string {
	if k == Pickup {
		return "pickup"
	}
	return "delivery"
}
