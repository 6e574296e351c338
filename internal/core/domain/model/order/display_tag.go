package order

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

// ErrDisplayTagIsNotConstructed is returned when validating a zero-value DisplayTag.
var ErrDisplayTagIsNotConstructed error = errs.NewValueIsRequiredError("display tag")

// DisplayTag is the composite classification key "{DEL|ASP}_{PLATFORM}_{reference}".
// It is derived once at creation and then only read: to bucket the order by platform and
// to show a short order number. Dine-in rows restored from the shared store carry their
// table number here instead.
type DisplayTag struct {
	value string
}

// NewDisplayTag synthesizes the tag of a new order. An empty reference falls back to the
// wall-clock time of now as "HHMM"; collisions are tolerated.
func NewDisplayTag(platform Platform, reference string, now time.Time) (DisplayTag, error) {
	if err := platform.Validate(); err != nil {
		return DisplayTag{}, err
	}

	reference = strings.TrimSpace(reference)
	if reference == "" {
		reference = kernel.TimeOfDayOf(now).Compact()
	}

	return DisplayTag{
		value: fmt.Sprintf("%s_%s_%s", platform.FulfillmentKind().Prefix(), platform.Token(), reference),
	}, nil
}

// DisplayTagFromString restores a stored tag of any shape.
func DisplayTagFromString(s string) (DisplayTag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DisplayTag{}, ErrDisplayTagIsNotConstructed
	}
	return DisplayTag{value: s}, nil
}

func (t DisplayTag) Validate() error {
	if t.value == "" {
		return ErrDisplayTagIsNotConstructed
	}
	return nil
}

func (t DisplayTag) String() string {
	return t.value
}

// Kind returns the fulfillment kind encoded in the prefix, if any.
func (t DisplayTag) Kind() (FulfillmentKind, bool) {
	upper := strings.ToUpper(t.value)
	switch {
	case strings.HasPrefix(upper, Delivery.Prefix()+"_"):
		return Delivery, true
	case strings.HasPrefix(upper, Pickup.Prefix()+"_"):
		return Pickup, true
	default:
		return 0, false
	}
}

// HasKindPrefix reports whether the tag starts with DEL_ or ASP_.
func (t DisplayTag) HasKindPrefix() bool {
	_, ok := t.Kind()
	return ok
}

// IsNumeric reports whether the tag is a plain number, i.e. a dine-in table.
func (t DisplayTag) IsNumeric() bool {
	if t.value == "" {
		return false
	}
	for _, r := range t.value {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Platform derives the platform from the tag. See DerivePlatform.
func (t DisplayTag) Platform() (Platform, bool) {
	return DerivePlatform(t.value)
}

// ShortNumber is the reference part shown to staff, e.g. "1234" for "DEL_GLOVO_1234".
// Tags without a recognizable platform are returned whole.
func (t DisplayTag) ShortNumber() string {
	rest := t.withoutKindPrefix()
	upper := strings.ToUpper(rest)
	for _, p := range Platforms() {
		for _, form := range p.tokenForms() {
			if strings.HasPrefix(upper, form+"_") {
				return rest[len(form)+1:]
			}
		}
	}
	return t.value
}

func (t DisplayTag) withoutKindPrefix() string {
	if t.HasKindPrefix() {
		return t.value[len(Delivery.Prefix())+1:]
	}
	return t.value
}

// DerivePlatform finds the platform token in a stored tag. After an optional DEL_/ASP_
// prefix the tag must start with exactly one platform token, spelled either with
// underscores (JUST_EAT) or with the legacy hyphen (JUST-EAT), followed by "_" or the end
// of the tag. Each tag therefore maps to at most one platform.
func DerivePlatform(tag string) (Platform, bool) {
	rest := strings.ToUpper(DisplayTag{value: strings.TrimSpace(tag)}.withoutKindPrefix())
	if rest == "" {
		return UnknownPlatform, false
	}

	for _, p := range Platforms() {
		for _, form := range p.tokenForms() {
			if rest == form || strings.HasPrefix(rest, form+"_") {
				return p, true
			}
		}
	}

	return UnknownPlatform, false
}
