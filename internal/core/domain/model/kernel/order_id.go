package kernel

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"

	"orderdesk/internal/pkg/errs"
)

const (
	// OrderIDNamespace prefixes every generated order id.
	OrderIDNamespace = "order"

	orderIDSuffixLength = 9
)

// ErrOrderIDIsNotConstructed is returned when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError("OrderID must be created via NewOrderID, OrderIDFromString or RestoreOrderID")

var orderIDPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*_[0-9]+_[0-9a-z]+$`)

// OrderID is the primary key of an order in the store:
// "{namespace}_{epochMillis}_{randomSuffix}" where the suffix is a short base-36 token.
// It is never derived from the display tag.
type OrderID struct {
	value string
}

// NewOrderID generates an id stamped with now.
func NewOrderID(now time.Time) OrderID {
	return OrderID{
		value: fmt.Sprintf("%s_%d_%s", OrderIDNamespace, now.UnixMilli(), randomBase36(orderIDSuffixLength)),
	}
}

// OrderIDFromString parses an id previously produced by NewOrderID (any namespace).
func OrderIDFromString(s string) (OrderID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return OrderID{}, ErrOrderIDIsNotConstructed
	}
	if !orderIDPattern.MatchString(s) {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%q is not a valid order id", s))
	}
	return OrderID{value: s}, nil
}

// RestoreOrderID accepts any non-empty stored key. Rows written by other clients of the
// orders table do not follow the NewOrderID layout.
func RestoreOrderID(s string) (OrderID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return OrderID{}, ErrOrderIDIsNotConstructed
	}
	return OrderID{value: s}, nil
}

func (id OrderID) String() string {
	return id.value
}

func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

func randomBase36(n int) string {
	var b strings.Builder
	b.Grow(n)
	for b.Len() < n {
		b.WriteString(strconv.FormatUint(rand.Uint64(), 36))
	}
	return b.String()[:n]
}
