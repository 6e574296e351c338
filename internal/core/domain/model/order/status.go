package order

import (
	"fmt"
	"strings"

	"orderdesk/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions are strictly linear:
//
//	Pending ──> InPreparation ──> Ready ──> Delivered
//
// Delivered is terminal. Delivered orders stay in the store but are excluded from every
// active view.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created order.
	Pending

	// InPreparation means the kitchen is working on the order.
	InPreparation

	// Ready means the order waits for the courier or the customer.
	Ready

	// Delivered is the final state.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Pending:       "Pending",
		InPreparation: "InPreparation",
		Ready:         "Ready",
		Delivered:     "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:       "Pending",
		InPreparation: "InPreparation",
		Ready:         "Ready",
		Delivered:     "Delivered",
	}
}

// statusAliases maps names other clients of the store write for the same states.
// "served" is the dine-in terminal state.
var statusAliases = map[string]Status{
	"served": Delivered,
}

// ParseStatus converts a persisted or client-supplied name into a Status.
// Matching ignores case and the separators "_", "-" and " ", so "in_preparation" works.
func ParseStatus(s string) (Status, error) {
	normalized := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	if status, ok := statusAliases[normalized]; ok {
		return status, nil
	}
	for status, name := range getValidStatusStrings() {
		if strings.ToLower(name) == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Unknown (0) and any value outside the lifecycle are invalid. This method is used to
// ensure Status values from external sources (database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Next returns the only legal successor of s.
//
// Returns:
//   - (successor, nil) for Pending, InPreparation and Ready
//   - (0, error) for Delivered and invalid statuses
func (s Status) Next() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is a final status", s.String()),
		)
	}
	return s + 1, nil
}

// ValidateAdvanceTo checks that next is the legal successor of s without performing the
// transition. Skipping a step, going backwards or re-applying the current status are
// rejected.
func (s Status) ValidateAdvanceTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	successor, err := s.Next()
	if err != nil {
		return err
	}

	if next != successor {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to advance to from %s", next.String(), s.String()),
		)
	}

	return nil
}

// AdvanceTo performs the transition validated by ValidateAdvanceTo.
func (s Status) AdvanceTo(next Status) (Status, error) {
	if err := s.ValidateAdvanceTo(next); err != nil {
		return 0, err
	}
	return next, nil
}
