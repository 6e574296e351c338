package services

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

const (
	urgentMaxMinutes  = 15
	urgentMinMinutes  = -60
	warningMaxMinutes = 30
)

// legacyTimeMarker matches the requested time embedded in notes by older clients,
// e.g. "Time: 21:30" or "time:9.05".
var legacyTimeMarker = regexp.MustCompile(`(?i)time:\s*(\d{1,2})[:.](\d{2})`)

// RolloverPolicy pushes an early requested time to the next day when "now" is late in the
// evening. It is a heuristic for orders placed shortly before midnight and is not
// date-boundary safe.
type RolloverPolicy struct {
	Name string

	// LateAfterHour is exclusive: hour 22 does not qualify for LateAfterHour 22.
	LateAfterHour int

	// EarlyBeforeHour is exclusive as well.
	EarlyBeforeHour int
}

var (
	// CardRollover is used for the urgency badge of a single order.
	CardRollover = RolloverPolicy{Name: "card", LateAfterHour: 22, EarlyBeforeHour: 3}

	// SortRollover is used when ordering the flat list by urgency. Its thresholds differ
	// from CardRollover and both are kept as they are.
	SortRollover = RolloverPolicy{Name: "sort", LateAfterHour: 20, EarlyBeforeHour: 5}
)

func (p RolloverPolicy) Applies(requested kernel.TimeOfDay, now time.Time) bool {
	return now.Hour() > p.LateAfterHour && requested.Hour() < p.EarlyBeforeHour
}

// UrgencyLevel is the derived, never persisted classification of an order.
type UrgencyLevel int

const (
	Normal UrgencyLevel = iota + 1
	Warning
	Urgent
)

func (l UrgencyLevel) String() string {
	switch l {
	case Urgent:
		return "urgent"
	case Warning:
		return "warning"
	case Normal:
		return "normal"
	default:
		return "none"
	}
}

// Urgency is the result of ClassifyUrgency.
type Urgency struct {
	Level           UrgencyLevel
	MinutesUntilDue int
	Due             time.Time
	Label           string
}

// ResolveRequestedTime returns the structured requested time if present, otherwise the
// first legacy "time:" marker found in the order notes, then in the customer notes.
func ResolveRequestedTime(o *order.Order) (kernel.TimeOfDay, bool) {
	if requested := o.RequestedTime(); requested != nil {
		return *requested, true
	}

	for _, text := range []string{o.Notes(), o.Customer().Notes} {
		if t, ok := ParseLegacyTime(text); ok {
			return t, true
		}
	}

	return kernel.TimeOfDay{}, false
}

// ParseLegacyTime extracts the "time: HH:MM" marker from free text. Out-of-range values
// such as "time: 27:90" are ignored.
func ParseLegacyTime(text string) (kernel.TimeOfDay, bool) {
	match := legacyTimeMarker.FindStringSubmatch(text)
	if match == nil {
		return kernel.TimeOfDay{}, false
	}

	hour, _ := strconv.Atoi(match[1])
	minute, _ := strconv.Atoi(match[2])

	t, err := kernel.NewTimeOfDay(hour, minute)
	if err != nil {
		return kernel.TimeOfDay{}, false
	}
	return t, true
}

// DueInstant places requested on the date of now, or on the next day if policy applies.
func DueInstant(requested kernel.TimeOfDay, now time.Time, policy RolloverPolicy) time.Time {
	due := requested.On(now)
	if policy.Applies(requested, now) {
		due = due.AddDate(0, 0, 1)
	}
	return due
}

// MinutesUntil is the difference rounded up to whole minutes; negative when overdue.
func MinutesUntil(due, now time.Time) int {
	return int(math.Ceil(due.Sub(now).Minutes()))
}

// MinutesUntilDue resolves the requested time of o and measures it against now.
func MinutesUntilDue(o *order.Order, now time.Time, policy RolloverPolicy) (int, bool) {
	requested, ok := ResolveRequestedTime(o)
	if !ok {
		return 0, false
	}
	return MinutesUntil(DueInstant(requested, now, policy), now), true
}

// ClassifyLevel applies the fixed thresholds: Urgent within (-60, 15], Warning up to 30,
// Normal otherwise. Orders overdue by an hour or more fall back to Warning.
func ClassifyLevel(minutes int) UrgencyLevel {
	switch {
	case minutes <= urgentMaxMinutes && minutes > urgentMinMinutes:
		return Urgent
	case minutes <= warningMaxMinutes:
		return Warning
	default:
		return Normal
	}
}

// ClassifyUrgency returns nil when no requested time can be resolved for o.
func ClassifyUrgency(o *order.Order, now time.Time) *Urgency {
	requested, ok := ResolveRequestedTime(o)
	if !ok {
		return nil
	}

	due := DueInstant(requested, now, CardRollover)
	minutes := MinutesUntil(due, now)

	return &Urgency{
		Level:           ClassifyLevel(minutes),
		MinutesUntilDue: minutes,
		Due:             due,
		Label:           urgencyLabel(minutes),
	}
}

func urgencyLabel(minutes int) string {
	switch {
	case minutes > 0:
		return fmt.Sprintf("in %d min", minutes)
	case minutes == 0:
		return "now"
	default:
		return fmt.Sprintf("late by %d min", -minutes)
	}
}
