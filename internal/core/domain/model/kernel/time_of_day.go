package kernel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"orderdesk/internal/pkg/errs"
)

// TimeOfDay is a wall-clock hour and minute with no date attached. Requested delivery
// times are expressed this way; the due instant is built against the current date.
type TimeOfDay struct {
	hour   int
	minute int
}

// NewTimeOfDay validates hour in [0, 23] and minute in [0, 59].
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

// ParseTimeOfDay accepts "H:MM", "HH:MM" and "HH.MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	sep := strings.IndexAny(s, ":.")
	if sep <= 0 || sep > 2 || len(s)-sep-1 != 2 {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("time of day", fmt.Errorf("%q is not HH:MM", s))
	}
	hour, err := strconv.Atoi(s[:sep])
	if err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("time of day", err)
	}
	minute, err := strconv.Atoi(s[sep+1:])
	if err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("time of day", err)
	}
	return NewTimeOfDay(hour, minute)
}

// TimeOfDayOf returns the wall-clock time of t in t's location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{hour: t.Hour(), minute: t.Minute()}
}

func (t TimeOfDay) Hour() int {
	return t.hour
}

func (t TimeOfDay) Minute() int {
	return t.minute
}

// On returns the instant at this time of day on the date of day, in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.hour, t.minute, 0, 0, day.Location())
}

// String formats as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// Compact formats as "HHMM", the colon stripped.
func (t TimeOfDay) Compact() string {
	return fmt.Sprintf("%02d%02d", t.hour, t.minute)
}

func (t TimeOfDay) IsEqual(other TimeOfDay) bool {
	return t == other
}
