package weekdate

import (
	"slices"
	"time"
)

// DefaultWeek is returned when no week can be derived.
const DefaultWeek = 1

// Resolve picks the selection week for today. Weeks are walked in ascending
// order; the first one that has already started selects the week after it, or
// itself when it is the last. If today precedes every start date the first week
// is returned. Rows whose start date does not parse are skipped.
func Resolve(weeks []WeekDate, today time.Time) int {
	if len(weeks) == 0 {
		return DefaultWeek
	}

	sorted := slices.Clone(weeks)
	slices.SortStableFunc(sorted, func(a, b WeekDate) int {
		return a.Week - b.Week
	})

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	for i, w := range sorted {
		start, err := ParseDate(w.StartDate)
		if err != nil {
			continue
		}
		if start.After(day) {
			continue
		}
		if i+1 < len(sorted) {
			return sorted[i+1].Week
		}
		return w.Week
	}

	return sorted[0].Week
}

// ResolveStored resolves against the stored today value; an unparseable or
// missing date yields DefaultWeek.
func ResolveStored(weeks []WeekDate, today Today, ok bool) int {
	if !ok {
		return DefaultWeek
	}
	day, err := ParseDate(today.Date)
	if err != nil {
		return DefaultWeek
	}
	return Resolve(weeks, day)
}
