package weekdate

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are tried in order. Day-first slash and dash forms come from
// spreadsheet display values and ISO forms from typed date cells.
var dateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate reads a stored date and truncates it to a UTC calendar day.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", raw)
}
