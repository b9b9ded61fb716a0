package weather

import (
	"errors"
	"time"

	"pesisir-api/internal/domain/model/external"
)

// ErrNoUsableSlot is returned when no forecast entry carries a parseable timestamp.
var ErrNoUsableSlot = errors.New("no forecast slot with a parseable timestamp")

// timestampLayouts lists the formats the feed has been seen using.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"200601021504",
}

// SelectNearest picks the forecast slot whose timestamp is closest to ref.
// Entries whose timestamp cannot be parsed are skipped; on equal distance the
// earlier entry in the list wins.
func SelectNearest(entries []external.RawForecastEntry, ref time.Time) (*external.RawForecastEntry, error) {
	var closest *external.RawForecastEntry
	var minDiff time.Duration

	for i := range entries {
		slotTime, ok := parseSlotTime(&entries[i])
		if !ok {
			continue
		}

		diff := ref.Sub(slotTime)
		if diff < 0 {
			diff = -diff
		}

		if closest == nil || diff < minDiff {
			closest = &entries[i]
			minDiff = diff
		}
	}

	if closest == nil {
		return nil, ErrNoUsableSlot
	}
	return closest, nil
}

// parseSlotTime tries the known layouts against the entry's timestamps,
// preferring the UTC datetime over the local one.
func parseSlotTime(entry *external.RawForecastEntry) (time.Time, bool) {
	for _, raw := range []string{entry.Datetime, entry.LocalDatetime} {
		if raw == "" {
			continue
		}
		for _, layout := range timestampLayouts {
			if parsed, err := time.Parse(layout, raw); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}
