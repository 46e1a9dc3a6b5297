package utils

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Validation failures surfaced to the client as 400s. The messages are the
// dashboard-facing contract, so they stay human-readable.
var (
	ErrInvalidDateFormat = errors.New("Invalid date format. Please use YYYY-MM-DD format.")
	ErrStartAfterEnd     = errors.New("Start date cannot be after end date.")
	ErrEndInFuture       = errors.New("End date cannot be in the future.")
)

// DateRange bounds every aggregation query, inclusive on both ends. Start
// and End are local-midnight instants of the requested calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ValidateDateRange parses and normalizes a calendar-date pair. Checks run
// in order: format, inversion, future end. An end date of today is allowed.
func ValidateDateRange(startStr, endStr string) (DateRange, error) {
	start, err := time.ParseInLocation(dateLayout, strings.TrimSpace(startStr), time.Local)
	if err != nil {
		return DateRange{}, ErrInvalidDateFormat
	}
	end, err := time.ParseInLocation(dateLayout, strings.TrimSpace(endStr), time.Local)
	if err != nil {
		return DateRange{}, ErrInvalidDateFormat
	}

	if start.After(end) {
		return DateRange{}, ErrStartAfterEnd
	}
	if end.After(time.Now()) {
		return DateRange{}, ErrEndInFuture
	}

	return DateRange{Start: start, End: end}, nil
}

// ParseLimit parses a top-N limit. Missing, non-numeric or non-positive
// values silently fall back to the default; a bad limit is never a
// validation failure.
func ParseLimit(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
