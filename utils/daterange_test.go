package utils

import (
	"errors"
	"testing"
	"time"
)

func TestValidateDateRangeNormalizesToMidnight(t *testing.T) {
	dr, err := ValidateDateRange("2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("Expected valid range, got %v", err)
	}

	wantStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	wantEnd := time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local)
	if !dr.Start.Equal(wantStart) {
		t.Errorf("Expected start %v, got %v", wantStart, dr.Start)
	}
	if !dr.End.Equal(wantEnd) {
		t.Errorf("Expected end %v, got %v", wantEnd, dr.End)
	}
}

func TestValidateDateRangeRejectsBadFormat(t *testing.T) {
	for _, bad := range []string{"01-01-2024", "2024/01/01", "not-a-date", "", "2024-13-40"} {
		if _, err := ValidateDateRange(bad, "2024-01-31"); !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("start=%q: expected ErrInvalidDateFormat, got %v", bad, err)
		}
		if _, err := ValidateDateRange("2024-01-01", bad); !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("end=%q: expected ErrInvalidDateFormat, got %v", bad, err)
		}
	}
}

func TestValidateDateRangeRejectsInvertedRange(t *testing.T) {
	if _, err := ValidateDateRange("2024-02-01", "2024-01-01"); !errors.Is(err, ErrStartAfterEnd) {
		t.Errorf("Expected ErrStartAfterEnd, got %v", err)
	}
}

func TestValidateDateRangeRejectsFutureEnd(t *testing.T) {
	future := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	if _, err := ValidateDateRange("2024-01-01", future); !errors.Is(err, ErrEndInFuture) {
		t.Errorf("Expected ErrEndInFuture, got %v", err)
	}

	// A future end fails regardless of how the start relates to it.
	farFuture := time.Now().AddDate(0, 0, 10).Format("2006-01-02")
	if _, err := ValidateDateRange(future, farFuture); !errors.Is(err, ErrEndInFuture) {
		t.Errorf("Expected ErrEndInFuture for all-future range, got %v", err)
	}
}

func TestValidateDateRangeAllowsToday(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	if _, err := ValidateDateRange(today, today); err != nil {
		t.Errorf("Expected today to be a valid end date, got %v", err)
	}
}

func TestParseLimit(t *testing.T) {
	if got := ParseLimit("5", 10); got != 5 {
		t.Errorf("Expected 5, got %d", got)
	}
	if got := ParseLimit("", 10); got != 10 {
		t.Errorf("Expected default for empty, got %d", got)
	}
	if got := ParseLimit("abc", 10); got != 10 {
		t.Errorf("Expected default for non-numeric, got %d", got)
	}
	if got := ParseLimit("0", 10); got != 10 {
		t.Errorf("Expected default for zero, got %d", got)
	}
	if got := ParseLimit("-3", 10); got != 10 {
		t.Errorf("Expected default for negative, got %d", got)
	}
}
