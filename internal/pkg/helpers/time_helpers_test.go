package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("15m", time.Hour); got != 15*time.Minute {
		t.Errorf("ParseDuration(15m) = %v", got)
	}
	if got := ParseDuration("garbage", time.Hour); got != time.Hour {
		t.Errorf("ParseDuration(garbage) = %v, want fallback", got)
	}
}

func TestSameCalendarDay(t *testing.T) {
	morning := time.Date(2026, 3, 9, 0, 0, 1, 0, time.UTC)
	night := time.Date(2026, 3, 9, 23, 59, 59, 0, time.UTC)
	nextDay := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	if !SameCalendarDay(morning, night) {
		t.Error("same day reported as different")
	}
	if SameCalendarDay(night, nextDay) {
		t.Error("midnight boundary reported as same day")
	}
}
