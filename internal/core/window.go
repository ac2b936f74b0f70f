// Package core implements the scoring pipeline: window filtering, per-user
// aggregation, normalization, score combination, classification, report
// assembly, and alert generation. Every function is pure; callers load the
// data and pass an explicit reference time so runs are deterministic.
package core

import (
	"time"

	"github.com/robalyx/teampulse/internal/database/types"
)

// DayStart returns midnight of the calendar day containing now, in now's
// location. The scoring window runs from this instant to now.
func DayStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// DateKey formats a time as the calendar-date key used for daily summaries.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// IsLateNight reports whether the local hour of t falls in the late-night
// band [0, 5] inclusive.
func IsLateNight(t time.Time) bool {
	h := t.Hour()
	return h >= types.LateNightStartHour && h <= types.LateNightEndHour
}

// FilterWindow returns the events with a timestamp at or after windowStart.
// The result is a fresh slice so an in-flight computation never observes
// appends made to the source after the snapshot was taken.
func FilterWindow(events []*types.MessageEvent, windowStart time.Time) []*types.MessageEvent {
	filtered := make([]*types.MessageEvent, 0, len(events))

	for _, event := range events {
		if !event.Timestamp.Before(windowStart) {
			filtered = append(filtered, event)
		}
	}

	return filtered
}
