package resource

import "time"

type WindowKind uint8

const (
	// WindowNone resources take no time bounds.
	WindowNone WindowKind = iota
	// WindowTimestamps resources take absolute RFC 3339 bounds.
	WindowTimestamps
	// WindowDates resources take calendar dates.
	WindowDates
)

const (
	TimeseriesLookback = 7 * 24 * time.Hour
	DateLookbackDays   = 30
)

// TimeseriesWindow is the trailing seven days ending at now.
func TimeseriesWindow(now time.Time) (start string, end string) {
	now = now.UTC()
	return now.Add(-TimeseriesLookback).Format(time.RFC3339), now.Format(time.RFC3339)
}

// DateWindow is the trailing thirty calendar days ending today, in now's
// location.
func DateWindow(now time.Time) (start string, end string) {
	return now.AddDate(0, 0, -DateLookbackDays).Format(time.DateOnly), now.Format(time.DateOnly)
}

// DefaultQuery computes the default bounds for kind at now. It is evaluated
// on every fetch, never cached.
func DefaultQuery(kind WindowKind, now time.Time) Query {
	var q Query
	switch kind {
	case WindowTimestamps:
		q.Start, q.End = TimeseriesWindow(now)
	case WindowDates:
		q.Start, q.End = DateWindow(now)
	}
	return q
}
