package resource

import (
	"slices"

	"github.com/garrettladley/healthion/internal/client/healthion"
)

// Query holds the filters a fetch is made with. Zero fields are unset.
// Start and End are already formatted for the resource: RFC 3339 timestamps
// for timeseries, YYYY-MM-DD dates for events and summaries.
type Query struct {
	Start       string
	End         string
	Limit       int
	Types       []healthion.SeriesType
	Resolution  healthion.Resolution
	WorkoutType string
	EnabledOnly *bool
	CloudOnly   *bool
}

// MergeQuery resolves each field to the first layer that sets it. Callers
// pass layers highest priority first: explicit override, captured options,
// defaults.
func MergeQuery(layers ...Query) Query {
	var q Query
	for _, l := range layers {
		q.Start = firstSet(q.Start, l.Start)
		q.End = firstSet(q.End, l.End)
		q.Limit = firstSet(q.Limit, l.Limit)
		q.Resolution = firstSet(q.Resolution, l.Resolution)
		q.WorkoutType = firstSet(q.WorkoutType, l.WorkoutType)
		if q.Types == nil && len(l.Types) > 0 {
			q.Types = slices.Clone(l.Types)
		}
		if q.EnabledOnly == nil && l.EnabledOnly != nil {
			q.EnabledOnly = l.EnabledOnly
		}
		if q.CloudOnly == nil && l.CloudOnly != nil {
			q.CloudOnly = l.CloudOnly
		}
	}
	return q
}

func firstSet[T comparable](have, next T) T {
	var zero T
	if have != zero {
		return have
	}
	return next
}

func (q Query) dateRange() healthion.DateRangeParams {
	return healthion.DateRangeParams{
		StartDate: q.Start,
		EndDate:   q.End,
		Limit:     q.Limit,
	}
}

func (q Query) timeseries() *healthion.TimeseriesParams {
	return &healthion.TimeseriesParams{
		StartTime:  q.Start,
		EndTime:    q.End,
		Types:      q.Types,
		Limit:      q.Limit,
		Resolution: q.Resolution,
	}
}
