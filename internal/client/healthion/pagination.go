package healthion

import (
	"net/url"
	"strconv"
)

// MaxLimit is the largest page size the API accepts.
const MaxLimit = 100

func clampLimit(limit int) int {
	return min(limit, MaxLimit)
}

// DateRangeParams selects records between two YYYY-MM-DD dates, inclusive.
type DateRangeParams struct {
	StartDate string
	EndDate   string
	Limit     int
}

func (p *DateRangeParams) values() url.Values {
	if p == nil {
		return nil
	}

	v := make(url.Values)

	if p.StartDate != "" {
		v.Set("start_date", p.StartDate)
	}
	if p.EndDate != "" {
		v.Set("end_date", p.EndDate)
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(clampLimit(p.Limit)))
	}

	return v
}

type WorkoutEventParams struct {
	DateRangeParams
	WorkoutType string
}

func (p *WorkoutEventParams) values() url.Values {
	if p == nil {
		return nil
	}

	v := p.DateRangeParams.values()
	if p.WorkoutType != "" {
		v.Set("workout_type", p.WorkoutType)
	}
	return v
}

// TimeseriesParams bounds are RFC 3339 timestamps.
type TimeseriesParams struct {
	StartTime  string
	EndTime    string
	Types      []SeriesType
	Limit      int
	Resolution Resolution
}

func (p *TimeseriesParams) values() url.Values {
	if p == nil {
		return nil
	}

	v := make(url.Values)

	if p.StartTime != "" {
		v.Set("start_time", p.StartTime)
	}
	if p.EndTime != "" {
		v.Set("end_time", p.EndTime)
	}
	for _, t := range p.Types {
		v.Add("types", string(t))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(clampLimit(p.Limit)))
	}
	if p.Resolution != "" {
		v.Set("resolution", string(p.Resolution))
	}

	return v
}

type ProviderParams struct {
	EnabledOnly *bool
	CloudOnly   *bool
}

func (p *ProviderParams) values() url.Values {
	if p == nil {
		return nil
	}

	v := make(url.Values)

	if p.EnabledOnly != nil {
		v.Set("enabled_only", strconv.FormatBool(*p.EnabledOnly))
	}
	if p.CloudOnly != nil {
		v.Set("cloud_only", strconv.FormatBool(*p.CloudOnly))
	}

	return v
}

type ListParams struct {
	Limit int
}

func (p *ListParams) values() url.Values {
	if p == nil || p.Limit <= 0 {
		return nil
	}
	return url.Values{"limit": {strconv.Itoa(clampLimit(p.Limit))}}
}

// EventsResponse is the envelope shared by event and summary endpoints.
type EventsResponse[T any] struct {
	Data       []T     `json:"data"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor,omitempty"`
}

func (p *EventsResponse[T]) Cursor() string {
	if p == nil || p.NextCursor == nil {
		return ""
	}
	return *p.NextCursor
}
