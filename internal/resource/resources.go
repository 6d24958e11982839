package resource

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/garrettladley/healthion/internal/client/healthion"
)

const (
	NameTimeseries        = "timeseries"
	NameWorkouts          = "workouts"
	NameWorkoutHistory    = "workout_history"
	NameWorkoutDetail     = "workout_detail"
	NameSleepSessions     = "sleep_sessions"
	NameActivitySummaries = "activity_summaries"
	NameSleepSummaries    = "sleep_summaries"
	NameRecoverySummaries = "recovery_summaries"
	NameBodySummaries     = "body_summaries"
	NameProviders         = "providers"
	NameConnections       = "connections"
	NameSeriesTypes       = "series_types"
)

// Page is a hook over a cursor-paginated event or summary endpoint.
type Page[T any] struct {
	*Hook[*healthion.EventsResponse[T]]
}

func (p *Page[T]) Items() []T {
	if resp := p.State().Data; resp != nil {
		return resp.Data
	}
	return nil
}

func (p *Page[T]) HasMore() bool {
	resp := p.State().Data
	return resp != nil && resp.HasMore
}

func (p *Page[T]) Cursor() string {
	return p.State().Data.Cursor()
}

func newPage[T any](name string, msg string, fetch func(context.Context, *healthion.DateRangeParams) (*healthion.EventsResponse[T], error), credentials oauth2.TokenSource, opts []Option) *Page[T] {
	return &Page[T]{New(Spec[*healthion.EventsResponse[T]]{
		Name:           name,
		Window:         WindowDates,
		FailureMessage: msg,
		Fetch: func(ctx context.Context, q Query) (*healthion.EventsResponse[T], error) {
			params := q.dateRange()
			return fetch(ctx, &params)
		},
	}, credentials, opts...)}
}

type Timeseries struct {
	*Hook[*healthion.TimeseriesResponse]
}

func NewTimeseries(svc healthion.TimeseriesService, credentials oauth2.TokenSource, opts ...Option) *Timeseries {
	return &Timeseries{New(Spec[*healthion.TimeseriesResponse]{
		Name:           NameTimeseries,
		Window:         WindowTimestamps,
		FailureMessage: MsgTimeseries,
		Fetch: func(ctx context.Context, q Query) (*healthion.TimeseriesResponse, error) {
			return svc.List(ctx, q.timeseries())
		},
	}, credentials, opts...)}
}

func (t *Timeseries) Points() []healthion.DataPoint {
	if resp := t.State().Data; resp != nil {
		return resp.Data
	}
	return nil
}

func (t *Timeseries) Count() int {
	if resp := t.State().Data; resp != nil {
		return resp.Count
	}
	return 0
}

func NewWorkouts(svc healthion.WorkoutService, credentials oauth2.TokenSource, opts ...Option) *Page[healthion.EventWorkout] {
	return &Page[healthion.EventWorkout]{New(Spec[*healthion.EventsResponse[healthion.EventWorkout]]{
		Name:           NameWorkouts,
		Window:         WindowDates,
		FailureMessage: MsgWorkouts,
		Fetch: func(ctx context.Context, q Query) (*healthion.EventsResponse[healthion.EventWorkout], error) {
			return svc.Events(ctx, &healthion.WorkoutEventParams{
				DateRangeParams: q.dateRange(),
				WorkoutType:     q.WorkoutType,
			})
		},
	}, credentials, opts...)}
}

func NewSleepSessions(svc healthion.SleepService, credentials oauth2.TokenSource, opts ...Option) *Page[healthion.SleepSession] {
	return newPage(NameSleepSessions, MsgSleepSessions, svc.Sessions, credentials, opts)
}

func NewActivitySummaries(svc healthion.SummaryService, credentials oauth2.TokenSource, opts ...Option) *Page[healthion.ActivitySummary] {
	return newPage(NameActivitySummaries, MsgActivitySummaries, svc.Activity, credentials, opts)
}

func NewSleepSummaries(svc healthion.SummaryService, credentials oauth2.TokenSource, opts ...Option) *Page[healthion.SleepSummary] {
	return newPage(NameSleepSummaries, MsgSleepSummaries, svc.Sleep, credentials, opts)
}

func NewRecoverySummaries(svc healthion.SummaryService, credentials oauth2.TokenSource, opts ...Option) *Page[healthion.RecoverySummary] {
	return newPage(NameRecoverySummaries, MsgRecoverySummaries, svc.Recovery, credentials, opts)
}

func NewBodySummaries(svc healthion.SummaryService, credentials oauth2.TokenSource, opts ...Option) *Page[healthion.BodySummary] {
	return newPage(NameBodySummaries, MsgBodySummaries, svc.Body, credentials, opts)
}

type WorkoutHistory struct {
	*Hook[*healthion.WorkoutsResponse]
}

func NewWorkoutHistory(svc healthion.WorkoutService, credentials oauth2.TokenSource, opts ...Option) *WorkoutHistory {
	return &WorkoutHistory{New(Spec[*healthion.WorkoutsResponse]{
		Name:           NameWorkoutHistory,
		Window:         WindowNone,
		FailureMessage: MsgWorkoutHistory,
		Fetch: func(ctx context.Context, q Query) (*healthion.WorkoutsResponse, error) {
			return svc.List(ctx, &healthion.ListParams{Limit: q.Limit})
		},
	}, credentials, opts...)}
}

func (w *WorkoutHistory) Workouts() []healthion.Workout {
	if resp := w.State().Data; resp != nil {
		return resp.Workouts
	}
	return nil
}

func (w *WorkoutHistory) Total() int {
	if resp := w.State().Data; resp != nil {
		return resp.Total
	}
	return 0
}

type WorkoutDetail struct {
	*Hook[*healthion.WorkoutDetail]
}

// NewWorkoutDetail binds the hook to one workout.
func NewWorkoutDetail(svc healthion.WorkoutService, provider string, workoutID string, credentials oauth2.TokenSource, opts ...Option) *WorkoutDetail {
	return &WorkoutDetail{New(Spec[*healthion.WorkoutDetail]{
		Name:           NameWorkoutDetail,
		Window:         WindowNone,
		FailureMessage: MsgWorkoutDetail,
		Fetch: func(ctx context.Context, _ Query) (*healthion.WorkoutDetail, error) {
			return svc.Get(ctx, provider, workoutID)
		},
	}, credentials, opts...)}
}

type Providers struct {
	*Hook[*healthion.ProvidersResponse]
}

func NewProviders(svc healthion.ProviderService, credentials oauth2.TokenSource, opts ...Option) *Providers {
	return &Providers{New(Spec[*healthion.ProvidersResponse]{
		Name:           NameProviders,
		Window:         WindowNone,
		FailureMessage: MsgProviders,
		Fetch: func(ctx context.Context, q Query) (*healthion.ProvidersResponse, error) {
			return svc.List(ctx, &healthion.ProviderParams{
				EnabledOnly: q.EnabledOnly,
				CloudOnly:   q.CloudOnly,
			})
		},
	}, credentials, opts...)}
}

func (p *Providers) Providers() []healthion.Provider {
	if resp := p.State().Data; resp != nil {
		return resp.Providers
	}
	return nil
}

type Connections struct {
	*Hook[*healthion.ConnectionsResponse]
}

func NewConnections(svc healthion.ConnectionService, credentials oauth2.TokenSource, opts ...Option) *Connections {
	return &Connections{New(Spec[*healthion.ConnectionsResponse]{
		Name:           NameConnections,
		Window:         WindowNone,
		FailureMessage: MsgConnections,
		Fetch: func(ctx context.Context, _ Query) (*healthion.ConnectionsResponse, error) {
			return svc.List(ctx)
		},
	}, credentials, opts...)}
}

func (c *Connections) Connections() []healthion.Connection {
	if resp := c.State().Data; resp != nil {
		return resp.Connections
	}
	return nil
}

// Active returns the connections that are currently syncing.
func (c *Connections) Active() []healthion.Connection {
	var active []healthion.Connection
	for _, conn := range c.Connections() {
		if conn.IsActive {
			active = append(active, conn)
		}
	}
	return active
}

type SeriesTypes struct {
	*Hook[*healthion.SeriesTypesResponse]
}

func NewSeriesTypes(svc healthion.TimeseriesService, credentials oauth2.TokenSource, opts ...Option) *SeriesTypes {
	return &SeriesTypes{New(Spec[*healthion.SeriesTypesResponse]{
		Name:           NameSeriesTypes,
		Window:         WindowNone,
		FailureMessage: MsgSeriesTypes,
		Fetch: func(ctx context.Context, _ Query) (*healthion.SeriesTypesResponse, error) {
			return svc.Types(ctx)
		},
	}, credentials, opts...)}
}

func (s *SeriesTypes) Types() []healthion.SeriesTypeInfo {
	if resp := s.State().Data; resp != nil {
		return resp.Types
	}
	return nil
}

// ByCategory groups the catalog by category; uncategorized types use "other".
func (s *SeriesTypes) ByCategory() map[string][]healthion.SeriesTypeInfo {
	const other = "other"

	out := make(map[string][]healthion.SeriesTypeInfo)
	for _, t := range s.Types() {
		category := other
		if t.Category != nil && *t.Category != "" {
			category = *t.Category
		}
		out[category] = append(out[category], t)
	}
	return out
}
