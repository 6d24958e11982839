package resource

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/healthion/internal/client/healthion"
	"github.com/garrettladley/healthion/internal/xslog"
)

type fakeTimeseries struct {
	params *healthion.TimeseriesParams
	types  *healthion.SeriesTypesResponse
}

func (f *fakeTimeseries) List(_ context.Context, params *healthion.TimeseriesParams) (*healthion.TimeseriesResponse, error) {
	f.params = params
	return &healthion.TimeseriesResponse{
		Data:  []healthion.DataPoint{{Type: healthion.SeriesTypeHeartRate, Value: 61, Unit: "bpm"}},
		Count: 1,
	}, nil
}

func (f *fakeTimeseries) Types(context.Context) (*healthion.SeriesTypesResponse, error) {
	return f.types, nil
}

type fakeWorkouts struct {
	events    *healthion.WorkoutEventParams
	list      *healthion.ListParams
	provider  string
	workoutID string
}

func (f *fakeWorkouts) List(_ context.Context, params *healthion.ListParams) (*healthion.WorkoutsResponse, error) {
	f.list = params
	return &healthion.WorkoutsResponse{Workouts: []healthion.Workout{{}, {}}, Total: 40}, nil
}

func (f *fakeWorkouts) Events(_ context.Context, params *healthion.WorkoutEventParams) (*healthion.EventsResponse[healthion.EventWorkout], error) {
	f.events = params
	cursor := "next-page"
	return &healthion.EventsResponse[healthion.EventWorkout]{
		Data:       []healthion.EventWorkout{{Type: "running"}},
		HasMore:    true,
		NextCursor: &cursor,
	}, nil
}

func (f *fakeWorkouts) Get(_ context.Context, provider string, id string) (*healthion.WorkoutDetail, error) {
	f.provider, f.workoutID = provider, id
	return &healthion.WorkoutDetail{EventWorkout: healthion.EventWorkout{Type: "cycling"}}, nil
}

type fakeSummaries struct {
	params *healthion.DateRangeParams
	err    error
}

func (f *fakeSummaries) Activity(_ context.Context, params *healthion.DateRangeParams) (*healthion.EventsResponse[healthion.ActivitySummary], error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return &healthion.EventsResponse[healthion.ActivitySummary]{
		Data: []healthion.ActivitySummary{{Date: "2025-03-14"}, {Date: "2025-03-15"}},
	}, nil
}

func (f *fakeSummaries) Sleep(_ context.Context, params *healthion.DateRangeParams) (*healthion.EventsResponse[healthion.SleepSummary], error) {
	f.params = params
	return &healthion.EventsResponse[healthion.SleepSummary]{}, f.err
}

func (f *fakeSummaries) Recovery(_ context.Context, params *healthion.DateRangeParams) (*healthion.EventsResponse[healthion.RecoverySummary], error) {
	f.params = params
	return &healthion.EventsResponse[healthion.RecoverySummary]{}, f.err
}

func (f *fakeSummaries) Body(_ context.Context, params *healthion.DateRangeParams) (*healthion.EventsResponse[healthion.BodySummary], error) {
	f.params = params
	return &healthion.EventsResponse[healthion.BodySummary]{}, f.err
}

type fakeSleep struct {
	params *healthion.DateRangeParams
}

func (f *fakeSleep) Sessions(_ context.Context, params *healthion.DateRangeParams) (*healthion.EventsResponse[healthion.SleepSession], error) {
	f.params = params
	return &healthion.EventsResponse[healthion.SleepSession]{
		Data: []healthion.SleepSession{{DurationSeconds: 27000}},
	}, nil
}

type fakeProviders struct {
	params      *healthion.ProviderParams
	provider    string
	redirectURI string
	err         error
}

func (f *fakeProviders) List(_ context.Context, params *healthion.ProviderParams) (*healthion.ProvidersResponse, error) {
	f.params = params
	return &healthion.ProvidersResponse{Providers: []healthion.Provider{{Name: "garmin"}}}, nil
}

func (f *fakeProviders) Authorize(_ context.Context, provider string, redirectURI string) (*healthion.AuthorizationResponse, error) {
	f.provider, f.redirectURI = provider, redirectURI
	if f.err != nil {
		return nil, f.err
	}
	return &healthion.AuthorizationResponse{
		AuthorizationURL: "https://connect.example.com/authorize",
		Provider:         provider,
	}, nil
}

type fakeConnections struct {
	sync *healthion.SyncRequest
	err  error
}

func (f *fakeConnections) List(context.Context) (*healthion.ConnectionsResponse, error) {
	return &healthion.ConnectionsResponse{Connections: []healthion.Connection{
		{Provider: "garmin", IsActive: true},
		{Provider: "polar"},
		{Provider: "suunto", IsActive: true},
	}}, nil
}

func (f *fakeConnections) Sync(_ context.Context, req healthion.SyncRequest) (*healthion.SyncResponse, error) {
	f.sync = &req
	if f.err != nil {
		return nil, f.err
	}
	return &healthion.SyncResponse{Status: "success", SyncedCount: 12}, nil
}

func (f *fakeConnections) Register(context.Context) (*healthion.RegisterResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &healthion.RegisterResponse{AlreadyRegistered: true}, nil
}

func testOptions(opts ...Option) []Option {
	return append([]Option{WithLogger(xslog.Discard()), WithClock(fixedClock())}, opts...)
}

func TestTimeseries(t *testing.T) {
	t.Parallel()

	svc := &fakeTimeseries{}
	ts := NewTimeseries(svc, staticCredentials(), testOptions(WithQuery(Query{
		Types:      []healthion.SeriesType{healthion.SeriesTypeHeartRate},
		Resolution: healthion.Resolution5Min,
	}))...)

	if !ts.Activate(t.Context(), signedIn) {
		t.Fatal("Activate() = false, want true")
	}

	want := &healthion.TimeseriesParams{
		StartTime:  "2025-03-08T10:30:00Z",
		EndTime:    "2025-03-15T10:30:00Z",
		Types:      []healthion.SeriesType{healthion.SeriesTypeHeartRate},
		Resolution: healthion.Resolution5Min,
	}
	if diff := cmp.Diff(want, svc.params); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
	if got := ts.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
	if got := len(ts.Points()); got != 1 {
		t.Errorf("len(Points()) = %d, want 1", got)
	}
}

func TestWorkouts(t *testing.T) {
	t.Parallel()

	svc := &fakeWorkouts{}
	page := NewWorkouts(svc, staticCredentials(), testOptions(WithQuery(Query{WorkoutType: "running", Limit: 50}))...)

	if page.Items() != nil || page.HasMore() || page.Cursor() != "" {
		t.Error("empty page reports data before fetch")
	}

	page.Refresh(t.Context(), Query{Start: "2025-03-01"})

	want := &healthion.WorkoutEventParams{
		DateRangeParams: healthion.DateRangeParams{StartDate: "2025-03-01", EndDate: "2025-03-15", Limit: 50},
		WorkoutType:     "running",
	}
	if diff := cmp.Diff(want, svc.events); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
	if got := len(page.Items()); got != 1 {
		t.Errorf("len(Items()) = %d, want 1", got)
	}
	if !page.HasMore() {
		t.Error("HasMore() = false, want true")
	}
	if got := page.Cursor(); got != "next-page" {
		t.Errorf("Cursor() = %q, want %q", got, "next-page")
	}
}

func TestDateRangePages(t *testing.T) {
	t.Parallel()

	wantParams := &healthion.DateRangeParams{StartDate: "2025-02-13", EndDate: "2025-03-15"}

	tests := []struct {
		name    string
		refresh func(t *testing.T, svc *fakeSummaries) State[string]
	}{
		{
			name: "activity",
			refresh: func(t *testing.T, svc *fakeSummaries) State[string] {
				s := NewActivitySummaries(svc, staticCredentials(), testOptions()...).Refresh(t.Context(), Query{})
				return State[string]{Loading: s.Loading, Error: s.Error}
			},
		},
		{
			name: "sleep",
			refresh: func(t *testing.T, svc *fakeSummaries) State[string] {
				s := NewSleepSummaries(svc, staticCredentials(), testOptions()...).Refresh(t.Context(), Query{})
				return State[string]{Loading: s.Loading, Error: s.Error}
			},
		},
		{
			name: "recovery",
			refresh: func(t *testing.T, svc *fakeSummaries) State[string] {
				s := NewRecoverySummaries(svc, staticCredentials(), testOptions()...).Refresh(t.Context(), Query{})
				return State[string]{Loading: s.Loading, Error: s.Error}
			},
		},
		{
			name: "body",
			refresh: func(t *testing.T, svc *fakeSummaries) State[string] {
				s := NewBodySummaries(svc, staticCredentials(), testOptions()...).Refresh(t.Context(), Query{})
				return State[string]{Loading: s.Loading, Error: s.Error}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &fakeSummaries{}
			got := tt.refresh(t, svc)
			if got.Loading || got.Error != "" {
				t.Errorf("state = %+v, want loaded without error", got)
			}
			if diff := cmp.Diff(wantParams, svc.params); diff != "" {
				t.Errorf("params mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestActivitySummariesFailure(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	page := NewActivitySummaries(&fakeSummaries{err: errBoom}, staticCredentials(), testOptions()...)

	state := page.Refresh(t.Context(), Query{})
	if state.Error != MsgActivitySummaries {
		t.Errorf("Error = %q, want %q", state.Error, MsgActivitySummaries)
	}
	if !errors.Is(state.Err, errBoom) {
		t.Errorf("Err = %v, want %v", state.Err, errBoom)
	}
	if page.Items() != nil {
		t.Errorf("Items() = %v, want nil", page.Items())
	}
}

func TestSleepSessions(t *testing.T) {
	t.Parallel()

	svc := &fakeSleep{}
	page := NewSleepSessions(svc, staticCredentials(), testOptions()...)
	page.Refresh(t.Context(), Query{Limit: 7})

	if svc.params == nil || svc.params.Limit != 7 {
		t.Errorf("params = %+v, want limit 7", svc.params)
	}
	if got := len(page.Items()); got != 1 {
		t.Errorf("len(Items()) = %d, want 1", got)
	}
}

func TestWorkoutHistory(t *testing.T) {
	t.Parallel()

	svc := &fakeWorkouts{}
	history := NewWorkoutHistory(svc, staticCredentials(), testOptions(WithQuery(Query{Limit: 25}))...)
	history.Refresh(t.Context(), Query{})

	if diff := cmp.Diff(&healthion.ListParams{Limit: 25}, svc.list); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
	if got := history.Total(); got != 40 {
		t.Errorf("Total() = %d, want 40", got)
	}
	if got := len(history.Workouts()); got != 2 {
		t.Errorf("len(Workouts()) = %d, want 2", got)
	}
}

func TestWorkoutDetail(t *testing.T) {
	t.Parallel()

	svc := &fakeWorkouts{}
	detail := NewWorkoutDetail(svc, "garmin", "w-123", staticCredentials(), testOptions()...)
	state := detail.Refresh(t.Context(), Query{})

	if svc.provider != "garmin" || svc.workoutID != "w-123" {
		t.Errorf("Get(%q, %q), want Get(%q, %q)", svc.provider, svc.workoutID, "garmin", "w-123")
	}
	if state.Data == nil || state.Data.Type != "cycling" {
		t.Errorf("Data = %+v, want cycling workout", state.Data)
	}
}

func TestProviders(t *testing.T) {
	t.Parallel()

	svc := &fakeProviders{}
	providers := NewProviders(svc, staticCredentials(), testOptions(WithQuery(Query{EnabledOnly: ptr(true)}))...)
	providers.Refresh(t.Context(), Query{CloudOnly: ptr(false)})

	want := &healthion.ProviderParams{EnabledOnly: ptr(true), CloudOnly: ptr(false)}
	if diff := cmp.Diff(want, svc.params); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
	if got := len(providers.Providers()); got != 1 {
		t.Errorf("len(Providers()) = %d, want 1", got)
	}
}

func TestConnectionsActive(t *testing.T) {
	t.Parallel()

	conns := NewConnections(&fakeConnections{}, staticCredentials(), testOptions()...)
	if conns.Active() != nil {
		t.Error("Active() before fetch is not empty")
	}

	conns.Refresh(t.Context(), Query{})

	var got []string
	for _, c := range conns.Active() {
		got = append(got, c.Provider)
	}
	if diff := cmp.Diff([]string{"garmin", "suunto"}, got); diff != "" {
		t.Errorf("Active() mismatch (-want +got):\n%s", diff)
	}
	if n := len(conns.Connections()); n != 3 {
		t.Errorf("len(Connections()) = %d, want 3", n)
	}
}

func TestSeriesTypesByCategory(t *testing.T) {
	t.Parallel()

	svc := &fakeTimeseries{types: &healthion.SeriesTypesResponse{
		Types: []healthion.SeriesTypeInfo{
			{Name: healthion.SeriesTypeHeartRate, Category: ptr("heart")},
			{Name: healthion.SeriesTypeRestingHeartRate, Category: ptr("heart")},
			{Name: healthion.SeriesTypeSteps, Category: ptr("activity")},
			{Name: healthion.SeriesTypeVO2Max},
			{Name: healthion.SeriesTypeWeight, Category: ptr("")},
		},
		Total: 5,
	}}
	types := NewSeriesTypes(svc, staticCredentials(), testOptions()...)
	types.Refresh(t.Context(), Query{})

	got := make(map[string][]healthion.SeriesType)
	for category, infos := range types.ByCategory() {
		for _, info := range infos {
			got[category] = append(got[category], info.Name)
		}
	}

	want := map[string][]healthion.SeriesType{
		"heart":    {healthion.SeriesTypeHeartRate, healthion.SeriesTypeRestingHeartRate},
		"activity": {healthion.SeriesTypeSteps},
		"other":    {healthion.SeriesTypeVO2Max, healthion.SeriesTypeWeight},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ByCategory() mismatch (-want +got):\n%s", diff)
	}
}
