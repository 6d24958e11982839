package healthion

import "context"

type AuthService interface {
	Me(ctx context.Context) (*UserInfo, error)
}

type ProviderService interface {
	List(ctx context.Context, params *ProviderParams) (*ProvidersResponse, error)
	Authorize(ctx context.Context, provider string, redirectURI string) (*AuthorizationResponse, error)
}

type ConnectionService interface {
	List(ctx context.Context) (*ConnectionsResponse, error)
	Sync(ctx context.Context, req SyncRequest) (*SyncResponse, error)
	Register(ctx context.Context) (*RegisterResponse, error)
}

type TimeseriesService interface {
	List(ctx context.Context, params *TimeseriesParams) (*TimeseriesResponse, error)
	Types(ctx context.Context) (*SeriesTypesResponse, error)
}

type WorkoutService interface {
	List(ctx context.Context, params *ListParams) (*WorkoutsResponse, error)
	Events(ctx context.Context, params *WorkoutEventParams) (*EventsResponse[EventWorkout], error)
	Get(ctx context.Context, provider string, id string) (*WorkoutDetail, error)
}

type SleepService interface {
	Sessions(ctx context.Context, params *DateRangeParams) (*EventsResponse[SleepSession], error)
}

type SummaryService interface {
	Activity(ctx context.Context, params *DateRangeParams) (*EventsResponse[ActivitySummary], error)
	Sleep(ctx context.Context, params *DateRangeParams) (*EventsResponse[SleepSummary], error)
	Recovery(ctx context.Context, params *DateRangeParams) (*EventsResponse[RecoverySummary], error)
	Body(ctx context.Context, params *DateRangeParams) (*EventsResponse[BodySummary], error)
}

type ImportService interface {
	AppleHealth(ctx context.Context, fileKey string) (*AppleHealthImportResponse, error)
}
