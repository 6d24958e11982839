package healthion

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/garrettladley/healthion/internal/xcontext"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, tokenSource oauth2.TokenSource) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(srv.URL+"/", tokenSource, WithTimeout(5*time.Second))
}

func TestClientRequests(t *testing.T) {
	t.Parallel()

	userID := uuid.MustParse("2b1f5a2e-8f4b-4a0e-9d4c-1f2e3d4c5b6a")
	workoutID := uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")
	start := time.Date(2026, 5, 1, 6, 30, 0, 0, time.UTC)
	end := start.Add(45 * time.Minute)

	tests := []struct {
		name       string
		wantMethod string
		wantPath   string
		wantQuery  url.Values
		wantBody   string
		response   string
		call       func(t *testing.T, c *Client) any
		want       any
	}{
		{
			name:       "me",
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/auth/me",
			response:   `{"user_id":"2b1f5a2e-8f4b-4a0e-9d4c-1f2e3d4c5b6a","auth0_id":"auth0|1","email":"a@b.c","permissions":["read:data"]}`,
			call: func(t *testing.T, c *Client) any {
				got, err := c.Auth.Me(t.Context())
				if err != nil {
					t.Fatalf("Me() error = %v", err)
				}
				return got
			},
			want: &UserInfo{UserID: userID, Auth0ID: "auth0|1", Email: "a@b.c", Permissions: []string{"read:data"}},
		},
		{
			name:       "timeseries with repeated types",
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/wearables/timeseries",
			wantQuery: url.Values{
				"start_time": {"2026-04-24T06:30:00Z"},
				"end_time":   {"2026-05-01T06:30:00Z"},
				"types":      {"heart_rate", "steps"},
				"limit":      {"100"},
				"resolution": {"5min"},
			},
			response: `{"data":[{"timestamp":"2026-05-01T06:30:00Z","type":"heart_rate","value":61,"unit":"bpm"}],"series_type":"heart_rate","user_id":"2b1f5a2e-8f4b-4a0e-9d4c-1f2e3d4c5b6a","count":1}`,
			call: func(t *testing.T, c *Client) any {
				got, err := c.Timeseries.List(t.Context(), &TimeseriesParams{
					StartTime:  "2026-04-24T06:30:00Z",
					EndTime:    "2026-05-01T06:30:00Z",
					Types:      []SeriesType{SeriesTypeHeartRate, SeriesTypeSteps},
					Limit:      250,
					Resolution: Resolution5Min,
				})
				if err != nil {
					t.Fatalf("Timeseries.List() error = %v", err)
				}
				return got
			},
			want: &TimeseriesResponse{
				Data:       []DataPoint{{Timestamp: start, Type: SeriesTypeHeartRate, Value: 61, Unit: "bpm"}},
				SeriesType: SeriesTypeHeartRate,
				UserID:     userID,
				Count:      1,
			},
		},
		{
			name:       "workout events",
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/wearables/events/workouts",
			wantQuery: url.Values{
				"start_date":   {"2026-04-01"},
				"end_date":     {"2026-05-01"},
				"workout_type": {"running"},
			},
			response: `{"data":[{"id":"7c9e6679-7425-40de-944b-e07fc1f90ae7","type":"running","start_time":"2026-05-01T06:30:00Z","end_time":"2026-05-01T07:15:00Z","source":{"provider":"garmin"}}],"has_more":true,"next_cursor":"abc"}`,
			call: func(t *testing.T, c *Client) any {
				got, err := c.Workout.Events(t.Context(), &WorkoutEventParams{
					DateRangeParams: DateRangeParams{StartDate: "2026-04-01", EndDate: "2026-05-01"},
					WorkoutType:     "running",
				})
				if err != nil {
					t.Fatalf("Workout.Events() error = %v", err)
				}
				return got
			},
			want: &EventsResponse[EventWorkout]{
				Data: []EventWorkout{{
					ID:        workoutID,
					Type:      "running",
					StartTime: start,
					EndTime:   end,
					Source:    DataSource{Provider: "garmin"},
				}},
				HasMore:    true,
				NextCursor: ptr("abc"),
			},
		},
		{
			name:       "workout detail escapes path segments",
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/wearables/workouts/garmin/7c9e6679-7425-40de-944b-e07fc1f90ae7",
			response:   `{"id":"7c9e6679-7425-40de-944b-e07fc1f90ae7","type":"cycling","start_time":"2026-05-01T06:30:00Z","end_time":"2026-05-01T07:15:00Z","source":{"provider":"garmin"},"avg_power_watts":210}`,
			call: func(t *testing.T, c *Client) any {
				got, err := c.Workout.Get(t.Context(), "garmin", workoutID.String())
				if err != nil {
					t.Fatalf("Workout.Get() error = %v", err)
				}
				return got
			},
			want: &WorkoutDetail{
				EventWorkout: EventWorkout{
					ID:        workoutID,
					Type:      "cycling",
					StartTime: start,
					EndTime:   end,
					Source:    DataSource{Provider: "garmin"},
				},
				AvgPowerWatts: ptr(210),
			},
		},
		{
			name:       "recovery summaries",
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/wearables/summaries/recovery",
			wantQuery:  url.Values{"start_date": {"2026-04-01"}, "end_date": {"2026-05-01"}, "limit": {"7"}},
			response:   `{"data":[{"date":"2026-05-01","source":{"provider":"whoop"},"recovery_score":82}],"has_more":false}`,
			call: func(t *testing.T, c *Client) any {
				got, err := c.Summary.Recovery(t.Context(), &DateRangeParams{StartDate: "2026-04-01", EndDate: "2026-05-01", Limit: 7})
				if err != nil {
					t.Fatalf("Summary.Recovery() error = %v", err)
				}
				return got
			},
			want: &EventsResponse[RecoverySummary]{
				Data: []RecoverySummary{{Date: "2026-05-01", Source: DataSource{Provider: "whoop"}, RecoveryScore: ptr(82)}},
			},
		},
		{
			name:       "providers with filters",
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/wearables/providers",
			wantQuery:  url.Values{"enabled_only": {"true"}, "cloud_only": {"false"}},
			response:   `{"providers":[{"name":"garmin","display_name":"Garmin","has_cloud_api":true,"is_enabled":true}]}`,
			call: func(t *testing.T, c *Client) any {
				got, err := c.Provider.List(t.Context(), &ProviderParams{EnabledOnly: ptr(true), CloudOnly: ptr(false)})
				if err != nil {
					t.Fatalf("Provider.List() error = %v", err)
				}
				return got
			},
			want: &ProvidersResponse{Providers: []Provider{{Name: "garmin", DisplayName: ptr("Garmin"), HasCloudAPI: true, IsEnabled: true}}},
		},
		{
			name:       "sync defaults data type",
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/wearables/sync",
			wantBody:   `{"provider":"garmin","data_type":"all"}`,
			response:   `{"status":"ok","synced_count":12}`,
			call: func(t *testing.T, c *Client) any {
				got, err := c.Connection.Sync(t.Context(), SyncRequest{Provider: "garmin"})
				if err != nil {
					t.Fatalf("Connection.Sync() error = %v", err)
				}
				return got
			},
			want: &SyncResponse{Status: "ok", SyncedCount: 12},
		},
		{
			name:       "apple health import",
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/wearables/import/apple-health",
			wantQuery:  url.Values{"file_key": {"uploads/export.xml"}},
			response:   `{"status":"ok","records_imported":10,"workouts_imported":2,"errors":[]}`,
			call: func(t *testing.T, c *Client) any {
				got, err := c.Import.AppleHealth(t.Context(), "uploads/export.xml")
				if err != nil {
					t.Fatalf("Import.AppleHealth() error = %v", err)
				}
				return got
			},
			want: &AppleHealthImportResponse{Status: "ok", RecordsImported: 10, WorkoutsImported: 2, Errors: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != tt.wantMethod {
					t.Errorf("method = %s, want %s", r.Method, tt.wantMethod)
				}
				if r.URL.EscapedPath() != tt.wantPath {
					t.Errorf("path = %s, want %s", r.URL.EscapedPath(), tt.wantPath)
				}
				if diff := cmp.Diff(tt.wantQuery, r.URL.Query(), cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("query mismatch (-want +got):\n%s", diff)
				}
				if got := r.Header.Get("Authorization"); got != "Bearer token-1" {
					t.Errorf("Authorization = %q, want %q", got, "Bearer token-1")
				}
				if tt.wantBody != "" {
					body, _ := io.ReadAll(r.Body)
					if string(body) != tt.wantBody {
						t.Errorf("body = %s, want %s", body, tt.wantBody)
					}
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, tt.response)
			}, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "token-1"}))

			got := tt.call(t, c)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("response mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClientPrefersContextCredential(t *testing.T) {
	t.Parallel()

	gotAuth := make(chan string, 1)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth <- r.Header.Get("Authorization")
		_, _ = io.WriteString(w, `{"connections":[]}`)
	}, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "from-source"}))

	ctx := xcontext.SetCredential(t.Context(), "from-context")
	if _, err := c.Connection.List(ctx); err != nil {
		t.Fatalf("Connection.List() error = %v", err)
	}
	if got := <-gotAuth; got != "Bearer from-context" {
		t.Errorf("Authorization = %q, want %q", got, "Bearer from-context")
	}
}

func TestClientWithoutCredential(t *testing.T) {
	t.Parallel()

	var called atomic.Bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
	}, nil)

	_, err := c.Connection.List(t.Context())
	if !errors.Is(err, ErrNoCredential) {
		t.Fatalf("Connection.List() error = %v, want %v", err, ErrNoCredential)
	}
	if called.Load() {
		t.Error("server was called without a credential")
	}
}

func TestClientAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "detail string",
			status:      http.StatusBadGateway,
			body:        `{"detail":"Failed to fetch timeseries: upstream down"}`,
			wantMessage: "Failed to fetch timeseries: upstream down",
		},
		{
			name:        "validation detail list",
			status:      http.StatusUnprocessableEntity,
			body:        `{"detail":[{"loc":["query","limit"],"msg":"too large"}]}`,
			wantMessage: "422 Unprocessable Entity",
		},
		{
			name:        "message field",
			status:      http.StatusUnauthorized,
			body:        `{"message":"token expired"}`,
			wantMessage: "token expired",
		},
		{
			name:        "non json body",
			status:      http.StatusInternalServerError,
			body:        `oops`,
			wantMessage: "oops",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "t"}))

			_, err := c.Summary.Body(t.Context(), nil)

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error = %v, want *APIError", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
			if !IsStatus(err, tt.status) {
				t.Errorf("IsStatus(err, %d) = false, want true", tt.status)
			}
		})
	}
}

func TestImportRequiresFileKey(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:0", nil)
	if _, err := c.Import.AppleHealth(t.Context(), ""); !errors.Is(err, ErrEmptyFileKey) {
		t.Errorf("AppleHealth(\"\") error = %v, want %v", err, ErrEmptyFileKey)
	}
}

func ptr[T any](v T) *T { return &v }
