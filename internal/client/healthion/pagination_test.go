package healthion

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParamValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  url.Values
		want url.Values
	}{
		{
			name: "nil date range",
			got:  (*DateRangeParams)(nil).values(),
			want: nil,
		},
		{
			name: "date range clamps limit",
			got:  (&DateRangeParams{StartDate: "2026-01-01", EndDate: "2026-01-31", Limit: 500}).values(),
			want: url.Values{"start_date": {"2026-01-01"}, "end_date": {"2026-01-31"}, "limit": {"100"}},
		},
		{
			name: "nil workout events",
			got:  (*WorkoutEventParams)(nil).values(),
			want: nil,
		},
		{
			name: "empty timeseries",
			got:  (&TimeseriesParams{}).values(),
			want: url.Values{},
		},
		{
			name: "providers omit unset filters",
			got:  (&ProviderParams{CloudOnly: ptr(true)}).values(),
			want: url.Values{"cloud_only": {"true"}},
		},
		{
			name: "list without limit",
			got:  (&ListParams{}).values(),
			want: nil,
		},
		{
			name: "list with limit",
			got:  (&ListParams{Limit: 20}).values(),
			want: url.Values{"limit": {"20"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("values() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolutionValid(t *testing.T) {
	t.Parallel()

	for _, r := range []Resolution{ResolutionRaw, Resolution1Min, Resolution5Min, Resolution15Min, Resolution1Hour} {
		if !r.Valid() {
			t.Errorf("Resolution(%q).Valid() = false, want true", r)
		}
	}
	if Resolution("2min").Valid() {
		t.Error(`Resolution("2min").Valid() = true, want false`)
	}
}

func TestEventsResponseCursor(t *testing.T) {
	t.Parallel()

	var nilResp *EventsResponse[SleepSession]
	if got := nilResp.Cursor(); got != "" {
		t.Errorf("nil Cursor() = %q, want empty", got)
	}
	resp := &EventsResponse[SleepSession]{NextCursor: ptr("next")}
	if got := resp.Cursor(); got != "next" {
		t.Errorf("Cursor() = %q, want %q", got, "next")
	}
}
