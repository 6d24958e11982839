package healthion

import (
	"context"
	"net/http"
)

type summaryService struct {
	client *Client
}

func (s *summaryService) Activity(ctx context.Context, params *DateRangeParams) (*EventsResponse[ActivitySummary], error) {
	return listSummary[ActivitySummary](ctx, s.client, SummaryActivity, params)
}

func (s *summaryService) Sleep(ctx context.Context, params *DateRangeParams) (*EventsResponse[SleepSummary], error) {
	return listSummary[SleepSummary](ctx, s.client, SummarySleep, params)
}

func (s *summaryService) Recovery(ctx context.Context, params *DateRangeParams) (*EventsResponse[RecoverySummary], error) {
	return listSummary[RecoverySummary](ctx, s.client, SummaryRecovery, params)
}

func (s *summaryService) Body(ctx context.Context, params *DateRangeParams) (*EventsResponse[BodySummary], error) {
	return listSummary[BodySummary](ctx, s.client, SummaryBody, params)
}

func listSummary[T any](ctx context.Context, c *Client, kind SummaryKind, params *DateRangeParams) (*EventsResponse[T], error) {
	const route = wearablesPrefix + "/summaries"
	path := route + "/" + string(kind)

	var resp EventsResponse[T]
	if err := c.do(ctx, http.MethodGet, path, params.values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
