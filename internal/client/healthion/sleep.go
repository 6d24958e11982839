package healthion

import (
	"context"
	"net/http"
)

type sleepService struct {
	client *Client
}

func (s *sleepService) Sessions(ctx context.Context, params *DateRangeParams) (*EventsResponse[SleepSession], error) {
	const route = wearablesPrefix + "/events/sleep"

	var resp EventsResponse[SleepSession]
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
