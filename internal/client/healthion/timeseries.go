package healthion

import (
	"context"
	"net/http"
)

type timeseriesService struct {
	client *Client
}

func (s *timeseriesService) List(ctx context.Context, params *TimeseriesParams) (*TimeseriesResponse, error) {
	const route = wearablesPrefix + "/timeseries"

	var resp TimeseriesResponse
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *timeseriesService) Types(ctx context.Context) (*SeriesTypesResponse, error) {
	const route = wearablesPrefix + "/series-types"

	var resp SeriesTypesResponse
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
