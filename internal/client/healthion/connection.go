package healthion

import (
	"context"
	"net/http"
)

type connectionService struct {
	client *Client
}

func (s *connectionService) List(ctx context.Context) (*ConnectionsResponse, error) {
	const route = wearablesPrefix + "/connections"

	var resp ConnectionsResponse
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *connectionService) Sync(ctx context.Context, req SyncRequest) (*SyncResponse, error) {
	const route = wearablesPrefix + "/sync"

	if req.DataType == "" {
		req.DataType = SyncAll
	}

	var resp SyncResponse
	if err := s.client.do(ctx, http.MethodPost, route, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *connectionService) Register(ctx context.Context) (*RegisterResponse, error) {
	const route = wearablesPrefix + "/register"

	var resp RegisterResponse
	if err := s.client.do(ctx, http.MethodPost, route, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
