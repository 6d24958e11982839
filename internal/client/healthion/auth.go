package healthion

import (
	"context"
	"net/http"
)

type authService struct {
	client *Client
}

func (s *authService) Me(ctx context.Context) (*UserInfo, error) {
	const route = authPrefix + "/me"

	var info UserInfo
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
