package healthion

import (
	"context"
	"net/http"
	"net/url"
)

type providerService struct {
	client *Client
}

func (s *providerService) List(ctx context.Context, params *ProviderParams) (*ProvidersResponse, error) {
	const route = wearablesPrefix + "/providers"

	var resp ProvidersResponse
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Authorize returns the URL the user must visit to connect provider.
func (s *providerService) Authorize(ctx context.Context, provider string, redirectURI string) (*AuthorizationResponse, error) {
	const route = wearablesPrefix + "/authorize"
	path := route + "/" + url.PathEscape(provider)

	var query url.Values
	if redirectURI != "" {
		query = url.Values{"redirect_uri": {redirectURI}}
	}

	var resp AuthorizationResponse
	if err := s.client.do(ctx, http.MethodGet, path, query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
