package healthion

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

var ErrEmptyFileKey = errors.New("file key is required")

type importService struct {
	client *Client
}

// AppleHealth imports an export previously uploaded to storage under fileKey.
func (s *importService) AppleHealth(ctx context.Context, fileKey string) (*AppleHealthImportResponse, error) {
	const route = wearablesPrefix + "/import/apple-health"

	if fileKey == "" {
		return nil, ErrEmptyFileKey
	}

	var resp AppleHealthImportResponse
	if err := s.client.do(ctx, http.MethodPost, route, url.Values{"file_key": {fileKey}}, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
