package healthion

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"
	"golang.org/x/oauth2"

	"github.com/garrettladley/healthion/internal/xcontext"
	"github.com/garrettladley/healthion/internal/xhttp"
	"github.com/garrettladley/healthion/internal/xslog"
)

const (
	authPrefix      = "/api/v1/auth"
	wearablesPrefix = "/api/v1/wearables"
)

type Client struct {
	Auth       AuthService
	Provider   ProviderService
	Connection ConnectionService
	Timeseries TimeseriesService
	Workout    WorkoutService
	Sleep      SleepService
	Summary    SummaryService
	Import     ImportService

	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New builds a client for the API at baseURL. tokenSource supplies the bearer
// for requests whose context carries no credential; it may be nil when every
// call goes through a context prepared with xcontext.SetCredential.
func New(baseURL string, tokenSource oauth2.TokenSource, opts ...Option) *Client {
	cfg := &clientConfig{
		baseURL:     strings.TrimRight(baseURL, "/"),
		tokenSource: tokenSource,
		logger:      slog.Default(),
		base:        http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	transport := &bearerTransport{
		base:        xhttp.WrapTransport(cfg.base),
		tokenSource: cfg.tokenSource,
	}

	c := &Client{
		baseURL:    cfg.baseURL,
		httpClient: &http.Client{Transport: transport, Timeout: cfg.timeout},
		logger:     cfg.logger,
	}

	c.Auth = &authService{client: c}
	c.Provider = &providerService{client: c}
	c.Connection = &connectionService{client: c}
	c.Timeseries = &timeseriesService{client: c}
	c.Workout = &workoutService{client: c}
	c.Sleep = &sleepService{client: c}
	c.Summary = &summaryService{client: c}
	c.Import = &importService{client: c}

	return c
}

type clientConfig struct {
	baseURL     string
	tokenSource oauth2.TokenSource
	logger      *slog.Logger
	timeout     time.Duration
	base        http.RoundTripper
}

type Option func(*clientConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

// WithBaseTransport replaces the network transport, mostly for tests.
func WithBaseTransport(rt http.RoundTripper) Option {
	return func(cfg *clientConfig) { cfg.base = rt }
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body any, result any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := go_json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	xhttp.SetRequestHeaderAcceptJSON(req)
	if body != nil {
		xhttp.SetRequestHeaderContentTypeJSON(req)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.DebugContext(ctx, "api request",
		xslog.RequestGroup(req),
		xslog.ResponseGroup(resp.StatusCode, time.Since(start)),
	)

	if resp.StatusCode >= 400 {
		return parseAPIError(resp)
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}
		if err := go_json.NewDecoder(bytes.NewReader(respBody)).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w\nbody: %s", err, string(respBody))
		}
	}

	return nil
}

type bearerTransport struct {
	base        http.RoundTripper
	tokenSource oauth2.TokenSource
}

var _ http.RoundTripper = (*bearerTransport)(nil)

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.token(req.Context())
	if err != nil {
		return nil, fmt.Errorf("getting token: %w", err)
	}

	req = req.Clone(req.Context())
	xhttp.SetRequestHeaderBearer(req, token)

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}
	return resp, nil
}

func (t *bearerTransport) token(ctx context.Context) (string, error) {
	if token, ok := xcontext.GetCredential(ctx); ok {
		return token, nil
	}
	if t.tokenSource == nil {
		return "", ErrNoCredential
	}
	token, err := t.tokenSource.Token()
	if err != nil {
		return "", err
	}
	return token.AccessToken, nil
}
