package resource

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/oauth2"

	"github.com/garrettladley/healthion/internal/client/healthion"
	"github.com/garrettladley/healthion/internal/oauth"
	"github.com/garrettladley/healthion/internal/session"
	"github.com/garrettladley/healthion/internal/xcontext"
	"github.com/garrettladley/healthion/internal/xslog"
)

type ActionState[Res any] struct {
	Result  Res
	Loading bool
	Error   string
	Err     error
}

// Action is a user-triggered mutation. It shares the hook's loading and error
// contract but returns failures to the caller and never retries.
type Action[Req, Res any] struct {
	name           string
	failureMessage string
	run            func(ctx context.Context, req Req) (Res, error)
	credentials    oauth2.TokenSource
	identity       session.IdentityProvider
	logger         *slog.Logger

	mu    sync.RWMutex
	state ActionState[Res]
	seq   uint64
}

type ActionOption func(*actionOptions)

type actionOptions struct {
	identity session.IdentityProvider
	logger   *slog.Logger
}

// RequireIdentity makes Run fail with ErrNoIdentity until identity resolves.
func RequireIdentity(identity session.IdentityProvider) ActionOption {
	return func(o *actionOptions) { o.identity = identity }
}

func WithActionLogger(logger *slog.Logger) ActionOption {
	return func(o *actionOptions) { o.logger = logger }
}

func NewAction[Req, Res any](name string, failureMessage string, run func(ctx context.Context, req Req) (Res, error), credentials oauth2.TokenSource, opts ...ActionOption) *Action[Req, Res] {
	o := actionOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Action[Req, Res]{
		name:           name,
		failureMessage: failureMessage,
		run:            run,
		credentials:    credentials,
		identity:       o.identity,
		logger:         o.logger,
	}
}

func (a *Action[Req, Res]) State() ActionState[Res] {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// Run executes the action once. Precondition failures (no credential, no
// identity) return an error without touching state.
func (a *Action[Req, Res]) Run(ctx context.Context, req Req) (Res, error) {
	var zero Res

	token, err := a.credential()
	if err != nil {
		return zero, &ActionError{Action: a.name, Message: a.failureMessage, Err: err}
	}
	ctx = xcontext.SetCredential(ctx, token)
	ctx, requestID := xcontext.EnsureRequestID(ctx)

	if a.identity != nil && a.identity.Get(ctx) == nil {
		return zero, &ActionError{Action: a.name, Message: a.failureMessage, Err: ErrNoIdentity}
	}

	logger := a.logger.With(xslog.Action(a.name), xslog.RequestID(requestID))

	a.mu.Lock()
	a.seq++
	seq := a.seq
	a.state.Loading = true
	a.state.Error = ""
	a.state.Err = nil
	a.mu.Unlock()

	completed := false
	defer func() {
		if completed {
			return
		}
		a.mu.Lock()
		if seq == a.seq {
			a.state.Loading = false
		}
		a.mu.Unlock()
	}()

	res, err := a.run(ctx, req)
	completed = true

	a.mu.Lock()
	if seq == a.seq {
		if err != nil {
			a.state.Error = a.failureMessage
			a.state.Err = err
		} else {
			a.state.Result = res
		}
		a.state.Loading = false
	}
	a.mu.Unlock()

	if err != nil {
		logger.ErrorContext(ctx, "action failed", xslog.Error(err))
		return zero, &ActionError{Action: a.name, Message: a.failureMessage, Err: err}
	}
	logger.InfoContext(ctx, "action complete")
	return res, nil
}

func (a *Action[Req, Res]) credential() (string, error) {
	if a.credentials == nil {
		return "", ErrNotSignedIn
	}
	token, err := a.credentials.Token()
	if err != nil {
		if oauth.IsCredentialUnavailable(err) {
			return "", ErrNotSignedIn
		}
		return "", err
	}
	if token == nil || token.AccessToken == "" {
		return "", ErrNotSignedIn
	}
	return token.AccessToken, nil
}

const (
	ActionConnect  = "connect"
	ActionSync     = "sync"
	ActionImport   = "import_apple_health"
	ActionRegister = "register"
)

// NewConnect starts the provider authorization flow. The request is the
// provider name; the result holds the URL the user must open.
func NewConnect(svc healthion.ProviderService, redirectURI string, credentials oauth2.TokenSource, opts ...ActionOption) *Action[string, *healthion.AuthorizationResponse] {
	return NewAction(ActionConnect, MsgConnect, func(ctx context.Context, provider string) (*healthion.AuthorizationResponse, error) {
		return svc.Authorize(ctx, provider, redirectURI)
	}, credentials, opts...)
}

func NewSync(svc healthion.ConnectionService, credentials oauth2.TokenSource, opts ...ActionOption) *Action[healthion.SyncRequest, *healthion.SyncResponse] {
	return NewAction(ActionSync, MsgSync, svc.Sync, credentials, opts...)
}

func NewImportAppleHealth(svc healthion.ImportService, credentials oauth2.TokenSource, opts ...ActionOption) *Action[string, *healthion.AppleHealthImportResponse] {
	return NewAction(ActionImport, MsgImport, svc.AppleHealth, credentials, opts...)
}

func NewRegister(svc healthion.ConnectionService, credentials oauth2.TokenSource, opts ...ActionOption) *Action[struct{}, *healthion.RegisterResponse] {
	return NewAction(ActionRegister, MsgRegister, func(ctx context.Context, _ struct{}) (*healthion.RegisterResponse, error) {
		return svc.Register(ctx)
	}, credentials, opts...)
}
