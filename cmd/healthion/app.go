package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/garrettladley/healthion/internal/client/healthion"
	"github.com/garrettladley/healthion/internal/config"
	"github.com/garrettladley/healthion/internal/db"
	"github.com/garrettladley/healthion/internal/oauth"
	"github.com/garrettladley/healthion/internal/paths"
	"github.com/garrettladley/healthion/internal/resource"
	"github.com/garrettladley/healthion/internal/session"
	"github.com/garrettladley/healthion/internal/xslog"
)

var errNotSignedIn = errors.New("not signed in: run `healthion auth <token>` or set HEALTHION_TOKEN")

// app is everything a command needs, built once per invocation.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	logPath string

	// store is nil when the credential comes from HEALTHION_TOKEN.
	store       *oauth.DBTokenSource
	credentials oauth2.TokenSource
	auth        *oauth.StatusTracker
	client      *healthion.Client
	identity    *session.IdentityCache

	closers []io.Closer
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if _, err := paths.EnsureDir(); err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}

	a.logPath, err = paths.Log()
	if err != nil {
		return nil, err
	}
	logger, logCloser, err := xslog.NewFileLogger(a.logPath, cfg.EffectiveLogLevel())
	if err != nil {
		return nil, err
	}
	a.logger = logger.With(xslog.Version())
	a.closers = append(a.closers, logCloser)

	dbPath, err := paths.DB()
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	sqlDB, querier, err := db.Open(ctx, dbPath)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	a.closers = append(a.closers, sqlDB)

	var checker oauth.TokenChecker
	if cfg.API.Token != "" {
		static, err := oauth.NewStaticSource(cfg.API.Token)
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("invalid HEALTHION_TOKEN: %w", err)
		}
		a.credentials, checker = static, static
	} else {
		var opts []oauth.TokenSourceOption
		if cfg.Auth.RefreshEnabled() {
			opts = append(opts, oauth.WithRefreshConfig(&oauth2.Config{
				ClientID: cfg.Auth.ClientID,
				Endpoint: oauth2.Endpoint{
					TokenURL:  cfg.Auth.TokenURL,
					AuthStyle: oauth2.AuthStyleInParams,
				},
			}))
		}
		a.store = oauth.NewDBTokenSource(querier, opts...)
		a.credentials, checker = a.store, a.store
	}

	a.auth = oauth.NewStatusTracker(checker)
	a.client = healthion.New(cfg.API.URL, a.credentials,
		healthion.WithLogger(a.logger),
		healthion.WithTimeout(cfg.API.Timeout),
	)
	a.identity = session.NewIdentityCache(a.credentials, a.client.Auth, a.logger)

	a.logger.DebugContext(ctx, "app ready", slog.String("api_url", cfg.API.URL), slog.Bool("static_token", a.store == nil))
	return a, nil
}

func (a *app) Close() error {
	if a.identity != nil {
		a.identity.Close()
	}
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i].Close())
	}
	return errors.Join(errs...)
}

// requireSignedIn resolves auth status and fails when no credential is usable.
func (a *app) requireSignedIn(ctx context.Context) error {
	status, err := a.auth.Resolve(ctx)
	if err != nil {
		return fmt.Errorf("failed to check credentials: %w", err)
	}
	if !status.Authenticated {
		return errNotSignedIn
	}
	return nil
}

func (a *app) hookOptions(extra ...resource.Option) []resource.Option {
	return append([]resource.Option{resource.WithLogger(a.logger)}, extra...)
}

func (a *app) actionOptions(extra ...resource.ActionOption) []resource.ActionOption {
	return append([]resource.ActionOption{resource.WithActionLogger(a.logger)}, extra...)
}

type runFunc func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error

func withApp(fn runFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		ctx = xslog.WithLogger(ctx, a.logger)
		return fn(ctx, a, cmd, args)
	}
}

// fetched unwraps a hook state, turning a failed fetch into an error that
// shows the user-facing message. A hook that never fetched had no usable
// credential.
func fetched[T any](state resource.State[T]) (T, error) {
	var zero T
	if state.Error != "" {
		return zero, fmt.Errorf("%s: %w", state.Error, state.Err)
	}
	if state.UpdatedAt.IsZero() {
		return zero, errNotSignedIn
	}
	return state.Data, nil
}
