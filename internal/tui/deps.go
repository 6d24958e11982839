package tui

import (
	"context"
	"log/slog"

	"github.com/garrettladley/healthion/internal/client/healthion"
	"github.com/garrettladley/healthion/internal/oauth"
	"github.com/garrettladley/healthion/internal/resource"
	"github.com/garrettladley/healthion/internal/session"
)

type AuthResolver interface {
	oauth.StatusProvider
	Resolve(ctx context.Context) (oauth.Status, error)
}

type Deps struct {
	Ctx       context.Context
	Logger    *slog.Logger
	Auth      AuthResolver
	Identity  session.IdentityProvider
	Resources Resources
}

// Resources are the hooks the dashboard renders. Nil hooks are skipped.
type Resources struct {
	Timeseries  *resource.Timeseries
	Sleep       *resource.Page[healthion.SleepSession]
	Activity    *resource.Page[healthion.ActivitySummary]
	Recovery    *resource.Page[healthion.RecoverySummary]
	Workouts    *resource.Page[healthion.EventWorkout]
	Connections *resource.Connections
}

// binding erases a hook's data type so the model can drive every resource
// the same way.
type binding struct {
	name      string
	activate  func(ctx context.Context, status oauth.Status) bool
	refresh   func(ctx context.Context) error
	subscribe func(fn func()) (unsubscribe func())
}

func bind[T any](h *resource.Hook[T]) binding {
	return binding{
		name:     h.Name(),
		activate: h.Activate,
		refresh: func(ctx context.Context) error {
			return h.Refresh(ctx, resource.Query{}).Err
		},
		subscribe: func(fn func()) func() {
			return h.Subscribe(func(resource.State[T]) { fn() })
		},
	}
}

func (r Resources) bindings() []binding {
	var out []binding
	if r.Timeseries != nil {
		out = append(out, bind(r.Timeseries.Hook))
	}
	if r.Sleep != nil {
		out = append(out, bind(r.Sleep.Hook))
	}
	if r.Activity != nil {
		out = append(out, bind(r.Activity.Hook))
	}
	if r.Recovery != nil {
		out = append(out, bind(r.Recovery.Hook))
	}
	if r.Workouts != nil {
		out = append(out, bind(r.Workouts.Hook))
	}
	if r.Connections != nil {
		out = append(out, bind(r.Connections.Hook))
	}
	return out
}
