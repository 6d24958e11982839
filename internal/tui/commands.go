package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/healthion/internal/oauth"
	"github.com/garrettladley/healthion/internal/session"
)

const authTimeout = 5 * time.Second

func resolveAuthCmd(ctx context.Context, resolver AuthResolver) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, authTimeout)
		defer cancel()
		status, err := resolver.Resolve(ctx)
		return AuthStatusMsg{Status: status, Err: err}
	}
}

func fetchIdentityCmd(ctx context.Context, identity session.IdentityProvider) tea.Cmd {
	if identity == nil {
		return nil
	}
	return func() tea.Msg {
		return IdentityMsg{Identity: identity.Get(ctx)}
	}
}

// activateCmd runs each hook's activation on its own goroutine. Results reach
// the model through the update channel, so the commands carry no message.
func activateCmd(ctx context.Context, bindings []binding, status oauth.Status) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(bindings))
	for _, b := range bindings {
		cmds = append(cmds, func() tea.Msg {
			b.activate(ctx, status)
			return nil
		})
	}
	return tea.Batch(cmds...)
}

// refreshAllCmd refreshes every hook concurrently and reports the first
// failure once all have finished.
func refreshAllCmd(ctx context.Context, bindings []binding) tea.Cmd {
	return func() tea.Msg {
		var g errgroup.Group
		for _, b := range bindings {
			g.Go(func() error {
				return b.refresh(ctx)
			})
		}
		return RefreshedMsg{Err: g.Wait()}
	}
}
