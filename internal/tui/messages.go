package tui

import (
	"time"

	"github.com/garrettladley/healthion/internal/oauth"
	"github.com/garrettladley/healthion/internal/session"
)

const splashDuration = 1200 * time.Millisecond

type SplashTickMsg struct{}

type AuthStatusMsg struct {
	Status oauth.Status
	Err    error
}

type IdentityMsg struct {
	Identity *session.Identity
}

// ResourceUpdatedMsg reports that a hook published new state.
type ResourceUpdatedMsg struct {
	Name string
}

type RefreshedMsg struct {
	Err error
}

type UpdatesClosedMsg struct{}
