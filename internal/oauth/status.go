package oauth

import (
	"context"
	"sync"
)

// Status is the auth state a view consults before fetching.
type Status struct {
	Authenticated bool
	Pending       bool
}

// Resolved reports whether auth has settled into an authenticated session.
func (s Status) Resolved() bool {
	return !s.Pending && s.Authenticated
}

type StatusProvider interface {
	Status() Status
}

// StatusTracker starts out pending and settles once Resolve has consulted the
// token checker. Logout moves it back to unauthenticated.
type StatusTracker struct {
	checker TokenChecker

	mu     sync.RWMutex
	status Status
}

var _ StatusProvider = (*StatusTracker)(nil)

func NewStatusTracker(checker TokenChecker) *StatusTracker {
	return &StatusTracker{
		checker: checker,
		status:  Status{Pending: true},
	}
}

func (t *StatusTracker) Status() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}

// Resolve asks the checker whether a credential is stored. A checker error
// resolves to unauthenticated and is returned.
func (t *StatusTracker) Resolve(ctx context.Context) (Status, error) {
	ok, err := t.checker.HasToken(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = Status{Authenticated: ok && err == nil}
	return t.status, err
}

func (t *StatusTracker) SignOut() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = Status{}
}
