// Package resource fetches remote health data for views. Each Hook owns the
// state of one resource: its data, whether a fetch is running, and the last
// failure. Hooks fetch at most once automatically; everything after that is
// an explicit Refresh.
package resource

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/garrettladley/healthion/internal/oauth"
	"github.com/garrettladley/healthion/internal/xcontext"
	"github.com/garrettladley/healthion/internal/xslog"
)

type State[T any] struct {
	Data    T
	Loading bool
	// Error is the user-facing failure message; empty after a success.
	Error string
	// Err is the cause of the last failure.
	Err       error
	UpdatedAt time.Time
}

type FetchFunc[T any] func(ctx context.Context, q Query) (T, error)

// Spec describes a resource.
type Spec[T any] struct {
	Name           string
	Window         WindowKind
	FailureMessage string
	Fetch          FetchFunc[T]
}

type options struct {
	autoFetch bool
	query     Query
	now       func() time.Time
	logger    *slog.Logger
}

type Option func(*options)

// WithAutoFetch controls whether Activate fetches. Defaults to true.
func WithAutoFetch(enabled bool) Option {
	return func(o *options) { o.autoFetch = enabled }
}

// WithQuery captures filters that apply to every fetch unless a Refresh
// override sets the same field.
func WithQuery(q Query) Option {
	return func(o *options) { o.query = q }
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func newOptions(opts []Option) options {
	o := options{
		autoFetch: true,
		now:       time.Now,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type Hook[T any] struct {
	spec        Spec[T]
	credentials oauth2.TokenSource
	opts        options
	latch       Latch

	mu    sync.RWMutex
	state State[T]
	// seq identifies the most recent Refresh; only it may publish results.
	seq uint64

	subMu       sync.Mutex
	notifyMu    sync.Mutex
	subscribers map[uint64]func(State[T])
	nextSub     uint64
}

func New[T any](spec Spec[T], credentials oauth2.TokenSource, opts ...Option) *Hook[T] {
	return &Hook[T]{
		spec:        spec,
		credentials: credentials,
		opts:        newOptions(opts),
		subscribers: make(map[uint64]func(State[T])),
	}
}

func (h *Hook[T]) Name() string {
	return h.spec.Name
}

func (h *Hook[T]) State() State[T] {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

// Latch exposes the auto-fetch guard so tests can re-arm it.
func (h *Hook[T]) Latch() *Latch {
	return &h.latch
}

// Subscribe registers fn to receive state changes. Deliveries are serialized
// and always carry the latest state, so intermediate states may be skipped.
// fn runs on the fetching goroutine and must not call back into the hook.
func (h *Hook[T]) Subscribe(fn func(State[T])) (unsubscribe func()) {
	h.subMu.Lock()
	id := h.nextSub
	h.nextSub++
	h.subscribers[id] = fn
	h.subMu.Unlock()

	return func() {
		h.subMu.Lock()
		delete(h.subscribers, id)
		h.subMu.Unlock()
	}
}

// Activate is called whenever the owning view becomes active. It fetches
// only when auto-fetch is enabled, auth has resolved to a signed-in session,
// and no earlier activation has fetched. It reports whether it fetched.
func (h *Hook[T]) Activate(ctx context.Context, status oauth.Status) bool {
	if !h.opts.autoFetch || !status.Resolved() {
		return false
	}
	if !h.latch.Fire() {
		return false
	}
	h.Refresh(ctx, Query{})
	return true
}

// Refresh fetches with override merged over the captured query and the
// default window, and returns the resulting state. Without a credential it
// returns the current state untouched. When refreshes overlap only the most
// recently started one publishes its outcome.
func (h *Hook[T]) Refresh(ctx context.Context, override Query) State[T] {
	token, ok := h.credential(ctx)
	if !ok {
		return h.State()
	}
	ctx = xcontext.SetCredential(ctx, token)
	ctx, requestID := xcontext.EnsureRequestID(ctx)

	q := MergeQuery(override, h.opts.query, DefaultQuery(h.spec.Window, h.opts.now()))

	seq := h.begin()
	logger := h.opts.logger.With(
		xslog.Resource(h.spec.Name),
		xslog.Seq(seq),
		xslog.RequestID(requestID),
	)
	logger.DebugContext(ctx, "fetching", xslog.Start(q.Start), xslog.End(q.End))

	completed := false
	defer func() {
		if !completed {
			h.abandon(seq)
		}
	}()

	data, err := h.spec.Fetch(ctx, q)
	completed = true

	return h.complete(ctx, logger, seq, data, err)
}

func (h *Hook[T]) credential(ctx context.Context) (string, bool) {
	if token, ok := xcontext.GetCredential(ctx); ok {
		return token, true
	}
	if h.credentials == nil {
		return "", false
	}

	token, err := h.credentials.Token()
	if err != nil {
		if !oauth.IsCredentialUnavailable(err) {
			h.opts.logger.WarnContext(ctx, "failed to acquire credential",
				xslog.Resource(h.spec.Name),
				xslog.Error(err),
			)
		}
		return "", false
	}
	if token == nil || token.AccessToken == "" {
		return "", false
	}
	return token.AccessToken, true
}

func (h *Hook[T]) begin() uint64 {
	h.mu.Lock()
	h.seq++
	seq := h.seq
	h.state.Loading = true
	h.state.Error = ""
	h.state.Err = nil
	h.mu.Unlock()

	h.notify()
	return seq
}

func (h *Hook[T]) complete(ctx context.Context, logger *slog.Logger, seq uint64, data T, err error) State[T] {
	h.mu.Lock()
	if seq != h.seq {
		snapshot := h.state
		h.mu.Unlock()
		logger.DebugContext(ctx, "discarding superseded result")
		return snapshot
	}

	if err != nil {
		h.state.Error = h.spec.FailureMessage
		h.state.Err = &FetchError{Resource: h.spec.Name, Err: err}
	} else {
		h.state.Data = data
		h.state.UpdatedAt = h.opts.now()
	}
	h.state.Loading = false
	snapshot := h.state
	h.mu.Unlock()

	if err != nil {
		logger.ErrorContext(ctx, "fetch failed", xslog.Error(err))
	} else {
		logger.DebugContext(ctx, "fetch complete")
	}

	h.notify()
	return snapshot
}

// abandon clears loading when the fetch never returned normally.
func (h *Hook[T]) abandon(seq uint64) {
	h.mu.Lock()
	if seq == h.seq {
		h.state.Loading = false
	}
	h.mu.Unlock()

	h.notify()
}

func (h *Hook[T]) notify() {
	h.notifyMu.Lock()
	defer h.notifyMu.Unlock()

	h.subMu.Lock()
	subs := make([]func(State[T]), 0, len(h.subscribers))
	for _, fn := range h.subscribers {
		subs = append(subs, fn)
	}
	h.subMu.Unlock()

	if len(subs) == 0 {
		return
	}

	state := h.State()
	for _, fn := range subs {
		fn(state)
	}
}
